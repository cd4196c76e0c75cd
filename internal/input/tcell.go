// internal/input/tcell.go
package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// TermCollector накапливает события tcell между кадрами
type TermCollector struct {
	frame     Frame
	lastMouse tcell.ButtonMask
	toPixel   func(col, row int) (float64, float64)
}

// NewTermCollector: toPixel переводит ячейку терминала в пиксели игрового поля
func NewTermCollector(toPixel func(col, row int) (float64, float64)) *TermCollector {
	return &TermCollector{toPixel: toPixel}
}

// Add учитывает одно событие терминала
func (c *TermCollector) Add(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if key, ok := KeyFromTcell(ev); ok {
			c.frame.Keys = append(c.frame.Keys, key)
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := c.toPixel(col, row)
		c.frame.Pointer = Point{X: x, Y: y}

		// Клик это только переход кнопки из отпущенного состояния в нажатое
		buttons := ev.Buttons()
		if buttons&tcell.Button1 != 0 && c.lastMouse&tcell.Button1 == 0 {
			c.frame.Clicks = append(c.frame.Clicks, c.frame.Pointer)
		}
		c.lastMouse = buttons
	}
}

// Flush возвращает накопленный кадр и начинает новый
func (c *TermCollector) Flush() Frame {
	f := c.frame
	c.frame = Frame{Pointer: f.Pointer}
	return f
}

// KeyFromTcell переводит клавишу терминала в Key
func KeyFromTcell(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return KeyEnter, true
	case tcell.KeyEscape:
		return KeyEscape, true
	case tcell.KeyCtrlC:
		return "q", true
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return KeySpace, true
		}
		return Key(string(unicode.ToLower(r))), true
	}
	return "", false
}
