// pkg/render/term_canvas.go
package render

import (
	"image/color"
	"math"

	"go-drone-defense/pkg/utils"

	"github.com/gdamore/tcell/v2"
)

// TermCell: содержимое одной ячейки терминала
type TermCell struct {
	Rune rune
	Fg   color.RGBA
	Bg   color.RGBA
}

// TermCanvas растеризует примитивы в сетку ячеек терминала.
// Кадр собирается в буфере и выводится на экран вызовом Present.
type TermCanvas struct {
	screen        tcell.Screen
	width, height int // размер логического экрана в пикселях
	cols, rows    int
	cells         []TermCell
	clearColor    color.RGBA
}

func NewTermCanvas(screen tcell.Screen, width, height int) *TermCanvas {
	return &TermCanvas{
		screen:     screen,
		width:      width,
		height:     height,
		clearColor: color.RGBA{A: 255},
	}
}

// Begin подстраивает буфер под текущий размер терминала и очищает его
func (c *TermCanvas) Begin(clear color.RGBA) {
	cols, rows := c.screen.Size()
	c.cols, c.rows = max(cols, 1), max(rows, 1)
	if len(c.cells) != c.cols*c.rows {
		c.cells = make([]TermCell, c.cols*c.rows)
	}
	c.clearColor = clear
	for i := range c.cells {
		c.cells[i] = TermCell{Rune: ' ', Fg: clear, Bg: clear}
	}
}

// Present переносит буфер на экран tcell
func (c *TermCanvas) Present() {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			cell := c.cells[row*c.cols+col]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(cell.Fg.R), int32(cell.Fg.G), int32(cell.Fg.B))).
				Background(tcell.NewRGBColor(int32(cell.Bg.R), int32(cell.Bg.G), int32(cell.Bg.B)))
			c.screen.SetContent(col, row, cell.Rune, nil, style)
		}
	}
	c.screen.Show()
}

// Cell возвращает ячейку буфера; вне сетки пустая ячейка
func (c *TermCanvas) Cell(col, row int) TermCell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return TermCell{}
	}
	return c.cells[row*c.cols+col]
}

func (c *TermCanvas) cellSize() (float64, float64) {
	return float64(c.width) / float64(c.cols), float64(c.height) / float64(c.rows)
}

// ToCell переводит пиксельные координаты в ячейку терминала
func (c *TermCanvas) ToCell(x, y float64) (int, int) {
	cw, ch := c.cellSize()
	return int(math.Floor(x / cw)), int(math.Floor(y / ch))
}

// ToPixel возвращает центр ячейки в пиксельных координатах
func (c *TermCanvas) ToPixel(col, row int) (float64, float64) {
	cw, ch := c.cellSize()
	return (float64(col) + 0.5) * cw, (float64(row) + 0.5) * ch
}

func (c *TermCanvas) paint(col, row int, clr color.RGBA) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	cell := &c.cells[row*c.cols+col]
	cell.Bg = Over(cell.Bg, clr)
	if clr.A == 255 {
		cell.Rune = ' '
	}
}

func (c *TermCanvas) glyph(col, row int, r rune, clr color.RGBA) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	cell := &c.cells[row*c.cols+col]
	cell.Rune = r
	cell.Fg = Over(cell.Bg, clr)
}

// cellsIn вызывает fn для каждой ячейки, центр которой попадает в прямоугольник
func (c *TermCanvas) cellsIn(x0, y0, x1, y1 float64, fn func(col, row int, px, py float64)) {
	c0, r0 := c.ToCell(x0, y0)
	c1, r1 := c.ToCell(x1, y1)
	for row := max(r0, 0); row <= min(r1, c.rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, c.cols-1); col++ {
			px, py := c.ToPixel(col, row)
			if px >= x0 && px <= x1 && py >= y0 && py <= y1 {
				fn(col, row, px, py)
			}
		}
	}
}

func (c *TermCanvas) Size() (int, int) {
	return c.width, c.height
}

func (c *TermCanvas) FillRect(x, y, w, h float64, clr color.RGBA) {
	painted := false
	c.cellsIn(x, y, x+w, y+h, func(col, row int, _, _ float64) {
		c.paint(col, row, clr)
		painted = true
	})
	if !painted {
		col, row := c.ToCell(x+w/2, y+h/2)
		c.paint(col, row, clr)
	}
}

func (c *TermCanvas) StrokeRect(x, y, w, h, width float64, clr color.RGBA) {
	c0, r0 := c.ToCell(x, y)
	c1, r1 := c.ToCell(x+w-1, y+h-1)
	for col := c0; col <= c1; col++ {
		c.glyph(col, r0, '─', clr)
		c.glyph(col, r1, '─', clr)
	}
	for row := r0; row <= r1; row++ {
		c.glyph(c0, row, '│', clr)
		c.glyph(c1, row, '│', clr)
	}
	c.glyph(c0, r0, '┌', clr)
	c.glyph(c1, r0, '┐', clr)
	c.glyph(c0, r1, '└', clr)
	c.glyph(c1, r1, '┘', clr)
}

func (c *TermCanvas) FillCircle(x, y, r float64, clr color.RGBA) {
	cw, ch := c.cellSize()
	// Мелкие объекты не покрывают ни одной ячейки целиком, рисуем символом
	if r*2 < max(cw, ch) {
		col, row := c.ToCell(x, y)
		c.glyph(col, row, '●', clr)
		return
	}
	c.cellsIn(x-r, y-r, x+r, y+r, func(col, row int, px, py float64) {
		if math.Hypot(px-x, py-y) <= r {
			c.paint(col, row, clr)
		}
	})
}

func (c *TermCanvas) StrokeCircle(x, y, r, width float64, clr color.RGBA) {
	cw, ch := c.cellSize()
	band := max(cw, ch)/2 + width/2
	c.cellsIn(x-r-band, y-r-band, x+r+band, y+r+band, func(col, row int, px, py float64) {
		if math.Abs(math.Hypot(px-x, py-y)-r) <= band {
			c.glyph(col, row, '·', clr)
		}
	})
}

func (c *TermCanvas) Line(x1, y1, x2, y2, width float64, clr color.RGBA) {
	c0, r0 := c.ToCell(x1, y1)
	c1, r1 := c.ToCell(x2, y2)
	steps := max(utils.Abs(c1-c0), utils.Abs(r1-r0))

	r := lineRune(x2-x1, y2-y1)
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		col := c0 + int(math.Round(float64(c1-c0)*t))
		row := r0 + int(math.Round(float64(r1-r0)*t))
		c.glyph(col, row, r, clr)
	}
}

func (c *TermCanvas) FillSector(x, y, r, from, to float64, clr color.RGBA) {
	span := wrapAngle(to - from)
	c.cellsIn(x-r, y-r, x+r, y+r, func(col, row int, px, py float64) {
		if math.Hypot(px-x, py-y) > r {
			return
		}
		if wrapAngle(math.Atan2(py-y, px-x)-from) <= span {
			c.paint(col, row, clr)
		}
	})
}

func (c *TermCanvas) Text(x, y float64, s string, clr color.RGBA) {
	col, row := c.ToCell(x, y)
	for _, r := range s {
		c.glyph(col, row, r, clr)
		col++
	}
}

func (c *TermCanvas) MeasureText(s string) (float64, float64) {
	cw, ch := c.cellSize()
	return float64(len([]rune(s))) * cw, ch
}

// lineRune подбирает символ по наклону отрезка; ось Y направлена вниз
func lineRune(dx, dy float64) rune {
	angle := math.Abs(math.Atan2(dy, dx))
	switch {
	case angle < math.Pi/8 || angle > 7*math.Pi/8:
		return '─'
	case angle > 3*math.Pi/8 && angle < 5*math.Pi/8:
		return '│'
	case dx*dy > 0:
		return '╲'
	default:
		return '╱'
	}
}

// wrapAngle приводит угол к диапазону [0, 2π)
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
