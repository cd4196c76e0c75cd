// internal/input/input.go
package input

// Key: нажатая клавиша в виде, не зависящем от бэкенда.
// Буквы и цифры записываются самими символами в нижнем регистре.
type Key string

const (
	KeyEnter  Key = "enter"
	KeySpace  Key = "space"
	KeyEscape Key = "esc"
)

// Action: команда игрока
type Action int

const (
	ActionNone Action = iota
	ActionStartWave
	ActionToggleTargeting
	ActionBuyMissile
	ActionBuyMissileBundle
	ActionUpgrade
	ActionCancel
	ActionRestart
	ActionPause
	ActionSpeed
	ActionQuit
)

// DefaultBindings связывает клавиши с командами. Цифры выбирают башню
// и разбираются отдельно по хоткеям из определений.
var DefaultBindings = map[Key]Action{
	KeyEnter:  ActionStartWave,
	"w":       ActionStartWave,
	KeySpace:  ActionToggleTargeting,
	"b":       ActionBuyMissile,
	"n":       ActionBuyMissileBundle,
	"u":       ActionUpgrade,
	KeyEscape: ActionCancel,
	"r":       ActionRestart,
	"p":       ActionPause,
	"f":       ActionSpeed,
	"q":       ActionQuit,
}

// Point: координаты в пикселях логического экрана
type Point struct {
	X, Y float64
}

// Frame: ввод, накопленный за один кадр
type Frame struct {
	Keys    []Key
	Clicks  []Point
	Pointer Point
}

// Pressed: клавиша k нажата в этом кадре
func (f Frame) Pressed(k Key) bool {
	for _, key := range f.Keys {
		if key == k {
			return true
		}
	}
	return false
}

// Actions переводит нажатия в команды в порядке нажатия
func (f Frame) Actions(bindings map[Key]Action) []Action {
	var out []Action
	for _, key := range f.Keys {
		if a, ok := bindings[key]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Has: в кадре есть команда a
func (f Frame) Has(bindings map[Key]Action, a Action) bool {
	for _, got := range f.Actions(bindings) {
		if got == a {
			return true
		}
	}
	return false
}
