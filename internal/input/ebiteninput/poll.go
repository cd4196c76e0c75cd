// internal/input/ebiteninput/poll.go
package ebiteninput

import (
	"go-drone-defense/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = map[ebiten.Key]input.Key{
	ebiten.KeyEnter:       input.KeyEnter,
	ebiten.KeyNumpadEnter: input.KeyEnter,
	ebiten.KeySpace:       input.KeySpace,
	ebiten.KeyEscape:      input.KeyEscape,
	ebiten.KeyW:           "w",
	ebiten.KeyB:           "b",
	ebiten.KeyN:           "n",
	ebiten.KeyU:           "u",
	ebiten.KeyR:           "r",
	ebiten.KeyP:           "p",
	ebiten.KeyF:           "f",
	ebiten.KeyQ:           "q",
	ebiten.Key1:           "1",
	ebiten.Key2:           "2",
	ebiten.Key3:           "3",
	ebiten.Key4:           "4",
	ebiten.Key5:           "5",
	ebiten.Key6:           "6",
	ebiten.Key7:           "7",
	ebiten.Key8:           "8",
	ebiten.Key9:           "9",
}

// Poll собирает нажатия текущего кадра ebiten
func Poll() input.Frame {
	var f input.Frame
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if key, ok := ebitenKeys[k]; ok {
			f.Keys = append(f.Keys, key)
		}
	}

	x, y := ebiten.CursorPosition()
	f.Pointer = input.Point{X: float64(x), Y: float64(y)}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		f.Clicks = append(f.Clicks, f.Pointer)
	}
	return f
}
