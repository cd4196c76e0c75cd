// internal/input/rlinput/poll.go
package rlinput

import (
	"unicode"

	"go-drone-defense/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Клавиши, которые не приходят через GetCharPressed
var specialKeys = []struct {
	code int32
	key  input.Key
}{
	{rl.KeyEnter, input.KeyEnter},
	{rl.KeyKpEnter, input.KeyEnter},
	{rl.KeySpace, input.KeySpace},
	{rl.KeyEscape, input.KeyEscape},
}

// Poll собирает ввод текущего кадра raylib. События опрашиваются в
// rl.EndDrawing, поэтому Poll вызывается до BeginDrawing следующего кадра.
func Poll() input.Frame {
	var f input.Frame
	for _, sk := range specialKeys {
		if rl.IsKeyPressed(sk.code) {
			f.Keys = append(f.Keys, sk.key)
		}
	}
	for r := rl.GetCharPressed(); r != 0; r = rl.GetCharPressed() {
		if k, ok := KeyFromRune(rune(r)); ok {
			f.Keys = append(f.Keys, k)
		}
	}

	pos := rl.GetMousePosition()
	f.Pointer = input.Point{X: float64(pos.X), Y: float64(pos.Y)}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		f.Clicks = append(f.Clicks, f.Pointer)
	}
	return f
}

// KeyFromRune переводит введённый символ в Key. Пробел приходит отдельно
// через specialKeys.
func KeyFromRune(r rune) (input.Key, bool) {
	if r == ' ' || !unicode.IsPrint(r) {
		return "", false
	}
	return input.Key(string(unicode.ToLower(r))), true
}
