// internal/ui/speed_button.go
package ui

import "strconv"

// SpeedButton переключает множитель скорости игры по кругу
type SpeedButton struct {
	*Button
	Multipliers []float64
	Current     int
}

func NewSpeedButton(x, y, w, h float64, multipliers []float64) *SpeedButton {
	b := &SpeedButton{
		Button:      NewButton("speed", x, y, w, h, ""),
		Multipliers: multipliers,
	}
	b.refresh()
	return b
}

func (b *SpeedButton) ToggleState() {
	b.Current = (b.Current + 1) % len(b.Multipliers)
	b.refresh()
}

// Multiplier: текущий множитель deltaTime
func (b *SpeedButton) Multiplier() float64 {
	return b.Multipliers[b.Current]
}

// Reset возвращает обычную скорость
func (b *SpeedButton) Reset() {
	b.Current = 0
	b.refresh()
}

func (b *SpeedButton) refresh() {
	b.Label = "x" + strconv.FormatFloat(b.Multiplier(), 'f', -1, 64)
	b.State = ButtonNormal
	if b.Current > 0 {
		b.State = ButtonActive
	}
}
