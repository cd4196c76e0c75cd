package ui

import (
	"strings"

	"go-drone-defense/internal/config"
	"go-drone-defense/pkg/render"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y float64
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float64) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор по центру относительно X.
func (i *WaveIndicator) Draw(c render.Canvas, waveNumber, maxWaves int) {
	if waveNumber <= 0 {
		return
	}
	text := "WAVE " + toRoman(waveNumber) + " / " + toRoman(maxWaves)

	// Последняя волна выделяется цветом
	textColor := config.TextLightColor
	if waveNumber >= maxWaves {
		textColor = config.TextWarningColor
	}

	tw, _ := c.MeasureText(text)
	c.Text(i.X-tw/2, i.Y, text, textColor)
}
