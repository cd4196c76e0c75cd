// internal/ui/indicator.go
package ui

import (
	"image/color"

	"go-drone-defense/internal/component"
	"go-drone-defense/internal/config"
	"go-drone-defense/pkg/render"
)

// StateIndicator: цветной кружок, показывающий фазу игры
type StateIndicator struct {
	X, Y   float64
	Radius float64
}

func NewStateIndicator(x, y, radius float64) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

// PhaseColor: цвет индикатора для фазы
func PhaseColor(p component.Phase) color.RGBA {
	switch p {
	case component.InWave:
		return color.RGBA{220, 60, 60, 255}
	case component.GameOver:
		return color.RGBA{90, 90, 90, 255}
	case component.Victory:
		return color.RGBA{240, 200, 40, 255}
	default:
		return color.RGBA{60, 200, 90, 255}
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(c render.Canvas, phase component.Phase) {
	c.FillCircle(i.X, i.Y, i.Radius, PhaseColor(phase))
	c.StrokeCircle(i.X, i.Y, i.Radius, 1, config.TowerStrokeColor)
}
