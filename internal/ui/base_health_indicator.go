// internal/ui/base_health_indicator.go
package ui

import (
	"strconv"

	"go-drone-defense/internal/config"
	"go-drone-defense/pkg/render"
)

const (
	HealthCells       = 10
	HealthCellSize    = 10.0
	HealthCellSpacing = 3.0
)

// BaseHealthIndicator отображает здоровье базы рядом ячеек.
type BaseHealthIndicator struct {
	X, Y float64
}

func NewBaseHealthIndicator(x, y float64) *BaseHealthIndicator {
	return &BaseHealthIndicator{X: x, Y: y}
}

// FilledCells: сколько ячеек закрашено; неполная ячейка считается целой
func FilledCells(health, maxHealth int) int {
	if health <= 0 || maxHealth <= 0 {
		return 0
	}
	return min(HealthCells, (health*HealthCells+maxHealth-1)/maxHealth)
}

// Draw рисует ряд ячеек и подпись над ним.
func (i *BaseHealthIndicator) Draw(c render.Canvas, health, maxHealth int) {
	filled := FilledCells(health, maxHealth)
	for j := 0; j < HealthCells; j++ {
		x := i.X + float64(j)*(HealthCellSize+HealthCellSpacing)
		clr := config.HealthBarBackColor
		if j < filled {
			clr = config.HealthBarColor
			// На последних ячейках база уже горит
			if filled <= HealthCells/3 {
				clr = config.BaseDamagedColor
			}
		}
		c.FillRect(x, i.Y+config.HUDLineHeight, HealthCellSize, HealthCellSize, clr)
	}
	c.Text(i.X, i.Y, "BASE "+strconv.Itoa(health)+"/"+strconv.Itoa(maxHealth), config.TextLightColor)
}

// Width: ширина индикатора в пикселях
func (i *BaseHealthIndicator) Width() float64 {
	return HealthCells*(HealthCellSize+HealthCellSpacing) - HealthCellSpacing
}
