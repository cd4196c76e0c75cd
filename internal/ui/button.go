// internal/ui/button.go
package ui

import (
	"go-drone-defense/internal/config"
	"go-drone-defense/pkg/render"
)

type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonActive             // выбрана или включена
	ButtonLocked             // не хватает денег или действие недоступно
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	ID         string
	X, Y, W, H float64
	Label      string
	State      ButtonState
}

// NewButton создает новую кнопку.
func NewButton(id string, x, y, w, h float64, label string) *Button {
	return &Button{ID: id, X: x, Y: y, W: w, H: h, Label: label}
}

// Contains: точка внутри кнопки
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(c render.Canvas) {
	bg := config.ButtonColor
	switch b.State {
	case ButtonActive:
		bg = config.ButtonActiveColor
	case ButtonLocked:
		bg = config.ButtonLockedColor
	}
	c.FillRect(b.X, b.Y, b.W, b.H, bg)
	c.StrokeRect(b.X, b.Y, b.W, b.H, 1, render.DarkenColor(bg))

	tw, th := c.MeasureText(b.Label)
	c.Text(b.X+(b.W-tw)/2, b.Y+(b.H-th)/2, b.Label, config.TextLightColor)
}
