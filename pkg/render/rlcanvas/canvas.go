// pkg/render/rlcanvas/canvas.go
package rlcanvas

import (
	"image/color"
	"math"

	"go-drone-defense/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize    = 13
	fontSpacing = 1
)

// Canvas реализует render.Canvas поверх raylib. Рисовать можно только
// между rl.BeginDrawing и rl.EndDrawing.
type Canvas struct {
	width, height int
	font          rl.Font
}

var _ render.Canvas = (*Canvas)(nil)

// New создаёт холст; окно raylib уже должно быть открыто.
func New(width, height int) *Canvas {
	return &Canvas{width: width, height: height, font: rl.GetFontDefault()}
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func vec(x, y float64) rl.Vector2 {
	return rl.NewVector2(float32(x), float32(y))
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.RGBA) {
	rl.DrawRectangleRec(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), toRL(clr))
}

func (c *Canvas) StrokeRect(x, y, w, h, width float64, clr color.RGBA) {
	rl.DrawRectangleLinesEx(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), float32(width), toRL(clr))
}

func (c *Canvas) FillCircle(x, y, r float64, clr color.RGBA) {
	rl.DrawCircleV(vec(x, y), float32(r), toRL(clr))
}

func (c *Canvas) StrokeCircle(x, y, r, width float64, clr color.RGBA) {
	inner := max(r-width/2, 0)
	rl.DrawRing(vec(x, y), float32(inner), float32(r+width/2), 0, 360, segments(r), toRL(clr))
}

func (c *Canvas) Line(x1, y1, x2, y2, width float64, clr color.RGBA) {
	rl.DrawLineEx(vec(x1, y1), vec(x2, y2), float32(width), toRL(clr))
}

// FillSector: raylib считает углы в градусах, ось Y направлена вниз,
// как и у остальных бэкендов.
func (c *Canvas) FillSector(x, y, r, from, to float64, clr color.RGBA) {
	rl.DrawCircleSector(vec(x, y), float32(r),
		float32(from*rl.Rad2deg), float32(to*rl.Rad2deg), segments(r), toRL(clr))
}

func (c *Canvas) Text(x, y float64, s string, clr color.RGBA) {
	rl.DrawTextEx(c.font, s, vec(x, y), fontSize, fontSpacing, toRL(clr))
}

func (c *Canvas) MeasureText(s string) (float64, float64) {
	size := rl.MeasureTextEx(c.font, s, fontSize, fontSpacing)
	return float64(size.X), float64(size.Y)
}

// segments подбирает число сегментов дуги по радиусу
func segments(r float64) int32 {
	return int32(max(12, math.Ceil(r/2)))
}
