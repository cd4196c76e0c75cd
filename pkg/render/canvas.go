// pkg/render/canvas.go
package render

import "image/color"

// Canvas: минимальный набор примитивов, которым рисуется игра.
// Координаты в пикселях логического экрана, углы в радианах.
type Canvas interface {
	Size() (width, height int)
	FillRect(x, y, w, h float64, c color.RGBA)
	StrokeRect(x, y, w, h, width float64, c color.RGBA)
	FillCircle(x, y, r float64, c color.RGBA)
	StrokeCircle(x, y, r, width float64, c color.RGBA)
	Line(x1, y1, x2, y2, width float64, c color.RGBA)
	// FillSector закрашивает сектор круга от угла from до угла to по часовой стрелке.
	FillSector(x, y, r, from, to float64, c color.RGBA)
	// Text рисует строку; (x, y) задают левый верхний угол.
	Text(x, y float64, s string, c color.RGBA)
	MeasureText(s string) (w, h float64)
}
