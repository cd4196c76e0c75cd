// pkg/render/ebitencanvas/canvas.go
package ebitencanvas

import (
	"image/color"

	"go-drone-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Canvas реализует render.Canvas: рисует на *ebiten.Image через пакет vector
type Canvas struct {
	target   *ebiten.Image
	fillImg  *ebiten.Image
	fontFace font.Face
	fillVs   []ebiten.Vertex
	fillIs   []uint16
}

var _ render.Canvas = (*Canvas)(nil)

func New() *Canvas {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &Canvas{
		fillImg:  fillImg,
		fontFace: basicfont.Face7x13,
		fillVs:   make([]ebiten.Vertex, 0, 64),
		fillIs:   make([]uint16, 0, 96),
	}
}

// Begin задаёт изображение, на котором рисуется текущий кадр
func (c *Canvas) Begin(target *ebiten.Image) {
	c.target = target
}

func (c *Canvas) Size() (int, int) {
	b := c.target.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.RGBA) {
	vector.DrawFilledRect(c.target, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *Canvas) StrokeRect(x, y, w, h, width float64, clr color.RGBA) {
	vector.StrokeRect(c.target, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

func (c *Canvas) FillCircle(x, y, r float64, clr color.RGBA) {
	vector.DrawFilledCircle(c.target, float32(x), float32(y), float32(r), clr, true)
}

func (c *Canvas) StrokeCircle(x, y, r, width float64, clr color.RGBA) {
	vector.StrokeCircle(c.target, float32(x), float32(y), float32(r), float32(width), clr, true)
}

func (c *Canvas) Line(x1, y1, x2, y2, width float64, clr color.RGBA) {
	vector.StrokeLine(c.target, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), clr, true)
}

func (c *Canvas) FillSector(x, y, r, from, to float64, clr color.RGBA) {
	path := vector.Path{}
	path.MoveTo(float32(x), float32(y))
	path.Arc(float32(x), float32(y), float32(r), float32(from), float32(to), vector.Clockwise)
	path.Close()

	c.fillVs, c.fillIs = path.AppendVerticesAndIndicesForFilling(c.fillVs[:0], c.fillIs[:0])
	for i := range c.fillVs {
		c.fillVs[i].ColorR = float32(clr.R) / 255
		c.fillVs[i].ColorG = float32(clr.G) / 255
		c.fillVs[i].ColorB = float32(clr.B) / 255
		c.fillVs[i].ColorA = float32(clr.A) / 255
	}
	c.target.DrawTriangles(c.fillVs, c.fillIs, c.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (c *Canvas) Text(x, y float64, s string, clr color.RGBA) {
	// text.Draw принимает базовую линию, а не верх строки
	ascent := c.fontFace.Metrics().Ascent.Ceil()
	text.Draw(c.target, s, c.fontFace, int(x), int(y)+ascent, clr)
}

func (c *Canvas) MeasureText(s string) (float64, float64) {
	bounds := text.BoundString(c.fontFace, s)
	return float64(bounds.Dx()), float64(c.fontFace.Metrics().Height.Ceil())
}
