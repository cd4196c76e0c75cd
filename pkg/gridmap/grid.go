// pkg/gridmap/grid.go
package gridmap

import (
	"math"

	"go-drone-defense/pkg/utils"
)

// Cell: клетка квадратной сетки (столбец, строка)
type Cell struct {
	Col, Row int
}

// ChebyshevDistance: расстояние в клетках с учётом диагоналей
func (c Cell) ChebyshevDistance(o Cell) int {
	return max(utils.Abs(c.Col-o.Col), utils.Abs(c.Row-o.Row))
}

type Tile struct {
	Occupied  bool // на клетке стоит башня
	Buildable bool // клетка доступна для постройки
}

// Grid: игровое поле, разбитое на клетки одинакового размера.
type Grid struct {
	Cols, Rows int
	CellSize   float64
	Tiles      map[Cell]Tile
}

func NewGrid(cols, rows int, cellSize float64) *Grid {
	g := &Grid{
		Cols:     cols,
		Rows:     rows,
		CellSize: cellSize,
		Tiles:    make(map[Cell]Tile, cols*rows),
	}
	g.Reset()
	return g
}

// Reset возвращает все клетки в исходное состояние
func (g *Grid) Reset() {
	for col := 0; col < g.Cols; col++ {
		for row := 0; row < g.Rows; row++ {
			g.Tiles[Cell{col, row}] = Tile{Buildable: true}
		}
	}
}

// CellAt конвертирует пиксельные координаты в клетку.
func (g *Grid) CellAt(x, y float64) (Cell, bool) {
	c := Cell{
		Col: int(math.Floor(x / g.CellSize)),
		Row: int(math.Floor(y / g.CellSize)),
	}
	return c, g.InBounds(c)
}

// Center возвращает пиксельные координаты центра клетки
func (g *Grid) Center(c Cell) (x, y float64) {
	x = (float64(c.Col) + 0.5) * g.CellSize
	y = (float64(c.Row) + 0.5) * g.CellSize
	return
}

func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

// Reserve запрещает постройку в квадрате радиуса radius вокруг center.
func (g *Grid) Reserve(center Cell, radius int) {
	for dc := -radius; dc <= radius; dc++ {
		for dr := -radius; dr <= radius; dr++ {
			c := Cell{center.Col + dc, center.Row + dr}
			if tile, ok := g.Tiles[c]; ok {
				tile.Buildable = false
				g.Tiles[c] = tile
			}
		}
	}
}

// CanBuild: клетка внутри поля, свободна и не зарезервирована
func (g *Grid) CanBuild(c Cell) bool {
	tile, ok := g.Tiles[c]
	return ok && tile.Buildable && !tile.Occupied
}

// Occupy отмечает клетку как занятую башней
func (g *Grid) Occupy(c Cell) {
	if tile, ok := g.Tiles[c]; ok {
		tile.Occupied = true
		g.Tiles[c] = tile
	}
}

// IsReserved сообщает, запрещена ли постройка на клетке (зона базы)
func (g *Grid) IsReserved(c Cell) bool {
	tile, ok := g.Tiles[c]
	return ok && !tile.Buildable
}
