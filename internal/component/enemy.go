package component

import "go-drone-defense/internal/defs"

// Enemy представляет вражеский дрон.
type Enemy struct {
	Type    defs.EnemyType
	Size    float64 // Размер дрона в пикселях; радиус отрисовки Size/2
	Value   int     // Награда за уничтожение
	HitTime float64 // GameTime последнего попадания, -1 если попаданий не было
}
