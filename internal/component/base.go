package component

import "go-drone-defense/pkg/gridmap"

// Base: защищаемая база. Инвариант: 0 ≤ Health ≤ MaxHealth.
type Base struct {
	Position
	Cell      gridmap.Cell
	Size      float64
	Health    int
	MaxHealth int
}

// TakeDamage уменьшает здоровье базы, не опуская его ниже нуля.
// Возвращает true, если база уничтожена.
func (b *Base) TakeDamage(amount int) bool {
	b.Health -= amount
	if b.Health < 0 {
		b.Health = 0
	}
	return b.Health == 0
}
