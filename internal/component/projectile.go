// internal/component/projectile.go
package component

import (
	"go-drone-defense/internal/types"
	"image/color"
)

// Projectile представляет летящий снаряд или ракету.
type Projectile struct {
	TargetID     types.EntityID
	Speed        float64
	Size         float64
	Damage       float64
	SplashRadius float64
	Color        color.RGBA
	HasHit       bool // Урон уже нанесён
	IsMissile    bool
}

// MissileTrail: история позиций ракеты для отрисовки шлейфа.
type MissileTrail struct {
	Points    []Position
	MaxLength int
}

// Push добавляет точку и отбрасывает самые старые сверх MaxLength.
func (t *MissileTrail) Push(p Position) {
	t.Points = append(t.Points, p)
	if over := len(t.Points) - t.MaxLength; over > 0 {
		t.Points = t.Points[over:]
	}
}
