// internal/component/visual.go
package component

import (
	"go-drone-defense/internal/types"
	"image/color"
)

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффект ещё активен
	Duration float64 // Общая продолжительность эффекта
}

// Beam представляет собой визуальный эффект лазерного луча.
type Beam struct {
	FromX, FromY float64
	ToX, ToY     float64
	Color        color.RGBA
	Timer        float64 // Сколько времени эффект уже активен
	Duration     float64
}

// JammingEffect: косметический эффект над заглушаемой целью.
type JammingEffect struct {
	TargetID types.EntityID
	Timer    float64
	Duration float64
}

// Particle: частица взрыва
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
}

// Explosion: набор частиц, разлетающихся от точки попадания ракеты.
type Explosion struct {
	Particles []Particle
	Timer     float64
	Duration  float64
}

// Progress: доля прошедшего времени эффекта в диапазоне [0, 1]
func (e *Explosion) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	return min(e.Timer/e.Duration, 1)
}
