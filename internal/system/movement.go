// internal/system/movement.go
package system

import (
	"go-drone-defense/internal/entity"
	"go-drone-defense/internal/utils"
)

// MovementSystem ведёт врагов по прямой к центру базы
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	base := s.ecs.Base
	if base == nil {
		return
	}
	for id, enemy := range s.ecs.Enemies {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}

		// Дошедший до базы враг останавливается; столкновение проверяет BaseSystem.
		if utils.Distance(pos.X, pos.Y, base.X, base.Y) < enemy.Size+base.Size/2 {
			continue
		}
		pos.X, pos.Y, _ = utils.MoveTowards(pos.X, pos.Y, base.X, base.Y, vel.Speed*deltaTime)
	}
}
