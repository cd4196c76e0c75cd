// internal/system/base.go
package system

import (
	"log"

	"go-drone-defense/internal/config"
	"go-drone-defense/internal/entity"
	"go-drone-defense/internal/event"
	"go-drone-defense/internal/types"
	"go-drone-defense/internal/utils"
)

// BaseSystem проверяет столкновения врагов с базой
type BaseSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewBaseSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *BaseSystem {
	return &BaseSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// CheckCollision: враг находится ближе size + baseSize/2 к центру базы
func (s *BaseSystem) CheckCollision(id types.EntityID) bool {
	enemy, ok := s.ecs.Enemies[id]
	pos, hasPos := s.ecs.Positions[id]
	base := s.ecs.Base
	if !ok || !hasPos || base == nil {
		return false
	}
	return utils.Distance(pos.X, pos.Y, base.X, base.Y) < enemy.Size+base.Size/2
}

// Update снимает с базы урон за каждого долетевшего врага и удаляет его.
// Возвращает true, если база уничтожена в этом тике.
func (s *BaseSystem) Update(deltaTime float64) bool {
	base := s.ecs.Base
	if base == nil || base.Health <= 0 {
		return false
	}
	for _, id := range s.ecs.EnemyIDs() {
		if !s.CheckCollision(id) {
			continue
		}
		enemy := s.ecs.Enemies[id]
		info := event.EnemyInfo{ID: id, Type: enemy.Type, Value: enemy.Value}
		destroyed := base.TakeDamage(config.DamagePerEnemy)
		RemoveEnemy(s.ecs, id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedBase, Data: info})

		if destroyed {
			log.Printf("База уничтожена на волне %d", s.ecs.Wave.Number)
			s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver})
			return true
		}
	}
	return false
}
