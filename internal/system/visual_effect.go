// internal/system/visual_effect.go
package system

import (
	"go-drone-defense/internal/component"
	"go-drone-defense/internal/config"
	"go-drone-defense/internal/entity"
	"go-drone-defense/internal/utils"
)

// VisualEffectSystem управляет визуальными эффектами: вспышки урона,
// лучи лазера, глушение и взрывы ракет.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	// Вспышки урона: таймер идёт вниз
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	// Лучи лазера
	for id, beam := range s.ecs.Beams {
		beam.Timer += deltaTime
		if beam.Timer >= beam.Duration {
			s.ecs.RemoveEntity(id)
		}
	}

	// Эффект глушения исчезает по таймеру или вместе с целью
	for id, effect := range s.ecs.JammingEffects {
		effect.Timer += deltaTime
		if effect.Timer >= effect.Duration || !s.ecs.IsEnemyAlive(effect.TargetID) {
			s.ecs.RemoveEntity(id)
		}
	}

	// Сектор HPM поворачивается к цели плавно; урон считается по Facing
	turn := min(1, deltaTime*config.ConeTurnRate)
	for _, tower := range s.ecs.Towers {
		if cone, ok := tower.Behavior.(*component.Cone); ok && cone.TargetID != 0 {
			cone.DisplayFacing = utils.LerpAngle(cone.DisplayFacing, cone.Facing, turn)
		}
	}

	// Частицы взрыва разлетаются и гаснут
	for id, explosion := range s.ecs.Explosions {
		explosion.Timer += deltaTime
		if explosion.Timer >= explosion.Duration {
			s.ecs.RemoveEntity(id)
			continue
		}
		for i := range explosion.Particles {
			p := &explosion.Particles[i]
			p.X += p.VX * deltaTime
			p.Y += p.VY * deltaTime
		}
	}
}
