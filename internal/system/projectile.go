// internal/system/projectile.go
package system

import (
	"math"

	"go-drone-defense/internal/component"
	"go-drone-defense/internal/config"
	"go-drone-defense/internal/entity"
	"go-drone-defense/internal/event"
	"go-drone-defense/internal/types"
	"go-drone-defense/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj, ok := s.ecs.Projectiles[id]
		if !ok {
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil || proj.HasHit {
			s.ecs.RemoveEntity(id)
			continue
		}

		// Цель пропала, снаряд просто исчезает
		target, alive := s.ecs.Enemies[proj.TargetID]
		targetPos := s.ecs.Positions[proj.TargetID]
		if !alive || targetPos == nil {
			s.ecs.RemoveEntity(id)
			continue
		}

		if trail, ok := s.ecs.MissileTrails[id]; ok {
			trail.Push(*pos)
		}

		// Самонаведение: каждый тик летим к текущей позиции цели
		pos.X, pos.Y, _ = utils.MoveTowards(pos.X, pos.Y, targetPos.X, targetPos.Y, proj.Speed*deltaTime)

		if utils.Distance(pos.X, pos.Y, targetPos.X, targetPos.Y) < proj.Size/2+target.Size/2 {
			s.hitTarget(id, proj, pos)
		}
	}
}

func (s *ProjectileSystem) hitTarget(projectileID types.EntityID, proj *component.Projectile, pos *component.Position) {
	proj.HasHit = true
	impactX, impactY := pos.X, pos.Y

	if proj.SplashRadius > 0 {
		ApplySplashDamage(s.ecs, s.eventDispatcher, impactX, impactY, proj.SplashRadius, proj.Damage)
	} else {
		ApplyDamage(s.ecs, s.eventDispatcher, proj.TargetID, proj.Damage)
	}

	s.ecs.RemoveEntity(projectileID)

	if proj.IsMissile {
		s.spawnExplosion(impactX, impactY)
		s.eventDispatcher.Dispatch(event.Event{Type: event.MissileExploded, Data: projectileID})
	}
}

// spawnExplosion создаёт разлетающиеся по кругу частицы
func (s *ProjectileSystem) spawnExplosion(x, y float64) {
	particles := make([]component.Particle, config.ExplosionParticles)
	for i := range particles {
		angle := 2 * math.Pi * float64(i) / config.ExplosionParticles
		particles[i] = component.Particle{
			X:    x,
			Y:    y,
			VX:   math.Cos(angle) * config.ExplosionParticleSpeed,
			VY:   math.Sin(angle) * config.ExplosionParticleSpeed,
			Size: 2 + float64(i%3),
		}
	}
	id := s.ecs.NewEntity()
	s.ecs.Explosions[id] = &component.Explosion{
		Particles: particles,
		Duration:  config.ExplosionDuration,
	}
}
