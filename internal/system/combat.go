// internal/system/combat.go
package system

import (
	"math"
	"slices"

	"go-drone-defense/internal/component"
	"go-drone-defense/internal/config"
	"go-drone-defense/internal/defs"
	"go-drone-defense/internal/entity"
	"go-drone-defense/internal/event"
	"go-drone-defense/internal/types"
	"go-drone-defense/internal/utils"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Update проходит по башням в порядке постройки. Позиции врагов к этому
// моменту уже обновлены движением и столкновениями с базой.
func (s *CombatSystem) Update(deltaTime float64) {
	now := s.ecs.GameTime
	for _, id := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}

		switch b := tower.Behavior.(type) {
		case *component.ProjectileWeapon:
			s.updateProjectileWeapon(id, tower, pos, b, now)
		case *component.BeamWeapon:
			s.updateBeamWeapon(tower, pos, b, now)
		case *component.Jammer:
			s.updateJammer(tower, pos, b, now)
		case *component.Cone:
			s.updateCone(tower, pos, b, now)
		case *component.MissileBattery:
			// Стреляет только по команде игрока, см. LaunchMissile
		}
	}
}

func (s *CombatSystem) updateProjectileWeapon(id types.EntityID, tower *component.Tower, pos *component.Position, w *component.ProjectileWeapon, now float64) {
	if !tower.Ready(now) {
		return
	}
	target := s.SelectTarget(tower, pos, w.Targeting)
	if target == 0 {
		return
	}
	s.createProjectile(id, &component.Projectile{
		TargetID:     target,
		Speed:        w.Speed,
		Size:         w.Size,
		Damage:       tower.Damage,
		SplashRadius: w.SplashRadius,
		Color:        config.ProjectileColor,
	})
	tower.LastShot = now
}

// updateBeamWeapon: урон наносится сразу, луч живёт только как эффект.
func (s *CombatSystem) updateBeamWeapon(tower *component.Tower, pos *component.Position, w *component.BeamWeapon, now float64) {
	if !tower.Ready(now) {
		return
	}
	target := s.SelectTarget(tower, pos, w.Targeting)
	if target == 0 {
		return
	}
	targetPos := s.ecs.Positions[target]
	duration := w.Duration
	if duration <= 0 {
		duration = config.BeamDuration
	}

	beamID := s.ecs.NewEntity()
	s.ecs.Beams[beamID] = &component.Beam{
		FromX:    pos.X,
		FromY:    pos.Y,
		ToX:      targetPos.X,
		ToY:      targetPos.Y,
		Color:    config.BeamColor,
		Duration: duration,
	}
	tower.LastShot = now
	ApplyDamage(s.ecs, s.eventDispatcher, target, tower.Damage)
}

// updateJammer поддерживает постоянный набор целей и на каждом срабатывании
// бьёт по всем целям сразу.
func (s *CombatSystem) updateJammer(tower *component.Tower, pos *component.Position, j *component.Jammer, now float64) {
	kept := make([]types.EntityID, 0, len(j.Targets))
	for _, id := range j.Targets {
		if s.canJam(tower, pos, j, id) {
			kept = append(kept, id)
		}
	}
	j.Targets = kept

	for _, id := range s.ecs.EnemyIDs() {
		if !j.HasTarget(id) && s.canJam(tower, pos, j, id) {
			j.Targets = append(j.Targets, id)
		}
	}

	if len(j.Targets) == 0 || !tower.Ready(now) {
		return
	}

	// Гибель цели меняет j.Targets, поэтому идём по копии.
	for _, id := range slices.Clone(j.Targets) {
		if !s.ecs.IsEnemyAlive(id) {
			continue
		}
		effectID := s.ecs.NewEntity()
		s.ecs.JammingEffects[effectID] = &component.JammingEffect{
			TargetID: id,
			Duration: config.JammingEffectDuration,
		}
		ApplyDamage(s.ecs, s.eventDispatcher, id, tower.Damage)
	}
	tower.LastShot = now
}

func (s *CombatSystem) canJam(tower *component.Tower, pos *component.Position, j *component.Jammer, id types.EntityID) bool {
	enemy, ok := s.ecs.Enemies[id]
	if !ok || !j.Eligible[enemy.Type] {
		return false
	}
	ePos, ok := s.ecs.Positions[id]
	return ok && tower.InRange(utils.Distance(pos.X, pos.Y, ePos.X, ePos.Y))
}

// updateCone: HPM башня держит ближайшую цель, пока та жива и в радиусе,
// и бьёт всех врагов в секторе, направленном на неё.
func (s *CombatSystem) updateCone(tower *component.Tower, pos *component.Position, c *component.Cone, now float64) {
	if c.TargetID != 0 {
		tPos, alive := s.ecs.Positions[c.TargetID]
		if !s.ecs.IsEnemyAlive(c.TargetID) || !alive || !tower.InRange(utils.Distance(pos.X, pos.Y, tPos.X, tPos.Y)) {
			c.TargetID = 0
		}
	}
	if c.TargetID == 0 {
		c.TargetID = s.SelectTarget(tower, pos, defs.TargetClosest)
	}
	if c.TargetID == 0 {
		c.Affected = nil
		return
	}

	tPos := s.ecs.Positions[c.TargetID]
	c.Facing = utils.AngleTo(pos.X, pos.Y, tPos.X, tPos.Y)

	affected := make([]types.EntityID, 0, len(c.Affected))
	for _, id := range s.ecs.EnemyIDs() {
		ePos := s.ecs.Positions[id]
		if ePos != nil && InCone(pos.X, pos.Y, c.Facing, c.ConeDegrees, tower, ePos.X, ePos.Y) {
			affected = append(affected, id)
		}
	}
	c.Affected = affected

	if len(c.Affected) == 0 || !tower.Ready(now) {
		return
	}
	for _, id := range slices.Clone(c.Affected) {
		ApplyDamage(s.ecs, s.eventDispatcher, id, tower.Damage)
	}
	tower.LastShot = now
}

// InCone: точка (x, y) в радиусе башни и не дальше coneDegrees/2 от направления facing.
func InCone(towerX, towerY, facing, coneDegrees float64, tower *component.Tower, x, y float64) bool {
	if !tower.InRange(utils.Distance(towerX, towerY, x, y)) {
		return false
	}
	halfCone := coneDegrees * math.Pi / 180 / 2
	return utils.AngleDiff(facing, utils.AngleTo(towerX, towerY, x, y)) <= halfCone
}

// SelectTarget выбирает цель среди живых врагов в радиусе башни.
// При равенстве побеждает враг, появившийся раньше.
func (s *CombatSystem) SelectTarget(tower *component.Tower, pos *component.Position, mode defs.TargetingMode) types.EntityID {
	var best types.EntityID
	bestDistance := math.MaxFloat64
	bestHealth := -1.0

	for _, id := range s.ecs.EnemyIDs() {
		ePos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		d := utils.Distance(pos.X, pos.Y, ePos.X, ePos.Y)
		if !tower.InRange(d) {
			continue
		}
		switch mode {
		case defs.TargetHighestHealth:
			if h := s.ecs.Healths[id]; h != nil && h.Value > bestHealth {
				bestHealth = h.Value
				best = id
			}
		default:
			if d < bestDistance {
				bestDistance = d
				best = id
			}
		}
	}
	return best
}

// LaunchMissile запускает ракету с базы по указанной игроком цели.
// Расходует одну ракету из запаса; кулдаун батареи не проверяется.
func (s *CombatSystem) LaunchMissile(targetID types.EntityID) bool {
	gs := s.ecs.GameState
	if gs.Missiles <= 0 || !s.ecs.IsEnemyAlive(targetID) {
		return false
	}
	tower, ok := s.ecs.Towers[s.ecs.BaseTowerID]
	if !ok {
		return false
	}
	battery, ok := tower.Behavior.(*component.MissileBattery)
	if !ok {
		return false
	}

	projID := s.createProjectile(s.ecs.BaseTowerID, &component.Projectile{
		TargetID:     targetID,
		Speed:        battery.Speed,
		Size:         battery.Size,
		Damage:       tower.Damage * battery.DamageMultiplier,
		SplashRadius: battery.SplashRadius,
		Color:        config.MissileColor,
		IsMissile:    true,
	})
	s.ecs.MissileTrails[projID] = &component.MissileTrail{MaxLength: config.MissileTrailLength}

	gs.Missiles--
	gs.Stats.MissilesFired++
	tower.LastShot = s.ecs.GameTime
	s.eventDispatcher.Dispatch(event.Event{Type: event.MissileLaunched, Data: targetID})
	return true
}

func (s *CombatSystem) createProjectile(towerID types.EntityID, proj *component.Projectile) types.EntityID {
	projID := s.ecs.NewEntity()
	towerPos := s.ecs.Positions[towerID]

	s.ecs.Positions[projID] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	s.ecs.Projectiles[projID] = proj
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:  proj.Color,
		Radius: float32(max(proj.Size/2, 1)),
	}
	return projID
}
