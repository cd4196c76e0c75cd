// internal/entity/ecs.go
package entity

import (
	"maps"
	"slices"

	"go-drone-defense/internal/component"
	"go-drone-defense/internal/types"
)

type ECS struct {
	GameTime       float64
	NextID         types.EntityID
	Positions      map[types.EntityID]*component.Position
	Velocities     map[types.EntityID]*component.Velocity
	Healths        map[types.EntityID]*component.Health
	Renderables    map[types.EntityID]*component.Renderable
	Enemies        map[types.EntityID]*component.Enemy
	Towers         map[types.EntityID]*component.Tower
	Projectiles    map[types.EntityID]*component.Projectile
	MissileTrails  map[types.EntityID]*component.MissileTrail
	DamageFlashes  map[types.EntityID]*component.DamageFlash
	Beams          map[types.EntityID]*component.Beam
	JammingEffects map[types.EntityID]*component.JammingEffect
	Explosions     map[types.EntityID]*component.Explosion
	Base           *component.Base
	BaseTowerID    types.EntityID // Ракетная батарея на базе
	Wave           *component.Wave
	GameState      *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:         1,
		Positions:      make(map[types.EntityID]*component.Position),
		Velocities:     make(map[types.EntityID]*component.Velocity),
		Healths:        make(map[types.EntityID]*component.Health),
		Renderables:    make(map[types.EntityID]*component.Renderable),
		Enemies:        make(map[types.EntityID]*component.Enemy),
		Towers:         make(map[types.EntityID]*component.Tower),
		Projectiles:    make(map[types.EntityID]*component.Projectile),
		MissileTrails:  make(map[types.EntityID]*component.MissileTrail),
		DamageFlashes:  make(map[types.EntityID]*component.DamageFlash),
		Beams:          make(map[types.EntityID]*component.Beam),
		JammingEffects: make(map[types.EntityID]*component.JammingEffect),
		Explosions:     make(map[types.EntityID]*component.Explosion),
		Wave:           &component.Wave{Number: 1},
		GameState:      &component.GameState{Phase: component.PreWave},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// IsEnemyAlive: проверка существования врага вместо висячей ссылки
func (ecs *ECS) IsEnemyAlive(id types.EntityID) bool {
	_, ok := ecs.Enemies[id]
	return ok
}

// RemoveEntity удаляет все компоненты сущности
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Towers, id)
	delete(ecs.Projectiles, id)
	delete(ecs.MissileTrails, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.Beams, id)
	delete(ecs.JammingEffects, id)
	delete(ecs.Explosions, id)
}

// EnemyIDs возвращает врагов в порядке появления
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return sortedIDs(ecs.Enemies)
}

// TowerIDs возвращает башни в порядке постройки
func (ecs *ECS) TowerIDs() []types.EntityID {
	return sortedIDs(ecs.Towers)
}

// ProjectileIDs возвращает снаряды в порядке выстрела
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return sortedIDs(ecs.Projectiles)
}

// Обход map в Go случаен, а правила выбора цели ("первый найденный")
// требуют стабильного порядка.
func sortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	return slices.Sorted(maps.Keys(m))
}
