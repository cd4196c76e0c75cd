// internal/system/damage.go
package system

import (
	"go-drone-defense/internal/component"
	"go-drone-defense/internal/config"
	"go-drone-defense/internal/entity"
	"go-drone-defense/internal/event"
	"go-drone-defense/internal/types"
	"go-drone-defense/internal/utils"
)

// ApplyDamage наносит урон врагу. Общий путь для прямого попадания,
// урона по области и DOT башен. Возвращает true, если враг погиб.
// Урон по уже удалённому врагу игнорируется, поэтому награда
// начисляется ровно один раз.
func ApplyDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, enemyID types.EntityID, amount float64) bool {
	enemy, isEnemy := ecs.Enemies[enemyID]
	health, hasHealth := ecs.Healths[enemyID]
	if !isEnemy || !hasHealth || amount <= 0 {
		return false
	}

	health.Value -= amount
	if health.Value < 0 {
		health.Value = 0
	}
	enemy.HitTime = ecs.GameTime

	// Добавляем или сбрасываем компонент "вспышки"
	ecs.DamageFlashes[enemyID] = &component.DamageFlash{
		Timer:    config.HitFlashDuration,
		Duration: config.HitFlashDuration,
	}

	if health.Value > 0 {
		return false
	}
	killEnemy(ecs, dispatcher, enemyID, enemy)
	return true
}

// SplashFalloff: линейное затухание урона по области.
// На расстоянии 0 полный урон, на границе радиуса и дальше 0.
func SplashFalloff(damage, distance, radius float64) float64 {
	if radius <= 0 || distance >= radius {
		return 0
	}
	return damage * (1 - distance/radius)
}

// ApplySplashDamage наносит урон всем живым врагам в радиусе от точки.
// Основная цель не исключается: если она в радиусе, урон по ней тоже проходит.
func ApplySplashDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, x, y, radius, damage float64) {
	for _, id := range ecs.EnemyIDs() {
		pos, ok := ecs.Positions[id]
		if !ok || !ecs.IsEnemyAlive(id) {
			continue
		}
		d := utils.Distance(x, y, pos.X, pos.Y)
		if amount := SplashFalloff(damage, d, radius); amount > 0 {
			ApplyDamage(ecs, dispatcher, id, amount)
		}
	}
}

func killEnemy(ecs *entity.ECS, dispatcher *event.Dispatcher, id types.EntityID, enemy *component.Enemy) {
	gs := ecs.GameState
	gs.Money += enemy.Value
	gs.Stats.MoneyEarned += enemy.Value
	gs.Stats.Kills++

	info := event.EnemyInfo{ID: id, Type: enemy.Type, Value: enemy.Value}
	RemoveEnemy(ecs, id)
	dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: info})
}

// RemoveEnemy удаляет врага из мира и сбрасывает все ссылки на него:
// выбор игрока, цели башен, эффекты глушения. Потеря выбранной цели
// выключает режим наведения.
func RemoveEnemy(ecs *entity.ECS, id types.EntityID) {
	ecs.RemoveEntity(id)

	if ecs.GameState.SelectedEnemy == id {
		ecs.GameState.SelectedEnemy = 0
		ecs.GameState.TargetingMode = false
	}

	for _, tower := range ecs.Towers {
		switch b := tower.Behavior.(type) {
		case *component.Jammer:
			b.Targets = removeID(b.Targets, id)
		case *component.Cone:
			if b.TargetID == id {
				b.TargetID = 0
			}
			b.Affected = removeID(b.Affected, id)
		}
	}

	for effectID, effect := range ecs.JammingEffects {
		if effect.TargetID == id {
			ecs.RemoveEntity(effectID)
		}
	}
}

// removeID возвращает новый срез без id; исходный срез не меняется,
// чтобы снимки целей, по которым идёт итерация, оставались стабильными.
func removeID(ids []types.EntityID, id types.EntityID) []types.EntityID {
	out := make([]types.EntityID, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
