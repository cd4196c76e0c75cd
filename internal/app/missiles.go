// internal/app/missiles.go
package app

import (
	"go-drone-defense/internal/event"
	"go-drone-defense/internal/types"
)

// ToggleTargeting включает и выключает режим наведения ракет.
// Включить его можно только при наличии ракет.
func (g *Game) ToggleTargeting() bool {
	gs := g.ECS.GameState
	if gs.Phase.Ended() {
		return false
	}
	if !gs.TargetingMode && gs.Missiles <= 0 {
		return false
	}
	gs.TargetingMode = !gs.TargetingMode
	gs.SelectedEnemy = 0
	if gs.TargetingMode {
		gs.SelectedTower = 0
	}
	return true
}

// BuyMissiles покупает n ракет. Магазин открыт только между волнами.
func (g *Game) BuyMissiles(n int) bool {
	gs := g.ECS.GameState
	if n <= 0 || gs.Phase.Ended() || g.ECS.Wave.InProgress {
		return false
	}
	cost := gs.MissilePrice * n
	if gs.Money < cost {
		g.Flash(NotEnoughMoney.String())
		return false
	}
	gs.Money -= cost
	gs.Missiles += n
	g.EventDispatcher.Dispatch(event.Event{Type: event.MissilesPurchased, Data: n})
	return true
}

// FireMissileAt запускает ракету по выбранному игроком врагу.
// Когда ракеты заканчиваются, режим наведения выключается.
func (g *Game) FireMissileAt(id types.EntityID) bool {
	gs := g.ECS.GameState
	if gs.Phase.Ended() {
		return false
	}
	gs.SelectedEnemy = id
	if !g.CombatSystem.LaunchMissile(id) {
		return false
	}
	if gs.Missiles <= 0 {
		gs.TargetingMode = false
		gs.SelectedEnemy = 0
	}
	return true
}
