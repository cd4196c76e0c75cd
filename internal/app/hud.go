// internal/app/hud.go
package app

import (
	"go-drone-defense/internal/config"
	"go-drone-defense/internal/types"
	"go-drone-defense/internal/ui"
)

// HUDData собирает снимок сессии для HUD.
func (g *Game) HUDData() ui.HUDData {
	gs := g.ECS.GameState
	d := ui.HUDData{
		Money:         gs.Money,
		Missiles:      gs.Missiles,
		MissilePrice:  gs.MissilePrice,
		Wave:          g.ECS.Wave.Number,
		MaxWaves:      config.MaxWaves,
		WaveActive:    g.ECS.Wave.InProgress,
		Phase:         gs.Phase,
		Targeting:     gs.TargetingMode,
		SelectedTower: gs.SelectedTowerType,
		Message:       g.message,
	}
	if base := g.ECS.Base; base != nil {
		d.BaseHealth = base.Health
		d.BaseMaxHealth = base.MaxHealth
	}
	return d
}

// TowerInfo возвращает данные башни для информационной панели.
func (g *Game) TowerInfo(id types.EntityID) (ui.TowerInfo, bool) {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return ui.TowerInfo{}, false
	}
	name := tower.DefID
	if def, ok := g.Lib.Towers[tower.DefID]; ok {
		name = def.Name
	}
	return ui.TowerInfo{
		Name:        name,
		Level:       tower.Level,
		Damage:      tower.Damage,
		Range:       tower.Range,
		Unlimited:   tower.Unlimited,
		AttackSpeed: tower.AttackSpeed,
		UpgradeCost: UpgradeCost(tower),
		CanUpgrade:  g.CanUpgrade(id) == Placed,
	}, true
}
