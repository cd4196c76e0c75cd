// internal/app/tower_management.go
package app

import (
	"math"

	"go-drone-defense/internal/component"
	"go-drone-defense/internal/config"
	"go-drone-defense/internal/event"
	"go-drone-defense/internal/types"
	"go-drone-defense/pkg/gridmap"
)

// PlaceResult: итог постройки или улучшения башни. Отказ это правило
// игры, а не ошибка.
type PlaceResult int

const (
	Placed PlaceResult = iota
	OutOfGrid
	CellOccupied
	NearBase
	NotEnoughMoney
	UnknownTower
	MaxLevel
	GameEnded
)

func (r PlaceResult) String() string {
	switch r {
	case Placed:
		return "Placed"
	case OutOfGrid:
		return "Outside the field"
	case CellOccupied:
		return "Cell is occupied"
	case NearBase:
		return "Too close to the base"
	case NotEnoughMoney:
		return "Not enough money"
	case UnknownTower:
		return "Unknown tower"
	case MaxLevel:
		return "Tower is at max level"
	case GameEnded:
		return "Game is over"
	default:
		return "Unknown"
	}
}

// PlaceTower attempts to place a tower of type defID at the given cell.
func (g *Game) PlaceTower(cell gridmap.Cell, defID string) (types.EntityID, PlaceResult) {
	if res := g.canPlaceTower(cell, defID); res != Placed {
		return 0, res
	}

	def := g.Lib.Towers[defID]
	id := g.ECS.NewEntity()
	x, y := g.Grid.Center(cell)
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Towers[id] = component.NewTower(def, cell)
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(g.Grid.CellSize / 2 * def.Visuals.SizeFactor),
		HasStroke: true,
	}
	g.Grid.Occupy(cell)

	gs := g.ECS.GameState
	gs.Money -= def.Cost
	gs.Stats.TowersBuilt++

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: g.towerInfo(id)})
	return id, Placed
}

func (g *Game) canPlaceTower(cell gridmap.Cell, defID string) PlaceResult {
	gs := g.ECS.GameState
	if gs.Phase.Ended() {
		return GameEnded
	}
	def, ok := g.Lib.Towers[defID]
	if !ok || !def.Placeable {
		return UnknownTower
	}
	if !g.Grid.InBounds(cell) {
		return OutOfGrid
	}
	if g.Grid.IsReserved(cell) {
		return NearBase
	}
	if !g.Grid.CanBuild(cell) {
		return CellOccupied
	}
	if gs.Money < def.Cost {
		return NotEnoughMoney
	}
	return Placed
}

// UpgradeCost: цена следующего уровня, растёт вместе с вложениями.
func UpgradeCost(tower *component.Tower) int {
	return int(math.Round(float64(tower.Invested) * config.UpgradeCostMultiplier))
}

// CanUpgrade проверяет улучшение без побочных эффектов.
func (g *Game) CanUpgrade(id types.EntityID) PlaceResult {
	tower, ok := g.ECS.Towers[id]
	if !ok || id == g.ECS.BaseTowerID {
		return UnknownTower
	}
	gs := g.ECS.GameState
	switch {
	case gs.Phase.Ended():
		return GameEnded
	case tower.Level >= config.MaxTowerLevel:
		return MaxLevel
	case gs.Money < UpgradeCost(tower):
		return NotEnoughMoney
	}
	return Placed
}

// UpgradeTower усиливает урон, дальность и скорострельность башни.
func (g *Game) UpgradeTower(id types.EntityID) PlaceResult {
	if res := g.CanUpgrade(id); res != Placed {
		return res
	}
	tower := g.ECS.Towers[id]
	cost := UpgradeCost(tower)

	tower.Damage *= config.UpgradeDamageMultiplier
	if !tower.Unlimited {
		tower.Range *= config.UpgradeRangeMultiplier
	}
	tower.AttackSpeed *= config.UpgradeCooldownMultiplier
	tower.Invested += cost
	tower.Level++
	g.ECS.GameState.Money -= cost

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: g.towerInfo(id)})
	return Placed
}

func (g *Game) towerInfo(id types.EntityID) event.TowerInfo {
	tower := g.ECS.Towers[id]
	return event.TowerInfo{ID: id, DefID: tower.DefID, Cell: tower.Cell, Level: tower.Level}
}
