package app

import (
	"math"
	"testing"

	"go-drone-defense/internal/component"
	"go-drone-defense/internal/config"
	"go-drone-defense/internal/defs"
	"go-drone-defense/internal/event"
	"go-drone-defense/internal/input"
	"go-drone-defense/internal/types"
	"go-drone-defense/pkg/gridmap"
)

const frameTime = 1.0 / 60

func newTestGame(t *testing.T) *Game {
	t.Helper()
	lib, err := defs.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	return NewGame(lib, 42)
}

func keys(k ...input.Key) input.Frame {
	return input.Frame{Keys: k}
}

func click(x, y float64) input.Frame {
	return input.Frame{Clicks: []input.Point{{X: x, Y: y}}}
}

// spawnAt выпускает врага и сразу переносит его в (x, y)
func spawnAt(t *testing.T, g *Game, typ defs.EnemyType, x, y float64) types.EntityID {
	t.Helper()
	id := g.WaveSystem.SpawnEnemy(typ, g.ECS.Wave.Number)
	if id == 0 {
		t.Fatalf("SpawnEnemy(%s) failed", typ)
	}
	g.ECS.Positions[id].X, g.ECS.Positions[id].Y = x, y
	return id
}

func TestNewGameInitialSession(t *testing.T) {
	g := newTestGame(t)
	gs := g.ECS.GameState

	if gs.Money != config.StartingMoney || gs.Missiles != config.StartingMissiles || gs.MissilePrice != config.MissilePrice {
		t.Errorf("economy = $%d, %d missiles at $%d", gs.Money, gs.Missiles, gs.MissilePrice)
	}
	if gs.Phase != component.PreWave || g.ECS.Wave.Number != 1 {
		t.Errorf("phase = %v, wave = %d", gs.Phase, g.ECS.Wave.Number)
	}
	if gs.SelectedTowerType != "jammer" {
		t.Errorf("SelectedTowerType = %q, want jammer", gs.SelectedTowerType)
	}

	base := g.ECS.Base
	if base.X != 736 || base.Y != 416 || base.Health != config.BaseHealth {
		t.Errorf("base = (%v,%v) hp %d", base.X, base.Y, base.Health)
	}
	battery, ok := g.ECS.Towers[g.ECS.BaseTowerID]
	if !ok {
		t.Fatal("base missile battery not created")
	}
	if _, ok := battery.Behavior.(*component.MissileBattery); !ok || !battery.Unlimited {
		t.Errorf("base tower behavior = %T, unlimited = %v", battery.Behavior, battery.Unlimited)
	}

	for _, c := range []gridmap.Cell{{Col: 21, Row: 11}, {Col: 22, Row: 12}, {Col: 23, Row: 13}} {
		if !g.Grid.IsReserved(c) {
			t.Errorf("cell %v near the base is buildable", c)
		}
	}
	if g.Grid.IsReserved(gridmap.Cell{Col: 20, Row: 12}) {
		t.Error("reserved area is wider than 3x3")
	}
}

func TestPlaceTower(t *testing.T) {
	g := newTestGame(t)
	var placed []event.Event
	g.EventDispatcher.Subscribe(event.ListenerFunc(func(e event.Event) { placed = append(placed, e) }), event.TowerPlaced)

	id, res := g.PlaceTower(gridmap.Cell{Col: 2, Row: 2}, "jammer")
	if res != Placed {
		t.Fatalf("PlaceTower() = %v", res)
	}
	pos := g.ECS.Positions[id]
	if pos.X != 80 || pos.Y != 80 {
		t.Errorf("tower at (%v,%v), want cell center (80,80)", pos.X, pos.Y)
	}
	if gs := g.ECS.GameState; gs.Money != 150 || gs.Stats.TowersBuilt != 1 {
		t.Errorf("money = %d, towers built = %d", gs.Money, gs.Stats.TowersBuilt)
	}
	if len(placed) != 1 || placed[0].Data.(event.TowerInfo).DefID != "jammer" {
		t.Errorf("TowerPlaced events = %v", placed)
	}

	tests := []struct {
		name  string
		cell  gridmap.Cell
		defID string
		money int
		want  PlaceResult
	}{
		{"occupied", gridmap.Cell{Col: 2, Row: 2}, "jammer", 1000, CellOccupied},
		{"base area", gridmap.Cell{Col: 21, Row: 13}, "jammer", 1000, NearBase},
		{"outside", gridmap.Cell{Col: config.GridSize, Row: 0}, "jammer", 1000, OutOfGrid},
		{"not placeable", gridmap.Cell{Col: 5, Row: 5}, "missile", 1000, UnknownTower},
		{"unknown", gridmap.Cell{Col: 5, Row: 5}, "tesla", 1000, UnknownTower},
		{"too poor", gridmap.Cell{Col: 5, Row: 5}, "hpm", 124, NotEnoughMoney},
		{"exact money", gridmap.Cell{Col: 5, Row: 5}, "hpm", 125, Placed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.ECS.GameState.Money = tt.money
			if _, got := g.PlaceTower(tt.cell, tt.defID); got != tt.want {
				t.Errorf("PlaceTower(%v, %s) = %v, want %v", tt.cell, tt.defID, got, tt.want)
			}
		})
	}
}

func TestClickPlacesSelectedTowerAndSelectsExisting(t *testing.T) {
	g := newTestGame(t)
	g.Step(frameTime, keys("2"))
	g.Step(frameTime, click(70, 75))

	id, ok := g.TowerAt(gridmap.Cell{Col: 2, Row: 2})
	if !ok || g.ECS.Towers[id].DefID != "laser" {
		t.Fatalf("laser not placed at (2,2)")
	}
	if g.ECS.GameState.Money != 125 {
		t.Errorf("money = %d, want 125", g.ECS.GameState.Money)
	}

	g.Step(frameTime, click(90, 90))
	if g.ECS.GameState.SelectedTower != id {
		t.Errorf("SelectedTower = %d, want %d", g.ECS.GameState.SelectedTower, id)
	}
	if info, ok := g.TowerInfo(id); !ok || info.Name != "Laser Tower" || info.Level != 1 {
		t.Errorf("TowerInfo() = %+v, %v", info, ok)
	}

	g.ECS.GameState.Money = 0
	g.Step(frameTime, click(300, 300))
	if _, ok := g.TowerAt(gridmap.Cell{Col: 9, Row: 9}); ok {
		t.Error("tower placed without money")
	}
	if g.Message() != NotEnoughMoney.String() {
		t.Errorf("Message() = %q", g.Message())
	}
}

func TestHotkeyExitsTargetingMode(t *testing.T) {
	g := newTestGame(t)
	g.Step(frameTime, keys(input.KeySpace))
	if !g.ECS.GameState.TargetingMode {
		t.Fatal("space did not enter targeting mode")
	}

	g.Step(frameTime, keys("3"))
	gs := g.ECS.GameState
	if gs.TargetingMode || gs.SelectedTowerType != "hpm" {
		t.Errorf("targeting = %v, selected = %q", gs.TargetingMode, gs.SelectedTowerType)
	}
}

func TestToggleTargetingNeedsMissiles(t *testing.T) {
	g := newTestGame(t)
	g.ECS.GameState.Missiles = 0
	if g.ToggleTargeting() || g.ECS.GameState.TargetingMode {
		t.Error("targeting mode entered without missiles")
	}

	g.ECS.GameState.Missiles = 1
	g.Step(frameTime, click(g.ECS.Base.X, g.ECS.Base.Y))
	if !g.ECS.GameState.TargetingMode {
		t.Error("click on the base did not enter targeting mode")
	}
}

func TestBuyMissiles(t *testing.T) {
	g := newTestGame(t)
	gs := g.ECS.GameState

	g.Step(frameTime, keys("b"))
	if gs.Money != 175 || gs.Missiles != 6 {
		t.Fatalf("after buy 1: $%d, %d missiles", gs.Money, gs.Missiles)
	}
	g.Step(frameTime, keys("n"))
	if gs.Money != 50 || gs.Missiles != 11 {
		t.Fatalf("after buy 5: $%d, %d missiles", gs.Money, gs.Missiles)
	}
	if g.BuyMissiles(config.MissileBundle) {
		t.Error("bundle bought with $50")
	}

	gs.Money = 1000
	g.StartWave()
	if g.BuyMissiles(1) {
		t.Error("missile bought during a wave")
	}
	if gs.Money != 1000 || gs.Missiles != 11 {
		t.Errorf("rejected purchase changed state: $%d, %d missiles", gs.Money, gs.Missiles)
	}
}

func TestTargetingClickLaunchesMissile(t *testing.T) {
	g := newTestGame(t)
	target := spawnAt(t, g, defs.EnemyFixedWing, 300, 300)
	g.ToggleTargeting()

	// Промах мимо врага и базы не выключает режим
	g.Step(0, click(100, 600))
	if !g.ECS.GameState.TargetingMode || g.ECS.GameState.Missiles != config.StartingMissiles {
		t.Fatal("click on empty field changed targeting state")
	}

	g.Step(0, click(310, 305))
	gs := g.ECS.GameState
	if gs.Missiles != config.StartingMissiles-1 || gs.Stats.MissilesFired != 1 {
		t.Fatalf("missiles = %d, fired = %d", gs.Missiles, gs.Stats.MissilesFired)
	}
	if gs.SelectedEnemy != target || !gs.TargetingMode {
		t.Errorf("selected = %d, targeting = %v", gs.SelectedEnemy, gs.TargetingMode)
	}
	missiles := 0
	for id, p := range g.ECS.Projectiles {
		if p.IsMissile && p.TargetID == target {
			missiles++
			if _, ok := g.ECS.MissileTrails[id]; !ok {
				t.Error("missile has no trail")
			}
		}
	}
	if missiles != 1 {
		t.Errorf("missiles in flight = %d, want 1", missiles)
	}
	if _, ok := g.ECS.Positions[g.ECS.BaseTowerID]; !ok {
		t.Error("base tower lost its position")
	}

	g.Step(0, click(g.ECS.Base.X, g.ECS.Base.Y))
	if g.ECS.GameState.TargetingMode {
		t.Error("click on the base did not exit targeting mode")
	}
	if _, ok := g.TowerAt(gridmap.Cell{Col: 3, Row: 18}); ok {
		t.Error("targeting click placed a tower")
	}
}

func TestLastMissileExitsTargeting(t *testing.T) {
	g := newTestGame(t)
	g.ECS.GameState.Missiles = 1
	target := spawnAt(t, g, defs.EnemyFPV, 200, 200)
	g.ToggleTargeting()

	if !g.FireMissileAt(target) {
		t.Fatal("FireMissileAt() = false")
	}
	gs := g.ECS.GameState
	if gs.Missiles != 0 || gs.TargetingMode || gs.SelectedEnemy != 0 {
		t.Errorf("missiles = %d, targeting = %v, selected = %d", gs.Missiles, gs.TargetingMode, gs.SelectedEnemy)
	}
	if g.FireMissileAt(target) {
		t.Error("fired with an empty magazine")
	}
}

func TestKilledTargetExitsTargeting(t *testing.T) {
	g := newTestGame(t)
	target := spawnAt(t, g, defs.EnemyFPV, 200, 200)
	if !g.ToggleTargeting() || !g.FireMissileAt(target) {
		t.Fatal("missile not launched")
	}

	for i := 0; i < 600 && g.ECS.IsEnemyAlive(target); i++ {
		g.Step(1.0/60, input.Frame{})
	}
	gs := g.ECS.GameState
	if g.ECS.IsEnemyAlive(target) {
		t.Fatal("missile never reached its target")
	}
	if gs.TargetingMode || gs.SelectedEnemy != 0 {
		t.Errorf("targeting = %v, selected = %d after the target died", gs.TargetingMode, gs.SelectedEnemy)
	}
	if gs.Missiles != config.StartingMissiles-1 {
		t.Errorf("missiles = %d", gs.Missiles)
	}
}

func TestUpgradeTower(t *testing.T) {
	g := newTestGame(t)
	id, _ := g.PlaceTower(gridmap.Cell{Col: 4, Row: 4}, "jammer")
	tower := g.ECS.Towers[id]

	if got := UpgradeCost(tower); got != 75 {
		t.Fatalf("UpgradeCost() = %d, want 75", got)
	}
	if res := g.UpgradeTower(id); res != Placed {
		t.Fatalf("UpgradeTower() = %v", res)
	}
	if tower.Level != 2 || g.ECS.GameState.Money != 75 || tower.Invested != 125 {
		t.Errorf("level = %d, money = %d, invested = %d", tower.Level, g.ECS.GameState.Money, tower.Invested)
	}
	if tower.Damage != 1.5 || math.Abs(tower.Range-144) > 1e-9 || math.Abs(tower.AttackSpeed-0.24) > 1e-9 {
		t.Errorf("stats = dmg %v range %v cd %v", tower.Damage, tower.Range, tower.AttackSpeed)
	}

	if res := g.UpgradeTower(id); res != NotEnoughMoney {
		t.Errorf("UpgradeTower() with $75 = %v", res)
	}
	g.ECS.GameState.Money = 1000
	g.ECS.GameState.SelectedTower = id
	g.Step(0, keys("u"))
	if tower.Level != config.MaxTowerLevel {
		t.Fatalf("level after U = %d", tower.Level)
	}
	if res := g.UpgradeTower(id); res != MaxLevel {
		t.Errorf("UpgradeTower() at max level = %v", res)
	}
	if res := g.UpgradeTower(g.ECS.BaseTowerID); res != UnknownTower {
		t.Errorf("base battery upgrade = %v", res)
	}
}

func TestBaseDestroyedFreezesGame(t *testing.T) {
	g := newTestGame(t)
	var ended int
	g.EventDispatcher.Subscribe(event.ListenerFunc(func(event.Event) { ended++ }), event.GameOver)

	g.StartWave()
	base := g.ECS.Base
	for range config.BaseHealth / config.DamagePerEnemy {
		spawnAt(t, g, defs.EnemyFixedWing, base.X, base.Y)
	}
	g.Step(frameTime, input.Frame{})

	gs := g.ECS.GameState
	if gs.Phase != component.GameOver || base.Health != 0 || ended != 1 {
		t.Fatalf("phase = %v, base = %d, GameOver events = %d", gs.Phase, base.Health, ended)
	}

	frozen := g.ECS.GameTime
	g.Step(frameTime, keys("w", input.KeySpace))
	if g.ECS.GameTime != frozen || gs.TargetingMode || g.ECS.Wave.Number != 1 {
		t.Errorf("game kept running after game over: t=%v targeting=%v", g.ECS.GameTime, gs.TargetingMode)
	}
}

func TestRestartOnlyAfterGameEnds(t *testing.T) {
	g := newTestGame(t)
	g.PlaceTower(gridmap.Cell{Col: 2, Row: 2}, "jammer")
	g.BuyMissiles(1)

	g.Step(frameTime, keys("r"))
	if len(g.ECS.Towers) != 2 {
		t.Fatal("R restarted a running game")
	}

	g.ECS.Base.TakeDamage(config.BaseHealth)
	g.StateSystem.SwitchTo(component.GameOver)
	g.Step(frameTime, keys("r"))

	gs := g.ECS.GameState
	if gs.Phase != component.PreWave || gs.Money != config.StartingMoney || gs.Missiles != config.StartingMissiles {
		t.Errorf("after restart: %v $%d %d missiles", gs.Phase, gs.Money, gs.Missiles)
	}
	if g.ECS.Base.Health != config.BaseHealth || g.ECS.Wave.Number != 1 || gs.Stats.TowersBuilt != 0 {
		t.Errorf("base = %d, wave = %d, built = %d", g.ECS.Base.Health, g.ECS.Wave.Number, gs.Stats.TowersBuilt)
	}
	if len(g.ECS.Towers) != 1 || g.ECS.Towers[g.ECS.BaseTowerID] == nil {
		t.Errorf("towers after restart = %d", len(g.ECS.Towers))
	}
	if !g.Grid.CanBuild(gridmap.Cell{Col: 2, Row: 2}) {
		t.Error("grid cell still occupied after restart")
	}

	// Системы продолжают работать с новым состоянием
	if !g.StartWave() || gs.Phase != component.InWave {
		t.Error("wave did not start after restart")
	}
}

// Полная первая волна с обороной: инварианты держатся на каждом кадре,
// а каждый выпущенный враг либо убит, либо долетел до базы.
func TestWaveSimulationKeepsStateConsistent(t *testing.T) {
	g := newTestGame(t)
	counts := map[event.EventType]int{}
	g.EventDispatcher.Subscribe(event.ListenerFunc(func(e event.Event) { counts[e.Type]++ }),
		event.EnemySpawned, event.EnemyKilled, event.EnemyReachedBase, event.WaveEnded)

	g.ECS.GameState.Money = 1000
	for _, p := range []struct {
		col, row int
		id       string
	}{{18, 12, "hpm"}, {18, 10, "jammer"}, {18, 14, "jammer"}, {16, 12, "laser"}, {19, 9, "splash"}, {19, 15, "rapid"}} {
		if _, res := g.PlaceTower(gridmap.Cell{Col: p.col, Row: p.row}, p.id); res != Placed {
			t.Fatalf("PlaceTower(%s) = %v", p.id, res)
		}
	}
	if !g.StartWave() {
		t.Fatal("StartWave() = false")
	}

	for step := 0; step < 20000 && g.ECS.Wave.InProgress && !g.ECS.GameState.Phase.Ended(); step++ {
		g.Step(frameTime, input.Frame{})

		if h := g.ECS.Base.Health; h < 0 || h > g.ECS.Base.MaxHealth {
			t.Fatalf("base health %d out of bounds", h)
		}
		for id, h := range g.ECS.Healths {
			if h.Value < 0 || h.Value > h.Max {
				t.Fatalf("enemy %d health %v out of [0,%v]", id, h.Value, h.Max)
			}
		}
		if g.ECS.GameState.Money < 0 {
			t.Fatalf("money went negative: %d", g.ECS.GameState.Money)
		}
	}

	spawned := counts[event.EnemySpawned]
	removed := counts[event.EnemyKilled] + counts[event.EnemyReachedBase]
	switch g.ECS.GameState.Phase {
	case component.PreWave:
		if spawned != 20 || removed != spawned || counts[event.WaveEnded] != 1 {
			t.Errorf("spawned %d, removed %d, wave ends %d", spawned, removed, counts[event.WaveEnded])
		}
		if g.ECS.Wave.Number != 2 || len(g.ECS.Enemies) != 0 {
			t.Errorf("wave = %d, enemies left = %d", g.ECS.Wave.Number, len(g.ECS.Enemies))
		}
	case component.GameOver:
		if removed > spawned {
			t.Errorf("removed %d of %d spawned", removed, spawned)
		}
	default:
		t.Fatalf("simulation did not finish: phase %v", g.ECS.GameState.Phase)
	}
	if counts[event.EnemyKilled] != g.ECS.GameState.Stats.Kills {
		t.Errorf("kill events %d, stats %d", counts[event.EnemyKilled], g.ECS.GameState.Stats.Kills)
	}
}
