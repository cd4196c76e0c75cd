// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-drone-defense/internal/component"
	"go-drone-defense/internal/config"
	"go-drone-defense/internal/defs"
	"go-drone-defense/internal/entity"
	"go-drone-defense/internal/event"
	"go-drone-defense/internal/input"
	"go-drone-defense/internal/system"
	"go-drone-defense/internal/types"
	"go-drone-defense/internal/utils"
	"go-drone-defense/pkg/gridmap"
)

// Game holds the main game state and logic.
type Game struct {
	Grid               *gridmap.Grid
	Lib                *defs.Library
	ECS                *entity.ECS
	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	BaseSystem         *system.BaseSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	VisualEffectSystem *system.VisualEffectSystem
	StateSystem        *system.StateSystem
	RenderSystem       *system.RenderSystem
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	SpeedMultiplier    float64
	Bindings           map[input.Key]input.Action

	hotkeys      map[input.Key]string // Хоткей -> ID башни из палитры
	message      string
	messageTimer float64
}

// NewGame initializes a new game instance.
func NewGame(lib *defs.Library, seed int64) *Game {
	if lib == nil {
		panic("definitions library cannot be nil")
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)
	grid := gridmap.NewGrid(config.GridSize, config.GridSize, config.CellSize)

	g := &Game{
		Grid:               grid,
		Lib:                lib,
		ECS:                ecs,
		WaveSystem:         system.NewWaveSystem(ecs, lib, rng, eventDispatcher),
		MovementSystem:     system.NewMovementSystem(ecs),
		BaseSystem:         system.NewBaseSystem(ecs, eventDispatcher),
		CombatSystem:       system.NewCombatSystem(ecs, eventDispatcher),
		ProjectileSystem:   system.NewProjectileSystem(ecs, eventDispatcher),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs),
		StateSystem:        system.NewStateSystem(ecs, eventDispatcher),
		RenderSystem:       system.NewRenderSystem(ecs, grid),
		EventDispatcher:    eventDispatcher,
		Rng:                rng,
		SpeedMultiplier:    1,
		Bindings:           input.DefaultBindings,
		hotkeys:            make(map[input.Key]string),
	}
	for _, id := range lib.Palette {
		if key := lib.Towers[id].Hotkey; key != "" {
			g.hotkeys[input.Key(key)] = id
		}
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(listener,
		event.WaveStarted, event.WaveEnded, event.TowerPlaced, event.TowerUpgraded,
		event.MissilesPurchased, event.GameOver, event.Victory)

	g.setupSession()
	log.Printf("Новая игра: сид %d, башен в палитре %d", rng.Seed(), len(lib.Palette))
	return g
}

// setupSession создаёт базу, ракетную батарею и стартовую экономику.
func (g *Game) setupSession() {
	baseX := float64(config.ScreenWidth) * config.BaseXFactor
	baseY := float64(config.ScreenHeight) * config.BaseYFactor
	cell, _ := g.Grid.CellAt(baseX, baseY)
	baseX, baseY = g.Grid.Center(cell)
	g.Grid.Reserve(cell, config.BaseExclusionRadius)

	g.ECS.Base = &component.Base{
		Position:  component.Position{X: baseX, Y: baseY},
		Cell:      cell,
		Size:      config.BaseSizeCells * config.CellSize,
		Health:    config.BaseHealth,
		MaxHealth: config.BaseHealth,
	}

	if def, ok := g.Lib.Towers[config.BaseTowerDefID]; ok {
		id := g.ECS.NewEntity()
		g.ECS.Positions[id] = &component.Position{X: baseX, Y: baseY}
		g.ECS.Towers[id] = component.NewTower(def, cell)
		g.ECS.BaseTowerID = id
	} else {
		log.Printf("Error: base tower definition not found for ID: %s", config.BaseTowerDefID)
	}

	gs := g.ECS.GameState
	gs.Money = config.StartingMoney
	gs.Missiles = config.StartingMissiles
	gs.MissilePrice = config.MissilePrice
	if len(g.Lib.Palette) > 0 {
		gs.SelectedTowerType = g.Lib.Palette[0]
	}
	gs.Stats.StartTime = g.ECS.GameTime
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	gs := l.game.ECS.GameState
	switch e.Type {
	case event.WaveStarted:
		l.game.message = ""
	case event.WaveEnded:
		if info, ok := e.Data.(event.WaveInfo); ok && !info.Final {
			l.game.Flash(fmt.Sprintf("Wave %d cleared: +$%d", info.Number, info.Reward))
		}
	case event.TowerPlaced, event.TowerUpgraded:
		if info, ok := e.Data.(event.TowerInfo); ok {
			log.Printf("%s: %s ур.%d в клетке (%d,%d), денег осталось %d",
				e.Type, info.DefID, info.Level, info.Cell.Col, info.Cell.Row, gs.Money)
		}
	case event.MissilesPurchased:
		log.Printf("Куплено ракет: %v, в запасе %d", e.Data, gs.Missiles)
	case event.GameOver, event.Victory:
		s := gs.Stats
		log.Printf("%s: убито %d, построено башен %d, заработано %d, волн %d, ракет выпущено %d, время %.1fс",
			e.Type, s.Kills, s.TowersBuilt, s.MoneyEarned, s.WavesCompleted, s.MissilesFired, s.GameTime)
	}
}

// Step: один кадр: ввод, затем системы в фиксированном порядке.
// Движение и столкновения с базой всегда раньше выбора целей башнями.
func (g *Game) Step(deltaTime float64, frame input.Frame) {
	g.HandleInput(frame)

	if g.messageTimer > 0 {
		g.messageTimer -= deltaTime
		if g.messageTimer <= 0 {
			g.message = ""
		}
	}

	if g.ECS.GameState.Phase.Ended() {
		return
	}

	dt := min(deltaTime, config.MaxDeltaTime) * g.SpeedMultiplier
	if dt <= 0 {
		return
	}
	g.ECS.GameTime += dt

	g.WaveSystem.Update(dt)
	g.MovementSystem.Update(dt)
	if g.BaseSystem.Update(dt) {
		return
	}
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.VisualEffectSystem.Update(dt)
	g.WaveSystem.CheckCompletion()
}

// HandleInput разбирает клавиши и клики кадра в порядке поступления.
func (g *Game) HandleInput(frame input.Frame) {
	for _, key := range frame.Keys {
		if id, ok := g.hotkeys[key]; ok {
			g.SelectTowerType(id)
			continue
		}
		if action, ok := g.Bindings[key]; ok {
			g.HandleAction(action)
		}
	}
	for _, click := range frame.Clicks {
		g.HandleClick(click.X, click.Y)
	}
}

// HandleAction выполняет команду игрока. Пауза, скорость и выход
// обрабатываются хостом.
func (g *Game) HandleAction(action input.Action) {
	gs := g.ECS.GameState
	switch action {
	case input.ActionStartWave:
		g.StartWave()
	case input.ActionToggleTargeting:
		g.ToggleTargeting()
	case input.ActionBuyMissile:
		g.BuyMissiles(1)
	case input.ActionBuyMissileBundle:
		g.BuyMissiles(config.MissileBundle)
	case input.ActionUpgrade:
		if gs.SelectedTower != 0 {
			if res := g.UpgradeTower(gs.SelectedTower); res != Placed {
				g.Flash(res.String())
			}
		}
	case input.ActionCancel:
		g.Cancel()
	case input.ActionRestart:
		if gs.Phase.Ended() {
			g.Restart()
		}
	}
}

func (g *Game) StartWave() bool {
	if !g.WaveSystem.StartWave() {
		return false
	}
	g.ECS.GameState.SelectedTower = 0
	return true
}

// SelectTowerType выбирает тип башни для постройки и выходит из режима наведения.
func (g *Game) SelectTowerType(defID string) bool {
	def, ok := g.Lib.Towers[defID]
	if !ok || !def.Placeable {
		return false
	}
	gs := g.ECS.GameState
	gs.SelectedTowerType = defID
	gs.TargetingMode = false
	gs.SelectedEnemy = 0
	return true
}

// Cancel сбрасывает режим наведения и выбор башни.
func (g *Game) Cancel() {
	gs := g.ECS.GameState
	gs.TargetingMode = false
	gs.SelectedEnemy = 0
	gs.SelectedTower = 0
}

// HandleClick: в режиме наведения клик выбирает цель ракеты, иначе
// выбирает свою башню или строит новую.
func (g *Game) HandleClick(x, y float64) {
	gs := g.ECS.GameState
	if gs.Phase.Ended() {
		return
	}

	if gs.TargetingMode {
		if id := g.EnemyAt(x, y); id != 0 {
			g.FireMissileAt(id)
			return
		}
		if g.onBase(x, y) {
			gs.TargetingMode = false
			gs.SelectedEnemy = 0
		}
		return
	}

	if g.onBase(x, y) && gs.Missiles > 0 {
		gs.TargetingMode = true
		gs.SelectedEnemy = 0
		gs.SelectedTower = 0
		return
	}

	cell, ok := g.Grid.CellAt(x, y)
	if !ok {
		return
	}
	if id, ok := g.TowerAt(cell); ok {
		gs.SelectedTower = id
		return
	}
	gs.SelectedTower = 0

	if _, res := g.PlaceTower(cell, gs.SelectedTowerType); res != Placed {
		g.Flash(res.String())
	}
}

func (g *Game) onBase(x, y float64) bool {
	base := g.ECS.Base
	return base != nil && utils.Distance(x, y, base.X, base.Y) < base.Size/2
}

// EnemyAt возвращает первого врага, в радиус клика которого попала точка.
func (g *Game) EnemyAt(x, y float64) types.EntityID {
	for _, id := range g.ECS.EnemyIDs() {
		pos, ok := g.ECS.Positions[id]
		if !ok {
			continue
		}
		if utils.Distance(x, y, pos.X, pos.Y) < g.ECS.Enemies[id].Size*config.MissileClickRadiusFactor {
			return id
		}
	}
	return 0
}

// TowerAt возвращает башню игрока на клетке. Базовая батарея не в счёт.
func (g *Game) TowerAt(cell gridmap.Cell) (types.EntityID, bool) {
	for _, id := range g.ECS.TowerIDs() {
		if id != g.ECS.BaseTowerID && g.ECS.Towers[id].Cell == cell {
			return id, true
		}
	}
	return 0, false
}

// Flash показывает короткое сообщение в HUD.
func (g *Game) Flash(msg string) {
	g.message = msg
	g.messageTimer = config.MessageDuration
}

func (g *Game) Message() string {
	return g.message
}

// Restart возвращает сессию в исходное состояние. Системы и подписчики
// событий сохраняются: они держат указатель на тот же ECS.
func (g *Game) Restart() {
	*g.ECS = *entity.NewECS()
	g.Grid.Reset()
	g.message = ""
	g.messageTimer = 0
	g.setupSession()
	log.Printf("Игра перезапущена")
}
