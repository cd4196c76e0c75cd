// internal/system/wave.go
package system

import (
	"log"
	"math"

	"go-drone-defense/internal/component"
	"go-drone-defense/internal/config"
	"go-drone-defense/internal/defs"
	"go-drone-defense/internal/entity"
	"go-drone-defense/internal/event"
	"go-drone-defense/internal/types"
	"go-drone-defense/internal/utils"
)

// WaveSystem управляет расписанием спавна и жизненным циклом волны
type WaveSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	maxWaves        int
}

func NewWaveSystem(ecs *entity.ECS, lib *defs.Library, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		lib:             lib,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		maxWaves:        config.MaxWaves,
	}
}

// StartWave запускает текущую волну. Игнорируется, если волна уже идёт
// или игра закончена.
func (s *WaveSystem) StartWave() bool {
	wave := s.ecs.Wave
	if wave.InProgress || s.ecs.GameState.Phase.Ended() {
		return false
	}

	count, err := s.lib.Balance.WaveSize(s.formulaEnv(wave.Number, nil))
	if err != nil {
		log.Printf("Ошибка формулы размера волны %d: %v", wave.Number, err)
		return false
	}

	wave.InProgress = true
	wave.EnemiesToSpawn = max(count, 0)
	wave.Spawned = 0
	wave.LastSpawn = s.ecs.GameTime
	wave.SpawnInterval = s.SpawnInterval(wave.Number)
	s.ecs.GameState.Phase = component.InWave

	log.Printf("Волна %d началась: %d врагов", wave.Number, wave.EnemiesToSpawn)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveInfo{Number: wave.Number}})
	return true
}

// Update выпускает очередного врага, когда истёк случайный интервал.
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if !wave.InProgress || wave.EnemiesToSpawn <= 0 {
		return
	}
	if s.ecs.GameTime-wave.LastSpawn <= wave.SpawnInterval {
		return
	}

	enemyType := s.lib.Spawns.Choose(wave.Number, wave.Spawned, s.rng.Float64())
	s.SpawnEnemy(enemyType, wave.Number)
	wave.EnemiesToSpawn--
	wave.Spawned++
	wave.LastSpawn = s.ecs.GameTime
	wave.SpawnInterval = s.SpawnInterval(wave.Number)
}

// SpawnInterval возвращает случайный интервал до следующего спавна в секундах.
// С вероятностью SpawnClusterChance враги идут плотной группой.
func (s *WaveSystem) SpawnInterval(waveNumber int) float64 {
	waveMin := math.Max(config.MinSpawnInterval,
		config.MinSpawnInterval+config.SpawnClusterWindow-config.SpawnIntervalWaveStep*float64(waveNumber))

	var ms float64
	if s.rng.Chance(config.SpawnClusterChance) {
		ms = s.rng.Range(waveMin, waveMin+config.SpawnClusterWindow)
	} else {
		ms = s.rng.Range(waveMin, config.MaxSpawnInterval)
	}
	return ms / 1000
}

// SpawnEnemy создаёт врага на левом краю поля.
func (s *WaveSystem) SpawnEnemy(enemyType defs.EnemyType, waveNumber int) types.EntityID {
	def, ok := s.lib.Enemies[enemyType]
	if !ok {
		log.Printf("Error: Enemy definition not found for ID: %s", enemyType)
		return 0
	}

	env := s.formulaEnv(waveNumber, &def)
	speed, err := s.lib.Balance.EnemySpeed(env)
	if err != nil {
		log.Printf("Ошибка формулы скорости для %s: %v", enemyType, err)
		return 0
	}
	health, err := s.lib.Balance.EnemyHealth(env)
	if err != nil || health <= 0 {
		log.Printf("Ошибка формулы здоровья для %s: %v", enemyType, err)
		return 0
	}
	value, err := s.lib.Balance.EnemyValue(env)
	if err != nil {
		log.Printf("Ошибка формулы награды для %s: %v", enemyType, err)
		return 0
	}

	size := config.CellSize * config.EnemySizeFactor * def.SizeMod
	y := s.rng.Range(config.ScreenHeight*config.SpawnMarginFactor, config.ScreenHeight*(1-config.SpawnMarginFactor))

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: 0, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: speed}
	s.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.Color,
		Radius: float32(size / 2 * def.Visuals.SizeFactor),
	}
	s.ecs.Enemies[id] = &component.Enemy{
		Type:    enemyType,
		Size:    size,
		Value:   value,
		HitTime: -1,
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyInfo{ID: id, Type: enemyType, Value: value}})
	return id
}

// CheckCompletion завершает волну, когда все враги выпущены и ни одного
// не осталось в живых, независимо от причины их удаления.
func (s *WaveSystem) CheckCompletion() bool {
	wave := s.ecs.Wave
	if !wave.InProgress || wave.EnemiesToSpawn > 0 || len(s.ecs.Enemies) > 0 {
		return false
	}

	wave.InProgress = false
	gs := s.ecs.GameState
	gs.Stats.WavesCompleted++
	completed := wave.Number
	info := event.WaveInfo{Number: completed, Final: completed >= s.maxWaves}

	if !info.Final {
		reward, err := s.lib.Balance.WaveReward(s.formulaEnv(completed, nil))
		if err != nil {
			log.Printf("Ошибка формулы награды за волну %d: %v", completed, err)
		}
		info.Reward = reward
		gs.Money += reward
		wave.Number++
	}

	log.Printf("Волна %d завершена, награда %d", completed, info.Reward)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: info})
	return true
}

// IsFinalWave: текущая волна последняя
func (s *WaveSystem) IsFinalWave() bool {
	return s.ecs.Wave.Number >= s.maxWaves
}

func (s *WaveSystem) formulaEnv(waveNumber int, def *defs.EnemyDefinition) defs.FormulaEnv {
	env := defs.FormulaEnv{
		Wave:                    waveNumber,
		EnemiesPerWave:          config.EnemiesPerWave,
		EnemiesIncrementPerWave: config.EnemiesIncrementPerWave,
		WaveReward:              config.WaveReward,
		WaveRewardStep:          config.WaveRewardStep,
		EnemyReward:             config.EnemyReward,
		Scale:                   config.ScaleFactor,
		SpeedMod:                1,
		HealthMod:               1,
		ValueMod:                1,
	}
	if def != nil {
		env.SpeedMod = def.SpeedMod
		env.HealthMod = def.HealthMod
		env.ValueMod = def.ValueMod
	}
	return env
}
