package component

import "go-drone-defense/internal/types"

// Phase: фаза игровой сессии
type Phase int

const (
	PreWave Phase = iota // Между волнами, можно покупать ракеты
	InWave
	GameOver
	Victory
)

func (p Phase) String() string {
	switch p {
	case PreWave:
		return "PreWave"
	case InWave:
		return "InWave"
	case GameOver:
		return "GameOver"
	case Victory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// Ended: игра завершена поражением или победой
func (p Phase) Ended() bool {
	return p == GameOver || p == Victory
}

// GameState: состояние сессии, которое не принадлежит ни одной сущности
type GameState struct {
	Phase             Phase
	Money             int
	Missiles          int
	MissilePrice      int
	TargetingMode     bool
	SelectedTowerType string
	SelectedEnemy     types.EntityID // Цель, выбранная игроком в режиме наведения
	SelectedTower     types.EntityID // Башня, выбранная для улучшения
	Stats             Stats
}

// Stats: накопительная статистика сессии
type Stats struct {
	Kills          int
	TowersBuilt    int
	MoneyEarned    int
	WavesCompleted int
	MissilesFired  int
	StartTime      float64
	GameTime       float64
}
