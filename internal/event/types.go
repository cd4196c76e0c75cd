// internal/event/types.go
package event

import (
	"go-drone-defense/internal/defs"
	"go-drone-defense/internal/types"
	"go-drone-defense/pkg/gridmap"
)

const (
	WaveStarted       EventType = "WaveStarted"      // Data: WaveInfo
	WaveEnded         EventType = "WaveEnded"        // Data: WaveInfo
	EnemySpawned      EventType = "EnemySpawned"     // Data: EnemyInfo
	EnemyKilled       EventType = "EnemyKilled"      // Data: EnemyInfo
	EnemyReachedBase  EventType = "EnemyReachedBase" // Data: EnemyInfo
	TowerPlaced       EventType = "TowerPlaced"      // Data: TowerInfo
	TowerUpgraded     EventType = "TowerUpgraded"    // Data: TowerInfo
	MissileLaunched   EventType = "MissileLaunched"  // Data: types.EntityID цели
	MissileExploded   EventType = "MissileExploded"  // Data: types.EntityID ракеты
	MissilesPurchased EventType = "MissilesPurchased"
	GameOver          EventType = "GameOver"
	Victory           EventType = "Victory"
)

type WaveInfo struct {
	Number int
	Reward int  // Только для WaveEnded
	Final  bool // Завершена последняя волна
}

type EnemyInfo struct {
	ID    types.EntityID
	Type  defs.EnemyType
	Value int
}

type TowerInfo struct {
	ID    types.EntityID
	DefID string
	Cell  gridmap.Cell
	Level int
}
