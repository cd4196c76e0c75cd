package defs

// SpawnRule maps a uniform draw to an enemy type once MinWave is reached.
type SpawnRule struct {
	EnemyID   EnemyType `json:"enemy_id"`
	MinWave   int       `json:"min_wave"`
	Threshold float64   `json:"threshold"` // The rule matches when r < Threshold
}

// SpawnTable describes which enemy type appears at each spawn.
type SpawnTable struct {
	// Opening is the forced order of the first spawns of wave 1.
	Opening  []EnemyType `json:"opening"`
	Rules    []SpawnRule `json:"rules"`
	Fallback EnemyType   `json:"fallback"`
}

// Choose picks the enemy type for the spawnIndex-th spawn of a wave.
// r must be a uniform draw in [0, 1); rules are checked in order.
func (t SpawnTable) Choose(wave, spawnIndex int, r float64) EnemyType {
	if wave == 1 && spawnIndex >= 0 && spawnIndex < len(t.Opening) {
		return t.Opening[spawnIndex]
	}
	for _, rule := range t.Rules {
		if wave >= rule.MinWave && r < rule.Threshold {
			return rule.EnemyID
		}
	}
	return t.Fallback
}
