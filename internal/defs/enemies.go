package defs

// EnemyDefinition holds the per-type modifiers applied on top of the
// wave-scaled base stats.
type EnemyDefinition struct {
	ID        EnemyType `json:"id"`
	Name      string    `json:"name"`
	SpeedMod  float64   `json:"speed_mod"`
	HealthMod float64   `json:"health_mod"`
	SizeMod   float64   `json:"size_mod"`
	ValueMod  float64   `json:"value_mod"`
	Visuals   Visuals   `json:"visuals"`
}
