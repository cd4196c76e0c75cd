package defs

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Hotkey    string      `json:"hotkey,omitempty"`
	Cost      int         `json:"cost"`
	Placeable bool        `json:"placeable"`
	Combat    CombatStats `json:"combat"`
	Visuals   Visuals     `json:"visuals"`
}

// CombatStats contains parameters related to a tower's combat abilities.
type CombatStats struct {
	Damage         float64   `json:"damage"`
	Range          float64   `json:"range"`
	UnlimitedRange bool      `json:"unlimited_range,omitempty"`
	AttackSpeedMs  float64   `json:"attack_speed_ms"` // Minimum delay between shots
	Attack         AttackDef `json:"attack"`
}

// AttackSpeed returns the cooldown in seconds.
func (c CombatStats) AttackSpeed() float64 {
	return c.AttackSpeedMs / 1000
}

// AttackDef describes how a tower attacks.
type AttackDef struct {
	Type      AttackBehaviorType `json:"type"`
	Targeting TargetingMode      `json:"targeting,omitempty"`
	Params    *AttackParams      `json:"params,omitempty"` // Flexible parameters for different attack types
}

// AttackParams holds parameters for various attack types.
// Unused fields are left zero.
type AttackParams struct {
	// For Projectile and MissileBattery
	ProjectileSpeed float64 `json:"projectile_speed,omitempty"`
	ProjectileSize  float64 `json:"projectile_size,omitempty"`
	SplashRadius    float64 `json:"splash_radius,omitempty"`
	// For MissileBattery
	DamageMultiplier float64 `json:"damage_multiplier,omitempty"`
	// For Beam
	BeamDuration float64 `json:"beam_duration,omitempty"`
	// For Cone
	ConeDegrees float64 `json:"cone_degrees,omitempty"`
	// For Jammer
	EligibleTypes []EnemyType `json:"eligible_types,omitempty"`
}

// ParamsOrZero returns the attack parameters or an empty set.
func (a AttackDef) ParamsOrZero() AttackParams {
	if a.Params == nil {
		return AttackParams{}
	}
	return *a.Params
}
