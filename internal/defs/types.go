package defs

import "image/color"

// EnemyType identifies a drone archetype.
type EnemyType string

const (
	EnemyFixedWing EnemyType = "fixed_wing"
	EnemyFPV       EnemyType = "fpv"
	EnemyGroup3    EnemyType = "group_3"
	EnemyGroup5    EnemyType = "group_5"
)

// AttackBehaviorType selects how a tower delivers damage.
type AttackBehaviorType string

const (
	AttackProjectile     AttackBehaviorType = "PROJECTILE"
	AttackBeam           AttackBehaviorType = "BEAM"
	AttackJammer         AttackBehaviorType = "JAMMER"
	AttackCone           AttackBehaviorType = "CONE"
	AttackMissileBattery AttackBehaviorType = "MISSILE_BATTERY"
)

// TargetingMode defines how a single-target tower picks its victim.
type TargetingMode string

const (
	TargetClosest       TargetingMode = "CLOSEST"
	TargetHighestHealth TargetingMode = "HIGHEST_HEALTH"
)

// Visuals contains parameters for rendering a tower or an enemy.
type Visuals struct {
	Color      color.RGBA `json:"color"`
	SizeFactor float64    `json:"size_factor"`
}
