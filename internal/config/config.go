// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth       = 800
	ScreenHeight      = 800
	GridSize          = 25
	ReferenceCellSize = 20.0 // размер клетки, под который подобраны скорости
	CellSize          = float64(ScreenWidth) / GridSize
	ScaleFactor       = CellSize / ReferenceCellSize
	MaxDeltaTime      = 0.06

	StartingMoney           = 200
	EnemyReward             = 15
	WaveReward              = 50
	WaveRewardStep          = 25
	MaxWaves                = 5
	EnemiesPerWave          = 15
	EnemiesIncrementPerWave = 5

	// Интервалы спавна в миллисекундах
	MinSpawnInterval      = 300.0
	MaxSpawnInterval      = 2000.0
	SpawnIntervalWaveStep = 50.0
	SpawnClusterWindow    = 300.0
	SpawnClusterChance    = 0.3
	SpawnMarginFactor     = 0.1

	BaseHealth          = 100
	DamagePerEnemy      = 10
	BaseXFactor         = 0.9
	BaseYFactor         = 0.5
	BaseSizeCells       = 2
	BaseExclusionRadius = 1 // 3x3 клетки вокруг базы

	EnemySizeFactor = 0.4

	StartingMissiles         = 5
	MissilePrice             = 25
	MissileBundle            = 5
	MissileTrailLength       = 10
	MissileClickRadiusFactor = 1.5
	BaseTowerDefID           = "missile"

	HitFlashDuration       = 0.1
	JammingEffectDuration  = 0.25
	BeamDuration           = 0.3
	ExplosionDuration      = 0.5
	ExplosionParticles     = 12
	ExplosionParticleSpeed = 60.0
	ConeTurnRate           = 12.0 // Доля поворота сектора HPM за секунду

	UpgradeDamageMultiplier   = 1.5
	UpgradeRangeMultiplier    = 1.2
	UpgradeCooldownMultiplier = 0.8
	UpgradeCostMultiplier     = 1.5
	MaxTowerLevel             = 3
	MessageDuration           = 2.0

	HUDMargin       = 10
	HUDLineHeight   = 16
	ButtonWidth     = 120
	ButtonHeight    = 26
	ButtonSpacing   = 6
	TowerStrokeSize = 2.0
	HealthBarHeight = 3.0
)

var (
	BackgroundColor    = color.RGBA{20, 20, 30, 255}
	GridLineColor      = color.RGBA{45, 50, 65, 255}
	ReservedCellColor  = color.RGBA{60, 40, 40, 255}
	BaseColor          = color.RGBA{50, 205, 50, 255}
	BaseDamagedColor   = color.RGBA{220, 60, 60, 255}
	TowerStrokeColor   = color.RGBA{255, 255, 255, 255}
	RangeColor         = color.RGBA{255, 255, 0, 100}
	HitFlashColor      = color.RGBA{255, 255, 255, 255}
	HealthBarBackColor = color.RGBA{120, 0, 0, 255}
	HealthBarColor     = color.RGBA{0, 220, 0, 255}
	ProjectileColor    = color.RGBA{255, 255, 0, 255}
	MissileColor       = color.RGBA{255, 120, 0, 255}
	TrailColor         = color.RGBA{200, 200, 200, 120}
	BeamColor          = color.RGBA{0, 200, 255, 255}
	JammingColor       = color.RGBA{80, 120, 255, 180}
	ConeColor          = color.RGBA{180, 50, 230, 70}
	ExplosionColor     = color.RGBA{255, 160, 40, 255}
	TargetingColor     = color.RGBA{255, 50, 50, 255}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	TextWarningColor   = color.RGBA{255, 80, 80, 255}
	ButtonColor        = color.RGBA{70, 130, 180, 220}
	ButtonActiveColor  = color.RGBA{220, 160, 40, 230}
	ButtonLockedColor  = color.RGBA{150, 70, 70, 220}
	OverlayColor       = color.RGBA{0, 0, 0, 170}
)
