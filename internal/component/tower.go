// component/tower.go
package component

import (
	"math"

	"go-drone-defense/internal/defs"
	"go-drone-defense/internal/types"
	"go-drone-defense/pkg/gridmap"
)

type Tower struct {
	DefID       string       // ID из definitions.json
	Cell        gridmap.Cell // Клетка, на которой стоит башня
	Damage      float64
	Range       float64
	Unlimited   bool    // Бесконечная дальность (ракетная батарея)
	AttackSpeed float64 // Минимальная пауза между выстрелами, в секундах
	LastShot    float64 // GameTime последнего выстрела
	Invested    int     // Сколько денег вложено в башню
	Level       int
	Behavior    TowerBehavior
}

// NewTower создаёт башню первого уровня, готовую стрелять сразу.
func NewTower(def defs.TowerDefinition, cell gridmap.Cell) *Tower {
	return &Tower{
		DefID:       def.ID,
		Cell:        cell,
		Damage:      def.Combat.Damage,
		Range:       def.Combat.Range,
		Unlimited:   def.Combat.UnlimitedRange,
		AttackSpeed: def.Combat.AttackSpeed(),
		LastShot:    math.Inf(-1),
		Invested:    def.Cost,
		Level:       1,
		Behavior:    NewTowerBehavior(def),
	}
}

// InRange: цель на расстоянии d досягаема для башни
func (t *Tower) InRange(d float64) bool {
	return t.Unlimited || d < t.Range
}

// Ready: кулдаун истёк
func (t *Tower) Ready(now float64) bool {
	return now-t.LastShot > t.AttackSpeed
}

// TowerBehavior: поведение конкретного архетипа башни.
// Реализации: *ProjectileWeapon, *BeamWeapon, *Jammer, *Cone, *MissileBattery.
type TowerBehavior interface {
	isTowerBehavior()
}

// ProjectileWeapon стреляет одиночными самонаводящимися снарядами.
type ProjectileWeapon struct {
	Targeting    defs.TargetingMode
	Speed        float64
	Size         float64
	SplashRadius float64 // 0 без урона по области
}

// BeamWeapon наносит урон мгновенно, луч остаётся только как визуальный эффект.
type BeamWeapon struct {
	Targeting defs.TargetingMode
	Duration  float64
}

// Jammer держит постоянный набор целей и бьёт по всем сразу.
type Jammer struct {
	Eligible map[defs.EnemyType]bool
	Targets  []types.EntityID
}

// Cone: HPM башня: бьёт всех врагов в секторе, направленном на отслеживаемую цель.
type Cone struct {
	ConeDegrees float64
	Facing      float64 // Угол направления в радианах
	// DisplayFacing догоняет Facing плавно, только для отрисовки
	DisplayFacing float64
	TargetID    types.EntityID
	Affected    []types.EntityID
}

// MissileBattery: базовая башня игрока. Сама не стреляет.
type MissileBattery struct {
	Speed            float64
	Size             float64
	SplashRadius     float64
	DamageMultiplier float64
}

func (*ProjectileWeapon) isTowerBehavior() {}
func (*BeamWeapon) isTowerBehavior()       {}
func (*Jammer) isTowerBehavior()           {}
func (*Cone) isTowerBehavior()             {}
func (*MissileBattery) isTowerBehavior()   {}

// HasTarget сообщает, держит ли башня ссылку на врага id.
func (j *Jammer) HasTarget(id types.EntityID) bool {
	for _, t := range j.Targets {
		if t == id {
			return true
		}
	}
	return false
}

// NewTowerBehavior строит поведение по определению башни.
func NewTowerBehavior(def defs.TowerDefinition) TowerBehavior {
	attack := def.Combat.Attack
	p := attack.ParamsOrZero()
	switch attack.Type {
	case defs.AttackProjectile:
		return &ProjectileWeapon{
			Targeting:    attack.Targeting,
			Speed:        p.ProjectileSpeed,
			Size:         p.ProjectileSize,
			SplashRadius: p.SplashRadius,
		}
	case defs.AttackBeam:
		return &BeamWeapon{Targeting: attack.Targeting, Duration: p.BeamDuration}
	case defs.AttackJammer:
		eligible := make(map[defs.EnemyType]bool, len(p.EligibleTypes))
		for _, t := range p.EligibleTypes {
			eligible[t] = true
		}
		return &Jammer{Eligible: eligible}
	case defs.AttackCone:
		return &Cone{ConeDegrees: p.ConeDegrees}
	case defs.AttackMissileBattery:
		return &MissileBattery{
			Speed:            p.ProjectileSpeed,
			Size:             p.ProjectileSize,
			SplashRadius:     p.SplashRadius,
			DamageMultiplier: p.DamageMultiplier,
		}
	}
	return nil
}
