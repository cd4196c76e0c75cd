package defs

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// BalanceFormulas are expr sources for every number that scales with the wave.
type BalanceFormulas struct {
	WaveSize    string `json:"wave_size"`
	WaveReward  string `json:"wave_reward"`
	EnemySpeed  string `json:"enemy_speed"`
	EnemyHealth string `json:"enemy_health"`
	EnemyValue  string `json:"enemy_value"`
}

// DefaultFormulas reproduces the stock balance of the game.
func DefaultFormulas() BalanceFormulas {
	return BalanceFormulas{
		WaveSize:    "EnemiesPerWave + Wave * EnemiesIncrementPerWave",
		WaveReward:  "WaveReward + WaveRewardStep * Wave",
		EnemySpeed:  "(20 + 2 * Wave) * Scale * SpeedMod",
		EnemyHealth: "(10 + 3 * Wave) * HealthMod",
		EnemyValue:  "EnemyReward * ValueMod + 2 * Wave",
	}
}

// withDefaults fills empty sources from DefaultFormulas.
func (f BalanceFormulas) withDefaults() BalanceFormulas {
	d := DefaultFormulas()
	if f.WaveSize == "" {
		f.WaveSize = d.WaveSize
	}
	if f.WaveReward == "" {
		f.WaveReward = d.WaveReward
	}
	if f.EnemySpeed == "" {
		f.EnemySpeed = d.EnemySpeed
	}
	if f.EnemyHealth == "" {
		f.EnemyHealth = d.EnemyHealth
	}
	if f.EnemyValue == "" {
		f.EnemyValue = d.EnemyValue
	}
	return f
}

// FormulaEnv is the environment every balance formula is evaluated against.
type FormulaEnv struct {
	Wave                    int
	EnemiesPerWave          int
	EnemiesIncrementPerWave int
	WaveReward              int
	WaveRewardStep          int
	EnemyReward             int
	Scale                   float64
	SpeedMod                float64
	HealthMod               float64
	ValueMod                float64
}

// Balance holds the compiled formulas.
type Balance struct {
	waveSize    *vm.Program
	waveReward  *vm.Program
	enemySpeed  *vm.Program
	enemyHealth *vm.Program
	enemyValue  *vm.Program
}

// CompileBalance compiles every formula once; empty sources fall back to
// DefaultFormulas.
func CompileBalance(f BalanceFormulas) (*Balance, error) {
	f = f.withDefaults()
	b := &Balance{}
	targets := []struct {
		name string
		src  string
		dst  **vm.Program
	}{
		{"wave_size", f.WaveSize, &b.waveSize},
		{"wave_reward", f.WaveReward, &b.waveReward},
		{"enemy_speed", f.EnemySpeed, &b.enemySpeed},
		{"enemy_health", f.EnemyHealth, &b.enemyHealth},
		{"enemy_value", f.EnemyValue, &b.enemyValue},
	}
	for _, t := range targets {
		prog, err := expr.Compile(t.src, expr.Env(FormulaEnv{}), expr.AsFloat64())
		if err != nil {
			return nil, fmt.Errorf("failed to compile formula %s: %w", t.name, err)
		}
		*t.dst = prog
	}
	return b, nil
}

func run(prog *vm.Program, env FormulaEnv) (float64, error) {
	out, err := vm.Run(prog, env)
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate formula: %w", err)
	}
	v, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("formula returned %T, want float64", out)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("formula returned %v", v)
	}
	return v, nil
}

// WaveSize returns how many enemies the wave spawns.
func (b *Balance) WaveSize(env FormulaEnv) (int, error) {
	v, err := run(b.waveSize, env)
	return int(math.Floor(v)), err
}

// WaveReward returns the money granted for completing env.Wave.
func (b *Balance) WaveReward(env FormulaEnv) (int, error) {
	v, err := run(b.waveReward, env)
	return int(math.Floor(v)), err
}

func (b *Balance) EnemySpeed(env FormulaEnv) (float64, error) {
	return run(b.enemySpeed, env)
}

func (b *Balance) EnemyHealth(env FormulaEnv) (float64, error) {
	return run(b.enemyHealth, env)
}

func (b *Balance) EnemyValue(env FormulaEnv) (int, error) {
	v, err := run(b.enemyValue, env)
	return int(math.Round(v)), err
}
