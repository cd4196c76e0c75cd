package defs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
)

// ErrInvalidDefinition is wrapped by every validation failure.
var ErrInvalidDefinition = errors.New("invalid definition")

//go:embed data/definitions.json
var defaultDefinitions []byte

// File is the on-disk layout of a definitions file.
type File struct {
	Towers  []TowerDefinition `json:"towers"`
	Enemies []EnemyDefinition `json:"enemies"`
	Spawns  SpawnTable        `json:"spawns"`
	Balance BalanceFormulas   `json:"balance"`
}

// Library holds every loaded definition, keyed by ID.
type Library struct {
	Towers  map[string]TowerDefinition
	Enemies map[EnemyType]EnemyDefinition
	Spawns  SpawnTable
	Balance *Balance
	// Palette lists placeable tower IDs ordered by hotkey.
	Palette []string
}

// LoadDefault parses the definitions embedded into the binary.
func LoadDefault() (*Library, error) {
	return Parse(defaultDefinitions)
}

// LoadDefinitions reads a definitions file from disk.
func LoadDefinitions(path string) (*Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	lib, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// Parse decodes, validates and compiles a definitions document.
func Parse(data []byte) (*Library, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	balance, err := CompileBalance(f.Balance)
	if err != nil {
		return nil, err
	}

	lib := &Library{
		Towers:  make(map[string]TowerDefinition, len(f.Towers)),
		Enemies: make(map[EnemyType]EnemyDefinition, len(f.Enemies)),
		Spawns:  f.Spawns,
		Balance: balance,
	}
	for _, def := range f.Towers {
		lib.Towers[def.ID] = def
		if def.Placeable {
			lib.Palette = append(lib.Palette, def.ID)
		}
	}
	sort.SliceStable(lib.Palette, func(i, j int) bool {
		return lib.Towers[lib.Palette[i]].Hotkey < lib.Towers[lib.Palette[j]].Hotkey
	})
	for _, def := range f.Enemies {
		lib.Enemies[def.ID] = def
	}

	log.Printf("Loaded %d tower definitions, %d enemy definitions", len(lib.Towers), len(lib.Enemies))
	return lib, nil
}

// Validate checks ids, numeric ranges and cross references.
func (f *File) Validate() error {
	enemies := make(map[EnemyType]bool, len(f.Enemies))
	for _, e := range f.Enemies {
		if e.ID == "" {
			return fmt.Errorf("%w: enemy without id", ErrInvalidDefinition)
		}
		if enemies[e.ID] {
			return fmt.Errorf("%w: duplicate enemy %q", ErrInvalidDefinition, e.ID)
		}
		if e.SpeedMod <= 0 || e.HealthMod <= 0 || e.SizeMod <= 0 {
			return fmt.Errorf("%w: enemy %q has non-positive modifiers", ErrInvalidDefinition, e.ID)
		}
		enemies[e.ID] = true
	}

	towers := make(map[string]bool, len(f.Towers))
	hotkeys := make(map[string]string)
	for _, t := range f.Towers {
		if t.ID == "" {
			return fmt.Errorf("%w: tower without id", ErrInvalidDefinition)
		}
		if towers[t.ID] {
			return fmt.Errorf("%w: duplicate tower %q", ErrInvalidDefinition, t.ID)
		}
		towers[t.ID] = true
		if t.Hotkey != "" {
			if other, ok := hotkeys[t.Hotkey]; ok {
				return fmt.Errorf("%w: towers %q and %q share hotkey %q", ErrInvalidDefinition, other, t.ID, t.Hotkey)
			}
			hotkeys[t.Hotkey] = t.ID
		}
		if err := t.validateCombat(enemies); err != nil {
			return err
		}
	}

	for _, id := range f.Spawns.Opening {
		if !enemies[id] {
			return fmt.Errorf("%w: spawn opening references unknown enemy %q", ErrInvalidDefinition, id)
		}
	}
	for _, rule := range f.Spawns.Rules {
		if !enemies[rule.EnemyID] {
			return fmt.Errorf("%w: spawn rule references unknown enemy %q", ErrInvalidDefinition, rule.EnemyID)
		}
	}
	if !enemies[f.Spawns.Fallback] {
		return fmt.Errorf("%w: unknown fallback enemy %q", ErrInvalidDefinition, f.Spawns.Fallback)
	}
	return nil
}

func (t TowerDefinition) validateCombat(enemies map[EnemyType]bool) error {
	c := t.Combat
	if c.Damage < 0 || c.AttackSpeedMs < 0 {
		return fmt.Errorf("%w: tower %q has negative combat stats", ErrInvalidDefinition, t.ID)
	}
	if !c.UnlimitedRange && c.Range <= 0 {
		return fmt.Errorf("%w: tower %q needs a positive range", ErrInvalidDefinition, t.ID)
	}
	p := c.Attack.ParamsOrZero()
	switch c.Attack.Type {
	case AttackProjectile:
		if p.ProjectileSpeed <= 0 {
			return fmt.Errorf("%w: tower %q needs projectile_speed", ErrInvalidDefinition, t.ID)
		}
	case AttackMissileBattery:
		if p.ProjectileSpeed <= 0 || p.DamageMultiplier <= 0 {
			return fmt.Errorf("%w: tower %q needs projectile_speed and damage_multiplier", ErrInvalidDefinition, t.ID)
		}
	case AttackCone:
		if p.ConeDegrees <= 0 || p.ConeDegrees > 360 {
			return fmt.Errorf("%w: tower %q cone_degrees out of range", ErrInvalidDefinition, t.ID)
		}
	case AttackJammer:
		for _, e := range p.EligibleTypes {
			if !enemies[e] {
				return fmt.Errorf("%w: tower %q can jam unknown enemy %q", ErrInvalidDefinition, t.ID, e)
			}
		}
	case AttackBeam:
	default:
		return fmt.Errorf("%w: tower %q has unknown attack type %q", ErrInvalidDefinition, t.ID, c.Attack.Type)
	}
	switch c.Attack.Type {
	case AttackProjectile, AttackBeam:
		if c.Attack.Targeting != TargetClosest && c.Attack.Targeting != TargetHighestHealth {
			return fmt.Errorf("%w: tower %q has unknown targeting %q", ErrInvalidDefinition, t.ID, c.Attack.Targeting)
		}
	}
	return nil
}
