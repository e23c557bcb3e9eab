// internal/defs/turrets.go
package defs

import (
	"fmt"

	"hex-defense/internal/config"
)

// TurretType defines the colour family of a turret.
type TurretType string

const (
	TurretRed   TurretType = "red"
	TurretGreen TurretType = "green"
	TurretBlue  TurretType = "blue"
)

// TurretTypes lists every turret type in a fixed order (shop rolls, colours).
var TurretTypes = []TurretType{TurretRed, TurretGreen, TurretBlue}

// Index returns the position of t in TurretTypes, or -1.
func (t TurretType) Index() int {
	for i, tt := range TurretTypes {
		if tt == t {
			return i
		}
	}
	return -1
}

// TurretDefinition holds the static stats of one turret type.
type TurretDefinition struct {
	Type     TurretType `json:"type"`
	Name     string     `json:"name"`
	Damage   int        `json:"damage"`
	Cooldown float64    `json:"cooldown"` // секунд между выстрелами
	Range    float64    `json:"range"`
	// SlowFactor multiplies the target's speed on every hit; 0 or 1 means no slow.
	SlowFactor float64 `json:"slow_factor,omitempty"`
}

// Slows reports whether hits from this turret reduce enemy speed.
func (d TurretDefinition) Slows() bool {
	return d.SlowFactor > 0 && d.SlowFactor < 1
}

// DPS is the nominal damage per second for a given cooldown.
func (d TurretDefinition) DPS(cooldown float64) float64 {
	if cooldown <= 0 {
		return 0
	}
	return float64(d.Damage) / cooldown
}

func (d TurretDefinition) validate() error {
	if d.Type.Index() < 0 {
		return fmt.Errorf("unknown turret type %q", d.Type)
	}
	if d.Damage <= 0 {
		return fmt.Errorf("turret %q: damage must be positive, got %d", d.Type, d.Damage)
	}
	if d.Cooldown <= 0 {
		return fmt.Errorf("turret %q: cooldown must be positive, got %v", d.Type, d.Cooldown)
	}
	if d.Range <= 0 {
		return fmt.Errorf("turret %q: range must be positive, got %v", d.Type, d.Range)
	}
	if d.SlowFactor < 0 || d.SlowFactor > 1 {
		return fmt.Errorf("turret %q: slow factor %v out of [0,1]", d.Type, d.SlowFactor)
	}
	return nil
}

// Library maps turret types to their definitions.
type Library map[TurretType]TurretDefinition

// DefaultLibrary returns the built-in stats: red fires fast and light,
// green slow and heavy, blue weak but slowing.
func DefaultLibrary() Library {
	return Library{
		TurretRed: {
			Type: TurretRed, Name: "Rapid", Damage: 2, Cooldown: 0.2, Range: config.TurretBaseRange,
		},
		TurretGreen: {
			Type: TurretGreen, Name: "Heavy", Damage: 5, Cooldown: 1.0, Range: config.TurretBaseRange,
		},
		TurretBlue: {
			Type: TurretBlue, Name: "Frost", Damage: 1, Cooldown: 1.0, Range: config.TurretBaseRange,
			SlowFactor: config.BlueSlowFactor,
		},
	}
}

// Get returns the definition for t, falling back to the built-in one.
func (l Library) Get(t TurretType) (TurretDefinition, bool) {
	if def, ok := l[t]; ok {
		return def, true
	}
	def, ok := DefaultLibrary()[t]
	return def, ok
}
