// internal/system/combat.go
package system

import (
	"hex-defense/internal/component"
	"hex-defense/internal/defs"
	"hex-defense/internal/types"
)

// Shot — один выстрел за кадр, хост рисует его лучом.
type Shot struct {
	TurretID types.EntityID
	EnemyID  types.EntityID
	Damage   int
	Killed   bool
}

// CombatSystem отвечает за перезарядку башен и выбор цели.
type CombatSystem struct {
	library defs.Library
}

func NewCombatSystem(library defs.Library) *CombatSystem {
	if library == nil {
		library = defs.DefaultLibrary()
	}
	return &CombatSystem{library: library}
}

// Update ticks every turret's cooldown and fires the ready ones. Enemies
// are scanned in slice order, so among equally distant targets the earliest
// spawned one is hit. Enemies killed here stay in the slice until the next
// movement pass removes them.
func (s *CombatSystem) Update(deltaTime float64, turrets []*component.Turret, enemies []*component.Enemy) []Shot {
	var shots []Shot
	for _, t := range turrets {
		if t.Cooldown > 0 {
			t.Cooldown -= deltaTime
		}
		if t.Cooldown > 0 {
			continue
		}

		target := s.findTarget(t, enemies)
		if target == nil {
			continue
		}
		def, ok := s.library.Get(t.Type)
		if !ok {
			continue
		}

		t.Cooldown = t.MaxCooldown
		target.HP -= def.Damage
		if def.Slows() {
			target.Speed *= def.SlowFactor
		}
		if target.HP <= 0 {
			target.Alive = false
		}
		shots = append(shots, Shot{TurretID: t.ID, EnemyID: target.ID, Damage: def.Damage, Killed: !target.Alive})
	}
	return shots
}

func (s *CombatSystem) findTarget(t *component.Turret, enemies []*component.Enemy) *component.Enemy {
	var target *component.Enemy
	rangeSq := t.Range * t.Range
	minDist := rangeSq
	for _, e := range enemies {
		if !e.Active() {
			continue
		}
		d := e.Pos.DistanceSq(t.Hex)
		if d > rangeSq {
			continue
		}
		if target == nil || d < minDist {
			target, minDist = e, d
		}
	}
	return target
}
