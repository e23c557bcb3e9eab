// internal/system/movement.go
package system

import (
	"math"

	"hex-defense/internal/component"
	"hex-defense/pkg/hexmap"
)

// MovementSystem двигает врагов по их маршрутам.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update moves every active enemy by one step.
func (s *MovementSystem) Update(deltaTime float64, enemies []*component.Enemy) {
	for _, e := range enemies {
		s.Step(e, deltaTime)
	}
}

// Step moves one enemy toward the next node of its path. An enemy that
// reaches a node snaps onto it and stops for this frame: leftover budget is
// not carried into the next segment.
func (s *MovementSystem) Step(e *component.Enemy, deltaTime float64) {
	if !e.Active() {
		return
	}
	if e.Path.Last() {
		e.ReachedEnd = true
		return
	}

	target := e.Path.Hexes[e.Path.CurrentIndex+1]
	dq := float64(target.Q) - e.Pos.Q
	dr := float64(target.R) - e.Pos.R
	ds := float64(target.S) - e.Pos.S
	dist := math.Sqrt(dq*dq + dr*dr + ds*ds)

	moveDistance := e.Speed * deltaTime
	if dist <= moveDistance {
		e.Pos = target.Frac()
		e.Path.CurrentIndex++
		return
	}
	if moveDistance <= 0 {
		return
	}
	e.Pos = e.Pos.Lerp(target, moveDistance/dist)
}

// Reattach re-anchors an enemy to a freshly computed path: the earliest
// node closest (in hex steps) to the enemy's rounded position becomes the
// new first node. The enemy's position is left as is.
func Reattach(e *component.Enemy, path []hexmap.Hex) {
	if len(path) == 0 {
		return
	}
	here := e.Pos.Round()
	best, bestDist := 0, here.Distance(path[0])
	for i := 1; i < len(path); i++ {
		if d := here.Distance(path[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	e.Path = component.Path{Hexes: path[best:], CurrentIndex: 0}
}
