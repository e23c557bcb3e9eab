// internal/system/chain.go
package system

import (
	"math"

	"hex-defense/internal/component"
	"hex-defense/internal/config"
	"hex-defense/internal/types"
)

// ChainSystem собирает цепочку соседних башен одного цвета и сливает её в
// первую башню цепочки.
type ChainSystem struct {
	links []*component.Turret
}

func NewChainSystem() *ChainSystem {
	return &ChainSystem{}
}

// Begin starts a new chain at t, dropping any chain in progress.
func (s *ChainSystem) Begin(t *component.Turret) {
	s.links = []*component.Turret{t}
}

// Extend appends t when it has the chain's type, touches the last link and
// is not linked yet.
func (s *ChainSystem) Extend(t *component.Turret) bool {
	if len(s.links) == 0 || t == nil {
		return false
	}
	last := s.links[len(s.links)-1]
	if t.Type != last.Type || t.Hex.Distance(last.Hex) != 1 {
		return false
	}
	if s.Contains(t.ID) {
		return false
	}
	s.links = append(s.links, t)
	return true
}

// Contains reports whether the turret with id is part of the chain.
func (s *ChainSystem) Contains(id types.EntityID) bool {
	for _, l := range s.links {
		if l.ID == id {
			return true
		}
	}
	return false
}

func (s *ChainSystem) Active() bool { return len(s.links) > 0 }

func (s *ChainSystem) Len() int { return len(s.links) }

// Links returns the chain in link order.
func (s *ChainSystem) Links() []*component.Turret {
	return append([]*component.Turret(nil), s.links...)
}

func (s *ChainSystem) Cancel() {
	s.links = nil
}

// Commit upgrades the head of the chain and returns the turrets the caller
// must remove from the board. A chain shorter than config.MinChainLength is
// kept for further extension and nothing happens.
func (s *ChainSystem) Commit() (head *component.Turret, absorbed []*component.Turret, ok bool) {
	n := len(s.links)
	if n < config.MinChainLength {
		return nil, nil, false
	}
	head = s.links[0]
	absorbed = append(absorbed, s.links[1:]...)
	head.Range += float64(n - 1)
	head.MaxCooldown *= math.Pow(config.ChainCooldownFactor, float64(n-1))
	if head.Cooldown > head.MaxCooldown {
		head.Cooldown = head.MaxCooldown
	}
	s.links = nil
	return head, absorbed, true
}
