// internal/app/turret_management.go
package app

import (
	"math"

	"hex-defense/internal/component"
	"hex-defense/internal/config"
	"hex-defense/internal/event"
	"hex-defense/internal/shop"
	"hex-defense/internal/system"
	"hex-defense/internal/types"
	"hex-defense/pkg/hexmap"
)

// CanPlaceItem reports whether item fits at center and is affordable.
// The board is never touched.
func (s *Session) CanPlaceItem(item shop.Item, center hexmap.Hex) bool {
	if s.gameOver || len(item.Cells) == 0 || s.gold < item.Cost {
		return false
	}
	return hexmap.CanPlace(s.HexMap, item.Offsets(), center)
}

// PlaceItem pays for item and builds its turrets around center.
func (s *Session) PlaceItem(item shop.Item, center hexmap.Hex) bool {
	if !s.CanPlaceItem(item, center) {
		s.logger.Debug("placement rejected", "center", center.String(), "cells", len(item.Cells), "gold", s.gold)
		return false
	}

	ids := make([]types.EntityID, 0, len(item.Cells))
	for _, c := range item.Cells {
		ids = append(ids, s.createTurret(center.Add(c.Offset), c))
	}
	s.addGold(-item.Cost)
	s.recomputePath()

	s.logger.Info("turrets placed", "center", center.String(), "count", len(ids), "cost", item.Cost)
	s.dispatch(event.TurretPlaced, ids)
	return true
}

// CanBuy is CanPlaceItem for the item in a shop slot.
func (s *Session) CanBuy(slot int, center hexmap.Hex) bool {
	item, ok := s.shop.Item(slot)
	return ok && s.CanPlaceItem(item, center)
}

// Buy places the item from a shop slot and restocks that slot.
func (s *Session) Buy(slot int, center hexmap.Hex) bool {
	item, ok := s.shop.Item(slot)
	if !ok || !s.PlaceItem(item, center) {
		return false
	}
	s.shop.Take(slot)
	return true
}

// Reroll replaces the shop stock for config.RerollCost gold.
func (s *Session) Reroll() bool {
	if s.gameOver || s.gold < config.RerollCost {
		return false
	}
	s.addGold(-config.RerollCost)
	s.shop.Reroll()
	return true
}

// SellTurret removes the turret on hex and refunds by its range.
func (s *Session) SellTurret(hex hexmap.Hex) bool {
	if s.gameOver {
		return false
	}
	t, ok := s.TurretAt(hex)
	if !ok {
		return false
	}
	refund := s.sellRefund(t)
	if s.chainSystem.Contains(t.ID) {
		s.chainSystem.Cancel()
	}
	s.removeTurret(t.ID)
	s.addGold(refund)
	s.recomputePath()

	s.logger.Info("turret sold", "hex", hex.String(), "type", string(t.Type), "refund", refund)
	s.dispatch(event.TurretSold, t.ID)
	return true
}

// MoveTurret carries the turret on from to the free cell to, as long as
// enemies still have a route afterwards. Moving is free. A chain holding the
// turret is cancelled since adjacency no longer holds.
func (s *Session) MoveTurret(from, to hexmap.Hex) bool {
	if s.gameOver {
		return false
	}
	t, ok := s.TurretAt(from)
	if !ok || !hexmap.CanMove(s.HexMap, from, to) {
		s.logger.Debug("move rejected", "from", from.String(), "to", to.String())
		return false
	}
	if s.chainSystem.Contains(t.ID) {
		s.chainSystem.Cancel()
	}
	if s.sellHold != nil && s.sellHold.hex == from {
		s.sellHold = nil
	}

	s.HexMap.Set(from, hexmap.CellEmpty)
	s.HexMap.Set(to, hexmap.CellTurret)
	t.Hex = to
	s.recomputePath()

	s.logger.Info("turret moved", "from", from.String(), "to", to.String(), "type", string(t.Type))
	s.dispatch(event.TurretMoved, t.ID)
	return true
}

// SellRefund is 5 gold plus 2 per point of range a turret gained over
// baseRange, the range its type is built with.
func SellRefund(turretRange, baseRange float64) int {
	refund := config.SellBaseRefund + int(math.Floor((turretRange-baseRange)*config.SellRefundPerRange))
	return max(refund, 0)
}

func (s *Session) sellRefund(t *component.Turret) int {
	def, ok := s.library.Get(t.Type)
	if !ok {
		return SellRefund(t.Range, config.TurretBaseRange)
	}
	return SellRefund(t.Range, def.Range)
}

// BeginSellHold starts the timed sell of the turret on hex.
func (s *Session) BeginSellHold(hex hexmap.Hex) bool {
	if s.gameOver {
		return false
	}
	if _, ok := s.TurretAt(hex); !ok {
		s.sellHold = nil
		return false
	}
	s.sellHold = &sellHold{hex: hex}
	return true
}

// PointerMoved cancels a sell hold once the pointer leaves its cell.
func (s *Session) PointerMoved(hex hexmap.Hex) {
	if s.sellHold != nil && s.sellHold.hex != hex {
		s.sellHold = nil
	}
}

// ReleaseSellHold cancels an unfinished sell hold.
func (s *Session) ReleaseSellHold() {
	s.sellHold = nil
}

// SellHoldProgress reports the held hex and how far the hold is, in [0, 1).
func (s *Session) SellHoldProgress() (hexmap.Hex, float64, bool) {
	if s.sellHold == nil {
		return hexmap.Hex{}, 0, false
	}
	return s.sellHold.hex, s.sellHold.elapsed / config.SellHoldDuration, true
}

// BeginChain starts a chain at the turret on hex.
func (s *Session) BeginChain(hex hexmap.Hex) bool {
	t, ok := s.TurretAt(hex)
	if s.gameOver || !ok {
		return false
	}
	s.chainSystem.Begin(t)
	return true
}

// ExtendChain adds the turret on hex to the chain in progress.
func (s *Session) ExtendChain(hex hexmap.Hex) bool {
	t, ok := s.TurretAt(hex)
	if !ok {
		return false
	}
	return s.chainSystem.Extend(t)
}

// CancelChain drops the chain in progress.
func (s *Session) CancelChain() {
	s.chainSystem.Cancel()
}

// CommitChain merges a chain of at least config.MinChainLength turrets into
// its first turret; the others leave the board.
func (s *Session) CommitChain() bool {
	if s.gameOver {
		return false
	}
	head, absorbed, ok := s.chainSystem.Commit()
	if !ok {
		return false
	}
	for _, t := range absorbed {
		s.removeTurret(t.ID)
	}
	s.recomputePath()

	s.logger.Info("chain merged", "head", head.Hex.String(), "length", len(absorbed)+1,
		"range", head.Range, "max_cooldown", head.MaxCooldown)
	s.dispatch(event.ChainMerged, head.ID)
	return true
}

// TurretAt returns the turret standing on hex.
func (s *Session) TurretAt(hex hexmap.Hex) (*component.Turret, bool) {
	for _, t := range s.turrets {
		if t.Hex == hex {
			return t, true
		}
	}
	return nil, false
}

func (s *Session) createTurret(hex hexmap.Hex, cell shop.ItemCell) types.EntityID {
	def, _ := s.library.Get(cell.Type)
	t := &component.Turret{
		ID:          s.newID(),
		Hex:         hex,
		Type:        cell.Type,
		Range:       def.Range,
		MaxCooldown: def.Cooldown,
	}
	s.turrets = append(s.turrets, t)
	s.HexMap.Set(hex, hexmap.CellTurret)
	return t.ID
}

func (s *Session) removeTurret(id types.EntityID) {
	for i, t := range s.turrets {
		if t.ID == id {
			s.HexMap.Set(t.Hex, hexmap.CellEmpty)
			s.turrets = append(s.turrets[:i], s.turrets[i+1:]...)
			return
		}
	}
}

// recomputePath re-runs the path search after the board changed and
// re-anchors every enemy still walking.
func (s *Session) recomputePath() {
	path, ok := s.HexMap.ComputePath()
	if !ok {
		// Placement checks connectivity first, so the old path stays.
		s.logger.Error("path lost after board change", "turrets", len(s.turrets))
		return
	}
	s.path = path
	for _, e := range s.enemies {
		if e.Active() {
			system.Reattach(e, path)
		}
	}
	s.dispatch(event.GridChanged, s.Path())
}
