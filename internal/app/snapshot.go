// internal/app/snapshot.go
package app

import (
	"hex-defense/internal/component"
	"hex-defense/internal/defs"
	"hex-defense/internal/shop"
	"hex-defense/internal/types"
	"hex-defense/pkg/hexmap"
)

// TurretView — башня для отрисовки и подсказок.
type TurretView struct {
	ID          types.EntityID
	Hex         hexmap.Hex
	Type        defs.TurretType
	Range       float64
	Cooldown    float64
	MaxCooldown float64
	DPS         float64
	Refund      int
	Chained     bool
}

// EnemyView — враг для отрисовки.
type EnemyView struct {
	ID         types.EntityID
	Pos        hexmap.FracHex
	HPFraction float64
	Speed      float64
}

// WaveView — сводка по волне для HUD.
type WaveView struct {
	Number    int
	Phase     component.WavePhase
	Countdown float64
	Remaining int // ещё не вышли + живые на поле
}

// ShotView — луч выстрела последнего кадра.
type ShotView struct {
	From hexmap.Hex
	To   hexmap.FracHex
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Cells    []hexmap.Cell
	Path     []hexmap.Hex
	Start    hexmap.Hex
	End      hexmap.Hex
	Turrets  []TurretView
	Enemies  []EnemyView
	Shots    []ShotView
	Wave     WaveView
	Shop     []shop.Item
	Chain    []hexmap.Hex
	Gold     int
	Lives    int
	Score    int
	GameOver bool
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Path:     s.Path(),
		Start:    s.HexMap.Start,
		End:      s.HexMap.End,
		Turrets:  s.Turrets(),
		Enemies:  s.Enemies(),
		Wave:     s.Wave(),
		Shop:     s.shop.Items(),
		Gold:     s.gold,
		Lives:    s.lives,
		Score:    s.score,
		GameOver: s.gameOver,
	}
	for _, h := range s.HexMap.Hexes() {
		c, _ := s.HexMap.Get(h)
		snap.Cells = append(snap.Cells, *c)
	}
	for _, t := range s.chainSystem.Links() {
		snap.Chain = append(snap.Chain, t.Hex)
	}
	snap.Shots = s.Shots()
	return snap
}

func (s *Session) Gold() int      { return s.gold }
func (s *Session) Lives() int     { return s.lives }
func (s *Session) Score() int     { return s.score }
func (s *Session) GameOver() bool { return s.gameOver }

// GameTime is the total simulated time.
func (s *Session) GameTime() float64 { return s.gameTime }

// Grid exposes the board. Callers must not retype cells.
func (s *Session) Grid() *hexmap.HexMap { return s.HexMap }

// Path returns a copy of the current route.
func (s *Session) Path() []hexmap.Hex {
	return append([]hexmap.Hex(nil), s.path...)
}

func (s *Session) Turrets() []TurretView {
	views := make([]TurretView, 0, len(s.turrets))
	for _, t := range s.turrets {
		def, _ := s.library.Get(t.Type)
		views = append(views, TurretView{
			ID:          t.ID,
			Hex:         t.Hex,
			Type:        t.Type,
			Range:       t.Range,
			Cooldown:    t.Cooldown,
			MaxCooldown: t.MaxCooldown,
			DPS:         def.DPS(t.MaxCooldown),
			Refund:      s.sellRefund(t),
			Chained:     s.chainSystem.Contains(t.ID),
		})
	}
	return views
}

// Enemies lists enemies still on the field, in spawn order.
func (s *Session) Enemies() []EnemyView {
	views := make([]EnemyView, 0, len(s.enemies))
	for _, e := range s.enemies {
		if !e.Active() {
			continue
		}
		views = append(views, EnemyView{ID: e.ID, Pos: e.Pos, HPFraction: e.HPFraction(), Speed: e.Speed})
	}
	return views
}

func (s *Session) Wave() WaveView {
	w := s.waveSystem.Wave()
	return WaveView{
		Number:    w.Number,
		Phase:     w.Phase,
		Countdown: w.Countdown,
		Remaining: w.Remaining() + s.liveEnemies(),
	}
}

// ShopItems returns the current shop stock.
func (s *Session) ShopItems() []shop.Item {
	return s.shop.Items()
}

// Shots returns the hits of the last frame.
func (s *Session) Shots() []ShotView {
	var views []ShotView
	for _, shot := range s.lastShots {
		from, ok := s.turretByID(shot.TurretID)
		if !ok {
			continue
		}
		for _, e := range s.enemies {
			if e.ID == shot.EnemyID {
				views = append(views, ShotView{From: from.Hex, To: e.Pos})
				break
			}
		}
	}
	return views
}

func (s *Session) turretByID(id types.EntityID) (*component.Turret, bool) {
	for _, t := range s.turrets {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}
