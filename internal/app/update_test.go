package app

import (
	"testing"

	"hex-defense/internal/component"
	"hex-defense/internal/config"
	"hex-defense/internal/defs"
	"hex-defense/internal/event"
	"hex-defense/internal/types"
	"hex-defense/pkg/hexmap"
)

func TestEnemyEscapesAndCostsLife(t *testing.T) {
	s := newTestSession(t, 2)
	var escaped []types.EntityID
	s.Subscribe(event.EnemyEscaped, event.ListenerFunc(func(e event.Event) {
		escaped = append(escaped, e.Data.(types.EntityID))
	}))

	s.Update(config.PreparationTime)
	if s.Wave().Phase != component.Active || len(s.Enemies()) != 1 {
		t.Fatalf("wave = %+v, enemies = %d", s.Wave(), len(s.Enemies()))
	}
	// Column path of 5 nodes, one segment per frame.
	for i := 0; i < 3; i++ {
		s.Update(1)
	}
	if s.Lives() != config.StartLives {
		t.Fatal("enemy escaped early")
	}
	s.Update(1)
	if s.Lives() != config.StartLives-1 || len(escaped) != 1 || escaped[0] != 1 {
		t.Fatalf("lives = %d, escaped = %v", s.Lives(), escaped)
	}
}

func TestGameOverFreezesSession(t *testing.T) {
	s := newTestSession(t, 2)
	overs := countEvents(s, event.GameOver)
	for i := 0; i < 2000 && !s.GameOver(); i++ {
		s.Update(0.5)
	}
	if !s.GameOver() || s.Lives() != 0 {
		t.Fatalf("game over = %v, lives = %d", s.GameOver(), s.Lives())
	}
	elapsed := s.GameTime()
	s.Update(1)
	s.Update(1)
	if s.GameTime() != elapsed {
		t.Fatal("update after game over advanced time")
	}
	if *overs != 1 {
		t.Fatalf("GameOver dispatched %d times", *overs)
	}
	if s.PlaceItem(single(defs.TurretRed), hexmap.NewHex(1, -1)) || s.Reroll() {
		t.Fatal("commands accepted after game over")
	}
}

func TestTurretsKillForGoldAndScore(t *testing.T) {
	s := newTestSession(t, 2)
	s.PlaceItem(single(defs.TurretRed), hexmap.NewHex(1, -1))
	s.PlaceItem(single(defs.TurretGreen), hexmap.NewHex(-1, 1))
	gold := s.Gold()
	kills := countEvents(s, event.EnemyKilled)

	s.Update(config.PreparationTime)
	for i := 0; i < 200; i++ {
		s.Update(0.05)
	}
	if *kills == 0 {
		t.Fatal("no enemy was killed")
	}
	hp := defs.WaveFor(1).Health
	if s.Score() != hp**kills {
		t.Fatalf("score = %d after %d kills", s.Score(), *kills)
	}
	if s.Gold() != gold+config.KillReward**kills {
		t.Fatalf("gold = %d after %d kills", s.Gold(), *kills)
	}
}

func TestPlacementReattachesEnemies(t *testing.T) {
	s := newTestSession(t, 2)
	s.Update(config.PreparationTime - 0.01)
	s.Update(0.02)
	if len(s.enemies) != 1 {
		t.Fatalf("enemies = %d", len(s.enemies))
	}
	blocker := hexmap.NewHex(0, -1)
	if !s.PlaceItem(single(defs.TurretBlue), blocker) {
		t.Fatal("placement on the path rejected")
	}
	e := s.enemies[0]
	if e.Path.CurrentIndex != 0 || e.Path.Hexes[0] != s.Grid().Start {
		t.Fatalf("enemy path = %v idx %d", e.Path.Hexes, e.Path.CurrentIndex)
	}
	for _, h := range e.Path.Hexes {
		if h == blocker {
			t.Fatal("enemy still routed through the new turret")
		}
	}
	for i := 1; i < len(e.Path.Hexes); i++ {
		if e.Path.Hexes[i].Distance(e.Path.Hexes[i-1]) != 1 {
			t.Fatal("reattached path is not contiguous")
		}
	}
}

func TestNegativeDeltaIsIgnored(t *testing.T) {
	s := newTestSession(t, 2)
	s.Update(-3)
	if s.Wave().Countdown != config.PreparationTime || s.GameTime() != 0 {
		t.Fatal("negative delta changed the session")
	}
}

func TestSnapshot(t *testing.T) {
	s := newTestSession(t, 2)
	s.PlaceItem(single(defs.TurretGreen), hexmap.NewHex(1, -1))
	s.Update(config.PreparationTime)

	snap := s.Snapshot()
	if len(snap.Cells) != 19 || len(snap.Turrets) != 1 || len(snap.Shop) != config.ShopSlots {
		t.Fatalf("snapshot sizes: cells %d turrets %d shop %d", len(snap.Cells), len(snap.Turrets), len(snap.Shop))
	}
	if snap.Turrets[0].DPS != 5 {
		t.Fatalf("green DPS = %v", snap.Turrets[0].DPS)
	}
	if snap.Wave.Remaining != defs.WaveFor(1).Count {
		t.Fatalf("remaining = %d", snap.Wave.Remaining)
	}
	if len(snap.Enemies) != 1 || snap.Enemies[0].HPFraction <= 0 {
		t.Fatalf("enemies = %+v", snap.Enemies)
	}
	snap.Path[0] = hexmap.NewHex(9, 9)
	if s.Path()[0] == snap.Path[0] {
		t.Fatal("snapshot shares the path slice")
	}
}
