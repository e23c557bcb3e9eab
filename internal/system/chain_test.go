package system

import (
	"math"
	"testing"

	"hex-defense/internal/component"
	"hex-defense/internal/defs"
	"hex-defense/internal/types"
	"hex-defense/pkg/hexmap"
)

func redRow(n int) []*component.Turret {
	var ts []*component.Turret
	for i := 0; i < n; i++ {
		ts = append(ts, newTurret(types.EntityID(i+1), hexmap.NewHex(i, 0), defs.TurretRed))
	}
	return ts
}

func TestChainCommitUpgradesHead(t *testing.T) {
	for n := 3; n <= 5; n++ {
		ts := redRow(n)
		cs := NewChainSystem()
		cs.Begin(ts[0])
		for _, tur := range ts[1:] {
			if !cs.Extend(tur) {
				t.Fatalf("n=%d: extend %v rejected", n, tur.Hex)
			}
		}
		origRange, origCooldown := ts[0].Range, ts[0].MaxCooldown

		head, absorbed, ok := cs.Commit()
		if !ok || head != ts[0] || len(absorbed) != n-1 {
			t.Fatalf("n=%d: commit ok=%v absorbed=%d", n, ok, len(absorbed))
		}
		if head.Range != origRange+float64(n-1) {
			t.Errorf("n=%d: range %v", n, head.Range)
		}
		want := origCooldown * math.Pow(0.8, float64(n-1))
		if math.Abs(head.MaxCooldown-want) > 1e-12 {
			t.Errorf("n=%d: max cooldown %v, want %v", n, head.MaxCooldown, want)
		}
		if cs.Active() {
			t.Error("chain should be cleared after commit")
		}
	}
}

func TestChainExtendRules(t *testing.T) {
	ts := redRow(3)
	cs := NewChainSystem()
	if cs.Extend(ts[0]) {
		t.Fatal("extend without a chain")
	}
	cs.Begin(ts[0])

	if cs.Extend(ts[2]) {
		t.Fatal("non-adjacent turret accepted")
	}
	green := newTurret(9, hexmap.NewHex(1, 0), defs.TurretGreen)
	if cs.Extend(green) {
		t.Fatal("turret of another type accepted")
	}
	if !cs.Extend(ts[1]) {
		t.Fatal("adjacent turret rejected")
	}
	if cs.Extend(ts[0]) {
		t.Fatal("turret linked twice")
	}
	if _, _, ok := cs.Commit(); ok {
		t.Fatal("chain of two committed")
	}
	if cs.Len() != 2 {
		t.Fatal("short commit should keep the chain")
	}
	cs.Cancel()
	if cs.Active() {
		t.Fatal("cancel left links")
	}
}
