package hexmap

import (
	"bytes"
	"testing"
)

var single = []Hex{{}}

func TestCanPlaceOffCriticalPath(t *testing.T) {
	hm := NewHexMap(2)
	path, ok := hm.ComputePath()
	if !ok || len(path) == 0 {
		t.Fatal("no path on an empty radius-2 board")
	}
	if hm.Len() != 19 {
		t.Fatalf("board has %d cells, want 19", hm.Len())
	}
	onPath := map[Hex]bool{}
	for _, h := range path {
		onPath[h] = true
	}
	for _, h := range hm.Hexes() {
		if onPath[h] {
			continue
		}
		if !CanPlace(hm, single, h) {
			t.Errorf("single cell at %v rejected", h)
		}
	}
}

func TestCanPlaceRejectsBadTargets(t *testing.T) {
	hm := NewHexMap(2)
	hm.ComputePath()
	hm.Set(NewHex(1, 0), CellWall)
	hm.Set(NewHex(-1, 0), CellTurret)

	pair := []Hex{{}, Directions[0]}
	tests := []struct {
		name    string
		offsets []Hex
		center  Hex
	}{
		{"off board", single, NewHex(3, 0)},
		{"partly off board", pair, NewHex(2, 0)},
		{"wall", single, NewHex(1, 0)},
		{"turret", single, NewHex(-1, 0)},
		{"shape over turret", pair, NewHex(-2, 0)},
		{"start", single, hm.Start},
		{"end", single, hm.End},
		{"empty shape", nil, NewHex(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := hm.Serialize()
			if CanPlace(hm, tt.offsets, tt.center) {
				t.Fatal("placement accepted")
			}
			if !bytes.Equal(before, hm.Serialize()) {
				t.Fatal("CanPlace mutated the grid")
			}
		})
	}
}

func TestCanPlaceNeverSeversRoute(t *testing.T) {
	hm := NewHexMap(2)
	hm.ComputePath()

	// Every route crosses row r=0; fill it from both sides.
	for _, q := range []int{-2, -1, 1, 2} {
		h := NewHex(q, 0)
		before := hm.Serialize()
		if !CanPlace(hm, single, h) {
			t.Fatalf("alternate-route cell %v rejected", h)
		}
		if !bytes.Equal(before, hm.Serialize()) {
			t.Fatal("accepting CanPlace mutated the grid")
		}
		hm.Set(h, CellTurret)
		if _, ok := hm.ComputePath(); !ok {
			t.Fatalf("route lost after placing %v", h)
		}
	}

	before := hm.Serialize()
	if CanPlace(hm, single, NewHex(0, 0)) {
		t.Fatal("placement on the last corridor cell accepted")
	}
	if !bytes.Equal(before, hm.Serialize()) {
		t.Fatal("rejecting CanPlace mutated the grid")
	}
}

func TestCanPlaceMultiCellShape(t *testing.T) {
	hm := NewHexMap(3)
	hm.ComputePath()
	tri := []Hex{{}, Directions[0], Directions[0].Add(Directions[5])}
	if !CanPlace(hm, tri, NewHex(-3, 1)) {
		t.Fatal("tri shape on the open flank rejected")
	}
	// A long bar across the whole middle row leaves no way through.
	bar := []Hex{NewHex(-3, 0), NewHex(-2, 0), NewHex(-1, 0), NewHex(0, 0), NewHex(1, 0), NewHex(2, 0), NewHex(3, 0)}
	if CanPlace(hm, bar, NewHex(0, 0)) {
		t.Fatal("severing bar accepted")
	}
	dup := []Hex{{}, {}}
	if CanPlace(hm, dup, NewHex(-2, 1)) {
		t.Fatal("shape with overlapping cells accepted")
	}
}

func TestCanMove(t *testing.T) {
	hm := NewHexMap(1)
	center, right, rightWall := NewHex(0, 0), NewHex(1, -1), NewHex(1, 0)
	left, leftEnd := NewHex(-1, 0), NewHex(-1, 1)
	hm.Set(center, CellTurret)
	hm.Set(right, CellTurret)
	hm.Set(rightWall, CellWall)
	hm.ComputePath()
	before := hm.Serialize()

	tests := []struct {
		name     string
		from, to Hex
		want     bool
	}{
		{"same cell", center, center, false},
		{"no turret at source", left, leftEnd, false},
		{"off board", right, NewHex(2, 0), false},
		{"onto wall", center, rightWall, false},
		{"onto turret", center, right, false},
		{"seals the last route", right, left, false},
		{"freed cell reopens a route", center, left, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanMove(hm, tc.from, tc.to); got != tc.want {
				t.Fatalf("CanMove(%v, %v) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
			if !bytes.Equal(before, hm.Serialize()) {
				t.Fatal("CanMove modified the board")
			}
		})
	}
}
