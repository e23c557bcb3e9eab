package hexmap

import (
	"bytes"
	"testing"
)

func TestNewHexMapShape(t *testing.T) {
	for _, radius := range []int{1, 2, 5, 8} {
		hm := NewHexMap(radius)
		want := 3*radius*(radius+1) + 1
		if hm.Len() != want || len(hm.Tiles) != want {
			t.Errorf("radius %d: %d cells, want %d", radius, hm.Len(), want)
		}
		for h := range hm.Tiles {
			if h.Length() > radius {
				t.Errorf("radius %d: %v lies outside the board", radius, h)
			}
			if !h.Valid() {
				t.Errorf("radius %d: invalid key %v", radius, h)
			}
		}
		if hm.Start != NewHex(0, -radius) || hm.End != NewHex(0, radius) {
			t.Errorf("radius %d: start %v end %v", radius, hm.Start, hm.End)
		}
	}
}

func TestSetOnlyRetypes(t *testing.T) {
	hm := NewHexMap(2)
	if hm.Set(NewHex(5, 0), CellTurret) {
		t.Fatal("Set outside the board reported success")
	}
	if hm.Contains(NewHex(5, 0)) {
		t.Fatal("Set added a hex")
	}
	if !hm.Set(NewHex(1, 0), CellWall) {
		t.Fatal("Set on board failed")
	}
	if ct, _ := hm.Type(NewHex(1, 0)); ct != CellWall {
		t.Fatalf("type = %v, want wall", ct)
	}
	if hm.Len() != 19 {
		t.Fatalf("Len changed to %d", hm.Len())
	}
	if hm.Count(CellWall) != 1 {
		t.Fatalf("Count(wall) = %d", hm.Count(CellWall))
	}
}

func TestSerializeTracksChanges(t *testing.T) {
	hm := NewHexMap(2)
	before := hm.Serialize()
	if !bytes.Equal(before, hm.Serialize()) {
		t.Fatal("Serialize is not stable")
	}
	hm.Set(NewHex(0, 0), CellTurret)
	if bytes.Equal(before, hm.Serialize()) {
		t.Fatal("Serialize did not change after Set")
	}
}

func TestGetHexesInRange(t *testing.T) {
	hm := NewHexMap(3)
	got := hm.GetHexesInRange(NewHex(0, 0), 1)
	if len(got) != 7 {
		t.Fatalf("got %d hexes, want 7", len(got))
	}
	if got[0] != NewHex(0, 0) {
		t.Fatalf("closest hex should come first, got %v", got[0])
	}
	// corner of the board: only part of the ring is on the map
	if n := len(hm.GetHexesInRange(NewHex(3, 0), 1)); n != 4 {
		t.Fatalf("corner range has %d hexes, want 4", n)
	}
}
