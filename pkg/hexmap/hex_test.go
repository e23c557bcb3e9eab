package hexmap

import (
	"math"
	"testing"
)

func TestHexOperationsKeepCubeConstraint(t *testing.T) {
	h := NewHex(3, -5)
	ops := []func(Hex) Hex{
		func(x Hex) Hex { return x.Add(NewHex(-2, 7)) },
		func(x Hex) Hex { return x.Subtract(NewHex(4, 1)) },
		func(x Hex) Hex { return x.Scale(-3) },
		func(x Hex) Hex { return x.Neighbor(4) },
		func(x Hex) Hex { return x.Neighbor(-1) },
		func(x Hex) Hex { return x.Neighbor(13) },
	}
	for round := 0; round < 5; round++ {
		for i, op := range ops {
			h = op(h)
			if !h.Valid() {
				t.Fatalf("round %d op %d: %v violates q+r+s == 0", round, i, h)
			}
		}
	}
}

func TestDirectionsAreUnitAndDistinct(t *testing.T) {
	seen := map[Hex]bool{}
	origin := Hex{}
	for i, d := range Directions {
		if !d.Valid() || d.Length() != 1 {
			t.Errorf("direction %d = %v is not a unit cube vector", i, d)
		}
		if seen[d] {
			t.Errorf("direction %d duplicated", i)
		}
		seen[d] = true
		if origin.Neighbor(i) != d {
			t.Errorf("Neighbor(%d) = %v, want %v", i, origin.Neighbor(i), d)
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b Hex
		want int
	}{
		{NewHex(0, 0), NewHex(0, 0), 0},
		{NewHex(0, 0), NewHex(2, -1), 2},
		{NewHex(0, -8), NewHex(0, 8), 16},
		{NewHex(-3, 1), NewHex(2, 2), 6},
	}
	for _, tt := range tests {
		if got := tt.a.Distance(tt.b); got != tt.want {
			t.Errorf("%v.Distance(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.Distance(tt.a); got != tt.want {
			t.Errorf("distance is not symmetric for %v, %v", tt.a, tt.b)
		}
	}
}

func TestStringKey(t *testing.T) {
	if got := NewHex(2, -3).String(); got != "2,-3,1" {
		t.Fatalf("String() = %q", got)
	}
}

func TestRoundCorrectsLargestError(t *testing.T) {
	// Naive rounding would give (0,0,-1), which breaks the constraint.
	f := FracHex{Q: 0.4, R: 0.3, S: -0.7}
	got := f.Round()
	if !got.Valid() {
		t.Fatalf("Round() = %v is not a valid cube coordinate", got)
	}
	if want := (Hex{Q: 1, R: 0, S: -1}); got != want {
		t.Fatalf("Round() = %v, want %v", got, want)
	}
}

func TestFracDistanceSq(t *testing.T) {
	f := NewHex(0, 0).Frac()
	if got := f.DistanceSq(NewHex(1, -1)); got != 2 {
		t.Fatalf("adjacent DistanceSq = %v, want 2", got)
	}
	mid := f.Lerp(NewHex(2, 0), 0.5)
	if got := mid.DistanceSq(NewHex(2, 0)); math.Abs(got-2) > 1e-12 {
		t.Fatalf("DistanceSq after Lerp = %v, want 2", got)
	}
}
