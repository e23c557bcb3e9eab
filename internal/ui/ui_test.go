package ui

import (
	"image/color"
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"

	"hex-defense/internal/app"
	"hex-defense/internal/component"
)

func TestToRoman(t *testing.T) {
	tests := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for n, want := range tests {
		if got := toRoman(n); got != want {
			t.Errorf("toRoman(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestWaveLabel(t *testing.T) {
	w := NewWaveIndicator(0, 0, basicfont.Face7x13)
	prep := w.Label(app.WaveView{Number: 3, Phase: component.Preparing, Countdown: 2.25})
	if prep != "Wave III in 2.2s" && prep != "Wave III in 2.3s" {
		t.Fatalf("preparing label = %q", prep)
	}
	active := w.Label(app.WaveView{Number: 3, Phase: component.Active, Remaining: 7})
	if !strings.Contains(active, "7 left") {
		t.Fatalf("active label = %q", active)
	}
}

func TestHUDLinesGroupThousands(t *testing.T) {
	h := NewHUD(basicfont.Face7x13)
	lines := h.Lines(app.Snapshot{Gold: 12345, Lives: 20, Score: 1000000})
	if lines[0] != "Gold  12,345" || lines[2] != "Score 1,000,000" {
		t.Fatalf("lines = %q", lines)
	}
}

func TestShopPanelHitTest(t *testing.T) {
	p := NewShopPanel(basicfont.Face7x13)
	r := p.Slots[1]
	if i, ok := p.SlotAt(r.Min.X+1, r.Min.Y+1); !ok || i != 1 {
		t.Fatalf("slot = %d, %v", i, ok)
	}
	if _, ok := p.SlotAt(0, 0); ok {
		t.Fatal("corner hit a slot")
	}
	p.Toggle(2)
	p.Toggle(2)
	if p.Selected != -1 {
		t.Fatal("second toggle should clear the selection")
	}
}

func TestSpeedButtonCycles(t *testing.T) {
	b := NewSpeedButton(100, 100, 10, make([]color.RGBA, 3))
	want := []float64{2, 4, 1}
	for i, m := range want {
		b.ToggleState()
		if b.Multiplier() != m {
			t.Fatalf("toggle %d: multiplier %v, want %v", i+1, b.Multiplier(), m)
		}
	}
	if !b.Contains(105, 100) || b.Contains(200, 200) {
		t.Fatal("hit area is off")
	}
}
