package defs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWaveFor(t *testing.T) {
	for n := 1; n <= 30; n++ {
		w := WaveFor(n)
		if w.Count != 10+2*n {
			t.Errorf("wave %d: count %d", n, w.Count)
		}
		if w.Health != 10+5*n {
			t.Errorf("wave %d: health %d", n, w.Health)
		}
		if w.Speed != 2+0.1*float64(n) {
			t.Errorf("wave %d: speed %v", n, w.Speed)
		}
		want := 1.0 - 0.05*float64(n)
		if want < 0.2 {
			want = 0.2
		}
		if w.SpawnInterval != want {
			t.Errorf("wave %d: interval %v, want %v", n, w.SpawnInterval, want)
		}
	}
	if WaveFor(40).SpawnInterval != 0.2 {
		t.Fatal("spawn interval is not floored at 0.2")
	}
}

func TestDefaultLibrary(t *testing.T) {
	lib := DefaultLibrary()
	want := map[TurretType]int{TurretRed: 2, TurretGreen: 5, TurretBlue: 1}
	for tt, dmg := range want {
		def, ok := lib.Get(tt)
		if !ok {
			t.Fatalf("missing %s", tt)
		}
		if def.Damage != dmg {
			t.Errorf("%s damage = %d, want %d", tt, def.Damage, dmg)
		}
		if def.Slows() != (tt == TurretBlue) {
			t.Errorf("%s Slows() = %v", tt, def.Slows())
		}
	}
	if lib[TurretRed].Cooldown != 0.2 || lib[TurretGreen].Cooldown != 1.0 {
		t.Fatal("unexpected base cooldowns")
	}
}

func TestDecodeTurretDefinitions(t *testing.T) {
	lib, err := DecodeTurretDefinitions(strings.NewReader(`[
		{"type": "green", "name": "Siege", "damage": 9, "cooldown": 2.5, "range": 6}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	if lib[TurretGreen].Damage != 9 || lib[TurretGreen].Range != 6 {
		t.Fatalf("override not applied: %+v", lib[TurretGreen])
	}
	if lib[TurretRed].Damage != 2 {
		t.Fatal("types missing from the file should keep defaults")
	}
}

func TestDecodeTurretDefinitionsRejectsBadInput(t *testing.T) {
	tests := map[string]string{
		"syntax":       `[{"type": "red",`,
		"unknown type": `[{"type": "purple", "damage": 1, "cooldown": 1, "range": 1}]`,
		"zero damage":  `[{"type": "red", "damage": 0, "cooldown": 1, "range": 1}]`,
		"bad cooldown": `[{"type": "red", "damage": 1, "cooldown": -1, "range": 1}]`,
		"bad slow":     `[{"type": "blue", "damage": 1, "cooldown": 1, "range": 1, "slow_factor": 2}]`,
		"duplicate":    `[{"type": "red", "damage": 1, "cooldown": 1, "range": 1}, {"type": "red", "damage": 1, "cooldown": 1, "range": 1}]`,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := DecodeTurretDefinitions(strings.NewReader(input)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestLoadTurretDefinitionsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turrets.json")
	if err := os.WriteFile(path, []byte(`[{"type": "blue", "damage": 2, "cooldown": 0.5, "range": 3, "slow_factor": 0.5}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	lib, err := LoadTurretDefinitions(path)
	if err != nil {
		t.Fatal(err)
	}
	if lib[TurretBlue].SlowFactor != 0.5 {
		t.Fatalf("blue = %+v", lib[TurretBlue])
	}

	if _, err := LoadTurretDefinitions(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
