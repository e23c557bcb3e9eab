// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadTurretDefinitions reads a JSON array of turret definitions. Types not
// present in the file keep their built-in stats.
func LoadTurretDefinitions(path string) (Library, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open turret definitions file: %w", err)
	}
	defer file.Close()

	return DecodeTurretDefinitions(file)
}

// DecodeTurretDefinitions is LoadTurretDefinitions for an already open reader.
func DecodeTurretDefinitions(r io.Reader) (Library, error) {
	var turretDefs []TurretDefinition
	if err := json.NewDecoder(r).Decode(&turretDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal turret definitions: %w", err)
	}

	lib := DefaultLibrary()
	seen := make(map[TurretType]bool, len(turretDefs))
	for _, def := range turretDefs {
		if err := def.validate(); err != nil {
			return nil, fmt.Errorf("invalid turret definition: %w", err)
		}
		if seen[def.Type] {
			return nil, fmt.Errorf("duplicate turret definition %q", def.Type)
		}
		seen[def.Type] = true
		lib[def.Type] = def
	}
	return lib, nil
}
