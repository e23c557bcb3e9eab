// internal/component/movement.go
package component

import "hex-defense/pkg/hexmap"

// Path — маршрут, по которому идёт враг. Hexes принадлежит сессии и не
// изменяется врагом; CurrentIndex указывает на последний достигнутый узел.
type Path struct {
	Hexes        []hexmap.Hex
	CurrentIndex int
}

// Last reports whether the enemy stands on the final node.
func (p Path) Last() bool {
	return p.CurrentIndex >= len(p.Hexes)-1
}
