// internal/component/enemy.go
package component

import (
	"hex-defense/internal/types"
	"hex-defense/pkg/hexmap"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID         types.EntityID
	Pos        hexmap.FracHex // Дробная позиция в кубических координатах
	Path       Path
	Speed      float64 // Гексов в секунду, синие башни уменьшают её
	HP         int
	MaxHP      int
	Alive      bool
	ReachedEnd bool // Достиг ли враг конца пути
}

// HPFraction is the remaining health in [0, 1].
func (e *Enemy) HPFraction() float64 {
	if e.MaxHP <= 0 || e.HP <= 0 {
		return 0
	}
	return float64(e.HP) / float64(e.MaxHP)
}

// Active reports whether the enemy is still on the field.
func (e *Enemy) Active() bool {
	return e.Alive && !e.ReachedEnd
}
