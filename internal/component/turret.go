// internal/component/turret.go
package component

import (
	"hex-defense/internal/defs"
	"hex-defense/internal/types"
	"hex-defense/pkg/hexmap"
)

// Turret занимает ровно одну клетку поля.
type Turret struct {
	ID          types.EntityID
	Hex         hexmap.Hex // Гекс, на котором стоит башня
	Type        defs.TurretType
	Range       float64 // Радиус действия в кубическом пространстве
	Cooldown    float64 // Оставшееся время до следующего выстрела
	MaxCooldown float64 // Перезарядка после выстрела
}
