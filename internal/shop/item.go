// internal/shop/item.go
package shop

import (
	"hex-defense/internal/config"
	"hex-defense/internal/defs"
	"hex-defense/internal/utils"
	"hex-defense/pkg/hexmap"
)

// ItemCell — одна башня фигуры, смещение относительно центра.
type ItemCell struct {
	Offset hexmap.Hex
	Type   defs.TurretType
}

// Item — фигура из 1–3 башен, продаваемая в магазине.
type Item struct {
	Cells []ItemCell
	Cost  int
}

// Offsets returns the cell offsets in cell order.
func (it Item) Offsets() []hexmap.Hex {
	offsets := make([]hexmap.Hex, len(it.Cells))
	for i, c := range it.Cells {
		offsets[i] = c.Offset
	}
	return offsets
}

// NewItem builds an item from cells and prices it by size.
func NewItem(cells ...ItemCell) Item {
	return Item{Cells: cells, Cost: config.ItemCostPerCell * len(cells)}
}

// GenerateItem rolls a random shape: a walk over the hex directions from the
// origin, retrying any step that lands on a cell already in the shape.
func GenerateItem(prng *utils.PRNGService) Item {
	size := 1 + prng.Intn(config.MaxItemCells)
	cells := []ItemCell{{Type: prng.ChooseTurretType()}}
	taken := map[hexmap.Hex]bool{{}: true}

	current := hexmap.Hex{}
	for len(cells) < size {
		next := current.Neighbor(prng.Intn(6))
		if taken[next] {
			continue
		}
		taken[next] = true
		cells = append(cells, ItemCell{Offset: next, Type: prng.ChooseTurretType()})
		current = next
	}
	return NewItem(cells...)
}
