// pkg/hexmap/map.go
package hexmap

import (
	"bytes"
	"sort"
)

// CellType is the state of one board cell.
type CellType uint8

const (
	CellEmpty CellType = iota
	CellPath
	CellWall
	CellTurret
)

func (c CellType) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellPath:
		return "path"
	case CellWall:
		return "wall"
	case CellTurret:
		return "turret"
	default:
		return "unknown"
	}
}

// Blocking reports whether enemies cannot walk through the cell.
func (c CellType) Blocking() bool {
	return c == CellWall || c == CellTurret
}

type Cell struct {
	Hex  Hex
	Type CellType
}

// HexMap — игровое поле: шестиугольная область радиуса Radius.
// Набор гексов фиксируется при создании, дальше меняются только типы клеток.
type HexMap struct {
	Tiles  map[Hex]*Cell
	Radius int
	Start  Hex
	End    Hex

	order []Hex
}

// NewHexMap заполняет все гексы на расстоянии <= radius от центра как пустые.
// Start и End лежат на концах центральной колонки.
func NewHexMap(radius int) *HexMap {
	if radius < 1 {
		radius = 1
	}
	tiles := make(map[Hex]*Cell)
	order := make([]Hex, 0, 3*radius*(radius+1)+1)

	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			h := NewHex(q, r)
			tiles[h] = &Cell{Hex: h, Type: CellEmpty}
			order = append(order, h)
		}
	}

	return &HexMap{
		Tiles:  tiles,
		Radius: radius,
		Start:  Hex{Q: 0, R: -radius, S: radius},
		End:    Hex{Q: 0, R: radius, S: -radius},
		order:  order,
	}
}

// Get возвращает клетку, если гекс принадлежит карте.
func (hm *HexMap) Get(h Hex) (*Cell, bool) {
	c, ok := hm.Tiles[h]
	return c, ok
}

// Type returns the cell type, or false when the hex is off the board.
func (hm *HexMap) Type(h Hex) (CellType, bool) {
	if c, ok := hm.Tiles[h]; ok {
		return c.Type, true
	}
	return CellEmpty, false
}

// Set retypes a cell. Hexes outside the board are ignored.
func (hm *HexMap) Set(h Hex, t CellType) bool {
	c, ok := hm.Tiles[h]
	if !ok {
		return false
	}
	c.Type = t
	return true
}

func (hm *HexMap) Contains(h Hex) bool {
	_, exists := hm.Tiles[h]
	return exists
}

// IsPassable reports whether h is on the board and not blocking.
func (hm *HexMap) IsPassable(h Hex) bool {
	if c, ok := hm.Tiles[h]; ok {
		return !c.Type.Blocking()
	}
	return false
}

// Hexes returns all board hexes, ordered by q then r.
func (hm *HexMap) Hexes() []Hex {
	out := make([]Hex, len(hm.order))
	copy(out, hm.order)
	return out
}

// Len is the number of cells on the board.
func (hm *HexMap) Len() int {
	return len(hm.order)
}

// Count returns how many cells have the given type.
func (hm *HexMap) Count(t CellType) int {
	n := 0
	for _, h := range hm.order {
		if hm.Tiles[h].Type == t {
			n++
		}
	}
	return n
}

// Serialize writes every cell type in board order. Two calls return equal
// bytes iff no cell changed in between.
func (hm *HexMap) Serialize() []byte {
	var buf bytes.Buffer
	for _, h := range hm.order {
		buf.WriteString(h.String())
		buf.WriteByte('=')
		buf.WriteByte('0' + byte(hm.Tiles[h].Type))
		buf.WriteByte(';')
	}
	return buf.Bytes()
}

// GetHexesInRange возвращает гексы карты на расстоянии <= radius от center
func (hm *HexMap) GetHexesInRange(center Hex, radius int) []Hex {
	var result []Hex
	for _, h := range hm.order {
		if h.Distance(center) <= radius {
			result = append(result, h)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Distance(center) < result[j].Distance(center)
	})
	return result
}
