// pkg/hexmap/placement.go
package hexmap

// Footprint translates relative offsets to absolute hexes around center.
func Footprint(offsets []Hex, center Hex) []Hex {
	cells := make([]Hex, len(offsets))
	for i, off := range offsets {
		cells[i] = center.Add(off)
	}
	return cells
}

// CanPlace проверяет, можно ли поставить фигуру из offsets с центром в center.
// Каждая целевая клетка должна существовать и не быть стеной или башней, а
// после постановки Start должен оставаться связан с End. Проверка только
// симулирует блокировку через отдельное множество и карту не трогает.
func CanPlace(hm *HexMap, offsets []Hex, center Hex) bool {
	if len(offsets) == 0 {
		return false
	}

	blocked := make(map[Hex]bool, len(offsets))
	for _, h := range Footprint(offsets, center) {
		t, ok := hm.Type(h)
		if !ok || t.Blocking() {
			return false
		}
		if blocked[h] {
			return false
		}
		blocked[h] = true
	}

	return IsConnected(hm, hm.Start, hm.End, blocked)
}

// CanMove reports whether the turret on from can be moved to to: the target
// must be a free board cell and Start must still reach End once from is
// vacated and to is taken. The board is not modified.
func CanMove(hm *HexMap, from, to Hex) bool {
	if from == to {
		return false
	}
	if t, ok := hm.Type(from); !ok || t != CellTurret {
		return false
	}
	if t, ok := hm.Type(to); !ok || t.Blocking() {
		return false
	}
	return isConnected(hm, hm.Start, hm.End, map[Hex]bool{to: true}, map[Hex]bool{from: true})
}
