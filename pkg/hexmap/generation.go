// pkg/hexmap/generation.go
package hexmap

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// noiseScale controls how large wall clusters are, in hex-centre units.
const noiseScale = 0.35

// ScatterWalls превращает клетки с высоким значением шума в стены.
// Каждая стена ставится пробно: если после неё Start теряет связь с End,
// клетка возвращается в прежнее состояние. Start и End стенами не становятся.
// threshold >= 1 отключает генерацию. Возвращает число поставленных стен.
func ScatterWalls(hm *HexMap, seed int64, threshold float64) int {
	if threshold >= 1 {
		return 0
	}
	noise := opensimplex.NewNormalized(seed)

	placed := 0
	for _, h := range hm.order {
		if h == hm.Start || h == hm.End {
			continue
		}
		cell := hm.Tiles[h]
		if cell.Type != CellEmpty {
			continue
		}

		// axial → cartesian, как при отрисовке
		x := (float64(h.Q) + float64(h.R)*0.5) * noiseScale
		y := float64(h.R) * Sqrt3 / 2 * noiseScale
		if noise.Eval2(x, y) <= threshold {
			continue
		}

		cell.Type = CellWall
		if !IsConnected(hm, hm.Start, hm.End, nil) {
			cell.Type = CellEmpty
			continue
		}
		placed++
	}
	return placed
}
