// pkg/hexmap/hex.go
package hexmap

import "fmt"

// Hex представляет гекс в кубических координатах (Q, R, S), Q+R+S == 0
type Hex struct {
	Q, R, S int
}

// NewHex строит гекс из осевых координат, S выводится.
func NewHex(q, r int) Hex {
	return Hex{Q: q, R: r, S: -q - r}
}

// Directions defines the six unit vectors in cube space.
// The order is part of the pathfinding contract: BFS expands neighbors
// 0..5 in exactly this order, which decides between equal-length routes.
var Directions = [6]Hex{
	{Q: 1, R: 0, S: -1}, {Q: 1, R: -1, S: 0}, {Q: 0, R: -1, S: 1},
	{Q: -1, R: 0, S: 1}, {Q: -1, R: 1, S: 0}, {Q: 0, R: 1, S: -1},
}

// Add возвращает сумму двух гексов
func (h Hex) Add(other Hex) Hex {
	return Hex{Q: h.Q + other.Q, R: h.R + other.R, S: h.S + other.S}
}

// Subtract возвращает разность двух гексов
func (h Hex) Subtract(other Hex) Hex {
	return Hex{Q: h.Q - other.Q, R: h.R - other.R, S: h.S - other.S}
}

// Scale multiplies a hex vector by a scalar.
func (h Hex) Scale(factor int) Hex {
	return Hex{Q: h.Q * factor, R: h.R * factor, S: h.S * factor}
}

// Neighbor returns the adjacent hex in the given direction (taken mod 6).
func (h Hex) Neighbor(direction int) Hex {
	direction %= 6
	if direction < 0 {
		direction += 6
	}
	return h.Add(Directions[direction])
}

// AllPossibleNeighbors возвращает всех соседей гекса в порядке Directions
func (h Hex) AllPossibleNeighbors() [6]Hex {
	var out [6]Hex
	for i, d := range Directions {
		out[i] = h.Add(d)
	}
	return out
}

// Length is the number of steps from the origin.
func (h Hex) Length() int {
	return (abs(h.Q) + abs(h.R) + abs(h.S)) / 2
}

// Distance вычисляет расстояние между гексами
func (h Hex) Distance(to Hex) int {
	return h.Subtract(to).Length()
}

// Valid reports whether the cube constraint holds.
func (h Hex) Valid() bool {
	return h.Q+h.R+h.S == 0
}

// String returns the canonical "q,r,s" key.
func (h Hex) String() string {
	return fmt.Sprintf("%d,%d,%d", h.Q, h.R, h.S)
}

// Frac converts the hex to a fractional position at its centre.
func (h Hex) Frac() FracHex {
	return FracHex{Q: float64(h.Q), R: float64(h.R), S: float64(h.S)}
}

// FracHex — дробная позиция в кубических координатах (враги между гексами)
type FracHex struct {
	Q, R, S float64
}

// Round снапит дробную позицию к ближайшему гексу.
func (f FracHex) Round() Hex {
	q, r, s := cubeRound(f.Q, f.R, f.S)
	return Hex{Q: q, R: r, S: s}
}

// DistanceSq is the squared Euclidean distance to a hex centre in cube space.
func (f FracHex) DistanceSq(h Hex) float64 {
	dq := float64(h.Q) - f.Q
	dr := float64(h.R) - f.R
	ds := float64(h.S) - f.S
	return dq*dq + dr*dr + ds*ds
}

// Lerp выполняет линейную интерполяцию к гексу b
func (f FracHex) Lerp(b Hex, t float64) FracHex {
	return FracHex{
		Q: f.Q + (float64(b.Q)-f.Q)*t,
		R: f.R + (float64(b.R)-f.R)*t,
		S: f.S + (float64(b.S)-f.S)*t,
	}
}
