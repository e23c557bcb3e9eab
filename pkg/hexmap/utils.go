// pkg/hexmap/utils.go
package hexmap

import "math"

// Вспомогательные функции
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// cubeRound rounds each component independently and then recomputes the one
// with the largest rounding error from the other two, so Q+R+S stays zero.
func cubeRound(x, y, z float64) (rx, ry, rz int) {
	xf := math.Round(x)
	yf := math.Round(y)
	zf := math.Round(z)
	xd := math.Abs(xf - x)
	yd := math.Abs(yf - y)
	zd := math.Abs(zf - z)
	if xd > yd && xd > zd {
		xf = -yf - zf
	} else if yd > zd {
		yf = -xf - zf
	} else {
		zf = -xf - yf
	}
	return int(xf), int(yf), int(zf)
}

// Константа √3 для вычислений
const Sqrt3 = 1.7320508075688772935274463415059
