// pkg/hexmap/layout.go
package hexmap

// Layout maps hexes to screen pixels (pointy top orientation).
type Layout struct {
	Size    float64
	OriginX float64
	OriginY float64
}

// NewLayout создаёт раскладку с центром карты в (originX, originY)
func NewLayout(size, originX, originY float64) Layout {
	return Layout{Size: size, OriginX: originX, OriginY: originY}
}

// HexToPixel конвертирует гекс в пиксельные координаты
func (l Layout) HexToPixel(h Hex) (x, y float64) {
	return l.FracToPixel(h.Frac())
}

// FracToPixel projects a fractional cube position (e.g. a moving enemy).
func (l Layout) FracToPixel(f FracHex) (x, y float64) {
	x = l.Size*(Sqrt3*f.Q+Sqrt3/2*f.R) + l.OriginX
	y = l.Size*(3.0/2.0*f.R) + l.OriginY
	return
}

// PixelToFrac is the inverse projection, without rounding.
func (l Layout) PixelToFrac(x, y float64) FracHex {
	px := (x - l.OriginX) / l.Size
	py := (y - l.OriginY) / l.Size
	q := Sqrt3/3*px - 1.0/3*py
	r := 2.0 / 3 * py
	return FracHex{Q: q, R: r, S: -q - r}
}

// PixelToHex конвертирует пиксельные координаты в гекс (кубическое округление)
func (l Layout) PixelToHex(x, y float64) Hex {
	return l.PixelToFrac(x, y).Round()
}
