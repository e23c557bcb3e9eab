// pkg/render/hex_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"hex-defense/pkg/hexmap"
)

// HexRenderer рисует гексагональное поле. Статичный слой (клетки) кэшируется
// в mapImage и перерисовывается только после изменения поля.
type HexRenderer struct {
	layout   hexmap.Layout
	colors   *MapColors
	fontFace font.Face
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
	mapImage *ebiten.Image
	dirty    bool
}

func NewHexRenderer(layout hexmap.Layout, screenWidth, screenHeight int, fontFace font.Face, colors *MapColors) *HexRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &HexRenderer{
		layout:   layout,
		colors:   colors,
		fontFace: fontFace,
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 18),
		fillIs:   make([]uint16, 0, 18),
		strokeVs: make([]ebiten.Vertex, 0, 36),
		strokeIs: make([]uint16, 0, 36),
		mapImage: ebiten.NewImage(screenWidth, screenHeight),
		dirty:    true,
	}
}

// Layout returns the projection the renderer draws with.
func (r *HexRenderer) Layout() hexmap.Layout { return r.layout }

// Invalidate marks the cached board image stale.
func (r *HexRenderer) Invalidate() { r.dirty = true }

// CellColor picks the fill for a cell.
func (r *HexRenderer) CellColor(c hexmap.Cell, start, end hexmap.Hex) color.RGBA {
	switch {
	case c.Hex == start:
		return r.colors.StartColor
	case c.Hex == end:
		return r.colors.EndColor
	}
	switch c.Type {
	case hexmap.CellPath:
		return r.colors.PathColor
	case hexmap.CellWall:
		return r.colors.WallColor
	case hexmap.CellTurret:
		return r.colors.TurretColor
	default:
		return r.colors.EmptyColor
	}
}

// RenderMapImage создаёт предрендеренное изображение поля.
func (r *HexRenderer) RenderMapImage(cells []hexmap.Cell, start, end hexmap.Hex) {
	r.mapImage.Clear()
	for _, c := range cells {
		fill := r.CellColor(c, start, end)
		r.DrawHexFill(r.mapImage, c.Hex, r.layout.Size, fill)
		r.DrawHexOutline(r.mapImage, c.Hex, r.layout.Size, LightenColor(fill, 40), r.colors.StrokeWidth)
	}
	r.dirty = false
}

// DrawBoard draws the cached board, rebuilding it first when stale.
func (r *HexRenderer) DrawBoard(screen *ebiten.Image, cells []hexmap.Cell, start, end hexmap.Hex) {
	if r.dirty {
		r.RenderMapImage(cells, start, end)
	}
	screen.Fill(r.colors.BackgroundColor)
	screen.DrawImage(r.mapImage, nil)
}

func (r *HexRenderer) hexPath(cx, cy, size float64) vector.Path {
	path := vector.Path{}
	for i := 0; i < 6; i++ {
		angle := math.Pi/3*float64(i) + math.Pi/6
		px := cx + size*math.Cos(angle)
		py := cy + size*math.Sin(angle)
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()
	return path
}

// DrawHexFill fills the hex h at the given size.
func (r *HexRenderer) DrawHexFill(target *ebiten.Image, h hexmap.Hex, size float64, fillColor color.RGBA) {
	x, y := r.layout.HexToPixel(h)
	r.DrawHexFillAt(target, x, y, size, fillColor)
}

// DrawHexFillAt fills a pointy-top hexagon centred at (x, y).
func (r *HexRenderer) DrawHexFillAt(target *ebiten.Image, x, y, size float64, fillColor color.RGBA) {
	path := r.hexPath(x, y, size)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	r.paint(target, r.fillVs, r.fillIs, fillColor)
}

// DrawHexOutline strokes the border of hex h.
func (r *HexRenderer) DrawHexOutline(target *ebiten.Image, h hexmap.Hex, size float64, strokeColor color.RGBA, width float32) {
	x, y := r.layout.HexToPixel(h)
	path := r.hexPath(x, y, size)
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: width,
	})
	r.paint(target, r.strokeVs, r.strokeIs, strokeColor)
}

func (r *HexRenderer) paint(target *ebiten.Image, vs []ebiten.Vertex, is []uint16, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(vs, is, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// DrawDisc draws a filled circle at a fractional board position.
func (r *HexRenderer) DrawDisc(target *ebiten.Image, pos hexmap.FracHex, radius float32, c color.RGBA) {
	x, y := r.layout.FracToPixel(pos)
	vector.DrawFilledCircle(target, float32(x), float32(y), radius, c, true)
}

// DrawRing strokes a circle of radius hexes around h, used for turret range.
func (r *HexRenderer) DrawRing(target *ebiten.Image, h hexmap.Hex, radius float32, c color.RGBA) {
	x, y := r.layout.HexToPixel(h)
	vector.StrokeCircle(target, float32(x), float32(y), radius, 1, c, true)
}

// DrawBeam draws a line from a hex centre to a fractional position.
func (r *HexRenderer) DrawBeam(target *ebiten.Image, from hexmap.Hex, to hexmap.FracHex, c color.RGBA) {
	x1, y1 := r.layout.HexToPixel(from)
	x2, y2 := r.layout.FracToPixel(to)
	vector.StrokeLine(target, float32(x1), float32(y1), float32(x2), float32(y2), 2, c, true)
}

// DrawLabel centres a text label on (x, y).
func (r *HexRenderer) DrawLabel(target *ebiten.Image, label string, x, y float64, c color.Color) {
	bounds := text.BoundString(r.fontFace, label)
	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y
	text.Draw(target, label, r.fontFace, int(x)-w/2, int(y)+h/2, c)
}
