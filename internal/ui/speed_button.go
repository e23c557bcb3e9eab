// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton переключает скорость игры x1 → x2 → x4 по кругу.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	StateColors   []color.RGBA
	CurrentState  int
	LastClickTime time.Time
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

// Multiplier is the game speed for the current state: 2^state.
func (b *SpeedButton) Multiplier() float64 {
	return math.Pow(2, float64(b.CurrentState))
}

// Contains uses a circle hit area since the shape is two triangles.
func (b *SpeedButton) Contains(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	c := b.StateColors[b.CurrentState]
	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	for _, shift := range []float32{0, offset} {
		var path vector.Path
		path.MoveTo(b.X-width+shift, b.Y-height/2)
		path.LineTo(b.X+shift, b.Y)
		path.LineTo(b.X-width+shift, b.Y+height/2)
		path.Close()
		drawPath(screen, &path, c)
	}
}

var whitePixel *ebiten.Image

func drawPath(screen *ebiten.Image, path *vector.Path, c color.RGBA) {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(3, 3)
		whitePixel.Fill(color.White)
	}
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
