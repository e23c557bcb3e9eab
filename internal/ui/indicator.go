// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"hex-defense/internal/component"
	"hex-defense/internal/config"
)

// StateIndicator — кружок фазы волны, пульсирует при смене фазы.
type StateIndicator struct {
	X, Y       float32
	Radius     float32
	lastPhase  component.WavePhase
	lastChange time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, phase component.WavePhase) {
	if phase != i.lastPhase {
		i.lastPhase = phase
		i.lastChange = time.Now()
	}
	elapsed := time.Since(i.lastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	var stateColor color.RGBA = config.PreparingColor
	if phase == component.Active {
		stateColor = config.ActiveColor
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, color.White, true)
}
