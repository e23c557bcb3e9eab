// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"hex-defense/internal/app"
	"hex-defense/internal/config"
	"hex-defense/internal/defs"
	"hex-defense/internal/types"
)

const (
	panelHeight    = 110
	panelWidth     = 260
	panelMargin    = 10
	animationSpeed = 10.0
)

// InfoPanel выезжает снизу и показывает характеристики выбранной башни.
type InfoPanel struct {
	IsVisible    bool
	TargetTurret types.EntityID
	fontFace     font.Face
	library      defs.Library
	currentY     float64
	targetY      float64
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(fontFace font.Face, library defs.Library) *InfoPanel {
	return &InfoPanel{
		fontFace: fontFace,
		library:  library,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(id types.EntityID) {
	p.TargetTurret = id
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Contains reports whether a screen point lies on the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && x <= panelWidth+panelMargin && float64(y) >= p.currentY
}

func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	if math.Abs(diff) < animationSpeed {
		p.currentY = p.targetY
	} else if diff > 0 {
		p.currentY += animationSpeed
	} else {
		p.currentY -= animationSpeed
	}
	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
		p.TargetTurret = 0
	}
}

// Lines renders the panel text for a turret.
func (p *InfoPanel) Lines(t app.TurretView) []string {
	def, _ := p.library.Get(t.Type)
	lines := []string{
		fmt.Sprintf("%s turret (%s)", def.Name, t.Type),
		fmt.Sprintf("Damage %d  DPS %.1f", def.Damage, t.DPS),
		fmt.Sprintf("Range %.1f  Reload %.2fs", t.Range, t.MaxCooldown),
		fmt.Sprintf("Sell for %dg", t.Refund),
	}
	if def.Slows() {
		lines = append(lines, fmt.Sprintf("Slows x%.2f per hit", def.SlowFactor))
	}
	return lines
}

func (p *InfoPanel) Draw(screen *ebiten.Image, turrets []app.TurretView) {
	if !p.IsVisible {
		return
	}
	var target *app.TurretView
	for i := range turrets {
		if turrets[i].ID == p.TargetTurret {
			target = &turrets[i]
			break
		}
	}
	if target == nil {
		p.Hide()
		return
	}

	x := float32(panelMargin)
	y := float32(p.currentY)
	vector.DrawFilledRect(screen, x, y, panelWidth, panelHeight, color.RGBA{20, 20, 30, 220}, false)
	vector.StrokeRect(screen, x, y, panelWidth, panelHeight, 1, config.TurretColors[target.Type.Index()], false)

	for i, line := range p.Lines(*target) {
		text.Draw(screen, line, p.fontFace, panelMargin*2, int(p.currentY)+20+i*config.HUDLineHeight, config.TextLightColor)
	}
}
