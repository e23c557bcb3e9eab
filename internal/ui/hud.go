// internal/ui/hud.go
package ui

import (
	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"hex-defense/internal/app"
	"hex-defense/internal/config"
)

// HUD — строка ресурсов в левом верхнем углу.
type HUD struct {
	fontFace font.Face
	wave     *WaveIndicator
}

func NewHUD(fontFace font.Face) *HUD {
	return &HUD{
		fontFace: fontFace,
		wave:     NewWaveIndicator(config.HUDMarginX, config.HUDMarginY+3*config.HUDLineHeight, fontFace),
	}
}

// Lines formats gold, lives and score.
func (h *HUD) Lines(snap app.Snapshot) []string {
	return []string{
		"Gold  " + humanize.Comma(int64(snap.Gold)),
		"Lives " + humanize.Comma(int64(snap.Lives)),
		"Score " + humanize.Comma(int64(snap.Score)),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot) {
	for i, line := range h.Lines(snap) {
		text.Draw(screen, line, h.fontFace, config.HUDMarginX, config.HUDMarginY+(i+1)*config.HUDLineHeight-4, config.TextLightColor)
	}
	h.wave.Draw(screen, snap.Wave)
}
