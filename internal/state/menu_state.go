// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"hex-defense/internal/app"
	"hex-defense/internal/config"
)

// MenuState — стартовый экран.
type MenuState struct {
	sm   *StateMachine
	opts app.Options
}

func NewMenuState(sm *StateMachine, opts app.Options) *MenuState {
	return &MenuState{sm: sm, opts: opts}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewGameState(m.sm, m.opts))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	lines := []string{
		"HEX DEFENSE",
		"",
		"1-3 or click a shop slot, then click the board to build",
		"Shift+click adjacent turrets of one colour, Space to merge, X to cancel",
		"Hold right button on a turret to sell, R to reroll the shop",
		"Drag a turret to an empty cell to move it",
		"F toggles game speed, P pauses",
		"",
		"Press Space to start",
	}
	face := basicfont.Face7x13
	for i, line := range lines {
		w := text.BoundString(face, line).Dx()
		text.Draw(screen, line, face, (config.ScreenWidth-w)/2, config.ScreenHeight/3+i*config.HUDLineHeight, config.TextLightColor)
	}
}

func (m *MenuState) Exit() {}
