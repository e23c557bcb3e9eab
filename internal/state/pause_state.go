// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"hex-defense/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру поверх последнего кадра. После конца игры
// выйти из неё можно только перезапуском.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	message       string
}

func NewPauseState(sm *StateMachine, prevState *GameState, message string) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		message:       message,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Exit() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		opts := s.previousState.opts
		opts.Seed = 0
		s.stateMachine.SetState(NewGameState(s.stateMachine, opts))
		return
	}
	if s.previousState.gameOver {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	face := basicfont.Face7x13
	lines := []string{s.message, "N - new game"}
	if s.previousState.gameOver {
		lines = append(lines, "Score "+humanize.Comma(int64(s.previousState.session.Score())))
	} else {
		lines = append(lines, "P - resume")
	}
	for i, line := range lines {
		w := text.BoundString(face, line).Dx()
		text.Draw(screen, line, face, (config.ScreenWidth-w)/2, config.ScreenHeight/2+i*config.HUDLineHeight, config.TextLightColor)
	}
}
