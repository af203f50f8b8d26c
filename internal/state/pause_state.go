// internal/state/pause_state.go
package state

import (
	"merge-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замороженный игровой экран под затемнением.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	return &PauseState{
		sm:       sm,
		previous: previous,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.resume()
		return
	}

	// Клик по кнопке паузы тоже снимает паузу
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.previous.pauseButton.IsClicked(x, y) {
			s.resume()
		}
	}
}

func (s *PauseState) resume() {
	s.previous.pauseButton.TogglePause()
	s.previous.game.SetPaused(false)
	s.sm.SetState(s.previous)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	// Игровой экран остаётся виден под затемнением
	if s.previous != nil {
		s.previous.Draw(screen)
	}

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PausedDimColor, false)

	pauseText := "PAUSED"
	bounds := text.BoundString(s.previous.font, pauseText)
	text.Draw(screen, pauseText, s.previous.font,
		(config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2-20, config.TextLightColor)

	hint := "P / Esc to resume"
	hintBounds := text.BoundString(s.previous.font, hint)
	text.Draw(screen, hint, s.previous.font,
		(config.ScreenWidth-hintBounds.Dx())/2, config.ScreenHeight/2+10, config.WaveTextColor)
}

func (s *PauseState) Exit() {}
