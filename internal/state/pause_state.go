// internal/state/pause_state.go
package state

import (
	"go-drone-defense/internal/config"
	"go-drone-defense/internal/input"
	"go-drone-defense/pkg/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру и рисует поверх неё затемнение.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64, frame input.Frame) {
	for _, action := range frame.Actions(input.DefaultBindings) {
		switch action {
		case input.ActionQuit:
			s.stateMachine.Quit()
			return
		case input.ActionPause, input.ActionCancel:
			s.stateMachine.SetState(s.previousState)
			return
		}
	}
}

func (s *PauseState) Draw(canvas render.Canvas) {
	if s.previousState != nil {
		s.previousState.Draw(canvas)
	}
	w, h := canvas.Size()
	canvas.FillRect(0, 0, float64(w), float64(h), config.OverlayColor)
	drawCentered(canvas, float64(h)/2-config.HUDLineHeight, "PAUSED", config.TextLightColor)
	drawCentered(canvas, float64(h)/2+config.HUDLineHeight, "Press P to resume", config.TextLightColor)
}

func (s *PauseState) Exit() {}
