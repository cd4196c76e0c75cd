// internal/system/state.go
package system

import (
	"log"

	"go-drone-defense/internal/component"
	"go-drone-defense/internal/entity"
	"go-drone-defense/internal/event"
)

// StateSystem переключает фазы сессии по событиям
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(ss, event.WaveEnded, event.GameOver)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveEnded:
		info, _ := e.Data.(event.WaveInfo)
		if info.Final {
			s.SwitchTo(component.Victory)
			log.Printf("Победа! Пройдено волн: %d", s.ecs.GameState.Stats.WavesCompleted)
			s.eventDispatcher.Dispatch(event.Event{Type: event.Victory})
			return
		}
		s.SwitchTo(component.PreWave)
	case event.GameOver:
		s.SwitchTo(component.GameOver)
	}
}

// SwitchTo меняет фазу. Завершённую игру может сбросить только рестарт.
func (s *StateSystem) SwitchTo(phase component.Phase) {
	gs := s.ecs.GameState
	if gs.Phase.Ended() {
		return
	}
	gs.Phase = phase
	if phase.Ended() {
		gs.TargetingMode = false
		gs.SelectedEnemy = 0
		gs.Stats.GameTime = s.ecs.GameTime - gs.Stats.StartTime
	}
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.GameState.Phase
}
