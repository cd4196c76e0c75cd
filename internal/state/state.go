// internal/state/state.go
package state

import (
	"image/color"

	"go-drone-defense/internal/input"
	"go-drone-defense/pkg/render"
)

// State: интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64, frame input.Frame)
	Draw(canvas render.Canvas)
	Exit()
}

// StateMachine: структура для управления состояниями
type StateMachine struct {
	current State
	quit    bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

func (sm *StateMachine) Current() State {
	return sm.current
}

// Quit просит хост завершить программу после текущего кадра
func (sm *StateMachine) Quit() {
	sm.quit = true
}

func (sm *StateMachine) ShouldQuit() bool {
	return sm.quit
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64, frame input.Frame) {
	if sm.current != nil {
		sm.current.Update(deltaTime, frame)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(canvas render.Canvas) {
	if sm.current != nil {
		sm.current.Draw(canvas)
	}
}

// drawCentered выводит строку по центру экрана по горизонтали
func drawCentered(canvas render.Canvas, y float64, s string, c color.RGBA) {
	w, _ := canvas.Size()
	tw, _ := canvas.MeasureText(s)
	canvas.Text((float64(w)-tw)/2, y, s, c)
}
