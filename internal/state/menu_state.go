// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-drone-defense/internal/app"
	"go-drone-defense/internal/config"
	"go-drone-defense/internal/defs"
	"go-drone-defense/internal/input"
	"go-drone-defense/pkg/render"
)

// Session: параметры, с которыми меню запускает игру
type Session struct {
	Lib     *defs.Library
	Seed    int64
	OnStart func(g *app.Game) // вызывается для каждой новой игры, например для подписки звука
}

// MenuState: титульный экран с подсказкой по управлению
type MenuState struct {
	sm      *StateMachine
	session Session
}

func NewMenuState(sm *StateMachine, session Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64, frame input.Frame) {
	if frame.Has(input.DefaultBindings, input.ActionQuit) {
		m.sm.Quit()
		return
	}
	if frame.Pressed(input.KeyEnter) || frame.Pressed(input.KeySpace) || len(frame.Clicks) > 0 {
		m.sm.SetState(NewGameState(m.sm, m.session))
	}
}

func (m *MenuState) Draw(canvas render.Canvas) {
	w, h := canvas.Size()
	canvas.FillRect(0, 0, float64(w), float64(h), config.BackgroundColor)

	y := float64(h) / 4
	drawCentered(canvas, y, "DRONE DEFENSE", config.TextLightColor)
	y += 2 * config.HUDLineHeight
	drawCentered(canvas, y, fmt.Sprintf("Hold the base for %d waves", config.MaxWaves), config.TextLightColor)

	y += 2 * config.HUDLineHeight
	for _, id := range m.session.Lib.Palette {
		def := m.session.Lib.Towers[id]
		drawCentered(canvas, y, fmt.Sprintf("[%s] %s  $%d", def.Hotkey, def.Name, def.Cost), config.TextLightColor)
		y += config.HUDLineHeight
	}

	y += config.HUDLineHeight
	for _, line := range []string{
		"Click a cell to build, click a tower to inspect",
		"[W] start wave   [Space] missile targeting",
		"[B] buy missile   [N] buy bundle   [U] upgrade",
		"[F] speed   [P] pause   [Q] quit",
	} {
		drawCentered(canvas, y, line, config.TextLightColor)
		y += config.HUDLineHeight
	}

	drawCentered(canvas, y+2*config.HUDLineHeight, "Press Enter to start", config.ButtonActiveColor)
}

func (m *MenuState) Exit() {}
