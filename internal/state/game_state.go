// internal/state/game_state.go
package state

import (
	"fmt"

	"go-drone-defense/internal/app"
	"go-drone-defense/internal/component"
	"go-drone-defense/internal/config"
	"go-drone-defense/internal/input"
	"go-drone-defense/internal/ui"
	"go-drone-defense/pkg/render"
)

// GameState: состояние игры: ведёт сессию и HUD
type GameState struct {
	sm   *StateMachine
	game *app.Game
	hud  *ui.HUD
}

func NewGameState(sm *StateMachine, session Session) *GameState {
	g := &GameState{
		sm:   sm,
		game: app.NewGame(session.Lib, session.Seed),
		hud:  ui.NewHUD(session.Lib),
	}
	if session.OnStart != nil {
		session.OnStart(g.game)
	}
	return g
}

func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64, frame input.Frame) {
	for _, action := range frame.Actions(g.game.Bindings) {
		switch action {
		case input.ActionQuit:
			g.sm.Quit()
			return
		case input.ActionPause:
			if !g.game.ECS.GameState.Phase.Ended() {
				g.sm.SetState(NewPauseState(g.sm, g))
				return
			}
		case input.ActionSpeed:
			g.toggleSpeed()
		}
	}

	// Клики по HUD не доходят до игрового поля
	world := input.Frame{Keys: frame.Keys, Pointer: frame.Pointer}
	for _, click := range frame.Clicks {
		if b := g.hud.ButtonAt(click.X, click.Y); b != nil {
			g.handleButton(b)
			continue
		}
		if g.hud.Info.Contains(click.X, click.Y) {
			continue
		}
		world.Clicks = append(world.Clicks, click)
	}

	g.game.Step(deltaTime, world)

	if id := g.game.ECS.GameState.SelectedTower; id != 0 && id != g.game.ECS.BaseTowerID {
		g.hud.Info.SetTarget(id)
	} else {
		g.hud.Info.Hide()
	}
	g.hud.Info.Update(deltaTime)
	g.hud.Refresh(g.game.HUDData())
}

func (g *GameState) handleButton(b *ui.Button) {
	switch b.ID {
	case ui.ButtonStartWave:
		g.game.StartWave()
	case ui.ButtonBuyMissile:
		g.game.HandleAction(input.ActionBuyMissile)
	case ui.ButtonBuyBundle:
		g.game.HandleAction(input.ActionBuyMissileBundle)
	case ui.ButtonTargeting:
		g.game.ToggleTargeting()
	case ui.ButtonSpeed:
		g.toggleSpeed()
	case ui.ButtonUpgrade:
		g.game.HandleAction(input.ActionUpgrade)
	default:
		if id, ok := ui.TowerFromButton(b.ID); ok {
			g.game.SelectTowerType(id)
		}
	}
}

func (g *GameState) toggleSpeed() {
	g.hud.Speed.ToggleState()
	g.game.SpeedMultiplier = g.hud.Speed.Multiplier()
}

func (g *GameState) Draw(canvas render.Canvas) {
	g.game.RenderSystem.Draw(canvas)

	info, _ := g.game.TowerInfo(g.hud.Info.TargetEntity)
	g.hud.Draw(canvas, g.game.HUDData(), info)

	if phase := g.game.ECS.GameState.Phase; phase.Ended() {
		g.drawSummary(canvas, phase)
	}
}

// drawSummary: итоговый экран после победы или поражения
func (g *GameState) drawSummary(canvas render.Canvas, phase component.Phase) {
	w, h := canvas.Size()
	canvas.FillRect(0, 0, float64(w), float64(h), config.OverlayColor)

	title, titleColor := "GAME OVER", config.TextWarningColor
	if phase == component.Victory {
		title, titleColor = "VICTORY", config.BaseColor
	}

	stats := g.game.ECS.GameState.Stats
	y := float64(h)/2 - 5*config.HUDLineHeight
	drawCentered(canvas, y, title, titleColor)
	y += 2 * config.HUDLineHeight
	for _, line := range []string{
		fmt.Sprintf("Drones destroyed: %d", stats.Kills),
		fmt.Sprintf("Towers built: %d", stats.TowersBuilt),
		fmt.Sprintf("Money earned: $%d", stats.MoneyEarned),
		fmt.Sprintf("Waves completed: %d", stats.WavesCompleted),
		fmt.Sprintf("Missiles fired: %d", stats.MissilesFired),
		fmt.Sprintf("Time: %d:%02d", int(stats.GameTime)/60, int(stats.GameTime)%60),
	} {
		drawCentered(canvas, y, line, config.TextLightColor)
		y += config.HUDLineHeight
	}
	drawCentered(canvas, y+config.HUDLineHeight, "Press R to restart", config.ButtonActiveColor)
}

func (g *GameState) Exit() {}
