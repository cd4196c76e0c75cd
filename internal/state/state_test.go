package state

import (
	"image/color"
	"strings"
	"testing"

	"go-drone-defense/internal/component"
	"go-drone-defense/internal/config"
	"go-drone-defense/internal/defs"
	"go-drone-defense/internal/input"
)

// recordCanvas запоминает выведенный текст и считает примитивы
type recordCanvas struct {
	texts  []string
	shapes int
}

func (c *recordCanvas) Size() (int, int) { return config.ScreenWidth, config.ScreenHeight }
func (c *recordCanvas) FillRect(x, y, w, h float64, clr color.RGBA) { c.shapes++ }
func (c *recordCanvas) StrokeRect(x, y, w, h, width float64, clr color.RGBA) { c.shapes++ }
func (c *recordCanvas) FillCircle(x, y, r float64, clr color.RGBA) { c.shapes++ }
func (c *recordCanvas) StrokeCircle(x, y, r, width float64, clr color.RGBA) { c.shapes++ }
func (c *recordCanvas) Line(x1, y1, x2, y2, width float64, clr color.RGBA) { c.shapes++ }
func (c *recordCanvas) FillSector(x, y, r, from, to float64, clr color.RGBA) { c.shapes++ }
func (c *recordCanvas) Text(x, y float64, s string, clr color.RGBA) { c.texts = append(c.texts, s) }
func (c *recordCanvas) MeasureText(s string) (float64, float64) { return float64(7 * len(s)), 13 }

func (c *recordCanvas) has(sub string) bool {
	for _, s := range c.texts {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

const dt = 1.0 / 60

func startGame(t *testing.T) (*StateMachine, *GameState) {
	t.Helper()
	lib, err := defs.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	sm := NewStateMachine()
	sm.SetState(NewMenuState(sm, Session{Lib: lib, Seed: 7}))
	sm.Update(dt, input.Frame{Keys: []input.Key{input.KeyEnter}})

	gs, ok := sm.Current().(*GameState)
	if !ok {
		t.Fatalf("current state = %T, want *GameState", sm.Current())
	}
	return sm, gs
}

func clickAt(x, y float64) input.Frame {
	return input.Frame{Clicks: []input.Point{{X: x, Y: y}}}
}

func TestMenuDrawsControlsAndStarts(t *testing.T) {
	lib, err := defs.LoadDefault()
	if err != nil {
		t.Fatal(err)
	}
	sm := NewStateMachine()
	menu := NewMenuState(sm, Session{Lib: lib, Seed: 1})
	sm.SetState(menu)

	c := &recordCanvas{}
	sm.Draw(c)
	if !c.has("DRONE DEFENSE") || !c.has("Jamming Tower") {
		t.Errorf("menu text = %q", c.texts)
	}

	sm.Update(dt, input.Frame{Keys: []input.Key{"x"}})
	if sm.Current() != menu {
		t.Fatal("unbound key left the menu")
	}
	sm.Update(dt, input.Frame{Keys: []input.Key{"q"}})
	if !sm.ShouldQuit() {
		t.Error("Q did not request quit")
	}
}

func TestHUDClicksDoNotReachField(t *testing.T) {
	_, gs := startGame(t)
	g := gs.Game()

	// Палитра: вторая кнопка в нижнем ряду
	gs.Update(dt, clickAt(140, 770))
	if got := g.ECS.GameState.SelectedTowerType; got != "laser" {
		t.Fatalf("SelectedTowerType = %q, want laser", got)
	}
	if len(g.ECS.Towers) != 1 {
		t.Error("HUD click placed a tower")
	}

	gs.Update(dt, clickAt(20, 740))
	if !g.ECS.Wave.InProgress {
		t.Error("start button did not start the wave")
	}

	gs.Update(dt, clickAt(100, 100))
	if len(g.ECS.Towers) != 2 {
		t.Error("field click did not place a tower")
	}
	gs.Update(dt, clickAt(100, 100))
	if g.ECS.GameState.SelectedTower == 0 || !gs.hud.Info.IsVisible {
		t.Error("clicking own tower did not open the info panel")
	}
}

func TestPauseFreezesGame(t *testing.T) {
	sm, gs := startGame(t)
	g := gs.Game()
	g.StartWave()
	gs.Update(dt, input.Frame{})
	before := g.ECS.GameTime

	sm.Update(dt, input.Frame{Keys: []input.Key{"p"}})
	if _, ok := sm.Current().(*PauseState); !ok {
		t.Fatalf("current state = %T, want *PauseState", sm.Current())
	}
	for range 30 {
		sm.Update(dt, input.Frame{})
	}
	if g.ECS.GameTime != before {
		t.Errorf("game time moved during pause: %v -> %v", before, g.ECS.GameTime)
	}

	c := &recordCanvas{}
	sm.Draw(c)
	if !c.has("PAUSED") || c.shapes == 0 {
		t.Error("pause overlay not drawn over the game")
	}

	sm.Update(dt, input.Frame{Keys: []input.Key{"p"}})
	if sm.Current() != gs {
		t.Fatal("P did not resume")
	}
}

func TestSpeedKeyScalesTime(t *testing.T) {
	_, gs := startGame(t)
	g := gs.Game()
	g.StartWave()

	gs.Update(dt, input.Frame{Keys: []input.Key{"f"}})
	if g.SpeedMultiplier != 2 || gs.hud.Speed.Label != "x2" {
		t.Fatalf("multiplier = %v, label = %q", g.SpeedMultiplier, gs.hud.Speed.Label)
	}
	before := g.ECS.GameTime
	gs.Update(dt, input.Frame{})
	if got := g.ECS.GameTime - before; got < 2*dt-1e-9 || got > 2*dt+1e-9 {
		t.Errorf("time step = %v, want %v", got, 2*dt)
	}
}

func TestSummaryAfterGameOver(t *testing.T) {
	sm, gs := startGame(t)
	g := gs.Game()
	g.ECS.Base.TakeDamage(config.BaseHealth)
	g.StateSystem.SwitchTo(component.GameOver)

	c := &recordCanvas{}
	sm.Draw(c)
	if !c.has("GAME OVER") || !c.has("Press R to restart") {
		t.Errorf("summary text = %q", c.texts)
	}

	sm.Update(dt, input.Frame{Keys: []input.Key{"p"}})
	if sm.Current() != gs {
		t.Error("paused after the game ended")
	}
	sm.Update(dt, input.Frame{Keys: []input.Key{"r"}})
	if g.ECS.GameState.Phase != component.PreWave {
		t.Errorf("phase after R = %v", g.ECS.GameState.Phase)
	}
}
