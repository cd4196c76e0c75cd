// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"go-drone-defense/internal/app"
	"go-drone-defense/internal/audio"
	"go-drone-defense/internal/config"
	"go-drone-defense/internal/defs"
	"go-drone-defense/internal/input/ebiteninput"
	"go-drone-defense/internal/state"
	"go-drone-defense/pkg/render/ebitencanvas"

	"github.com/hajimehoshi/ebiten/v2"
)

var errQuit = errors.New("quit")

type AppGame struct {
	stateMachine   *state.StateMachine
	canvas         *ebitencanvas.Canvas
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime, ebiteninput.Poll())
	if a.stateMachine.ShouldQuit() {
		return errQuit
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.canvas.Begin(screen)
	a.stateMachine.Draw(a.canvas)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	defsPath := flag.String("defs", "", "path to a definitions JSON file (embedded defaults when empty)")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 for a time-based seed")
	mute := flag.Bool("mute", false, "disable sound")
	skipMenu := flag.Bool("play", false, "start directly in the game")
	flag.Parse()

	lib, err := loadLibrary(*defsPath)
	if err != nil {
		log.Fatal(err)
	}

	player := audio.NewPlayer(0.3)
	if !*mute {
		if err := player.Init(); err != nil {
			log.Printf("Звук отключён: %v", err)
		}
		defer player.Close()
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	session := state.Session{
		Lib:  lib,
		Seed: *seed,
		OnStart: func(g *app.Game) {
			player.Subscribe(g.EventDispatcher)
		},
	}
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, session))
	} else {
		sm.SetState(state.NewMenuState(sm, session))
	}

	game := &AppGame{
		stateMachine:   sm,
		canvas:         ebitencanvas.New(),
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Drone Defense")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}

func loadLibrary(path string) (*defs.Library, error) {
	if path == "" {
		return defs.LoadDefault()
	}
	return defs.LoadDefinitions(path)
}
