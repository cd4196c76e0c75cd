// cmd/td-raylib/main.go
package main

import (
	"flag"
	"log"

	"go-drone-defense/internal/app"
	"go-drone-defense/internal/audio"
	"go-drone-defense/internal/config"
	"go-drone-defense/internal/defs"
	"go-drone-defense/internal/input/rlinput"
	"go-drone-defense/internal/state"
	"go-drone-defense/pkg/render/rlcanvas"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	defsPath := flag.String("defs", "", "path to a definitions JSON file (embedded defaults when empty)")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 for a time-based seed")
	mute := flag.Bool("mute", false, "disable sound")
	fps := flag.Int("fps", 60, "target frame rate")
	flag.Parse()

	var lib *defs.Library
	var err error
	if *defsPath == "" {
		lib, err = defs.LoadDefault()
	} else {
		lib, err = defs.LoadDefinitions(*defsPath)
	}
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

	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(config.ScreenWidth), int32(config.ScreenHeight), "Drone Defense")
	defer rl.CloseWindow()
	rl.SetExitKey(0) // Esc отменяет наведение, а не закрывает окно
	rl.SetTargetFPS(int32(*fps))

	canvas := rlcanvas.New(config.ScreenWidth, config.ScreenHeight)
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, state.Session{
		Lib:  lib,
		Seed: *seed,
		OnStart: func(g *app.Game) {
			player.Subscribe(g.EventDispatcher)
		},
	}))

	for !rl.WindowShouldClose() && !sm.ShouldQuit() {
		deltaTime := min(float64(rl.GetFrameTime()), config.MaxDeltaTime)
		sm.Update(deltaTime, rlinput.Poll())

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(config.BackgroundColor.R, config.BackgroundColor.G, config.BackgroundColor.B, 255))
		sm.Draw(canvas)
		rl.EndDrawing()
	}
}
