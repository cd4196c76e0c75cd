// cmd/td-term/main.go
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"go-drone-defense/internal/app"
	"go-drone-defense/internal/audio"
	"go-drone-defense/internal/config"
	"go-drone-defense/internal/defs"
	"go-drone-defense/internal/input"
	"go-drone-defense/internal/state"
	"go-drone-defense/pkg/render"

	"github.com/gdamore/tcell/v2"
)

const frameDuration = time.Second / 30

func main() {
	defsPath := flag.String("defs", "", "path to a definitions JSON file (embedded defaults when empty)")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 for a time-based seed")
	mute := flag.Bool("mute", true, "disable sound")
	logPath := flag.String("log", "", "write logs to this file (logs are discarded when empty)")
	flag.Parse()

	// Терминал занят игрой, поэтому лог уходит в файл
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	var lib *defs.Library
	var err error
	if *defsPath == "" {
		lib, err = defs.LoadDefault()
	} else {
		lib, err = defs.LoadDefinitions(*defsPath)
	}
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	player := audio.NewPlayer(0.3)
	if !*mute {
		if err := player.Init(); err != nil {
			log.Printf("Звук отключён: %v", err)
		}
		defer player.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	canvas := render.NewTermCanvas(screen, config.ScreenWidth, config.ScreenHeight)
	canvas.Begin(config.BackgroundColor)
	collector := input.NewTermCollector(canvas.ToPixel)

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, state.Session{
		Lib:  lib,
		Seed: *seed,
		OnStart: func(g *app.Game) {
			player.Subscribe(g.EventDispatcher)
		},
	}))

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()
	lastFrame := time.Now()

	for !sm.ShouldQuit() {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
				continue
			}
			collector.Add(ev)
		case now := <-ticker.C:
			deltaTime := min(now.Sub(lastFrame).Seconds(), config.MaxDeltaTime)
			lastFrame = now

			sm.Update(deltaTime, collector.Flush())
			canvas.Begin(config.BackgroundColor)
			sm.Draw(canvas)
			canvas.Present()
		}
	}
}
