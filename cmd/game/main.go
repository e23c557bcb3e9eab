// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"hex-defense/internal/app"
	"hex-defense/internal/config"
	"hex-defense/internal/defs"
	"hex-defense/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "board and shop seed, 0 for a random one")
	radius := flag.Int("radius", config.GridRadius, "board radius in hexes")
	walls := flag.Float64("walls", config.WallThreshold, "noise threshold for walls, 0 disables them")
	turretsPath := flag.String("turrets", "", "JSON file overriding turret stats")
	skipMenu := flag.Bool("skip-menu", false, "start straight into the game")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	opts := app.DefaultOptions()
	opts.Seed = *seed
	opts.Radius = *radius
	opts.WallThreshold = *walls
	opts.Logger = logger
	if *turretsPath != "" {
		library, err := defs.LoadTurretDefinitions(*turretsPath)
		if err != nil {
			log.Fatalf("Failed to load turret definitions: %v", err)
		}
		opts.Library = library
	}

	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, opts))
	} else {
		sm.SetState(state.NewMenuState(sm, opts))
	}
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Hex Defense")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
