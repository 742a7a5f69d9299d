// Command particle-field runs an interactive particle field: 200 particles
// fall under gravity, bounce off the window edges and are attracted to the
// mouse pointer. Clicking toggles between attraction and repulsion.
//
// Usage:
//
//	particle-field [config_file]
//
// The optional argument is the path to a TOML config file. Space pauses,
// R reinitializes the particles and Esc quits.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/sim"
)

const usage = `Usage: particle-field [config_file]

The first argument is optional and is the path to a TOML config file.
Without it the simulation runs in an 800x600 window with default parameters.
`

func main() {
	conf, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize simulation
	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := sim.New(float64(conf.Width), float64(conf.Height), rand.New(rand.NewSource(seed)))
	s.Wind = sim.NewWind(conf.WindStrength, conf.WindScale, seed)
	log.Printf("%d particles on %dx%d, seed %d", len(s.Particles), conf.Width, conf.Height, seed)

	if conf.Headless {
		err = runHeadless(ctx, s, conf)
	} else {
		err = runWindow(ctx, s, conf)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func loadConfig(args []string) (*config.Config, error) {
	switch len(args) {
	case 0:
		return config.Default(), nil
	case 1:
		return config.Parse(args[0])
	default:
		return nil, fmt.Errorf("%d arguments provided (0 required, 1 optional)\n\n%s", len(args), usage)
	}
}

func runWindow(ctx context.Context, s *sim.Simulation, conf *config.Config) error {
	// Set up Ebitengine game
	ebiten.SetWindowSize(conf.Width, conf.Height)
	ebiten.SetWindowTitle(conf.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(conf.TPS)

	// Run the game loop
	if err := ebiten.RunGame(NewGame(ctx, s)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	log.Printf("stopped after %d ticks", s.TickCount)
	return nil
}

func runHeadless(ctx context.Context, s *sim.Simulation, conf *config.Config) error {
	ticker := time.NewTicker(time.Second / time.Duration(conf.TPS))
	defer ticker.Stop()

	var frames <-chan time.Time = ticker.C
	if conf.Frames > 0 {
		frames = sim.Limit(ctx, ticker.C, conf.Frames)
	}

	err := s.Run(ctx, frames, sim.Discard)
	log.Printf("stopped after %d ticks", s.TickCount)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
