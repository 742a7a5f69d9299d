package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the window and run parameters.
// The physics constants are fixed and live in package sim.
type Config struct {
	Title  string
	Width  int   // surface width in pixels
	Height int   // surface height in pixels
	TPS    int   // ticks per second
	Seed   int64 // 0 seeds from the clock

	// Headless runs without a window, Frames ticks (0 = until interrupted)
	Headless bool
	Frames   int

	// Perlin drift, disabled when WindStrength is 0
	WindStrength float64
	WindScale    float64
}

// Default returns the default parameters.
func Default() *Config {
	return &Config{
		Title:        "Particle Field",
		Width:        800,
		Height:       600,
		TPS:          60,
		Seed:         0,
		Headless:     false,
		Frames:       0,
		WindStrength: 0,
		WindScale:    0.005,
	}
}

// Parse decodes the TOML config file whose path is provided over the defaults.
func Parse(path string) (*Config, error) {
	conf := Default()
	md, err := toml.DecodeFile(path, conf)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return conf, nil
}

// minSide is the smallest surface side that still fits a particle of maximum radius
const minSide = 14

var (
	ErrSurfaceSize = errors.New("surface too small")
	ErrTPS         = errors.New("tps must be positive")
	ErrFrames      = errors.New("frames must not be negative")
	ErrWind        = errors.New("wind parameters must not be negative")
)

// Validate reports the first invalid parameter.
func (c *Config) Validate() error {
	switch {
	case c.Width < minSide || c.Height < minSide:
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrSurfaceSize, c.Width, c.Height, minSide, minSide)
	case c.TPS <= 0:
		return fmt.Errorf("%w: %d", ErrTPS, c.TPS)
	case c.Frames < 0:
		return fmt.Errorf("%w: %d", ErrFrames, c.Frames)
	case c.WindStrength < 0 || c.WindScale < 0:
		return ErrWind
	}
	return nil
}
