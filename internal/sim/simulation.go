// Package sim implements the pointer-driven particle field: a fixed set of
// particles under gravity that bounce off the surface edges and are pulled
// towards or pushed away from the pointer.
package sim

import (
	"context"
	"math/rand"
	"time"
)

// Simulation struct: Holds the particle collection and pointer state.
// It is not safe for concurrent use; the host drives it from one goroutine.
type Simulation struct {
	Width, Height float64
	Particles     []*Particle
	Pointer       Pointer
	Wind          *Wind // nil disables drift
	TickCount     int
	rng           *rand.Rand
}

// New creates a simulation for a width x height surface with the pointer at
// its centre, and populates it.
func New(width, height float64, rng *rand.Rand) *Simulation {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Simulation{
		Width:   width,
		Height:  height,
		Pointer: Pointer{X: width / 2, Y: height / 2},
		rng:     rng,
	}
	s.Initialize()
	return s
}

// Initialize replaces the particle collection with ParticleCount fresh particles
func (s *Simulation) Initialize() {
	s.Particles = make([]*Particle, ParticleCount)
	for i := range s.Particles {
		radius := s.rng.Float64()*(MaxRadius-MinRadius) + MinRadius
		s.Particles[i] = &Particle{
			X:      s.rng.Float64()*(s.Width-2*radius) + radius,
			Y:      s.rng.Float64()*(s.Height-2*radius) + radius,
			Radius: radius,
			VX:     s.rng.Float64()*2 - 1,
			VY:     s.rng.Float64()*2 - 1,
		}
	}
	s.TickCount = 0
}

// Resize adopts new surface bounds and rebuilds the collection
func (s *Simulation) Resize(width, height float64) {
	s.Width, s.Height = width, height
	s.Initialize()
}

// Step advances the physics of every particle by one tick without drawing
func (s *Simulation) Step() {
	for _, p := range s.Particles {
		s.update(p)
	}
	s.Wind.Advance()
	s.TickCount++
}

func (s *Simulation) update(p *Particle) {
	s.Wind.Apply(p)
	p.Update(s.Pointer, s.Width, s.Height)
}

// Tick runs one frame: fade the previous frame, then update and draw each particle
func (s *Simulation) Tick(surface Surface) {
	surface.FillRect(0, 0, s.Width, s.Height, TrailColor)
	for _, p := range s.Particles {
		s.update(p)
		p.Draw(surface, s.Pointer)
	}
	s.Wind.Advance()
	s.TickCount++
}

// OnPointerMove records the pointer position in surface coordinates
func (s *Simulation) OnPointerMove(x, y float64) {
	s.Pointer.X = x
	s.Pointer.Y = y
}

// OnClick toggles attract/repel and returns the new mode
func (s *Simulation) OnClick() Mode {
	s.Pointer.Toggle()
	return s.Pointer.Mode
}

// Run ticks once per value received on frames until ctx is done or frames is closed.
func (s *Simulation) Run(ctx context.Context, frames <-chan time.Time, surface Surface) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-frames:
			if !ok {
				return nil
			}
			s.Tick(surface)
		}
	}
}
