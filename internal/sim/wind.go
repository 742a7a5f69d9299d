package sim

import (
	"github.com/aquilax/go-perlin"
)

// Perlin parameters for the wind field
const (
	windAlpha  = 2.0
	windBeta   = 2.0
	windOctave = 3
	windTime   = 0.005 // noise z-axis advance per tick
)

// Wind is a slowly evolving noise field that nudges particle velocities.
type Wind struct {
	Strength float64 // velocity added per tick at full noise
	Scale    float64 // noise sample spacing per pixel
	noise    *perlin.Perlin
	t        float64
}

// NewWind returns nil when strength is not positive, which disables wind.
func NewWind(strength, scale float64, seed int64) *Wind {
	if strength <= 0 {
		return nil
	}
	return &Wind{
		Strength: strength,
		Scale:    scale,
		noise:    perlin.NewPerlin(windAlpha, windBeta, windOctave, seed),
	}
}

// Apply pushes p along the field at its current position.
// The y channel is sampled at an offset so the two axes are decorrelated.
func (w *Wind) Apply(p *Particle) {
	if w == nil {
		return
	}
	x, y := p.X*w.Scale, p.Y*w.Scale
	p.VX += w.Strength * w.noise.Noise3D(x, y, w.t)
	p.VY += w.Strength * w.noise.Noise3D(x+100, y+100, w.t)
}

// Advance moves the field forward one tick.
func (w *Wind) Advance() {
	if w == nil {
		return
	}
	w.t += windTime
}
