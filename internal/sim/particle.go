package sim

import (
	"image/color"
	"math"
)

// Simulation constants
const (
	ParticleCount      = 200
	Gravity            = 0.02
	RepulsionStrength  = 10.0
	AttractionStrength = 0.78
	ProximityRadius    = 150.0
	MinRadius          = 2.0
	MaxRadius          = 7.0
)

var (
	NearColor  = color.NRGBA{R: 0, G: 255, B: 0, A: 204}   // green near the pointer
	FarColor   = color.NRGBA{R: 0, G: 150, B: 255, A: 204} // default blue
	TrailColor = color.NRGBA{R: 30, G: 30, B: 30, A: 51}
)

// Particle struct: Represents a single circular particle
type Particle struct {
	X, Y   float64 // Position
	Radius float64 // Fixed at creation
	VX, VY float64 // Velocity
}

// distanceTo returns the displacement from the particle to (px, py) and its length
func (p *Particle) distanceTo(px, py float64) (dx, dy, dist float64) {
	dx = px - p.X
	dy = py - p.Y
	return dx, dy, math.Sqrt(dx*dx + dy*dy)
}

// Update applies the pointer force, gravity, integration and wall reflection.
// width and height are the surface bounds.
func (p *Particle) Update(ptr Pointer, width, height float64) {
	p.applyPointer(ptr)
	p.advance(width, height)
}

func (p *Particle) applyPointer(ptr Pointer) {
	dx, dy, dist := p.distanceTo(ptr.X, ptr.Y)
	// dist == 0 has no direction; skipping keeps NaN out of the velocity
	if dist >= ProximityRadius || dist == 0 {
		return
	}
	strength := AttractionStrength
	if ptr.Mode == Repel {
		strength = -RepulsionStrength
	}
	force := strength / dist
	p.VX += dx * force
	p.VY += dy * force
}

func (p *Particle) advance(width, height float64) {
	p.VY += Gravity

	p.X += p.VX
	p.Y += p.VY

	// No clamping: a particle may sit past the edge for a frame
	if p.X-p.Radius < 0 || p.X+p.Radius > width {
		p.VX = -p.VX
	}
	if p.Y-p.Radius < 0 || p.Y+p.Radius > height {
		p.VY = -p.VY
	}
}

// Color picks the fill colour from the distance to the pointer.
func (p *Particle) Color(ptr Pointer) color.NRGBA {
	_, _, dist := p.distanceTo(ptr.X, ptr.Y)
	if dist < ProximityRadius {
		return NearColor
	}
	return FarColor
}

// Draw renders the particle as a filled circle
func (p *Particle) Draw(s Surface, ptr Pointer) {
	s.FillCircle(p.X, p.Y, p.Radius, p.Color(ptr))
}
