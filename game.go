package main

import (
	"context"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/particle-field-go/internal/sim"
)

// Game adapts the simulation to Ebitengine's loop
type Game struct {
	ctx    context.Context
	sim    *sim.Simulation
	canvas *ebiten.Image // persists between frames so the trail fades
	Paused bool

	PrevMX, PrevMY int // last polled cursor position
	cursorSeen     bool
}

// NewGame wraps s; the game terminates once ctx is done
func NewGame(ctx context.Context, s *sim.Simulation) *Game {
	return &Game{
		ctx:    ctx,
		sim:    s,
		canvas: ebiten.NewImage(int(s.Width), int(s.Height)),
	}
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	if err := g.handleInput(); err != nil {
		return err
	}

	if g.Paused {
		return nil
	}

	g.sim.Tick(imageSurface{g.canvas})
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas, nil)
	label := g.sim.Pointer.Mode.Label()
	if g.Paused {
		label += " (paused)"
	}
	ebitenutil.DebugPrint(screen, label)
}

// Layout follows the window so a resize rebuilds the field at the new size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != int(g.sim.Width) || outsideHeight != int(g.sim.Height)) {
		g.resize(outsideWidth, outsideHeight)
	}
	return int(g.sim.Width), int(g.sim.Height)
}

func (g *Game) resize(w, h int) {
	log.Printf("resize %dx%d -> %dx%d, reinitializing", int(g.sim.Width), int(g.sim.Height), w, h)
	g.sim.Resize(float64(w), float64(h))
	g.sim.OnPointerMove(float64(w)/2, float64(h)/2)
	g.canvas.Deallocate()
	g.canvas = ebiten.NewImage(w, h)
}

// handleInput processes keyboard and mouse input
func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Paused = !g.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		log.Printf("reinitializing %d particles", sim.ParticleCount)
		g.sim.Initialize()
		g.canvas.Clear()
	}

	// Only forward real movement; the pointer starts at the centre
	mx, my := ebiten.CursorPosition()
	if g.cursorSeen && (mx != g.PrevMX || my != g.PrevMY) {
		g.sim.OnPointerMove(float64(mx), float64(my))
	}
	g.PrevMX, g.PrevMY = mx, my
	g.cursorSeen = true

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mode := g.sim.OnClick()
		log.Println(mode.Label())
	}
	return nil
}

// imageSurface draws onto an ebiten image with the vector package
type imageSurface struct {
	img *ebiten.Image
}

func (s imageSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s imageSurface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}
