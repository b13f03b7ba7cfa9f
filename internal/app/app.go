//go:build ebiten

package app

import (
	"log"

	"fallgrid/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Loop to the ebiten.Game interface.
type Game struct {
	loop    *Loop
	painter *render.GridPainter
	scale   int
}

// New constructs a Game for the provided board.
func New(b Board, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := b.Size()
	g := &Game{
		loop:    NewLoop(b),
		painter: render.NewGridPainter(size.Rows, size.Cols, render.DefaultPalette),
		scale:   scale,
	}
	g.painter.Observe(b.Grid())
	return g
}

// Update handles input and advances the board when a tick is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.loop.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.loop.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.loop.Reset()
		g.painter.Observe(g.loop.Board().Grid())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		if err := g.loop.Spawn(); err != nil {
			log.Printf("spawn: %v", err)
		}
		g.painter.Observe(g.loop.Board().Grid())
	}
	if g.loop.Update() {
		g.painter.Observe(g.loop.Board().Grid())
	}
	return nil
}

// Draw renders the cells that changed since the last frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	rows, cols := g.painter.Size()
	return cols * g.scale, rows * g.scale
}
