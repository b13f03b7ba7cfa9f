//go:build ebiten

package render

import (
	"fallgrid/internal/board"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps an image of the board and re-uploads it only when a
// cell changed since the last draw.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	pixels     *Pixels
	tracker    *Tracker
	palette    Palette
}

// NewGridPainter allocates a painter for a rows x cols board.
func NewGridPainter(rows, cols int, p Palette) *GridPainter {
	return &GridPainter{
		rows:    rows,
		cols:    cols,
		img:     ebiten.NewImage(cols, rows),
		pixels:  NewPixels(rows, cols, p),
		tracker: NewTracker(),
		palette: p,
	}
}

// Observe records a published snapshot. Call it after every update, even
// when several updates happen between two draws.
func (gp *GridPainter) Observe(g *board.Grid) { gp.tracker.Observe(g) }

// Draw uploads dirty pixels, if any, and draws the board scaled onto dst.
// It returns how many cells were repainted.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) int {
	n := gp.pixels.Paint(gp.tracker, gp.palette)
	if n > 0 {
		gp.img.WritePixels(gp.pixels.Bytes())
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
	return n
}

// Size returns the board dimensions in cells.
func (gp *GridPainter) Size() (int, int) { return gp.rows, gp.cols }
