package render

import (
	"image/color"

	"fallgrid/internal/board"
)

// Palette maps block states to colors.
type Palette struct {
	Blank   color.RGBA
	Falling color.RGBA
	Settled color.RGBA
}

// DefaultPalette paints falling blocks red on a black board.
var DefaultPalette = Palette{
	Blank:   color.RGBA{A: 255},
	Falling: color.RGBA{R: 220, G: 40, B: 40, A: 255},
	Settled: color.RGBA{R: 200, G: 200, B: 200, A: 255},
}

// ColorFor returns the color used for b.
func (p Palette) ColorFor(b *board.Block) color.RGBA {
	switch {
	case !b.IsActive():
		return p.Blank
	case b.Falling:
		return p.Falling
	default:
		return p.Settled
	}
}

// Pixels is an RGBA buffer with one pixel per cell.
type Pixels struct {
	cols int
	buf  []byte
}

// NewPixels allocates a buffer for a rows x cols board painted blank.
func NewPixels(rows, cols int, p Palette) *Pixels {
	px := &Pixels{cols: cols, buf: make([]byte, 4*rows*cols)}
	for i := 0; i < rows*cols; i++ {
		px.set(i, p.Blank)
	}
	return px
}

// Bytes exposes the RGBA buffer.
func (px *Pixels) Bytes() []byte { return px.buf }

// At returns the color at (row, col).
func (px *Pixels) At(row, col int) color.RGBA {
	base := 4 * (row*px.cols + col)
	return color.RGBA{R: px.buf[base], G: px.buf[base+1], B: px.buf[base+2], A: px.buf[base+3]}
}

func (px *Pixels) set(idx int, c color.RGBA) {
	base := idx * 4
	px.buf[base+0] = c.R
	px.buf[base+1] = c.G
	px.buf[base+2] = c.B
	px.buf[base+3] = c.A
}

// Paint flushes t into the buffer and returns how many pixels were written.
func (px *Pixels) Paint(t *Tracker, p Palette) int {
	return t.Flush(func(at board.Coord, b *board.Block) {
		px.set(at.Row*px.cols+at.Col, p.ColorFor(b))
	})
}
