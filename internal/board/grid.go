package board

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidDimensions is returned when a grid is built with a
	// non-positive row or column count.
	ErrInvalidDimensions = errors.New("board: invalid dimensions")
	// ErrOutOfBounds is returned when a region write targets a cell outside
	// the grid.
	ErrOutOfBounds = errors.New("board: region out of bounds")
	// ErrInvalidPattern is returned for patterns with no cells.
	ErrInvalidPattern = errors.New("board: invalid pattern")
)

// Size describes grid dimensions.
type Size struct {
	Rows int
	Cols int
}

// Coord addresses a single cell.
type Coord struct {
	Row int
	Col int
}

// Cell is a fixed coordinate plus the block currently held there.
type Cell struct {
	Row   int
	Col   int
	Block *Block
}

// Grid is an immutable snapshot of the board. Rows are shared between
// snapshots until a cell in them changes, so a published Grid must not be
// modified; derive a new one with Step or WriteRegion instead.
type Grid struct {
	rows, cols int
	cells      [][]Cell
}

// New builds a grid where every cell references Blank.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	cells := make([][]Cell, rows)
	for r := range cells {
		row := make([]Cell, cols)
		for c := range row {
			row[c] = Cell{Row: r, Col: c, Block: Blank}
		}
		cells[r] = row
	}
	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// Size returns both dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.rows, Cols: g.cols} }

// InBounds reports whether (r, c) addresses a cell of the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the cell at (r, c). It panics when the coordinate is outside
// the grid, like a slice index would.
func (g *Grid) At(r, c int) Cell { return g.cells[r][c] }

// Block returns the block at (r, c).
func (g *Grid) Block(r, c int) *Block { return g.cells[r][c].Block }

// Row returns a copy of row r.
func (g *Grid) Row(r int) []Cell { return slices.Clone(g.cells[r]) }

// Snapshot returns a new grid container that shares every row with g.
func (g *Grid) Snapshot() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, cells: slices.Clone(g.cells)}
}

// SharesRow reports whether row r of g and other is the same backing row.
// A shared row cannot contain any changed cell.
func (g *Grid) SharesRow(other *Grid, r int) bool {
	if other == nil || g.cols != other.cols || r < 0 || r >= g.rows || r >= other.rows {
		return false
	}
	return &g.cells[r][0] == &other.cells[r][0]
}

// ActiveCount scans the whole grid and counts occupied cells.
func ActiveCount(g *Grid) int {
	n := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell.Block.IsActive() {
				n++
			}
		}
	}
	return n
}

// Changed lists the coordinates whose block identity differs between prev
// and next, in row-major order. Rows shared by both snapshots are skipped
// without being scanned. Grids of different sizes report every cell of next.
func Changed(prev, next *Grid) []Coord {
	var out []Coord
	if prev == nil || prev.Size() != next.Size() {
		for r := 0; r < next.rows; r++ {
			for c := 0; c < next.cols; c++ {
				out = append(out, Coord{Row: r, Col: c})
			}
		}
		return out
	}
	for r := 0; r < next.rows; r++ {
		if next.SharesRow(prev, r) {
			continue
		}
		for c, cell := range next.cells[r] {
			if cell.Block != prev.cells[r][c].Block {
				out = append(out, Coord{Row: r, Col: c})
			}
		}
	}
	return out
}

// builder derives a grid from a source snapshot. Rows stay aliased to the
// source until the first write lands in them.
type builder struct {
	src   *Grid
	out   *Grid
	owned []bool
}

func newBuilder(src *Grid) *builder {
	return &builder{src: src, out: src.Snapshot(), owned: make([]bool, src.rows)}
}

func (b *builder) set(r, c int, blk *Block) {
	if b.out.cells[r][c].Block == blk {
		return
	}
	if !b.owned[r] {
		b.out.cells[r] = slices.Clone(b.out.cells[r])
		b.owned[r] = true
	}
	b.out.cells[r][c].Block = blk
}

func (b *builder) grid() *Grid { return b.out }
