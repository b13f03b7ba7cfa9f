package board

import "fmt"

// WriteRegion stamps pattern onto g with its top-left corner at
// (originRow, originCol). Truthy pattern cells become Active{falling}, falsy
// ones become Blank. Every target is checked before anything is written: if
// any of them falls outside the grid, ErrOutOfBounds is returned and no grid
// is produced. Cells outside the pattern keep their block, and a target whose
// current block already equals the written value keeps its block too.
func WriteRegion(g *Grid, originRow, originCol int, pattern Pattern, falling bool) (*Grid, error) {
	if pattern.Width() == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPattern)
	}
	for i, row := range pattern {
		for j := range row {
			r, c := originRow+i, originCol+j
			if !g.InBounds(r, c) {
				return nil, fmt.Errorf("%w: pattern cell (%d,%d) lands on (%d,%d) in a %dx%d grid",
					ErrOutOfBounds, i, j, r, c, g.rows, g.cols)
			}
		}
	}

	b := newBuilder(g)
	var active *Block
	for i, row := range pattern {
		for j, on := range row {
			r, c := originRow+i, originCol+j
			cur := g.cells[r][c].Block
			if !on {
				b.set(r, c, Blank)
				continue
			}
			if cur.IsActive() && cur.Falling == falling {
				continue
			}
			if active == nil {
				active = NewActive(falling)
			}
			b.set(r, c, active)
		}
	}
	return b.grid(), nil
}
