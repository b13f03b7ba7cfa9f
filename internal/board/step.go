package board

// Step advances g by one tick and returns the new snapshot. Active content
// moves from row r-1 to row r; row 0 never receives content and only clears
// when it held an active block. Content on the last row is replaced by
// whatever was above it. Every block whose value does not change keeps its
// pointer, and rows with no change are shared with g.
//
// Two active streams in the same column are not reconciled: the row above
// simply overwrites the row below.
func Step(g *Grid) *Grid {
	b := newBuilder(g)
	for r := g.rows - 1; r >= 0; r-- {
		for c := 0; c < g.cols; c++ {
			cur := g.cells[r][c].Block
			if r == 0 {
				if cur.IsActive() {
					b.set(0, c, Blank)
				}
				continue
			}
			above := g.cells[r-1][c].Block
			if Equal(above, cur) {
				continue
			}
			if !above.IsActive() {
				above = Blank
			}
			b.set(r, c, above)
		}
	}
	return b.grid()
}

// StepN applies Step n times and returns the final snapshot.
func StepN(g *Grid, n int) *Grid {
	for i := 0; i < n; i++ {
		g = Step(g)
	}
	return g
}
