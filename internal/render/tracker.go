package render

import (
	"fallgrid/internal/board"

	"github.com/kamstrup/intmap"
)

// Tracker remembers which cells changed across the snapshots it has observed
// since the last flush. Several ticks can land between two frames; each cell
// is still redrawn once, with its latest block.
type Tracker struct {
	size  board.Size
	last  *board.Grid
	dirty *intmap.Map[int, *board.Block]
	order []int
}

// NewTracker returns an empty tracker. The first observed snapshot marks
// every cell dirty.
func NewTracker() *Tracker {
	return &Tracker{dirty: intmap.New[int, *board.Block](64)}
}

// Observe diffs g against the previously observed snapshot by block identity
// and marks the changed cells. It returns how many cells changed.
func (t *Tracker) Observe(g *board.Grid) int {
	if t.last != nil && t.last.Size() != g.Size() {
		t.last = nil
		t.Discard()
	}
	t.size = g.Size()
	changed := board.Changed(t.last, g)
	for _, at := range changed {
		idx := at.Row*t.size.Cols + at.Col
		if _, ok := t.dirty.Get(idx); !ok {
			t.order = append(t.order, idx)
		}
		t.dirty.Put(idx, g.Block(at.Row, at.Col))
	}
	t.last = g
	return len(changed)
}

// Pending returns the number of cells waiting to be flushed.
func (t *Tracker) Pending() int { return t.dirty.Len() }

// Flush hands every dirty cell to fn in the order it was first marked, then
// forgets them. It returns how many cells were flushed.
func (t *Tracker) Flush(fn func(at board.Coord, b *board.Block)) int {
	n := len(t.order)
	for _, idx := range t.order {
		b, _ := t.dirty.Get(idx)
		fn(board.Coord{Row: idx / t.size.Cols, Col: idx % t.size.Cols}, b)
	}
	t.Discard()
	return n
}

// Discard drops pending cells without flushing them.
func (t *Tracker) Discard() {
	t.dirty.Clear()
	t.order = t.order[:0]
}
