package render

import (
	"testing"

	"fallgrid/internal/board"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGrid(t *testing.T, rows, cols int) *board.Grid {
	t.Helper()
	g, err := board.New(rows, cols)
	require.NoError(t, err)
	return g
}

func collect(tr *Tracker) map[board.Coord]*board.Block {
	out := map[board.Coord]*board.Block{}
	tr.Flush(func(at board.Coord, b *board.Block) { out[at] = b })
	return out
}

func TestTrackerFirstObserveMarksEverything(t *testing.T) {
	tr := NewTracker()
	g := newGrid(t, 3, 4)
	assert.Equal(t, 12, tr.Observe(g))
	assert.Equal(t, 12, tr.Pending())
	assert.Len(t, collect(tr), 12)
	assert.Zero(t, tr.Pending())
}

func TestTrackerDedupsAcrossTicks(t *testing.T) {
	tr := NewTracker()
	g := newGrid(t, 4, 3)
	tr.Observe(g)
	tr.Discard()

	g, err := board.WriteRegion(g, 0, 0, board.Pattern{{true, true, true}}, true)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Observe(g))

	g = board.Step(g)
	assert.Equal(t, 6, tr.Observe(g))
	g = board.Step(g)
	assert.Equal(t, 6, tr.Observe(g))

	assert.Equal(t, 9, tr.Pending())
	dirty := collect(tr)
	require.Len(t, dirty, 9)
	for c := 0; c < 3; c++ {
		assert.Same(t, board.Blank, dirty[board.Coord{Row: 0, Col: c}])
		assert.Same(t, board.Blank, dirty[board.Coord{Row: 1, Col: c}])
		assert.True(t, dirty[board.Coord{Row: 2, Col: c}].IsActive())
	}
}

func TestTrackerIgnoresUnchangedSnapshots(t *testing.T) {
	tr := NewTracker()
	g := newGrid(t, 5, 5)
	tr.Observe(g)
	tr.Discard()

	assert.Zero(t, tr.Observe(board.Step(g)))
	assert.Zero(t, tr.Observe(g.Snapshot()))
	assert.Zero(t, tr.Pending())
}

func TestTrackerResetsOnResize(t *testing.T) {
	tr := NewTracker()
	tr.Observe(newGrid(t, 2, 2))
	assert.Equal(t, 6, tr.Observe(newGrid(t, 2, 3)))
	assert.Equal(t, 6, tr.Pending())
}

func TestPixelsPaintOnlyDirtyCells(t *testing.T) {
	g := newGrid(t, 3, 3)
	px := NewPixels(3, 3, DefaultPalette)
	tr := NewTracker()
	tr.Observe(g)
	assert.Equal(t, 9, px.Paint(tr, DefaultPalette))

	g, err := board.WriteRegion(g, 1, 1, board.Pattern{{true}}, true)
	require.NoError(t, err)
	tr.Observe(g)
	assert.Equal(t, 1, px.Paint(tr, DefaultPalette))
	assert.Equal(t, DefaultPalette.Falling, px.At(1, 1))
	assert.Equal(t, DefaultPalette.Blank, px.At(0, 0))

	g, err = board.WriteRegion(g, 1, 1, board.Pattern{{true}}, false)
	require.NoError(t, err)
	tr.Observe(g)
	px.Paint(tr, DefaultPalette)
	assert.Equal(t, DefaultPalette.Settled, px.At(1, 1))
	assert.Zero(t, px.Paint(tr, DefaultPalette))
}
