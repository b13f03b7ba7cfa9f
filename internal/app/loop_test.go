package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestLoop(t *testing.T) (*Loop, *clock) {
	t.Helper()
	b, err := parse(t, "-rows", "5", "-cols", "8", "-tick-ms", "100").Load()
	require.NoError(t, err)
	l := NewLoop(b)
	clk := &clock{t: time.Unix(0, 0)}
	l.Ticker().SetClock(clk.now)
	return l, clk
}

func TestLoopStepsOnSchedule(t *testing.T) {
	l, clk := newTestLoop(t)
	require.NoError(t, l.Spawn())

	assert.True(t, l.Update())
	assert.False(t, l.Update())
	assert.True(t, l.Board().Grid().Block(1, 3).IsActive())

	clk.t = clk.t.Add(100 * time.Millisecond)
	assert.True(t, l.Update())
	assert.True(t, l.Board().Grid().Block(2, 3).IsActive())
}

func TestLoopPauseAndSingleStep(t *testing.T) {
	l, clk := newTestLoop(t)
	require.NoError(t, l.Spawn())
	l.Update()

	assert.True(t, l.TogglePause())
	clk.t = clk.t.Add(time.Second)
	assert.False(t, l.Update())
	assert.True(t, l.Board().Grid().Block(1, 3).IsActive())

	l.StepOnce()
	assert.True(t, l.Update())
	assert.False(t, l.Update())
	assert.True(t, l.Board().Grid().Block(2, 3).IsActive())

	assert.False(t, l.TogglePause())
	assert.False(t, l.Paused())
}

func TestLoopReset(t *testing.T) {
	l, _ := newTestLoop(t)
	require.NoError(t, l.Spawn())
	l.StepOnce()
	l.Reset()
	assert.Zero(t, countActive(l.Board().Cells()))
}

func countActive(cells []uint8) int {
	n := 0
	for _, c := range cells {
		if c != 0 {
			n++
		}
	}
	return n
}
