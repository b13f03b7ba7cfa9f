package app

import (
	"errors"
	"flag"
	"testing"
	"time"

	"fallgrid/internal/board"
	"fallgrid/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse(args))
	return cfg
}

func TestDefaultsBuildGravity(t *testing.T) {
	b, err := parse(t).Load()
	require.NoError(t, err)
	assert.Equal(t, "gravity", b.Name())
	assert.Equal(t, core.Size{Rows: 20, Cols: 10}, b.Size())
	assert.Equal(t, time.Second, b.TickPeriod())
}

func TestOverrides(t *testing.T) {
	cfg := parse(t, "-rows", "6", "-cols", "8", "-tick-ms", "50", "-falling", "false")
	assert.Equal(t, map[string]string{
		"rows":          "6",
		"cols":          "8",
		"tick_ms":       "50",
		"spawn_falling": "false",
	}, cfg.Options())

	b, err := cfg.Load()
	require.NoError(t, err)
	assert.Equal(t, core.Size{Rows: 6, Cols: 8}, b.Size())
	assert.Equal(t, 50*time.Millisecond, b.TickPeriod())
	require.NoError(t, b.Spawn())
	assert.False(t, b.Grid().Block(0, 3).Falling)
}

func TestLoadFromFile(t *testing.T) {
	b, err := parse(t, "-config", "../sims/gravity/testdata/small.yaml", "-rows", "7").Load()
	require.NoError(t, err)
	assert.Equal(t, core.Size{Rows: 7, Cols: 3}, b.Size())
	assert.Equal(t, 250*time.Millisecond, b.TickPeriod())
}

func TestLoadErrors(t *testing.T) {
	_, err := parse(t, "-sim", "nope").Load()
	assert.True(t, errors.Is(err, core.ErrUnknownSim))

	_, err = parse(t, "-cols", "2").Load()
	assert.True(t, errors.Is(err, board.ErrOutOfBounds))
}
