package app

import (
	"flag"
	"fmt"
	"strconv"
	"time"

	"fallgrid/internal/board"
	"fallgrid/internal/core"
	"fallgrid/internal/sims/gravity"
)

// Board is what the drivers need from a sim: stepping plus spawning and
// access to the published snapshot.
type Board interface {
	core.Sim
	Spawn() error
	Grid() *board.Grid
	TickPeriod() time.Duration
}

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	ConfigPath string
	Scale      int

	// Overrides; zero values keep the configured setting.
	Rows    int
	Cols    int
	TickMS  int
	Falling string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "gravity", Scale: 32}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML board config (optional)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.Rows, "rows", c.Rows, "override board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "override board columns")
	fs.IntVar(&c.TickMS, "tick-ms", c.TickMS, "override tick period in milliseconds")
	fs.StringVar(&c.Falling, "falling", c.Falling, "override the falling flag of spawned blocks (true/false)")
}

// Options returns the overrides as sim key/value pairs.
func (c *Config) Options() map[string]string {
	opts := map[string]string{}
	if c.Rows > 0 {
		opts["rows"] = strconv.Itoa(c.Rows)
	}
	if c.Cols > 0 {
		opts["cols"] = strconv.Itoa(c.Cols)
	}
	if c.TickMS > 0 {
		opts["tick_ms"] = strconv.Itoa(c.TickMS)
	}
	if c.Falling != "" {
		opts["spawn_falling"] = c.Falling
	}
	return opts
}

// Load builds the board described by the flags. A config file always builds
// the gravity sim; otherwise the registry is consulted.
func (c *Config) Load() (Board, error) {
	if c.ConfigPath != "" {
		base, err := gravity.LoadConfig(c.ConfigPath)
		if err != nil {
			return nil, err
		}
		g, err := gravity.New(base.Apply(c.Options()))
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	sim, err := core.Lookup(c.Sim, c.Options())
	if err != nil {
		return nil, err
	}
	b, ok := sim.(Board)
	if !ok {
		return nil, fmt.Errorf("sim %q does not support spawning", c.Sim)
	}
	return b, nil
}
