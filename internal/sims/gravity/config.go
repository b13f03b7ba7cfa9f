package gravity

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"fallgrid/internal/board"

	"gopkg.in/yaml.v3"
)

// SpawnConfig describes the region stamped by Spawn.
type SpawnConfig struct {
	Row     int      `yaml:"row"`
	Col     int      `yaml:"col"`
	Falling bool     `yaml:"falling"`
	Pattern []string `yaml:"pattern"`
}

// Config controls the board dimensions, tick period and spawn region. All of
// it is fixed once the sim is built.
type Config struct {
	Rows   int         `yaml:"rows"`
	Cols   int         `yaml:"cols"`
	TickMS int         `yaml:"tick_ms"`
	Spawn  SpawnConfig `yaml:"spawn"`
}

// DefaultConfig returns the standard 20x10 board with a one-second tick and
// a bar spawned at (0, 3).
func DefaultConfig() Config {
	return Config{
		Rows:   20,
		Cols:   10,
		TickMS: 1000,
		Spawn: SpawnConfig{
			Row:     0,
			Col:     3,
			Falling: true,
			Pattern: board.Tetromino.Strings(),
		},
	}
}

// TickPeriod returns the configured tick period.
func (c Config) TickPeriod() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// Validate checks dimensions, the tick period and that the spawn pattern
// parses and fits the board.
func (c Config) Validate() error {
	if c.TickMS <= 0 {
		return fmt.Errorf("gravity: tick_ms must be positive, got %d", c.TickMS)
	}
	g, err := board.New(c.Rows, c.Cols)
	if err != nil {
		return err
	}
	pattern, err := board.ParsePattern(c.Spawn.Pattern)
	if err != nil {
		return fmt.Errorf("gravity: spawn.pattern: %w", err)
	}
	if _, err := board.WriteRegion(g, c.Spawn.Row, c.Spawn.Col, pattern, c.Spawn.Falling); err != nil {
		return fmt.Errorf("gravity: spawn: %w", err)
	}
	return nil
}

// FromMap populates a Config from flag-style key/value pairs on top of the
// defaults.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply overrides fields of c from flag-style key/value pairs. Unparseable
// values keep their current setting. spawn_pattern rows are separated by '/'.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["tick_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TickMS = parsed
		}
	}
	if v, ok := cfg["spawn_row"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Spawn.Row = parsed
		}
	}
	if v, ok := cfg["spawn_col"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Spawn.Col = parsed
		}
	}
	if v, ok := cfg["spawn_falling"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Spawn.Falling = parsed
		}
	}
	if v, ok := cfg["spawn_pattern"]; ok && v != "" {
		c.Spawn.Pattern = strings.Split(v, "/")
	}
	return c
}

// LoadConfig reads a YAML config file. Keys missing from the file keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
