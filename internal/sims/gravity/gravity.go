package gravity

import (
	"strings"
	"time"

	"fallgrid/internal/board"
	"fallgrid/internal/core"
)

// Display values written to Cells.
const (
	CellBlank   uint8 = 0
	CellFalling uint8 = 1
	CellSettled uint8 = 2
)

// Gravity drives a board snapshot through ticks and spawns. It is the single
// writer of its snapshots; readers may keep any snapshot it hands out.
type Gravity struct {
	cfg     Config
	pattern board.Pattern

	grid  *board.Grid
	prev  *board.Grid
	ticks int

	display *core.ByteGrid
	shown   *board.Grid
}

// New builds a Gravity sim from a validated config.
func New(cfg Config) (*Gravity, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pattern, err := board.ParsePattern(cfg.Spawn.Pattern)
	if err != nil {
		return nil, err
	}
	g := &Gravity{
		cfg:     cfg,
		pattern: pattern,
		display: core.NewByteGrid(cfg.Rows, cfg.Cols),
	}
	g.Reset()
	return g, nil
}

// Name returns the simulation identifier.
func (g *Gravity) Name() string { return "gravity" }

// Size returns the grid dimensions.
func (g *Gravity) Size() core.Size { return core.Size{Rows: g.cfg.Rows, Cols: g.cfg.Cols} }

// Config returns the configuration the sim was built with.
func (g *Gravity) Config() Config { return g.cfg }

// TickPeriod returns how often the loop driver should call Step.
func (g *Gravity) TickPeriod() time.Duration { return g.cfg.TickPeriod() }

// Reset replaces the board with an all-blank grid.
func (g *Gravity) Reset() {
	// dimensions were validated in New
	grid, _ := board.New(g.cfg.Rows, g.cfg.Cols)
	g.prev = g.grid
	g.grid = grid
	g.ticks = 0
}

// Step advances the board by one tick.
func (g *Gravity) Step() {
	g.publish(board.Step(g.grid))
	g.ticks++
}

// Spawn stamps the configured pattern at the configured origin.
func (g *Gravity) Spawn() error {
	return g.SpawnAt(g.cfg.Spawn.Row, g.cfg.Spawn.Col, g.pattern, g.cfg.Spawn.Falling)
}

// SpawnAt stamps pattern at (row, col). The board is left unchanged when the
// pattern does not fit.
func (g *Gravity) SpawnAt(row, col int, pattern board.Pattern, falling bool) error {
	next, err := board.WriteRegion(g.grid, row, col, pattern, falling)
	if err != nil {
		return err
	}
	g.publish(next)
	return nil
}

func (g *Gravity) publish(next *board.Grid) {
	g.prev = g.grid
	g.grid = next
}

// Grid returns the current snapshot.
func (g *Gravity) Grid() *board.Grid { return g.grid }

// Previous returns the snapshot before the latest update, or nil.
func (g *Gravity) Previous() *board.Grid { return g.prev }

// Changed lists the cells that changed in the latest update.
func (g *Gravity) Changed() []board.Coord { return board.Changed(g.prev, g.grid) }

// Ticks returns the number of steps since the last reset.
func (g *Gravity) Ticks() int { return g.ticks }

// ActiveCount returns the number of occupied cells.
func (g *Gravity) ActiveCount() int { return board.ActiveCount(g.grid) }

// Cells returns the display buffer for the current snapshot. Only cells whose
// block changed since the previous call are rewritten.
func (g *Gravity) Cells() []uint8 {
	for _, at := range board.Changed(g.shown, g.grid) {
		g.display.Set(at.Row, at.Col, displayValue(g.grid.Block(at.Row, at.Col)))
	}
	g.shown = g.grid
	return g.display.Cells()
}

func displayValue(b *board.Block) uint8 {
	switch {
	case !b.IsActive():
		return CellBlank
	case b.Falling:
		return CellFalling
	default:
		return CellSettled
	}
}

// Parameters reports the configuration for the trace tool.
func (g *Gravity) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("rows", "Rows", g.cfg.Rows),
				core.IntParam("cols", "Columns", g.cfg.Cols),
				core.DurationParam("tick_ms", "Tick period", g.cfg.TickPeriod()),
			},
		},
		{
			Name: "Spawn",
			Params: []core.Parameter{
				core.IntParam("spawn_row", "Origin row", g.cfg.Spawn.Row),
				core.IntParam("spawn_col", "Origin column", g.cfg.Spawn.Col),
				core.BoolParam("spawn_falling", "Falling", g.cfg.Spawn.Falling),
				core.TextParam("spawn_pattern", "Pattern", strings.Join(g.pattern.Strings(), "/")),
			},
		},
	}}
}

func init() {
	core.Register("gravity", func(cfg map[string]string) (core.Sim, error) {
		g, err := New(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}
