package app

import "fallgrid/internal/core"

// Loop decides when a board steps. It is the single writer of the board's
// snapshots: spawns, resets and ticks all go through it from one goroutine.
type Loop struct {
	board    Board
	ticker   *core.Ticker
	tickOnce bool
}

// NewLoop schedules b at its configured tick period.
func NewLoop(b Board) *Loop {
	return &Loop{board: b, ticker: core.NewTicker(b.TickPeriod())}
}

// Board returns the driven board.
func (l *Loop) Board() Board { return l.board }

// Ticker exposes the schedule, mainly so tests can swap the clock.
func (l *Loop) Ticker() *core.Ticker { return l.ticker }

// Paused reports whether scheduled ticks are suppressed.
func (l *Loop) Paused() bool { return l.ticker.Paused() }

// TogglePause flips the run flag. It takes effect from the next Update.
func (l *Loop) TogglePause() bool { return l.ticker.Toggle() }

// StepOnce requests a single tick on the next Update, even while paused.
func (l *Loop) StepOnce() { l.tickOnce = true }

// Spawn stamps the board's configured pattern.
func (l *Loop) Spawn() error { return l.board.Spawn() }

// Reset clears the board.
func (l *Loop) Reset() {
	l.board.Reset()
	l.tickOnce = false
}

// Update runs at most one tick and reports whether it did.
func (l *Loop) Update() bool {
	due := l.ticker.ShouldStep()
	if !due && !l.tickOnce {
		return false
	}
	l.board.Step()
	l.tickOnce = false
	return true
}
