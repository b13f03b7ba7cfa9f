package core

import "time"

// Ticker gates simulation steps to a fixed period. Pausing stops future
// ticks from being scheduled; it never interrupts a step that already ran.
type Ticker struct {
	period      time.Duration
	accumulator time.Duration
	last        time.Time
	paused      bool

	now func() time.Time
}

// NewTicker constructs a Ticker firing once per period. The first call to
// ShouldStep fires immediately.
func NewTicker(period time.Duration) *Ticker {
	if period <= 0 {
		period = time.Second
	}
	return &Ticker{period: period, accumulator: period, now: time.Now}
}

// SetClock replaces the time source. Tests use it to drive the ticker
// without sleeping.
func (t *Ticker) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	t.now = now
	t.last = time.Time{}
}

// Period returns the configured tick period.
func (t *Ticker) Period() time.Duration { return t.period }

// Paused reports whether ticks are currently suppressed.
func (t *Ticker) Paused() bool { return t.paused }

// SetPaused pauses or resumes the ticker. Time spent paused is not owed on
// resume: the next tick is a full period after resuming.
func (t *Ticker) SetPaused(paused bool) {
	if t.paused == paused {
		return
	}
	t.paused = paused
	t.accumulator = 0
	t.last = time.Time{}
}

// Toggle flips the paused state and returns the new value.
func (t *Ticker) Toggle() bool {
	t.SetPaused(!t.paused)
	return t.paused
}

// ShouldStep reports whether the simulation should advance by one tick. At
// most one tick is reported per call; a backlog drains one call at a time.
func (t *Ticker) ShouldStep() bool {
	if t.paused {
		return false
	}
	now := t.now()
	if t.last.IsZero() {
		t.last = now
	}
	t.accumulator += now.Sub(t.last)
	t.last = now
	if t.accumulator >= t.period {
		t.accumulator -= t.period
		return true
	}
	return false
}
