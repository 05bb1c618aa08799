package greeting

import "time"

// ResizeDelay is the quiet period after the last resize event before the
// canvas is reallocated.
const ResizeDelay = 100 * time.Millisecond

// Debouncer coalesces bursts of triggers into a single callback that runs
// once the triggers stop for the configured delay.
type Debouncer struct {
	timers  *Timers
	delay   time.Duration
	fn      func()
	pending *Timer
	fired   int
}

// NewDebouncer returns a debouncer that runs fn delay after the last Trigger.
func NewDebouncer(timers *Timers, delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{timers: timers, delay: delay, fn: fn}
}

// Trigger restarts the quiet period, cancelling any pending callback.
func (d *Debouncer) Trigger() {
	d.pending.Stop()
	d.pending = d.timers.After(d.delay, d.fire)
}

// Pending reports whether a callback is scheduled.
func (d *Debouncer) Pending() bool {
	return d.pending != nil && d.pending.index >= 0
}

// Fired returns how many times the callback has run.
func (d *Debouncer) Fired() int {
	return d.fired
}

func (d *Debouncer) fire() {
	d.pending = nil
	d.fired++
	d.fn()
}
