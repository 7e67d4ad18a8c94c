// Package watcher provides event coalescing for the responsive layout engine
// and live reloading of the studio config file.
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounceDuration is the debounce window used when none is given.
const DefaultDebounceDuration = 250 * time.Millisecond

// Debouncer coalesces rapid events into a single callback invocation.
// When Trigger is called multiple times within the debounce window, earlier
// schedules are cancelled and only the last callback runs after the window
// elapses. Viewport resizes and toolbar mutations each get their own
// Debouncer so one stream never delays the other.
type Debouncer struct {
	window time.Duration
	timer  *time.Timer
	mu     sync.Mutex
	seq    uint64
}

// NewDebouncer creates a Debouncer with the given window.
// A zero window falls back to DefaultDebounceDuration.
func NewDebouncer(window time.Duration) *Debouncer {
	if window == 0 {
		window = DefaultDebounceDuration
	}
	return &Debouncer{window: window}
}

// Trigger schedules fn to run after the debounce window. Calling Trigger
// again before the window elapses cancels the pending schedule, so at most
// one callback is outstanding at any time.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		// Only run the most recently scheduled callback. This avoids races
		// where Stop() returns false because the timer has already fired and
		// the stale callback starts running concurrently.
		if seq != d.seq {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		fn()
	})
}

// Cancel discards any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Invalidate a callback that may already be executing due to timer races.
	d.seq++

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Duration returns the debounce window.
func (d *Debouncer) Duration() time.Duration {
	return d.window
}
