// internal/views/debounce.go
package views

import (
	"sync"
	"time"
)

// DefaultDebounceDelay matches the original search-box idle window.
const DefaultDebounceDelay = 300 * time.Millisecond

// Debouncer coalesces a stream of text inputs: each Input resets the idle
// timer, and only the last value within the window fires. A fired value
// equal to the previously fired one is dropped, so retyping the same query
// does not retrigger the filter.
type Debouncer struct {
	delay time.Duration
	fn    func(string)

	mu         sync.Mutex
	timer      *time.Timer
	pending    string
	hasPending bool
	lastFired  string
	fired      bool
	stopped    bool
}

// NewDebouncer wires fn to fire after delay of input silence. A
// non-positive delay falls back to the default.
func NewDebouncer(delay time.Duration, fn func(string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &Debouncer{delay: delay, fn: fn}
}

// Input supersedes any pending value and restarts the idle window.
func (d *Debouncer) Input(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending = value
	d.hasPending = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.firePending)
}

// Flush fires any pending value immediately instead of waiting out the
// idle window.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
	d.firePending()
}

// Stop cancels any pending value and ignores further input.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.hasPending = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) firePending() {
	d.mu.Lock()
	if d.stopped || !d.hasPending {
		d.mu.Unlock()
		return
	}
	value := d.pending
	d.hasPending = false
	if d.fired && value == d.lastFired {
		d.mu.Unlock()
		return
	}
	d.lastFired = value
	d.fired = true
	fn := d.fn
	d.mu.Unlock()
	fn(value)
}
