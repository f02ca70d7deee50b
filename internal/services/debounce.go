package services

import (
	"sync"
	"time"
)

// Debouncer delays a call until no new call has arrived for the configured wait.
// Only the most recent value is delivered.
type Debouncer struct {
	wait  time.Duration
	fn    func(string)
	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer that calls fn with the latest value.
// A zero wait delivers every value synchronously.
func NewDebouncer(wait time.Duration, fn func(string)) *Debouncer {
	return &Debouncer{wait: wait, fn: fn}
}

// Trigger schedules fn(value), cancelling any pending call
func (d *Debouncer) Trigger(value string) {
	if d.wait <= 0 {
		d.fn(value)
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, func() {
		d.fn(value)
	})
}

// Stop cancels a pending call, if any
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
