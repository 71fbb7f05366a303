// Package watcher re-runs a callback when a file changes on disk.
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period after the last event before the
// callback runs. Editors often write a file in several steps.
const DefaultDebounce = 200 * time.Millisecond

// Debouncer coalesces rapid triggers into one callback run.
type Debouncer struct {
	duration time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	seq      uint64
}

// NewDebouncer creates a Debouncer. A zero duration uses DefaultDebounce.
func NewDebouncer(duration time.Duration) *Debouncer {
	if duration == 0 {
		duration = DefaultDebounce
	}
	return &Debouncer{duration: duration}
}

// Trigger schedules callback after the debounce duration, replacing any
// callback scheduled earlier that has not run yet.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()
		if current {
			callback()
		}
	})
}

// Cancel drops any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
