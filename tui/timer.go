package tui

import "time"

// Timer paces a repeating key. The first press always fires; held-key
// repeats fire at most once per interval.
type Timer struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewTimer creates a timer with the given minimum interval between fires.
func NewTimer(interval time.Duration) *Timer {
	return &Timer{interval: interval, now: time.Now}
}

// Ready reports whether the key may fire now, and if so records the fire.
func (t *Timer) Ready() bool {
	now := t.now()
	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}

// Reset makes the next Ready fire immediately.
func (t *Timer) Reset() {
	t.last = time.Time{}
}
