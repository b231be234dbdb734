package component

import "time"

// Timer is a countdown clamped at zero
// Zero value is an inactive timer
type Timer struct {
	Remaining time.Duration
}

// Set arms the timer; negative durations clear it
func (t *Timer) Set(d time.Duration) {
	if d < 0 {
		d = 0
	}
	t.Remaining = d
}

// Extend raises the timer to at least d, never shortening it
func (t *Timer) Extend(d time.Duration) {
	if d > t.Remaining {
		t.Remaining = d
	}
}

// Clear zeroes the timer
func (t *Timer) Clear() {
	t.Remaining = 0
}

// Active reports remaining time above zero
func (t *Timer) Active() bool {
	return t.Remaining > 0
}

// Tick decrements by dt and reports whether the timer reached zero during this call
// An already-expired timer never reports expiry again
func (t *Timer) Tick(dt time.Duration) bool {
	if t.Remaining <= 0 {
		return false
	}
	t.Remaining -= dt
	if t.Remaining <= 0 {
		t.Remaining = 0
		return true
	}
	return false
}
