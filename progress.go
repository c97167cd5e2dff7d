package scalarstar

import "time"

// Progress is a snapshot of a running search handed to an Observer.
type Progress struct {
	BestDistance float64
	OpenSetSize  int
	Expanded     int
}

// Observer receives progress observations. It runs on the search goroutine
// and must return quickly; its outcome never affects the search.
type Observer func(Progress)

// throttle lets at most one event through per interval. The first event
// always passes.
type throttle struct {
	interval time.Duration
	now      func() time.Time
	last     time.Time
	fired    bool
}

func newThrottle(interval time.Duration, now func() time.Time) *throttle {
	if now == nil {
		now = time.Now
	}
	return &throttle{interval: interval, now: now}
}

func (t *throttle) allow() bool {
	current := t.now()
	if t.fired && current.Sub(t.last) <= t.interval {
		return false
	}
	t.last = current
	t.fired = true
	return true
}
