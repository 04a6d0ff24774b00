package tool

import (
	"sync"
	"time"
)

// throttle rate-limits a point-consuming callback: the first call in a
// window fires immediately (leading edge), later calls within the
// window are coalesced into one trailing call carrying the last point.
// Hover hit-testing is the only caller; without this every mouse move
// would walk the whole item collection.
type throttle struct {
	every time.Duration

	mu      sync.Mutex
	last    time.Time
	pending func()
	timer   *time.Timer
}

func newThrottle(every time.Duration) *throttle {
	return &throttle{every: every}
}

func (t *throttle) Do(fn func()) {
	t.mu.Lock()
	now := time.Now()
	if wait := t.every - now.Sub(t.last); wait > 0 {
		t.pending = fn
		if t.timer == nil {
			t.timer = time.AfterFunc(wait, t.fireTrailing)
		}
		t.mu.Unlock()
		return
	}
	t.last = now
	t.mu.Unlock()
	fn()
}

func (t *throttle) fireTrailing() {
	t.mu.Lock()
	fn := t.pending
	t.pending = nil
	t.timer = nil
	t.last = time.Now()
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Stop drops any pending trailing call.
func (t *throttle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = nil
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
