package gpio

import (
	"sync"
	"time"
)

// debouncer accepts at most one edge per line within window.
type debouncer struct {
	window time.Duration
	now    func() time.Time

	mu   sync.Mutex
	last map[int]time.Time
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{window: window, now: time.Now, last: make(map[int]time.Time)}
}

func (d *debouncer) accept(offset int) bool {
	if d == nil || d.window <= 0 {
		return true
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	if prev, ok := d.last[offset]; ok && now.Sub(prev) < d.window {
		return false
	}
	d.last[offset] = now
	return true
}
