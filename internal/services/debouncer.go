package services

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type debounceEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Debouncer lets one action per key through per window; repeats inside the
// window are dropped. Idle keys are swept on later calls.
type Debouncer struct {
	mu        sync.Mutex
	window    time.Duration
	entries   map[string]*debounceEntry
	now       func() time.Time
	lastSweep time.Time
}

func NewDebouncer(window time.Duration) DebouncerInterface {
	return newDebouncer(window)
}

func newDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{
		window:  window,
		entries: make(map[string]*debounceEntry),
		now:     time.Now,
	}
}

func (d *Debouncer) Allow(key string) bool {
	if d.window <= 0 {
		return true
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	d.sweep(now)

	entry, ok := d.entries[key]
	if !ok {
		entry = &debounceEntry{limiter: rate.NewLimiter(rate.Every(d.window), 1)}
		d.entries[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

func (d *Debouncer) idleAfter() time.Duration {
	idle := 10 * d.window
	if idle < time.Minute {
		idle = time.Minute
	}
	return idle
}

// sweep must be called with mu held.
func (d *Debouncer) sweep(now time.Time) {
	idle := d.idleAfter()
	if now.Sub(d.lastSweep) < idle {
		return
	}
	d.lastSweep = now

	for key, entry := range d.entries {
		if now.Sub(entry.lastSeen) > idle {
			delete(d.entries, key)
		}
	}
}

func (d *Debouncer) size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}
