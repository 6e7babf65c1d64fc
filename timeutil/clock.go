package timeutil

import (
	"sync"
	"time"
)

// Clock abstracts a time source so callers can pin "now" in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// Since is a convenience wrapper over Now().Sub(t).
	Since(t time.Time) time.Duration
}

// SystemClock reads the system wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Important: use Clock.Now() for consistency with custom clocks.
func (c SystemClock) Since(t time.Time) time.Duration { return c.Now().Sub(t) }

// FrozenClock reports a fixed time with manual advance.
// Handy for deterministic unit tests of date logic.
type FrozenClock struct {
	mu sync.RWMutex
	t  time.Time
}

func NewFrozenClock(t time.Time) *FrozenClock {
	return &FrozenClock{t: t}
}

func (c *FrozenClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.t
}

func (c *FrozenClock) Since(t time.Time) time.Duration { return c.Now().Sub(t) }

func (c *FrozenClock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func (c *FrozenClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// Default is the process-wide clock.
var Default Clock = SystemClock{}

// Now is an alias for Default.Now().
func Now() time.Time { return Default.Now() }

// StartOfDay returns midnight of t's calendar day in loc.
// A nil loc falls back to the local time zone.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
