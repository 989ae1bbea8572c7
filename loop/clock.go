package loop

import (
	"sync"
	"time"
)

// Clock measures session time: wall time since Start minus every paused
// interval. It is safe for concurrent use.
type Clock struct {
	mu       sync.Mutex
	source   func() time.Time
	start    time.Time
	paused   bool
	pausedAt time.Time
	frozen   time.Duration
}

// NewClock starts a clock reading source, or time.Now when source is nil.
func NewClock(source func() time.Time) *Clock {
	if source == nil {
		source = time.Now
	}
	return &Clock{source: source, start: source()}
}

// Now returns the session time. It does not advance while paused.
func (c *Clock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return c.pausedAt.Sub(c.start) - c.frozen
	}
	return c.source().Sub(c.start) - c.frozen
}

// Pause freezes the clock. Pausing a paused clock does nothing.
func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.source()
}

// Resume continues from the time the clock was paused.
func (c *Clock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	c.paused = false
	c.frozen += c.source().Sub(c.pausedAt)
}

// Toggle flips between paused and running and reports whether the clock
// is now paused.
func (c *Clock) Toggle() bool {
	if c.Paused() {
		c.Resume()
		return false
	}
	c.Pause()
	return true
}

func (c *Clock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}
