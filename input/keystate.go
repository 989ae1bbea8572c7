// Package input turns polled key states into debounced game triggers.
package input

import "time"

// KeyState decides, once per frame, whether a key produces a trigger.
type KeyState interface {
	// Update samples the key at now and reports whether it fires.
	Update(down bool, now time.Duration) bool
	// Release forgets any press in progress.
	Release()
}

// Timing configures auto-repeat for a held key.
type Timing struct {
	// First is the wait between the press and the first repeat.
	First time.Duration
	// Continued is the wait between later repeats.
	Continued time.Duration
}

var (
	DefaultShiftTiming = Timing{First: 150 * time.Millisecond, Continued: 50 * time.Millisecond}
	DefaultDropTiming  = Timing{First: 150 * time.Millisecond, Continued: 50 * time.Millisecond}
)

// Single fires once per press.
type Single struct {
	held bool
}

func (s *Single) Update(down bool, _ time.Duration) bool {
	fire := down && !s.held
	s.held = down
	return fire
}

func (s *Single) Release() { s.held = false }

// Repeating fires on press, again once First has passed, then every
// Continued while the key stays down.
type Repeating struct {
	timing Timing
	next   time.Duration
	held   bool
}

// NewRepeating panics if either interval is not positive.
func NewRepeating(timing Timing) *Repeating {
	if timing.First <= 0 || timing.Continued <= 0 {
		panic("input: repeat intervals must be positive")
	}
	return &Repeating{timing: timing}
}

func (r *Repeating) Update(down bool, now time.Duration) bool {
	switch {
	case !down:
		r.held = false
		return false
	case !r.held:
		r.held = true
		r.next = now + r.timing.First
		return true
	case now > r.next:
		r.next += r.timing.Continued
		return true
	}
	return false
}

func (r *Repeating) Release() { r.held = false }

// Timing returns the repeat intervals.
func (r *Repeating) Timing() Timing { return r.timing }
