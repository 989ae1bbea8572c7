package control

import (
	"fmt"
	"time"
)

// Defaults for LockConfig.
const (
	DefaultLockDelay  = 500 * time.Millisecond
	DefaultLockResets = 5
)

// LockConfig tunes lock delay.
type LockConfig struct {
	// Delay is how long a piece may stay grounded before it locks.
	Delay time.Duration
	// MaxResets bounds how many times movement may restart the delay
	// during one piece's lifetime.
	MaxResets int
}

// DefaultLockConfig returns the standard 500ms / 5 reset policy.
func DefaultLockConfig() LockConfig {
	return LockConfig{Delay: DefaultLockDelay, MaxResets: DefaultLockResets}
}

// LockDelay accumulates the time a piece spends grounded.
//
// It is either not grounded (no sample yet) or grounded and accumulating.
// The lock itself is not a state: ConsumeTime returns Stop and the caller
// replaces the piece.
type LockDelay struct {
	config      LockConfig
	accumulated time.Duration
	lastSample  time.Duration
	grounded    bool
	resets      int
}

// NewLockDelay returns a lock delay with no grounded samples.
func NewLockDelay(config LockConfig) LockDelay {
	return LockDelay{config: config}
}

// ConsumeTime records a grounded sample at now. Time since the previous
// sample, if any, is added to the total. It returns Stop once the total
// exceeds the configured delay.
func (l *LockDelay) ConsumeTime(now time.Duration) DropResult {
	l.check()
	if l.grounded {
		l.accumulated += now - l.lastSample
	}
	l.lastSample = now
	l.grounded = true

	if l.accumulated > l.config.Delay {
		return Stop
	}
	return Continue
}

// Reset restarts the delay after a successful move. It only applies while
// grounded and while resets remain; otherwise it does nothing. The cap
// stops a player from postponing the lock forever by spinning in place.
func (l *LockDelay) Reset() {
	l.check()
	if !l.grounded || l.resets >= l.config.MaxResets {
		return
	}
	l.accumulated = 0
	l.lastSample = 0
	l.grounded = false
	l.resets++
}

// Grounded reports whether a grounded sample is pending.
func (l *LockDelay) Grounded() bool { return l.grounded }

// Accumulated is the grounded time counted so far.
func (l *LockDelay) Accumulated() time.Duration { return l.accumulated }

// ResetsUsed is the number of effective resets.
func (l *LockDelay) ResetsUsed() int { return l.resets }

// Config returns the policy in use.
func (l *LockDelay) Config() LockConfig { return l.config }

func (l *LockDelay) check() {
	if !l.grounded && l.accumulated != 0 {
		panic(fmt.Sprintf("control: lock delay accumulated %s without a grounded sample", l.accumulated))
	}
	if l.resets > l.config.MaxResets {
		panic(fmt.Sprintf("control: lock delay used %d of %d resets", l.resets, l.config.MaxResets))
	}
}
