package game

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/plus3/blocks/control"
)

// Defaults for Config.
const (
	DefaultClearDelay = 500 * time.Millisecond
	DefaultMaxLevel   = 15
	DefaultStartLevel = 1
	LinesPerLevel     = 10
)

// minDropPeriod keeps the gravity curve positive at very high levels.
const minDropPeriod = 100 * time.Microsecond

// ErrInvalidConfig is wrapped by Config.Validate failures.
var ErrInvalidConfig = errors.New("invalid game config")

// Config tunes a session.
type Config struct {
	Lock control.LockConfig
	// ClearDelay is the pause between a line clear and the rows being
	// removed.
	ClearDelay time.Duration
	// MaxLevel is the last playable level; reaching the next one wins.
	MaxLevel   int
	StartLevel int
	// Seed fixes the piece sequence. Zero picks a random seed.
	Seed uint64
}

// DefaultConfig returns the guideline timings.
func DefaultConfig() Config {
	return Config{
		Lock:       control.DefaultLockConfig(),
		ClearDelay: DefaultClearDelay,
		MaxLevel:   DefaultMaxLevel,
		StartLevel: DefaultStartLevel,
	}
}

// Validate checks the config for values the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Lock.Delay < 0:
		return fmt.Errorf("%w: negative lock delay %s", ErrInvalidConfig, c.Lock.Delay)
	case c.Lock.MaxResets < 0:
		return fmt.Errorf("%w: negative lock reset cap %d", ErrInvalidConfig, c.Lock.MaxResets)
	case c.ClearDelay < 0:
		return fmt.Errorf("%w: negative clear delay %s", ErrInvalidConfig, c.ClearDelay)
	case c.StartLevel < 1:
		return fmt.Errorf("%w: start level %d below 1", ErrInvalidConfig, c.StartLevel)
	case c.MaxLevel < c.StartLevel:
		return fmt.Errorf("%w: max level %d below start level %d", ErrInvalidConfig, c.MaxLevel, c.StartLevel)
	case c.MaxLevel > 100:
		return fmt.Errorf("%w: max level %d above 100", ErrInvalidConfig, c.MaxLevel)
	}
	return nil
}

// DropPeriod is the gravity interval at level, following the guideline
// curve (0.8 - (level-1)*0.007)^(level-1) seconds. It never increases as
// level grows.
func DropPeriod(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	n := float64(level - 1)
	seconds := math.Pow(0.8-n*0.007, n)
	return max(time.Duration(seconds*float64(time.Second)), minDropPeriod)
}
