// Package control drives the active piece through its lifetime: gravity,
// manual movement and lock delay. All time values are durations since the
// session started, supplied by the caller.
package control

import (
	"time"

	"github.com/plus3/blocks/grid"
	"github.com/plus3/blocks/piece"
	"github.com/plus3/blocks/shape"
)

// DropResult tells the caller whether the piece is still under control.
type DropResult uint8

const (
	// Continue means the piece remains controllable.
	Continue DropResult = iota
	// Stop means the caller must lock the piece into the field.
	Stop
)

func (r DropResult) String() string {
	if r == Stop {
		return "stop"
	}
	return "continue"
}

// ControlledBlocks is the active piece plus its gravity schedule and lock
// delay. It is replaced wholesale when the piece locks.
type ControlledBlocks struct {
	tetromino  piece.Tetromino
	nextDrop   time.Duration
	dropPeriod time.Duration
	lockDelay  LockDelay
}

// New starts controlling t at start. The first gravity step is due one
// period later.
func New(start time.Duration, t piece.Tetromino, period time.Duration, lock LockConfig) *ControlledBlocks {
	if period <= 0 {
		panic("control: drop period must be positive")
	}
	return &ControlledBlocks{
		tetromino:  t,
		nextDrop:   start + period,
		dropPeriod: period,
		lockDelay:  NewLockDelay(lock),
	}
}

func (c *ControlledBlocks) Tetromino() piece.Tetromino { return c.tetromino }
func (c *ControlledBlocks) Minos() shape.MinoSet       { return c.tetromino.Minos() }
func (c *ControlledBlocks) NextDrop() time.Duration    { return c.nextDrop }
func (c *ControlledBlocks) DropPeriod() time.Duration  { return c.dropPeriod }
func (c *ControlledBlocks) LockDelay() *LockDelay      { return &c.lockDelay }

// Shift moves the piece one column if possible. It reports whether the
// piece moved.
func (c *ControlledBlocks) Shift(f shape.Checker, dir grid.ShiftDir) bool {
	return c.manualMovement(c.tetromino.TryShift(dir, f))
}

// Rotate turns the piece if any kick candidate fits.
func (c *ControlledBlocks) Rotate(f shape.Checker, dir grid.RotateDir) bool {
	return c.manualMovement(c.tetromino.TryRotate(dir, f))
}

// HardDrop moves the piece to its resting row and returns the distance
// travelled. The caller must lock the piece immediately; lock delay does
// not apply.
func (c *ControlledBlocks) HardDrop(f shape.Checker) int {
	distance := c.tetromino.DropDistance(f)
	c.tetromino = c.tetromino.HardDrop(f)
	return distance
}

// PeriodicDrop applies every gravity step due at or before now. Missed
// steps are all applied in one call. Once the piece cannot fall, the
// elapsed time feeds the lock delay and its verdict is returned.
func (c *ControlledBlocks) PeriodicDrop(f shape.Checker, now time.Duration) DropResult {
	for c.nextDrop <= now {
		dropped, ok := c.tetromino.TryDown(f)
		if !ok {
			return c.lockDelay.ConsumeTime(now)
		}
		c.lockDelay.Reset()
		c.nextDrop += c.dropPeriod
		c.tetromino = dropped
	}
	return Continue
}

// ManualSoftDrop moves the piece down one row immediately and restarts the
// gravity schedule from now.
func (c *ControlledBlocks) ManualSoftDrop(f shape.Checker, now time.Duration) (DropResult, bool) {
	dropped, ok := c.tetromino.TryDown(f)
	if !ok {
		return c.lockDelay.ConsumeTime(now), false
	}
	c.lockDelay.Reset()
	c.nextDrop = now + c.dropPeriod
	c.tetromino = dropped
	return Continue, true
}

func (c *ControlledBlocks) manualMovement(t piece.Tetromino, ok bool) bool {
	if !ok {
		return false
	}
	c.tetromino = t
	c.lockDelay.Reset()
	return true
}
