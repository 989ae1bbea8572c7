package control_test

import (
	"testing"
	"time"

	"github.com/plus3/blocks/control"
	"github.com/stretchr/testify/assert"
)

const eps = time.Millisecond

var (
	start = 3 * time.Second
	delay = control.DefaultLockDelay
)

func TestLockDelaySimple(t *testing.T) {
	ld := control.NewLockDelay(control.DefaultLockConfig())

	assert.Equal(t, control.Continue, ld.ConsumeTime(start))
	assert.True(t, ld.Grounded())
	assert.Equal(t, control.Continue, ld.ConsumeTime(start+delay))
	assert.Equal(t, control.Stop, ld.ConsumeTime(start+delay+eps))
}

func TestLockDelayReset(t *testing.T) {
	ld := control.NewLockDelay(control.DefaultLockConfig())

	assert.Equal(t, control.Continue, ld.ConsumeTime(start))
	ld.Reset()
	assert.False(t, ld.Grounded())
	assert.Equal(t, 1, ld.ResetsUsed())

	assert.Equal(t, control.Continue, ld.ConsumeTime(start+delay+eps))
	assert.Equal(t, time.Duration(0), ld.Accumulated())
	assert.Equal(t, control.Stop, ld.ConsumeTime(start+(delay+eps)*2))
}

func TestLockDelayResetWhileAirborneIsNoop(t *testing.T) {
	ld := control.NewLockDelay(control.DefaultLockConfig())

	ld.Reset()
	ld.Reset()

	assert.Equal(t, 0, ld.ResetsUsed())
}

func TestLockDelayResetCap(t *testing.T) {
	ld := control.NewLockDelay(control.DefaultLockConfig())

	for i := range control.DefaultLockResets {
		at := start + (delay+eps)*time.Duration(i)
		assert.Equal(t, control.Continue, ld.ConsumeTime(at))
		ld.Reset()
		ld.Reset()
	}
	assert.Equal(t, control.DefaultLockResets, ld.ResetsUsed())

	capped := start + (delay+eps)*control.DefaultLockResets
	assert.Equal(t, control.Continue, ld.ConsumeTime(capped))
	ld.Reset()
	assert.Equal(t, control.DefaultLockResets, ld.ResetsUsed())
	assert.True(t, ld.Grounded())
	assert.Equal(t, control.Stop, ld.ConsumeTime(capped+delay+eps))
}

func TestLockDelayCustomConfig(t *testing.T) {
	ld := control.NewLockDelay(control.LockConfig{Delay: 100 * time.Millisecond, MaxResets: 0})

	assert.Equal(t, control.Continue, ld.ConsumeTime(0))
	ld.Reset()
	assert.Equal(t, control.Stop, ld.ConsumeTime(101*time.Millisecond))
}
