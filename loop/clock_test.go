package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTime struct {
	now time.Time
}

func newFakeTime() *fakeTime { return &fakeTime{now: time.Unix(1000, 0)} }

func (f *fakeTime) read() time.Time         { return f.now }
func (f *fakeTime) advance(d time.Duration) { f.now = f.now.Add(d) }

func TestClock(t *testing.T) {
	wall := newFakeTime()
	clock := NewClock(wall.read)
	assert.Zero(t, clock.Now())

	wall.advance(time.Second)
	assert.Equal(t, time.Second, clock.Now())

	clock.Pause()
	assert.True(t, clock.Paused())
	wall.advance(time.Minute)
	assert.Equal(t, time.Second, clock.Now(), "frozen while paused")

	clock.Pause()
	wall.advance(time.Minute)
	clock.Resume()
	assert.False(t, clock.Paused())
	assert.Equal(t, time.Second, clock.Now())

	wall.advance(500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, clock.Now())

	clock.Resume()
	assert.Equal(t, 1500*time.Millisecond, clock.Now())
}

func TestClockToggle(t *testing.T) {
	wall := newFakeTime()
	clock := NewClock(wall.read)

	assert.True(t, clock.Toggle())
	wall.advance(time.Hour)
	assert.False(t, clock.Toggle())
	wall.advance(time.Millisecond)
	assert.Equal(t, time.Millisecond, clock.Now())
}

func TestClockDefaultsToWallTime(t *testing.T) {
	clock := NewClock(nil)
	assert.GreaterOrEqual(t, clock.Now(), time.Duration(0))
}
