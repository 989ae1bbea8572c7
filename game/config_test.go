package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative lock delay", func(c *Config) { c.Lock.Delay = -time.Millisecond }},
		{"negative resets", func(c *Config) { c.Lock.MaxResets = -1 }},
		{"negative clear delay", func(c *Config) { c.ClearDelay = -1 }},
		{"start level zero", func(c *Config) { c.StartLevel = 0 }},
		{"max below start", func(c *Config) { c.StartLevel, c.MaxLevel = 5, 4 }},
		{"max too high", func(c *Config) { c.MaxLevel = 101 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			err := config.Validate()
			assert.ErrorIs(t, err, ErrInvalidConfig)

			_, err = New(config)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestZeroDelaysAreValid(t *testing.T) {
	config := DefaultConfig()
	config.Lock.Delay = 0
	config.Lock.MaxResets = 0
	config.ClearDelay = 0
	assert.NoError(t, config.Validate())
}

func TestDropPeriod(t *testing.T) {
	assert.Equal(t, time.Second, DropPeriod(1))
	assert.Equal(t, time.Second, DropPeriod(0), "levels below one use the first level")
	assert.InDelta(t, 793*time.Millisecond, DropPeriod(2), float64(time.Millisecond))
	assert.InDelta(t, 7*time.Millisecond, DropPeriod(15), float64(time.Millisecond))

	prev := DropPeriod(1)
	for level := 2; level <= 100; level++ {
		period := DropPeriod(level)
		assert.LessOrEqual(t, period, prev, "level %d", level)
		assert.GreaterOrEqual(t, period, minDropPeriod)
		prev = period
	}
}
