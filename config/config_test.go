package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/blocks/game"
	"github.com/plus3/blocks/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesGameDefaults(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, game.DefaultConfig(), s.Game())
	assert.Equal(t, input.DefaultShiftTiming, s.ShiftTiming())
	assert.Equal(t, input.DefaultDropTiming, s.DropTiming())
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
lock_delay: 300ms
max_level: 20
seed: 42
shift_repeat:
  first: 100ms
`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 300*time.Millisecond, s.LockDelay)
	assert.Equal(t, 20, s.MaxLevel)
	assert.EqualValues(t, 42, s.Seed)
	assert.Equal(t, 100*time.Millisecond, s.ShiftRepeat.First)
	assert.Equal(t, input.DefaultShiftTiming.Continued, s.ShiftRepeat.Continued, "unset nested keys keep defaults")
	assert.Equal(t, 5, s.LockResets)
	assert.Equal(t, game.DefaultClearDelay, s.ClearDelay)
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		invalid bool
	}{
		{name: "malformed", yaml: "lock_delay: [1, 2"},
		{name: "unknown key", yaml: "gravity: 3"},
		{name: "bad duration", yaml: "clear_delay: soon"},
		{name: "negative lock delay", yaml: "lock_delay: -1s", invalid: true},
		{name: "start above max", yaml: "start_level: 9\nmax_level: 3", invalid: true},
		{name: "zero repeat", yaml: "drop_repeat: {first: 0s}", invalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalid))
			if tt.invalid && tt.name != "zero repeat" {
				assert.ErrorIs(t, err, game.ErrInvalidConfig)
			}
		})
	}
}

func TestValidateReportsShiftRepeatFirst(t *testing.T) {
	s := Default()
	s.ShiftRepeat.Continued = 0
	s.DropRepeat.First = 0

	for range 20 {
		err := s.Validate()
		require.ErrorIs(t, err, ErrInvalid)
		assert.Contains(t, err.Error(), "shift_repeat")
	}

	s.ShiftRepeat = Repeat(input.DefaultShiftTiming)
	assert.ErrorContains(t, s.Validate(), "drop_repeat")
}

func TestLoadWrapsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_level: 0"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), path)
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	s := Default()
	s.Seed = 7
	s.DropRepeat.Continued = 25 * time.Millisecond
	require.NoError(t, s.Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "lock_delay: 500ms")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}
