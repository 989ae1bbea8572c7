// Package config loads game settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/plus3/blocks/control"
	"github.com/plus3/blocks/game"
	"github.com/plus3/blocks/input"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid settings")

// Repeat is a key auto-repeat timing.
type Repeat struct {
	First     time.Duration `yaml:"first"`
	Continued time.Duration `yaml:"continued"`
}

// Settings is the contents of a settings file. Durations are written the
// way time.ParseDuration reads them, e.g. 500ms.
type Settings struct {
	LockDelay   time.Duration `yaml:"lock_delay"`
	LockResets  int           `yaml:"lock_resets"`
	ClearDelay  time.Duration `yaml:"clear_delay"`
	MaxLevel    int           `yaml:"max_level"`
	StartLevel  int           `yaml:"start_level"`
	Seed        uint64        `yaml:"seed"`
	ShiftRepeat Repeat        `yaml:"shift_repeat"`
	DropRepeat  Repeat        `yaml:"drop_repeat"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		LockDelay:   control.DefaultLockDelay,
		LockResets:  control.DefaultLockResets,
		ClearDelay:  game.DefaultClearDelay,
		MaxLevel:    game.DefaultMaxLevel,
		StartLevel:  game.DefaultStartLevel,
		ShiftRepeat: Repeat(input.DefaultShiftTiming),
		DropRepeat:  Repeat(input.DefaultDropTiming),
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the settings for values the game cannot run with.
func (s Settings) Validate() error {
	if err := s.Game().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := s.ShiftRepeat.validate("shift_repeat"); err != nil {
		return err
	}
	return s.DropRepeat.validate("drop_repeat")
}

func (r Repeat) validate(name string) error {
	if r.First <= 0 || r.Continued <= 0 {
		return fmt.Errorf("%w: %s intervals must be positive", ErrInvalid, name)
	}
	return nil
}

// Game returns the simulation part of the settings.
func (s Settings) Game() game.Config {
	return game.Config{
		Lock:       control.LockConfig{Delay: s.LockDelay, MaxResets: s.LockResets},
		ClearDelay: s.ClearDelay,
		MaxLevel:   s.MaxLevel,
		StartLevel: s.StartLevel,
		Seed:       s.Seed,
	}
}

func (s Settings) ShiftTiming() input.Timing { return input.Timing(s.ShiftRepeat) }
func (s Settings) DropTiming() input.Timing  { return input.Timing(s.DropRepeat) }

// Marshal encodes the settings as YAML.
func (s Settings) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encoding settings: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding settings: %w", err)
	}
	return buf.Bytes(), nil
}

// Write saves the settings to path.
func (s Settings) Write(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
