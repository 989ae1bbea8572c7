// Package game orchestrates a play session: it owns the field, the active
// piece, the randomizer and the hold slot, and advances them one tick at a
// time from a caller-supplied clock and trigger list.
package game

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/plus3/blocks/bag"
	"github.com/plus3/blocks/control"
	"github.com/plus3/blocks/field"
	"github.com/plus3/blocks/piece"
	"github.com/plus3/blocks/shape"
	"go.uber.org/zap"
)

// Phase is what the session is doing between ticks.
type Phase uint8

const (
	// PhaseActive has a controllable falling piece.
	PhaseActive Phase = iota
	// PhaseAwaitingClear pauses control while full rows are shown.
	PhaseAwaitingClear
	// PhaseTakeHold waits to spawn the piece swapped out of the hold slot.
	PhaseTakeHold
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseAwaitingClear:
		return "awaiting-clear"
	case PhaseTakeHold:
		return "take-hold"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// Condition is the overall outcome of the session so far.
type Condition uint8

const (
	Playing Condition = iota
	Won
	Lost
)

func (c Condition) String() string {
	switch c {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("Condition(%d)", uint8(c))
}

var lineScores = [...]int{0, 100, 300, 500, 800}

const (
	softDropScore = 1
	hardDropScore = 2
)

// State is one play session.
type State struct {
	config    Config
	log       *zap.Logger
	field     *field.Field
	bag       *bag.RandomBag
	phase     Phase
	condition Condition
	now       time.Duration

	active *control.ControlledBlocks

	clearing []int
	resumeAt time.Duration

	pendingHold shape.Shape
	held        shape.Shape
	hasHeld     bool
	canHold     bool

	lines int
	score int
	combo int
	stats Stats
}

// Option customizes New.
type Option func(*State)

// WithLogger routes session events to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *State) {
		s.log = logger
	}
}

// WithRand draws pieces from rng instead of one derived from Config.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(s *State) {
		s.bag = bag.New(rng)
	}
}

// WithStartTime sets the timestamp of the first spawn.
func WithStartTime(start time.Duration) Option {
	return func(s *State) {
		s.now = start
	}
}

// New validates config and starts a session with the first piece spawned.
func New(config Config, opts ...Option) (*State, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	s := &State{
		config:  config,
		log:     zap.NewNop(),
		field:   field.New(),
		canHold: true,
		stats:   newStats(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.bag == nil {
		seed := config.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		s.bag = bag.NewSeeded(seed)
	}
	s.log.Debug("session started",
		zap.Int("start_level", config.StartLevel),
		zap.Int("max_level", config.MaxLevel),
		zap.Duration("lock_delay", config.Lock.Delay),
	)
	s.spawn(s.bag.TakeNext(), s.now)
	return s, nil
}

// Update advances the session to now. Pending work from earlier ticks is
// resolved first, then triggers are applied in order, then gravity runs
// once. A lock or hold ends trigger processing for the tick. Once the
// session is won or lost Update does nothing.
func (s *State) Update(now time.Duration, triggers []Trigger) Condition {
	if s.condition != Playing {
		return s.condition
	}
	if now < s.now {
		panic(fmt.Sprintf("game: time went backwards from %s to %s", s.now, now))
	}
	s.now = now

	s.resolvePending(now)

	for _, t := range triggers {
		if s.phase != PhaseActive || s.condition != Playing {
			break
		}
		if !s.apply(t, now) {
			break
		}
	}

	if s.phase == PhaseActive && s.condition == Playing {
		if s.active.PeriodicDrop(s.field, now) == control.Stop {
			s.lock(now)
		}
	}
	return s.condition
}

func (s *State) resolvePending(now time.Duration) {
	switch s.phase {
	case PhaseAwaitingClear:
		if now < s.resumeAt {
			return
		}
		s.field.RemoveLines(s.clearing)
		s.clearing = nil
		s.spawn(s.bag.TakeNext(), now)
	case PhaseTakeHold:
		s.spawn(s.pendingHold, now)
	}
}

// apply runs one trigger against the active piece. It returns false when
// the piece it targeted is gone.
func (s *State) apply(t Trigger, now time.Duration) bool {
	switch t.Kind {
	case TriggerShift:
		s.active.Shift(s.field, t.Shift)
	case TriggerRotate:
		s.active.Rotate(s.field, t.Rotate)
	case TriggerSoftDown:
		result, moved := s.active.ManualSoftDrop(s.field, now)
		if moved {
			s.score += softDropScore
		}
		if result == control.Stop {
			s.lock(now)
			return false
		}
	case TriggerHardDrop:
		s.score += hardDropScore * s.active.HardDrop(s.field)
		s.lock(now)
		return false
	case TriggerHoldPiece:
		return !s.hold()
	default:
		panic(fmt.Sprintf("game: unknown trigger kind %d", t.Kind))
	}
	return true
}

// hold swaps the active shape into the hold slot. It reports whether the
// swap happened.
func (s *State) hold() bool {
	if !s.canHold {
		return false
	}
	current := s.active.Tetromino().Shape()
	next := s.held
	if !s.hasHeld {
		next = s.bag.TakeNext()
	}
	s.held, s.hasHeld = current, true
	s.canHold = false
	s.pendingHold = next
	s.active = nil
	s.phase = PhaseTakeHold
	s.stats.Holds++
	s.log.Debug("hold", zap.Stringer("held", current), zap.Stringer("next", next))
	return true
}

// lock writes the active piece into the field, then either spawns the
// next piece or starts a line clear pause.
func (s *State) lock(now time.Duration) {
	minos := s.active.Minos()
	s.field.Apply(minos)
	s.active = nil
	s.canHold = true
	s.stats.recordLock(minos.Shape())

	lines := s.field.FindLines()
	s.log.Debug("lock",
		zap.Stringer("shape", minos.Shape()),
		zap.Int("lowest_row", minos.Lowest()),
		zap.Int("lines", len(lines)),
	)
	if len(lines) == 0 {
		s.combo = 0
		s.spawn(s.bag.TakeNext(), now)
		return
	}

	level := s.Level()
	s.combo++
	s.stats.MaxCombo = max(s.stats.MaxCombo, s.combo)
	s.stats.recordClear(len(lines))
	s.score += lineScores[min(len(lines), len(lineScores)-1)] * level
	s.lines += len(lines)
	s.clearing = lines
	s.resumeAt = now + s.config.ClearDelay
	s.phase = PhaseAwaitingClear

	if s.Level() != level {
		s.log.Info("level up", zap.Int("level", s.Level()), zap.Int("lines", s.lines))
	}
	if s.Level() > s.config.MaxLevel {
		s.condition = Won
		s.log.Info("session won", zap.Int("score", s.score), zap.Int("lines", s.lines))
	}
}

func (s *State) spawn(sh shape.Shape, now time.Duration) {
	t := piece.Spawn(sh)
	s.active = control.New(now, t, DropPeriod(s.Level()), s.config.Lock)
	s.phase = PhaseActive
	if !t.Fits(s.field) {
		s.condition = Lost
		s.log.Info("session lost",
			zap.Stringer("shape", sh),
			zap.Int("score", s.score),
			zap.Int("lines", s.lines),
		)
	}
}

// Level is StartLevel plus one for every ten cleared lines.
func (s *State) Level() int {
	return s.config.StartLevel + s.lines/LinesPerLevel
}

func (s *State) Lines() int                { return s.lines }
func (s *State) Score() int                { return s.score }
func (s *State) Phase() Phase              { return s.phase }
func (s *State) Condition() Condition      { return s.condition }
func (s *State) Now() time.Duration        { return s.now }
func (s *State) Config() Config            { return s.config }
func (s *State) Stats() *Stats             { return &s.stats }
func (s *State) Previews() []shape.Shape   { return s.bag.Previews() }
func (s *State) CanHold() bool             { return s.canHold }
func (s *State) ClearingRows() []int       { return slices.Clone(s.clearing) }
func (s *State) ResumeAt() time.Duration   { return s.resumeAt }
func (s *State) DropPeriod() time.Duration { return DropPeriod(s.Level()) }

// Held returns the shape in the hold slot, if any.
func (s *State) Held() (shape.Shape, bool) {
	return s.held, s.hasHeld
}

// Active returns a copy of the controlled piece. It reports false while a
// line clear or hold swap is pending.
func (s *State) Active() (control.ControlledBlocks, bool) {
	if s.active == nil {
		return control.ControlledBlocks{}, false
	}
	return *s.active, true
}
