package main

import (
	"math/rand/v2"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blocks/game"
	"github.com/plus3/blocks/loop"
	"github.com/plus3/blocks/shape"
	"go.uber.org/zap"
)

// Options controls a soak run.
type Options struct {
	Sessions      int
	MaxFrames     int
	FrameInterval time.Duration
	Seed          uint64
	Game          game.Config
	Logger        *zap.Logger
}

// actions are drawn uniformly; hard drops are rare so pieces also lock
// through gravity and lock delay.
var actions = []game.Trigger{
	game.ShiftLeft, game.ShiftLeft, game.ShiftRight, game.ShiftRight,
	game.RotateCW, game.RotateCCW, game.SoftDown, game.SoftDown,
	game.HoldPiece,
}

const hardDropChance = 0.02

// player presses random keys each frame.
type player struct {
	rng      *rand.Rand
	triggers []game.Trigger
}

func (p *player) Execute(frame *loop.Frame) {
	p.triggers = p.triggers[:0]
	for n := p.rng.IntN(3); n > 0; n-- {
		p.triggers = append(p.triggers, actions[p.rng.IntN(len(actions))])
	}
	if p.rng.Float64() < hardDropChance {
		p.triggers = append(p.triggers, game.HardDrop)
	}
}

// simulator advances one session with the player's triggers.
type simulator struct {
	state     *game.State
	player    *player
	condition game.Condition
}

func (s *simulator) Execute(frame *loop.Frame) {
	s.condition = s.state.Update(frame.Now, s.player.triggers)
}

// SessionResult summarizes one finished session.
type SessionResult struct {
	Seed      uint64
	Condition game.Condition
	Frames    int
	Played    time.Duration
	Lines     int
	Level     int
	Score     int
	Stats     *game.Stats
}

// Run plays opts.Sessions sessions back to back on simulated time. Each
// session stops when it is won, lost or reaches MaxFrames.
func Run(opts Options, report *Report) error {
	l := loop.New(loop.NewClock(nil))
	p := &player{}
	sim := &simulator{player: p}
	l.Register(p)
	l.Register(sim)

	lines := intmap.New[int, int](64)
	now := time.Duration(0)

	for i := 0; i < opts.Sessions; i++ {
		seed := opts.Seed + uint64(i)
		config := opts.Game
		config.Seed = seed
		state, err := game.New(config,
			game.WithLogger(opts.Logger.With(zap.Int("session", i))),
			game.WithStartTime(now),
		)
		if err != nil {
			return err
		}
		p.rng = rand.New(rand.NewPCG(seed, ^seed))
		sim.state = state
		sim.condition = game.Playing

		start := now
		frames := 0
		for ; frames < opts.MaxFrames && sim.condition == game.Playing; frames++ {
			updateStart := time.Now()
			l.Once(now)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			now += opts.FrameInterval
		}

		result := SessionResult{
			Seed:      seed,
			Condition: sim.condition,
			Frames:    frames,
			Played:    now - start,
			Lines:     state.Lines(),
			Level:     state.Level(),
			Score:     state.Score(),
			Stats:     state.Stats(),
		}
		report.add(result)
		n, _ := lines.Get(result.Lines)
		lines.Put(result.Lines, n+1)

		opts.Logger.Debug("session finished",
			zap.Int("session", i),
			zap.Stringer("condition", result.Condition),
			zap.Int("frames", result.Frames),
			zap.Int("lines", result.Lines),
			zap.Int("score", result.Score),
		)
	}

	report.LinesHistogram = histogram(lines, report.MaxLines)
	report.Stages = l.Stats().Stages
	report.UpdateTime.Finalize()
	return nil
}

// Bucket is one line of a histogram.
type Bucket struct {
	Key   int
	Count int
}

func histogram(counts *intmap.Map[int, int], maxKey int) []Bucket {
	var buckets []Bucket
	for k := 0; k <= maxKey; k++ {
		if n, ok := counts.Get(k); ok {
			buckets = append(buckets, Bucket{Key: k, Count: n})
		}
	}
	return buckets
}

// ShapeCount is the number of locks of one shape across all sessions.
type ShapeCount struct {
	Shape shape.Shape
	Count int
}
