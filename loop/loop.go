// Package loop runs ordered frame stages against a session clock and keeps
// per-stage timing statistics.
package loop

import (
	"context"
	"reflect"
	"time"
)

// Frame is passed to every stage during one pass of the loop.
type Frame struct {
	// Now is the session time the frame runs at.
	Now time.Duration
	// Delta is the session time since the previous frame.
	Delta time.Duration
	// Number counts frames from zero.
	Number int64
}

// Stage is one step of a frame, such as polling input or advancing the
// simulation.
type Stage interface {
	Execute(frame *Frame)
}

// StageFunc adapts a function to Stage.
type StageFunc func(frame *Frame)

func (f StageFunc) Execute(frame *Frame) { f(frame) }

// Stats summarizes loop execution.
type Stats struct {
	StageCount int
	Frames     int64
	Stages     []StageStats
}

// StageStats is the execution timing of a single stage.
type StageStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type stageStats struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Loop executes stages in registration order.
type Loop struct {
	clock  *Clock
	stages []Stage
	stats  []*stageStats
	frames int64
	last   time.Duration
}

// New creates a loop driven by clock.
func New(clock *Clock) *Loop {
	return &Loop{clock: clock}
}

// Clock returns the clock Run reads.
func (l *Loop) Clock() *Clock { return l.clock }

// Register appends stage, naming it after its type.
func (l *Loop) Register(stage Stage) {
	t := reflect.TypeOf(stage)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	l.RegisterNamed(t.Name(), stage)
}

// RegisterFunc appends fn under name.
func (l *Loop) RegisterFunc(name string, fn func(frame *Frame)) {
	l.RegisterNamed(name, StageFunc(fn))
}

// RegisterNamed appends stage under name.
func (l *Loop) RegisterNamed(name string, stage Stage) {
	l.stages = append(l.stages, stage)
	l.stats = append(l.stats, &stageStats{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes every stage at now. now must not be earlier than the
// previous frame.
func (l *Loop) Once(now time.Duration) {
	frame := &Frame{Now: now, Number: l.frames}
	if l.frames > 0 {
		frame.Delta = now - l.last
	}
	l.last = now
	l.frames++

	for i, stage := range l.stages {
		start := time.Now()
		stage.Execute(frame)
		duration := time.Since(start)

		stats := l.stats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration
		stats.minDuration = min(stats.minDuration, duration)
		stats.maxDuration = max(stats.maxDuration, duration)
	}
}

// Run executes a frame at the clock's time on every tick of interval
// until ctx is cancelled.
func (l *Loop) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Once(l.clock.Now())
		}
	}
}

// Stats returns execution statistics for every stage.
func (l *Loop) Stats() *Stats {
	stats := &Stats{
		StageCount: len(l.stages),
		Frames:     l.frames,
		Stages:     make([]StageStats, len(l.stats)),
	}
	for i, internal := range l.stats {
		var avg time.Duration
		if internal.executionCount > 0 {
			avg = internal.totalDuration / time.Duration(internal.executionCount)
		}
		stats.Stages[i] = StageStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avg,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}
	return stats
}
