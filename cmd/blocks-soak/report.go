package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blocks/game"
	"github.com/plus3/blocks/loop"
	"github.com/plus3/blocks/shape"
)

type Report struct {
	// Configuration
	Sessions      int
	MaxFrames     int
	FrameInterval time.Duration
	Seed          uint64

	// Outcomes
	Won, Lost, Unfinished int
	TotalFrames           int
	SimulatedTime         time.Duration
	TotalLines            int
	TotalScore            int
	MaxLines              int
	MaxScore              int
	BestSeed              uint64
	MaxLevel              int

	// Pieces
	Shapes   []ShapeCount
	Clears   [5]int
	Holds    int
	MaxCombo int

	LinesHistogram []Bucket
	Stages         []loop.StageStats

	// Timing
	TotalTime      time.Duration
	UpdateTime     Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

func newReport(opts Options) *Report {
	r := &Report{
		Sessions:      opts.Sessions,
		MaxFrames:     opts.MaxFrames,
		FrameInterval: opts.FrameInterval,
		Seed:          opts.Seed,
		Shapes:        make([]ShapeCount, shape.Count),
	}
	for i, sh := range shape.All {
		r.Shapes[i].Shape = sh
	}
	return r
}

func (r *Report) add(result SessionResult) {
	switch result.Condition {
	case game.Won:
		r.Won++
	case game.Lost:
		r.Lost++
	default:
		r.Unfinished++
	}
	r.TotalFrames += result.Frames
	r.SimulatedTime += result.Played
	r.TotalLines += result.Lines
	r.TotalScore += result.Score
	r.MaxLines = max(r.MaxLines, result.Lines)
	r.MaxLevel = max(r.MaxLevel, result.Level)
	if n := r.Won + r.Lost + r.Unfinished; n == 1 || result.Score > r.MaxScore {
		r.MaxScore = result.Score
		r.BestSeed = result.Seed
	}

	for i, sh := range shape.All {
		r.Shapes[i].Count += result.Stats.Locked(sh)
	}
	for rows := 1; rows < len(r.Clears); rows++ {
		r.Clears[rows] += result.Stats.Clears(rows)
	}
	r.Holds += result.Stats.Holds
	r.MaxCombo = max(r.MaxCombo, result.Stats.MaxCombo)
}

// AvgLines is the mean number of lines cleared per session.
func (r *Report) AvgLines() float64 {
	if r.Sessions == 0 {
		return 0
	}
	return float64(r.TotalLines) / float64(r.Sessions)
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Soak Report

## Configuration
- **Sessions:** {{.Sessions}}
- **Frame Limit:** {{.MaxFrames}} x {{.FrameInterval}}
- **First Seed:** {{.Seed}}

## Outcomes
- **Won / Lost / Unfinished:** {{.Won}} / {{.Lost}} / {{.Unfinished}}
- **Frames:** {{.TotalFrames}} ({{.SimulatedTime}} simulated)
- **Lines:** {{.TotalLines}} total, {{printf "%.1f" .AvgLines}} per session, {{.MaxLines}} best
- **Best Score:** {{.MaxScore}} (seed {{.BestSeed}})
- **Highest Level:** {{.MaxLevel}}

## Pieces
{{range .Shapes}}- {{.Shape}}: {{.Count}}
{{end}}
- **Clears:** single {{index .Clears 1}}, double {{index .Clears 2}}, triple {{index .Clears 3}}, quad {{index .Clears 4}}
- **Holds:** {{.Holds}}
- **Max Combo:** {{.MaxCombo}}

## Lines Per Session
{{range .LinesHistogram}}- {{.Key}}: {{.Count}}
{{end}}
## Stage Timing
{{range .Stages}}- {{.Name}}: avg {{.AvgDuration}}, min {{.MinDuration}}, max {{.MaxDuration}} over {{.ExecutionCount}} runs
{{end}}
## Performance
- **Total Test Time:** {{.TotalTime}}
- **Frame Update Time:**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
