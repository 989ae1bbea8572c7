package inspect

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/plus3/blocks/game"
	"github.com/plus3/blocks/loop"
	"github.com/plus3/blocks/shape"
)

// Row is one label/value line of an inspector window.
type Row struct {
	Label string
	Value string
}

// SessionRows describes the session and its active piece.
func SessionRows(s *game.State) []Row {
	held := "-"
	if sh, ok := s.Held(); ok {
		held = sh.String()
	}
	rows := []Row{
		{"Condition", s.Condition().String()},
		{"Phase", s.Phase().String()},
		{"Time", s.Now().Truncate(time.Millisecond).String()},
		{"Level", fmt.Sprint(s.Level())},
		{"Lines", fmt.Sprint(s.Lines())},
		{"Score", fmt.Sprint(s.Score())},
		{"Drop period", s.DropPeriod().String()},
		{"Next", shapeList(s.Previews())},
		{"Held", held},
		{"Can hold", fmt.Sprint(s.CanHold())},
	}

	active, ok := s.Active()
	if !ok {
		if clearing := s.ClearingRows(); len(clearing) > 0 {
			rows = append(rows, clearingRow(clearing), Row{"Resume at", s.ResumeAt().String()})
		}
		return rows
	}
	t := active.Tetromino()
	lock := active.LockDelay()
	return append(rows,
		Row{"Piece", fmt.Sprintf("%s %s at %s", t.Shape(), t.Rotation(), t.Root())},
		Row{"Next drop", active.NextDrop().String()},
		Row{"Grounded", fmt.Sprint(lock.Grounded())},
		Row{"Lock delay", fmt.Sprintf("%s / %s", lock.Accumulated(), lock.Config().Delay)},
		Row{"Lock resets", fmt.Sprintf("%d / %d", lock.ResetsUsed(), lock.Config().MaxResets)},
	)
}

func clearingRow(clearing []int) Row {
	parts := make([]string, len(clearing))
	for i, y := range clearing {
		parts[i] = fmt.Sprint(y)
	}
	return Row{"Clearing rows", strings.Join(parts, " ")}
}

// StatsRows lists per-shape lock counts and clear counts by size.
func StatsRows(stats *game.Stats) []Row {
	rows := make([]Row, 0, shape.Count+6)
	for _, sh := range shape.All {
		rows = append(rows, Row{sh.String(), fmt.Sprint(stats.Locked(sh))})
	}
	for _, n := range []int{1, 2, 3, 4} {
		rows = append(rows, Row{fmt.Sprintf("%d-line clears", n), fmt.Sprint(stats.Clears(n))})
	}
	return append(rows,
		Row{"Holds", fmt.Sprint(stats.Holds)},
		Row{"Max combo", fmt.Sprint(stats.MaxCombo)},
	)
}

// Stage table columns.
const (
	ColumnName = iota
	ColumnAvg
	ColumnMin
	ColumnMax
)

// SortStages orders stage stats by column in place.
func SortStages(stages []loop.StageStats, column int, descending bool) {
	slices.SortStableFunc(stages, func(a, b loop.StageStats) int {
		var c int
		switch column {
		case ColumnName:
			c = strings.Compare(a.Name, b.Name)
		case ColumnAvg:
			c = cmp.Compare(a.AvgDuration, b.AvgDuration)
		case ColumnMin:
			c = cmp.Compare(a.MinDuration, b.MinDuration)
		case ColumnMax:
			c = cmp.Compare(a.MaxDuration, b.MaxDuration)
		}
		if descending {
			return -c
		}
		return c
	})
}

func shapeList(shapes []shape.Shape) string {
	parts := make([]string, len(shapes))
	for i, sh := range shapes {
		parts[i] = sh.String()
	}
	return strings.Join(parts, " ")
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d.Microseconds())/1000.0)
}
