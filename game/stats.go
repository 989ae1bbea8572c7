package game

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/blocks/shape"
)

// Stats counts what happened during a session.
type Stats struct {
	pieces *intmap.Map[shape.Shape, int]
	clears *intmap.Map[int, int]
	// Holds is the number of successful hold swaps.
	Holds int
	// MaxCombo is the longest run of consecutive locks that cleared lines.
	MaxCombo int
}

func newStats() Stats {
	return Stats{
		pieces: intmap.New[shape.Shape, int](shape.Count),
		clears: intmap.New[int, int](4),
	}
}

func (s *Stats) recordLock(sh shape.Shape) {
	n, _ := s.pieces.Get(sh)
	s.pieces.Put(sh, n+1)
}

func (s *Stats) recordClear(rows int) {
	n, _ := s.clears.Get(rows)
	s.clears.Put(rows, n+1)
}

// Locked returns how many pieces of sh have locked.
func (s *Stats) Locked(sh shape.Shape) int {
	n, _ := s.pieces.Get(sh)
	return n
}

// TotalLocked is the number of pieces locked across all shapes.
func (s *Stats) TotalLocked() int {
	total := 0
	for _, sh := range shape.All {
		total += s.Locked(sh)
	}
	return total
}

// Clears returns how many locks cleared exactly rows lines at once.
func (s *Stats) Clears(rows int) int {
	n, _ := s.clears.Get(rows)
	return n
}
