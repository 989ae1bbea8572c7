package game

import (
	"time"

	"github.com/plus3/blocks/field"
	"github.com/plus3/blocks/grid"
	"github.com/plus3/blocks/shape"
)

// CellKind classifies a rendered cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellOccupied
	CellActive
	CellGhost
	CellOutOfPlay
	CellClearing
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellOccupied:
		return "occupied"
	case CellActive:
		return "active"
	case CellGhost:
		return "ghost"
	case CellOutOfPlay:
		return "out-of-play"
	case CellClearing:
		return "clearing"
	}
	return "unknown"
}

// Cell is one rendered cell. Shape is meaningful for Occupied, Active,
// Ghost and Clearing cells.
type Cell struct {
	Kind  CellKind
	Shape shape.Shape
}

// Snapshot is an immutable view of a session for rendering. Cells is
// indexed [y][x] with row 0 at the floor.
type Snapshot struct {
	Cells     [field.VisibleHeight][field.Width]Cell
	Previews  []shape.Shape
	Held      shape.Shape
	HasHeld   bool
	CanHold   bool
	Lines     int
	Level     int
	Score     int
	Phase     Phase
	Condition Condition
	Time      time.Duration
}

// At returns the cell at p, which must be visible.
func (s *Snapshot) At(p grid.Pos) Cell {
	return s.Cells[p.Y][p.X]
}

// Snapshot captures the session for rendering. The active piece wins over
// its ghost, the ghost over a clearing row, a clearing row over the out of
// play buffer, and the buffer over field contents.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Previews:  s.bag.Previews(),
		Held:      s.held,
		HasHeld:   s.hasHeld,
		CanHold:   s.canHold,
		Lines:     s.lines,
		Level:     s.Level(),
		Score:     s.score,
		Phase:     s.phase,
		Condition: s.condition,
		Time:      s.now,
	}

	var active, ghost shape.MinoSet
	hasActive := s.active != nil
	if hasActive {
		t := s.active.Tetromino()
		active = t.Minos()
		ghost = t.HardDrop(s.field).Minos()
	}
	clearing := make(map[int]bool, len(s.clearing))
	for _, y := range s.clearing {
		clearing[y] = true
	}

	s.field.Visible(func(p grid.Pos, b field.Block, outOfPlay bool) bool {
		var c Cell
		switch {
		case hasActive && active.Contains(p):
			c = Cell{Kind: CellActive, Shape: active.Shape()}
		case hasActive && ghost.Contains(p):
			c = Cell{Kind: CellGhost, Shape: ghost.Shape()}
		case clearing[p.Y]:
			c = Cell{Kind: CellClearing, Shape: b.Shape}
		case outOfPlay:
			c = Cell{Kind: CellOutOfPlay}
		case b.Occupied:
			c = Cell{Kind: CellOccupied, Shape: b.Shape}
		}
		snap.Cells[p.Y][p.X] = c
		return true
	})
	return snap
}
