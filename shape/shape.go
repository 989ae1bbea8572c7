// Package shape holds the static geometry of the seven tetrominoes: mino
// offsets per rotation and the wall-kick candidate tables used to resolve
// rotations.
package shape

import (
	"fmt"

	"github.com/plus3/blocks/grid"
)

// Shape is one of the seven piece kinds.
type Shape uint8

const (
	I Shape = iota
	O
	J
	L
	S
	Z
	T
)

// Count is the number of distinct shapes.
const Count = 7

// All lists every shape in declaration order.
var All = [Count]Shape{I, O, J, L, S, Z, T}

var names = [Count]string{"I", "O", "J", "L", "S", "Z", "T"}

func (s Shape) String() string {
	if int(s) < Count {
		return names[s]
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// Checker reports whether a cell may be occupied by a moving piece.
// The playfield implements it; tests substitute their own.
type Checker interface {
	IsOpen(p grid.Pos) bool
}

// Offsets returns the four mino offsets of s at rotation r, relative to the
// piece root.
func (s Shape) Offsets(r grid.Rotation) [4]grid.Pos {
	return geometry[s][r]
}

// Minos places s at root with rotation r.
func (s Shape) Minos(r grid.Rotation, root grid.Pos) MinoSet {
	offsets := geometry[s][r]
	m := MinoSet{shape: s}
	for i, o := range offsets {
		m.minos[i] = root.Add(o)
	}
	return m
}

// Preview is the spawn orientation of s at the origin, normalized so the
// lowest mino sits on row 0. Preview panes render it directly.
func (s Shape) Preview() MinoSet {
	m := s.Minos(grid.Zero, grid.Pos{})
	low := m.Lowest()
	for i := range m.minos {
		m.minos[i].Y -= low
	}
	return m
}

// Kicks returns the ordered translation candidates tried when rotating s
// from initial in direction dir. The first candidate is always the zero
// offset.
func (s Shape) Kicks(initial grid.Rotation, dir grid.RotateDir) []grid.Pos {
	var table *kickTable
	switch s {
	case O:
		return oKicks[:]
	case I:
		table = &iKicks
	default:
		table = &commonKicks
	}
	return table[dir][initial][:]
}

// MinoSet is the four absolute cells a piece covers. It is always derived
// from a piece and never stored on its own.
type MinoSet struct {
	minos [4]grid.Pos
	shape Shape
}

// Shape returns the owning shape.
func (m MinoSet) Shape() Shape {
	return m.shape
}

// Positions returns the four cells.
func (m MinoSet) Positions() [4]grid.Pos {
	return m.minos
}

// Contains reports whether p is one of the four cells.
func (m MinoSet) Contains(p grid.Pos) bool {
	for _, mino := range m.minos {
		if mino == p {
			return true
		}
	}
	return false
}

// Fits reports whether every cell is open in c.
func (m MinoSet) Fits(c Checker) bool {
	for _, mino := range m.minos {
		if !c.IsOpen(mino) {
			return false
		}
	}
	return true
}

// Lowest returns the smallest row any mino occupies.
func (m MinoSet) Lowest() int {
	low := m.minos[0].Y
	for _, mino := range m.minos[1:] {
		low = min(low, mino.Y)
	}
	return low
}
