// Package grid provides the integer vector and rotation algebra shared by the
// rest of the simulation. Coordinates grow upward: row 0 is the floor.
package grid

import "fmt"

// Pos is a cell coordinate on the playfield.
type Pos struct {
	X, Y int
}

// P is shorthand for Pos{X: x, Y: y}, used heavily by the shape tables.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// Add returns the component-wise sum of p and o.
func (p Pos) Add(o Pos) Pos {
	return Pos{X: p.X + o.X, Y: p.Y + o.Y}
}

// Shift moves p one column in the given direction.
func (p Pos) Shift(dir ShiftDir) Pos {
	return p.Add(dir.Delta())
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Down is the unit vector gravity applies.
var Down = Pos{X: 0, Y: -1}

// ShiftDir is a horizontal movement direction.
type ShiftDir uint8

const (
	Left ShiftDir = iota
	Right
)

// Delta returns the unit vector for the direction.
func (d ShiftDir) Delta() Pos {
	if d == Left {
		return Pos{X: -1}
	}
	return Pos{X: 1}
}

func (d ShiftDir) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// RotateDir is a quarter-turn direction.
type RotateDir uint8

const (
	CW RotateDir = iota
	CCW
)

func (d RotateDir) String() string {
	if d == CW {
		return "cw"
	}
	return "ccw"
}

// Rotation counts clockwise quarter turns from the spawn orientation.
// There is no setter: a Rotation only advances through Rotate.
type Rotation uint8

const (
	Zero Rotation = iota
	One
	Two
	Three
)

// NumRotations is the order of the rotation group.
const NumRotations = 4

// Rotate composes r with one quarter turn in dir. CW adds 1 and CCW adds 3,
// both mod 4.
func (r Rotation) Rotate(dir RotateDir) Rotation {
	delta := Rotation(1)
	if dir == CCW {
		delta = 3
	}
	return (r + delta) % NumRotations
}

func (r Rotation) String() string {
	switch r {
	case Zero:
		return "0"
	case One:
		return "R"
	case Two:
		return "2"
	case Three:
		return "L"
	}
	return fmt.Sprintf("Rotation(%d)", uint8(r))
}
