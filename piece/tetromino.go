// Package piece implements a single tetromino as an immutable value. Every
// transition returns a new piece and a flag; a false flag means the move
// was illegal and the original piece still stands.
package piece

import (
	"fmt"

	"github.com/plus3/blocks/grid"
	"github.com/plus3/blocks/shape"
)

// SpawnRoot places a spawn-orientation piece so its minos occupy rows 20
// and 21, directly above the playing boundary, starting at column 3.
var SpawnRoot = grid.P(3, 18)

// Tetromino is a piece at a root position with a rotation.
type Tetromino struct {
	root     grid.Pos
	shape    shape.Shape
	rotation grid.Rotation
}

// New returns a spawn-orientation piece of s rooted at root.
func New(root grid.Pos, s shape.Shape) Tetromino {
	return Tetromino{root: root, shape: s}
}

// Spawn returns s at the default spawn position.
func Spawn(s shape.Shape) Tetromino {
	return New(SpawnRoot, s)
}

func (t Tetromino) Root() grid.Pos          { return t.root }
func (t Tetromino) Shape() shape.Shape      { return t.shape }
func (t Tetromino) Rotation() grid.Rotation { return t.rotation }

// Minos returns the four cells the piece covers.
func (t Tetromino) Minos() shape.MinoSet {
	return t.shape.Minos(t.rotation, t.root)
}

// Fits reports whether every mino is open in c.
func (t Tetromino) Fits(c shape.Checker) bool {
	return t.Minos().Fits(c)
}

func (t Tetromino) String() string {
	return fmt.Sprintf("%s@%s/%s", t.shape, t.root, t.rotation)
}

// TryShift moves the piece one column.
func (t Tetromino) TryShift(dir grid.ShiftDir, c shape.Checker) (Tetromino, bool) {
	return t.moveTo(t.root.Shift(dir), c)
}

// TryDown moves the piece one row down. A false result means the piece is
// grounded.
func (t Tetromino) TryDown(c shape.Checker) (Tetromino, bool) {
	return t.moveTo(t.root.Add(grid.Down), c)
}

// TryRotate turns the piece a quarter in dir, trying the shape's kick
// candidates strictly in table order.
func (t Tetromino) TryRotate(dir grid.RotateDir, c shape.Checker) (Tetromino, bool) {
	rotated, kick := t.TryRotateKick(dir, c)
	return rotated, kick >= 0
}

// TryRotateKick is TryRotate that also reports which kick candidate won.
// On failure it returns t and -1.
func (t Tetromino) TryRotateKick(dir grid.RotateDir, c shape.Checker) (Tetromino, int) {
	target := t.rotation.Rotate(dir)
	for i, offset := range t.shape.Kicks(t.rotation, dir) {
		candidate := Tetromino{
			root:     t.root.Add(offset),
			shape:    t.shape,
			rotation: target,
		}
		if candidate.Fits(c) {
			return candidate, i
		}
	}
	return t, -1
}

// HardDrop returns the piece moved down until it rests. It does not lock
// the piece; the field is never written here.
func (t Tetromino) HardDrop(c shape.Checker) Tetromino {
	result := t
	for {
		next, ok := result.TryDown(c)
		if !ok {
			return result
		}
		result = next
	}
}

// DropDistance is the number of rows HardDrop would descend.
func (t Tetromino) DropDistance(c shape.Checker) int {
	return t.root.Y - t.HardDrop(c).root.Y
}

func (t Tetromino) moveTo(root grid.Pos, c shape.Checker) (Tetromino, bool) {
	moved := t
	moved.root = root
	if moved.Fits(c) {
		return moved, true
	}
	return t, false
}
