// Package field implements the playfield grid: the only authority for cell
// occupancy and line clearing.
package field

import (
	"fmt"
	"slices"

	"github.com/plus3/blocks/grid"
	"github.com/plus3/blocks/shape"
)

const (
	Width      = 10
	GameHeight = 40
	// VisibleHeight rows are rendered, starting from the floor.
	VisibleHeight = 22
	// PlayingBoundaryHeight is the top of the legal play area. Rows at or
	// above it are spawn buffer.
	PlayingBoundaryHeight = 20
)

// Block is the content of one cell.
type Block struct {
	Occupied bool
	Shape    shape.Shape
}

// Empty is the zero Block.
var Empty = Block{}

// Field is a Width x GameHeight grid. Cells are indexed [y][x] so a row is
// a contiguous array and line removal is a row copy.
type Field struct {
	rows [GameHeight][Width]Block
}

// New returns an empty field.
func New() *Field {
	return &Field{}
}

// Contains reports whether p lies inside the grid.
func Contains(p grid.Pos) bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < GameHeight
}

// At returns the block at p. It panics if p is outside the grid.
func (f *Field) At(p grid.Pos) Block {
	if !Contains(p) {
		panic(fmt.Sprintf("field: position %s out of bounds", p))
	}
	return f.rows[p.Y][p.X]
}

// IsOpen reports whether p is inside the grid and empty. It is the only
// collision oracle pieces consult.
func (f *Field) IsOpen(p grid.Pos) bool {
	return Contains(p) && !f.rows[p.Y][p.X].Occupied
}

// Occupy permanently fills p with s. Filling an already occupied cell
// leaves it occupied.
func (f *Field) Occupy(p grid.Pos, s shape.Shape) {
	if !Contains(p) {
		panic(fmt.Sprintf("field: occupy %s out of bounds", p))
	}
	f.rows[p.Y][p.X] = Block{Occupied: true, Shape: s}
}

// Apply writes a locked piece into the field.
func (f *Field) Apply(m shape.MinoSet) {
	for _, p := range m.Positions() {
		f.Occupy(p, m.Shape())
	}
}

// FindLines returns the row index of every fully occupied row, ascending.
func (f *Field) FindLines() []int {
	var lines []int
	for y := range f.rows {
		if f.rowFull(y) {
			lines = append(lines, y)
		}
	}
	return lines
}

func (f *Field) rowFull(y int) bool {
	for _, b := range f.rows[y] {
		if !b.Occupied {
			return false
		}
	}
	return true
}

// RemoveLines deletes the given rows. Everything above a removed row drops
// by one and the top row is cleared. Rows are handled from the highest
// down so that removing several rows at once never shifts a row twice.
func (f *Field) RemoveLines(rows []int) {
	sorted := slices.Clone(rows)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	for i := len(sorted) - 1; i >= 0; i-- {
		y := sorted[i]
		if y < 0 || y >= GameHeight {
			panic(fmt.Sprintf("field: remove row %d out of bounds", y))
		}
		copy(f.rows[y:GameHeight-1], f.rows[y+1:])
		f.rows[GameHeight-1] = [Width]Block{}
	}
}

// OccupiedCount returns the number of filled cells.
func (f *Field) OccupiedCount() int {
	n := 0
	for y := range f.rows {
		for _, b := range f.rows[y] {
			if b.Occupied {
				n++
			}
		}
	}
	return n
}

// Row returns a copy of row y.
func (f *Field) Row(y int) [Width]Block {
	return f.rows[y]
}

// OutOfPlay reports whether row y is above the playing boundary.
func OutOfPlay(y int) bool {
	return y >= PlayingBoundaryHeight
}

// Visible calls fn for every rendered cell, row by row from the floor.
// Rows at or above PlayingBoundaryHeight are reported as out of play
// regardless of content. Iteration stops early if fn returns false.
func (f *Field) Visible(fn func(p grid.Pos, b Block, outOfPlay bool) bool) {
	for y := 0; y < VisibleHeight; y++ {
		for x := 0; x < Width; x++ {
			if !fn(grid.P(x, y), f.rows[y][x], OutOfPlay(y)) {
				return
			}
		}
	}
}

// String draws the visible rows top-down, for test failure output.
func (f *Field) String() string {
	buf := make([]byte, 0, VisibleHeight*(Width+1))
	for y := VisibleHeight - 1; y >= 0; y-- {
		for _, b := range f.rows[y] {
			if b.Occupied {
				buf = append(buf, b.Shape.String()[0])
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
