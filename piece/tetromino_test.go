package piece_test

import (
	"testing"

	"github.com/plus3/blocks/field"
	"github.com/plus3/blocks/grid"
	"github.com/plus3/blocks/piece"
	"github.com/plus3/blocks/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubField is open everywhere except the listed cells. It has no walls
// or floor.
type stubField map[grid.Pos]bool

func (s stubField) IsOpen(p grid.Pos) bool { return !s[p] }

// onlyField is open only on the listed cells.
type onlyField map[grid.Pos]bool

func (o onlyField) IsOpen(p grid.Pos) bool { return o[p] }

func TestHardDropStub(t *testing.T) {
	f := stubField{grid.P(0, -5): true}

	result := piece.New(grid.P(0, 0), shape.I).HardDrop(f)

	assert.Equal(t, grid.P(0, -6), result.Root())
}

func TestShiftStub(t *testing.T) {
	f := stubField{grid.P(-1, 2): true}
	p := piece.New(grid.P(0, 0), shape.I)

	left, ok := p.TryShift(grid.Left, f)
	assert.False(t, ok)
	assert.Equal(t, p, left)

	right, ok := p.TryShift(grid.Right, f)
	require.True(t, ok)
	assert.Equal(t, grid.P(1, 0), right.Root())
}

func TestTryDown(t *testing.T) {
	f := field.New()
	p := piece.New(grid.P(3, -1), shape.O)

	down, ok := p.TryDown(f)
	require.True(t, ok)
	assert.Equal(t, grid.P(3, -2), down.Root())
	assert.Equal(t, 0, down.Minos().Lowest())

	_, ok = down.TryDown(f)
	assert.False(t, ok)
}

func TestRotationClosure(t *testing.T) {
	f := field.New()
	for _, s := range shape.All {
		if s == shape.O {
			continue
		}
		t.Run(s.String(), func(t *testing.T) {
			start := piece.New(grid.P(3, 10), s)
			for r := grid.Zero; r <= grid.Three; r++ {
				got := start
				for range grid.NumRotations {
					var ok bool
					got, ok = got.TryRotate(grid.CW, f)
					require.True(t, ok)
				}
				assert.Equal(t, start.Rotation(), got.Rotation())
				assert.Equal(t, start.Root(), got.Root())

				start, _ = start.TryRotate(grid.CW, f)
			}
		})
	}
}

func TestRotateSpawnIUsesFirstKick(t *testing.T) {
	f := field.New()
	p := piece.Spawn(shape.I)

	rotated, kick := p.TryRotateKick(grid.CW, f)

	assert.Equal(t, 0, kick)
	assert.Equal(t, grid.One, rotated.Rotation())
	assert.Equal(t, p.Root(), rotated.Root())
}

func TestRotateWallKick(t *testing.T) {
	f := field.New()
	vertical, ok := piece.New(grid.P(7, 5), shape.I).TryRotate(grid.CW, f)
	require.True(t, ok)
	require.Equal(t, grid.One, vertical.Rotation())
	for _, m := range vertical.Minos().Positions() {
		require.Equal(t, field.Width-1, m.X)
	}

	rotated, kick := vertical.TryRotateKick(grid.CW, f)

	assert.Equal(t, 1, kick)
	assert.Equal(t, grid.Two, rotated.Rotation())
	assert.Equal(t, grid.P(6, 5), rotated.Root())
}

func TestRotateRejected(t *testing.T) {
	p := piece.New(grid.P(0, 0), shape.T)
	f := onlyField{}
	for _, m := range p.Minos().Positions() {
		f[m] = true
	}

	rotated, ok := p.TryRotate(grid.CCW, f)

	assert.False(t, ok)
	assert.Equal(t, p, rotated)
}

func TestOKicksInPlace(t *testing.T) {
	f := field.New()
	p := piece.New(grid.P(4, 4), shape.O)

	rotated, kick := p.TryRotateKick(grid.CCW, f)

	assert.Equal(t, 0, kick)
	assert.Equal(t, grid.Three, rotated.Rotation())
	assert.ElementsMatch(t, p.Minos().Positions(), rotated.Minos().Positions())
}

func TestHardDropFromSpawn(t *testing.T) {
	f := field.New()
	p := piece.Spawn(shape.I)

	landed := p.HardDrop(f)

	assert.Equal(t, 0, landed.Minos().Lowest())
	assert.Equal(t, landed, landed.HardDrop(f))
	assert.Equal(t, 20, p.DropDistance(f))
	assert.Equal(t, 0, landed.DropDistance(f))
}

func TestHardDropOntoStack(t *testing.T) {
	f := field.New()
	for x := 0; x < field.Width; x++ {
		f.Occupy(grid.P(x, 0), shape.Z)
		f.Occupy(grid.P(x, 1), shape.Z)
	}

	landed := piece.Spawn(shape.T).HardDrop(f)

	assert.Equal(t, 2, landed.Minos().Lowest())
	assert.Equal(t, 20, f.OccupiedCount())
}
