package shape_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blocks/grid"
	"github.com/plus3/blocks/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type openAll struct{}

func (openAll) IsOpen(grid.Pos) bool { return true }

type blocked map[grid.Pos]bool

func (b blocked) IsOpen(p grid.Pos) bool { return !b[p] }

func TestMinos(t *testing.T) {
	minos := shape.I.Minos(grid.One, grid.P(1, 2))
	assert.ElementsMatch(t,
		[]grid.Pos{grid.P(3, 2), grid.P(3, 3), grid.P(3, 4), grid.P(3, 5)},
		minos.Positions(),
	)
	assert.Equal(t, shape.I, minos.Shape())
	assert.Equal(t, 2, minos.Lowest())
	assert.True(t, minos.Contains(grid.P(3, 4)))
	assert.False(t, minos.Contains(grid.P(2, 4)))
}

func TestGeometryIsFourDistinctCells(t *testing.T) {
	for _, s := range shape.All {
		for r := grid.Zero; r <= grid.Three; r++ {
			seen := map[grid.Pos]bool{}
			for _, o := range s.Offsets(r) {
				assert.False(t, seen[o], "%s rotation %s repeats %s", s, r, o)
				seen[o] = true
				assert.True(t, o.X >= 0 && o.X < 4 && o.Y >= 0 && o.Y < 4)
			}
		}
	}
}

func TestKicksStartWithZeroOffset(t *testing.T) {
	for _, s := range shape.All {
		for r := grid.Zero; r <= grid.Three; r++ {
			for _, dir := range []grid.RotateDir{grid.CW, grid.CCW} {
				kicks := s.Kicks(r, dir)
				require.NotEmpty(t, kicks)
				assert.LessOrEqual(t, len(kicks), shape.MaxKicks)
				assert.Equal(t, grid.Pos{}, kicks[0], "%s %s %s", s, r, dir)
			}
		}
	}
}

func TestKickTableSelection(t *testing.T) {
	assert.Equal(t, []grid.Pos{{}}, shape.O.Kicks(grid.Two, grid.CCW))
	assert.Equal(t,
		[]grid.Pos{grid.P(0, 0), grid.P(-2, 0), grid.P(1, 0), grid.P(-2, -1), grid.P(1, 2)},
		shape.I.Kicks(grid.Zero, grid.CW),
	)
	assert.Equal(t,
		[]grid.Pos{grid.P(0, 0), grid.P(-1, 0), grid.P(-1, -1), grid.P(0, 2), grid.P(-1, 2)},
		shape.T.Kicks(grid.Three, grid.CCW),
	)
	for _, s := range []shape.Shape{shape.J, shape.L, shape.S, shape.Z} {
		assert.Equal(t, shape.T.Kicks(grid.One, grid.CW), s.Kicks(grid.One, grid.CW))
	}
}

func TestFits(t *testing.T) {
	minos := shape.O.Minos(grid.Zero, grid.Pos{})
	assert.True(t, minos.Fits(openAll{}))
	assert.False(t, minos.Fits(blocked{grid.P(2, 3): true}))
	assert.True(t, minos.Fits(blocked{grid.P(0, 0): true}))
}

func TestPreviewSitsOnRowZero(t *testing.T) {
	for _, s := range shape.All {
		assert.Equal(t, 0, s.Preview().Lowest(), s.String())
	}
}

func ExampleShape_Minos() {
	minos := shape.T.Minos(grid.Zero, grid.P(3, 18))
	fmt.Println(minos.Positions())
	// Output: [(3,20) (4,20) (4,21) (5,20)]
}
