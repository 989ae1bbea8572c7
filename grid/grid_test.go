package grid_test

import (
	"testing"

	"github.com/plus3/blocks/grid"
	"github.com/stretchr/testify/assert"
)

func TestPosAdd(t *testing.T) {
	assert.Equal(t, grid.P(4, 6), grid.P(1, 2).Add(grid.P(3, 4)))
	assert.Equal(t, grid.P(1, 2).Add(grid.P(3, 4)), grid.P(3, 4).Add(grid.P(1, 2)))
	assert.Equal(t, grid.P(1, 2), grid.P(1, 2).Add(grid.Pos{}))
}

func TestPosShift(t *testing.T) {
	assert.Equal(t, grid.P(3, 8), grid.P(4, 8).Shift(grid.Left))
	assert.Equal(t, grid.P(5, 8), grid.P(4, 8).Shift(grid.Right))
}

func TestRotationRotate(t *testing.T) {
	tests := []struct {
		from grid.Rotation
		dir  grid.RotateDir
		want grid.Rotation
	}{
		{grid.One, grid.CW, grid.Two},
		{grid.Zero, grid.CCW, grid.Three},
		{grid.Three, grid.CW, grid.Zero},
		{grid.Two, grid.CCW, grid.One},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"-"+tt.dir.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Rotate(tt.dir))
		})
	}
}

func TestRotationGroupClosure(t *testing.T) {
	for r := grid.Zero; r <= grid.Three; r++ {
		got := r
		for range grid.NumRotations {
			got = got.Rotate(grid.CW)
		}
		assert.Equal(t, r, got)
		assert.Equal(t, r, r.Rotate(grid.CW).Rotate(grid.CCW))
	}
}
