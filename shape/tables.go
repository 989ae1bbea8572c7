package shape

import "github.com/plus3/blocks/grid"

var p = grid.P

// geometry is indexed by [Shape][Rotation]. Offsets sit inside a 4x4 box
// with y growing upward, matching the guideline spawn layouts.
var geometry = [Count][grid.NumRotations][4]grid.Pos{
	I: {
		{p(0, 2), p(1, 2), p(2, 2), p(3, 2)},
		{p(2, 0), p(2, 1), p(2, 2), p(2, 3)},
		{p(0, 1), p(1, 1), p(2, 1), p(3, 1)},
		{p(1, 0), p(1, 1), p(1, 2), p(1, 3)},
	},
	O: {
		{p(1, 2), p(2, 2), p(1, 3), p(2, 3)},
		{p(1, 2), p(2, 2), p(1, 3), p(2, 3)},
		{p(1, 2), p(2, 2), p(1, 3), p(2, 3)},
		{p(1, 2), p(2, 2), p(1, 3), p(2, 3)},
	},
	J: {
		{p(0, 3), p(0, 2), p(1, 2), p(2, 2)},
		{p(1, 1), p(1, 2), p(1, 3), p(2, 3)},
		{p(0, 2), p(1, 2), p(2, 2), p(2, 1)},
		{p(0, 1), p(1, 1), p(1, 2), p(1, 3)},
	},
	L: {
		{p(2, 3), p(0, 2), p(1, 2), p(2, 2)},
		{p(1, 1), p(1, 2), p(1, 3), p(2, 1)},
		{p(0, 2), p(1, 2), p(2, 2), p(0, 1)},
		{p(0, 3), p(1, 1), p(1, 2), p(1, 3)},
	},
	S: {
		{p(0, 2), p(1, 2), p(1, 3), p(2, 3)},
		{p(1, 3), p(1, 2), p(2, 2), p(2, 1)},
		{p(0, 1), p(1, 1), p(1, 2), p(2, 2)},
		{p(0, 3), p(0, 2), p(1, 2), p(1, 1)},
	},
	Z: {
		{p(0, 3), p(1, 3), p(1, 2), p(2, 2)},
		{p(1, 1), p(1, 2), p(2, 2), p(2, 3)},
		{p(0, 2), p(1, 2), p(1, 1), p(2, 1)},
		{p(0, 1), p(0, 2), p(1, 2), p(1, 3)},
	},
	T: {
		{p(0, 2), p(1, 2), p(1, 3), p(2, 2)},
		{p(1, 3), p(1, 2), p(1, 1), p(2, 2)},
		{p(0, 2), p(1, 2), p(2, 2), p(1, 1)},
		{p(0, 2), p(1, 1), p(1, 2), p(1, 3)},
	},
}

// MaxKicks is the longest candidate list in any table.
const MaxKicks = 5

// kickTable is indexed by [RotateDir][initial Rotation].
type kickTable [2][grid.NumRotations][MaxKicks]grid.Pos

var oKicks = [1]grid.Pos{p(0, 0)}

var iKicks = kickTable{
	grid.CW: {
		{p(0, 0), p(-2, 0), p(1, 0), p(-2, -1), p(1, 2)},
		{p(0, 0), p(-1, 0), p(2, 0), p(-1, 2), p(2, -1)},
		{p(0, 0), p(2, 0), p(-1, 0), p(2, 1), p(-1, -2)},
		{p(0, 0), p(1, 0), p(-2, 0), p(1, -2), p(-2, 1)},
	},
	grid.CCW: {
		{p(0, 0), p(-1, 0), p(2, 0), p(-1, 2), p(2, -1)},
		{p(0, 0), p(2, 0), p(-1, 0), p(2, 1), p(-1, -2)},
		{p(0, 0), p(1, 0), p(-2, 0), p(1, -2), p(-2, 1)},
		{p(0, 0), p(-2, 0), p(1, 0), p(-2, -1), p(1, 2)},
	},
}

// commonKicks serves J, L, S, Z and T.
var commonKicks = kickTable{
	grid.CW: {
		{p(0, 0), p(-1, 0), p(-1, 1), p(0, -2), p(-1, -2)},
		{p(0, 0), p(1, 0), p(1, -1), p(0, 2), p(1, 2)},
		{p(0, 0), p(1, 0), p(1, 1), p(0, -2), p(1, -2)},
		{p(0, 0), p(-1, 0), p(-1, -1), p(0, 2), p(-1, 2)},
	},
	grid.CCW: {
		{p(0, 0), p(1, 0), p(1, 1), p(0, -2), p(1, -2)},
		{p(0, 0), p(1, 0), p(1, -1), p(0, 2), p(1, 2)},
		{p(0, 0), p(-1, 0), p(-1, 1), p(0, -2), p(-1, -2)},
		{p(0, 0), p(-1, 0), p(-1, -1), p(0, 2), p(-1, 2)},
	},
}
