package game

import "github.com/plus3/blocks/grid"

// TriggerKind identifies a player action.
type TriggerKind uint8

const (
	TriggerShift TriggerKind = iota
	TriggerSoftDown
	TriggerRotate
	TriggerHardDrop
	TriggerHoldPiece
)

// Trigger is one debounced input event. Shift and Rotate carry a
// direction; the other kinds ignore both fields.
type Trigger struct {
	Kind   TriggerKind
	Shift  grid.ShiftDir
	Rotate grid.RotateDir
}

var (
	ShiftLeft  = Shift(grid.Left)
	ShiftRight = Shift(grid.Right)
	RotateCW   = Rotate(grid.CW)
	RotateCCW  = Rotate(grid.CCW)
	SoftDown   = Trigger{Kind: TriggerSoftDown}
	HardDrop   = Trigger{Kind: TriggerHardDrop}
	HoldPiece  = Trigger{Kind: TriggerHoldPiece}
)

// Shift returns a horizontal move trigger.
func Shift(dir grid.ShiftDir) Trigger {
	return Trigger{Kind: TriggerShift, Shift: dir}
}

// Rotate returns a rotation trigger.
func Rotate(dir grid.RotateDir) Trigger {
	return Trigger{Kind: TriggerRotate, Rotate: dir}
}

func (t Trigger) String() string {
	switch t.Kind {
	case TriggerShift:
		return "shift-" + t.Shift.String()
	case TriggerSoftDown:
		return "soft-down"
	case TriggerRotate:
		return "rotate-" + t.Rotate.String()
	case TriggerHardDrop:
		return "hard-drop"
	case TriggerHoldPiece:
		return "hold"
	}
	return "unknown"
}
