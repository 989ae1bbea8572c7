package input

import (
	"time"

	"github.com/plus3/blocks/game"
)

type binding[K comparable] struct {
	key     K
	trigger game.Trigger
	state   KeyState
}

// Bindings maps keys of any comparable type to triggers. Triggers are
// emitted in binding order.
type Bindings[K comparable] struct {
	bindings []binding[K]
}

// NewBindings returns an empty key map.
func NewBindings[K comparable]() *Bindings[K] {
	return &Bindings[K]{}
}

// Bind maps key to trigger through state. A key may be bound more than once
// and several keys may share a trigger.
func (b *Bindings[K]) Bind(key K, trigger game.Trigger, state KeyState) *Bindings[K] {
	b.bindings = append(b.bindings, binding[K]{key: key, trigger: trigger, state: state})
	return b
}

// Single binds key to fire once per press.
func (b *Bindings[K]) Single(key K, trigger game.Trigger) *Bindings[K] {
	return b.Bind(key, trigger, &Single{})
}

// Repeat binds key to auto-repeat while held.
func (b *Bindings[K]) Repeat(key K, trigger game.Trigger, timing Timing) *Bindings[K] {
	return b.Bind(key, trigger, NewRepeating(timing))
}

// Len is the number of bindings.
func (b *Bindings[K]) Len() int { return len(b.bindings) }

// Update samples every bound key and returns the triggers that fired.
func (b *Bindings[K]) Update(isDown func(K) bool, now time.Duration) []game.Trigger {
	var triggers []game.Trigger
	for _, bind := range b.bindings {
		if bind.state.Update(isDown(bind.key), now) {
			triggers = append(triggers, bind.trigger)
		}
	}
	return triggers
}

// Release drops every press in progress, so keys still held fire again as
// fresh presses. Frontends call it when resuming from pause.
func (b *Bindings[K]) Release() {
	for _, bind := range b.bindings {
		bind.state.Release()
	}
}

// Layout names the keys of the standard control scheme.
type Layout[K comparable] struct {
	Left, Right, SoftDrop K
	RotateCW, RotateCCW   K
	HardDrop, Hold        K
	// AltHardDrop is bound in addition to HardDrop when set.
	AltHardDrop    K
	HasAltHardDrop bool
}

// Standard binds layout with repeating shifts and soft drop, and single
// fire rotation, hard drop and hold.
func Standard[K comparable](layout Layout[K], shift, drop Timing) *Bindings[K] {
	b := NewBindings[K]().
		Repeat(layout.Left, game.ShiftLeft, shift).
		Repeat(layout.Right, game.ShiftRight, shift).
		Repeat(layout.SoftDrop, game.SoftDown, drop).
		Single(layout.RotateCCW, game.RotateCCW).
		Single(layout.RotateCW, game.RotateCW).
		Single(layout.HardDrop, game.HardDrop)
	if layout.HasAltHardDrop {
		b.Single(layout.AltHardDrop, game.HardDrop)
	}
	return b.Single(layout.Hold, game.HoldPiece)
}
