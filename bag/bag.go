// Package bag implements the 7-bag piece randomizer with a preview queue.
package bag

import (
	"math/rand/v2"
	"slices"

	"github.com/plus3/blocks/shape"
)

// PreviewSize is how many upcoming shapes are visible.
const PreviewSize = 6

// RandomBag deals shapes so that every run of seven draws, aligned to the
// start of the session, contains each shape exactly once.
type RandomBag struct {
	rng       *rand.Rand
	remaining []shape.Shape
	upcoming  []shape.Shape
}

// New builds a bag drawing from rng and fills the preview queue.
func New(rng *rand.Rand) *RandomBag {
	b := &RandomBag{
		rng:       rng,
		remaining: slices.Clone(shape.All[:]),
		upcoming:  make([]shape.Shape, 0, PreviewSize+1),
	}
	for len(b.upcoming) < PreviewSize {
		b.fillUpcoming()
	}
	return b
}

// NewSeeded returns a bag with a deterministic sequence for seed.
func NewSeeded(seed uint64) *RandomBag {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// TakeNext removes and returns the next shape. The queue is topped up
// first so the preview never shrinks.
func (b *RandomBag) TakeNext() shape.Shape {
	b.fillUpcoming()
	next := b.upcoming[0]
	b.upcoming = slices.Delete(b.upcoming, 0, 1)
	return next
}

// Previews returns the next PreviewSize shapes without consuming them.
func (b *RandomBag) Previews() []shape.Shape {
	return slices.Clone(b.upcoming[:min(PreviewSize, len(b.upcoming))])
}

// Remaining is the number of shapes left before the pool refills.
func (b *RandomBag) Remaining() int {
	return len(b.remaining)
}

func (b *RandomBag) fillUpcoming() {
	i := b.rng.IntN(len(b.remaining))
	b.upcoming = append(b.upcoming, b.remaining[i])
	b.remaining = slices.Delete(b.remaining, i, i+1)
	if len(b.remaining) == 0 {
		b.remaining = append(b.remaining, shape.All[:]...)
	}
}
