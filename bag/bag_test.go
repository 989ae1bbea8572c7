package bag_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/plus3/blocks/bag"
	"github.com/plus3/blocks/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectAllFromBag(t *testing.T) {
	b := bag.New(rand.New(rand.NewPCG(1, 2)))

	var seen []shape.Shape
	for range shape.Count {
		seen = append(seen, b.TakeNext())
	}

	assert.ElementsMatch(t, shape.All[:], seen)
}

func TestEveryAlignedWindowIsAPermutation(t *testing.T) {
	for seed := range uint64(20) {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			b := bag.NewSeeded(seed)
			for window := 0; window < 30; window++ {
				var seen []shape.Shape
				for range shape.Count {
					seen = append(seen, b.TakeNext())
				}
				require.ElementsMatch(t, shape.All[:], seen, "window %d", window)
			}
		})
	}
}

func TestPreviewsMatchDraws(t *testing.T) {
	b := bag.NewSeeded(42)

	for range 25 {
		previews := b.Previews()
		require.Len(t, previews, bag.PreviewSize)
		assert.Equal(t, previews[0], b.TakeNext())
		assert.Equal(t, previews[1:], b.Previews()[:bag.PreviewSize-1])
	}
}

func TestPreviewsIsACopy(t *testing.T) {
	b := bag.NewSeeded(7)
	previews := b.Previews()
	previews[0] = shape.Count

	assert.NotEqual(t, shape.Shape(shape.Count), b.Previews()[0])
}

func TestSeededIsDeterministic(t *testing.T) {
	a, b := bag.NewSeeded(99), bag.NewSeeded(99)
	for range 50 {
		assert.Equal(t, a.TakeNext(), b.TakeNext())
	}
}

func TestRemaining(t *testing.T) {
	b := bag.NewSeeded(3)
	// Six previews are dealt from the first bag at construction.
	assert.Equal(t, 1, b.Remaining())
	b.TakeNext()
	assert.Equal(t, shape.Count, b.Remaining())
}
