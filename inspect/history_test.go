package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory(t *testing.T) {
	h := newHistory(3)
	assert.Equal(t, []float32{0, 0, 0}, h.ordered())

	h.push(1)
	h.push(2)
	assert.Equal(t, []float32{0, 1, 2}, h.ordered())

	h.push(3)
	h.push(4)
	assert.Equal(t, []float32{2, 3, 4}, h.ordered())
	assert.InDelta(t, 3.0, h.average(), 1e-6)
}
