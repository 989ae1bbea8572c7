package inspect

// history is a fixed-size ring of samples.
type history struct {
	samples []float32
	offset  int
}

func newHistory(size int) *history {
	return &history{samples: make([]float32, size)}
}

func (h *history) push(v float32) {
	h.samples[h.offset] = v
	h.offset = (h.offset + 1) % len(h.samples)
}

// ordered returns the samples oldest first.
func (h *history) ordered() []float32 {
	out := make([]float32, len(h.samples))
	n := copy(out, h.samples[h.offset:])
	copy(out[n:], h.samples[:h.offset])
	return out
}

func (h *history) average() float32 {
	var total float32
	for _, v := range h.samples {
		total += v
	}
	return total / float32(len(h.samples))
}
