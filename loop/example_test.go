package loop_test

import (
	"fmt"
	"time"

	"github.com/plus3/blocks/loop"
)

type counter struct {
	frames int
}

func (c *counter) Execute(frame *loop.Frame) {
	c.frames++
}

// ExampleLoop runs two stages in registration order on caller-supplied
// session times.
func ExampleLoop() {
	l := loop.New(loop.NewClock(nil))
	l.RegisterFunc("print", func(frame *loop.Frame) {
		fmt.Printf("frame %d at %s (+%s)\n", frame.Number, frame.Now, frame.Delta)
	})
	c := &counter{}
	l.Register(c)

	l.Once(0)
	l.Once(16 * time.Millisecond)
	l.Once(40 * time.Millisecond)

	stats := l.Stats()
	fmt.Println("frames:", c.frames)
	fmt.Println("stages:", stats.Stages[0].Name, stats.Stages[1].Name)
	// Output:
	// frame 0 at 0s (+0s)
	// frame 1 at 16ms (+16ms)
	// frame 2 at 40ms (+24ms)
	// frames: 3
	// stages: print counter
}
