package pkg

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const DefaultGravity = 500 * time.Millisecond

// Clock delivers gravity ticks at a fixed interval until its context ends
type Clock struct {
	Interval time.Duration

	mu     sync.Mutex
	paused bool
	reset  chan struct{}
	ticks  int
}

func (cl *Clock) String() string {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	state := "running"
	if cl.paused {
		state = "paused"
	}
	return fmt.Sprintf("%s %s (%d ticks)", cl.Interval, state, cl.ticks)
}

func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = DefaultGravity
	}
	return &Clock{
		Interval: interval,
		reset:    make(chan struct{}, 1),
	}
}

// Run calls tick on every interval while the clock is not paused. It blocks
// until ctx is done.
func (cl *Clock) Run(ctx context.Context, tick func()) error {
	ticker := time.NewTicker(cl.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-cl.reset:
			ticker.Stop()
			ticker = time.NewTicker(cl.Interval)
		case <-ticker.C:
			cl.mu.Lock()
			paused := cl.paused
			if !paused {
				cl.ticks++
			}
			cl.mu.Unlock()

			if !paused {
				tick()
			}
		}
	}
}

func (cl *Clock) Pause() {
	cl.mu.Lock()
	cl.paused = true
	cl.mu.Unlock()
}

func (cl *Clock) Resume() {
	cl.mu.Lock()
	cl.paused = false
	cl.mu.Unlock()
}

// Toggle flips the pause state and reports whether the clock is now paused
func (cl *Clock) Toggle() bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.paused = !cl.paused
	return cl.paused
}

func (cl *Clock) Paused() bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.paused
}

func (cl *Clock) Ticks() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.ticks
}

// Reset restarts the current interval, e.g. after a new piece spawns
func (cl *Clock) Reset() {
	select {
	case cl.reset <- struct{}{}:
	default:
	}
}
