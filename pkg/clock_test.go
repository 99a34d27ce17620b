package pkg

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockTicks(t *testing.T) {
	cl := NewClock(5 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	var ticks int32
	go func() {
		done <- cl.Run(ctx, func() { atomic.AddInt32(&ticks, 1) })
	}()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&ticks) >= 3
	}, time.Second, time.Millisecond)

	cl.Pause()
	time.Sleep(30 * time.Millisecond)
	paused := atomic.LoadInt32(&ticks)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, paused, atomic.LoadInt32(&ticks))
	assert.Equal(t, int(paused), cl.Ticks())

	cl.Resume()
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&ticks) > paused
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("clock did not stop")
	}
}

func TestClockToggle(t *testing.T) {
	cl := NewClock(0)
	assert.Equal(t, DefaultGravity, cl.Interval)

	assert.True(t, cl.Toggle())
	assert.True(t, cl.Paused())
	assert.False(t, cl.Toggle())
	assert.False(t, cl.Paused())

	cl.Reset()
	cl.Reset()
	assert.Contains(t, cl.String(), "running")
}
