package eventloop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startLoop(t *testing.T) (*Loop, context.CancelFunc) {
	t.Helper()
	loop := New(0, nil)
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = loop.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-loop.Done()
	})
	return loop, cancel
}

func TestLoopRunsPostedFunctionsInOrder(t *testing.T) {
	t.Parallel()

	loop, _ := startLoop(t)
	results := make(chan int, 3)
	for i := 1; i <= 3; i++ {
		i := i
		loop.Post(func() { results <- i })
	}

	require.Equal(t, 1, <-results)
	require.Equal(t, 2, <-results)
	require.Equal(t, 3, <-results)
}

func TestLoopSurvivesPanics(t *testing.T) {
	t.Parallel()

	loop, _ := startLoop(t)
	done := make(chan struct{})
	loop.Post(func() { panic("boom") })
	loop.Post(func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop stopped after panic")
	}
}

func TestLoopAfterFuncRunsOnLoop(t *testing.T) {
	t.Parallel()

	loop, _ := startLoop(t)
	fired := make(chan struct{})
	loop.AfterFunc(5*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}
}

func TestLoopStoppedTimerNeverFires(t *testing.T) {
	t.Parallel()

	loop, _ := startLoop(t)
	fired := make(chan struct{}, 1)
	timer := loop.AfterFunc(20*time.Millisecond, func() { fired <- struct{}{} })
	require.True(t, timer.Stop())
	require.False(t, timer.Stop())

	select {
	case <-fired:
		t.Fatal("stopped timer fired")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestLoopRunReturnsContextError(t *testing.T) {
	t.Parallel()

	loop := New(1, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := loop.Run(ctx)
	require.True(t, errors.Is(err, context.Canceled))

	// Posting after shutdown must not block.
	loop.Post(func() {})
	loop.Post(func() {})
}
