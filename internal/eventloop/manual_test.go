package eventloop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestManualRunsDueCallbacksInOrder(t *testing.T) {
	t.Parallel()

	sched := NewManual()
	var order []string
	sched.AfterFunc(3*time.Second, func() { order = append(order, "c") })
	sched.AfterFunc(time.Second, func() { order = append(order, "a") })
	sched.AfterFunc(time.Second, func() { order = append(order, "b") })

	sched.Advance(2 * time.Second)
	require.Equal(t, []string{"a", "b"}, order)
	require.Equal(t, 1, sched.Pending())

	sched.Advance(time.Second)
	require.Equal(t, []string{"a", "b", "c"}, order)
	require.Equal(t, 3*time.Second, sched.Now())
}

func TestManualStopRemovesTimer(t *testing.T) {
	t.Parallel()

	sched := NewManual()
	var fired bool
	timer := sched.AfterFunc(time.Second, func() { fired = true })

	require.True(t, timer.Stop())
	require.False(t, timer.Stop())
	sched.Advance(time.Minute)
	require.False(t, fired)
	require.Equal(t, 0, sched.Pending())
}

func TestManualRunsCallbacksScheduledWhileAdvancing(t *testing.T) {
	t.Parallel()

	sched := NewManual()
	var ticks int
	var tick func()
	tick = func() {
		ticks++
		sched.AfterFunc(time.Second, tick)
	}
	sched.AfterFunc(time.Second, tick)

	sched.Advance(3500 * time.Millisecond)
	require.Equal(t, 3, ticks)
	require.Equal(t, 1, sched.Pending())
}
