// Package eventloop provides the single-threaded execution context the UI
// runs on. Every UI callback, including timer callbacks, executes on the loop
// goroutine, so UI code needs no locking.
package eventloop

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/playerui/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
)

const defaultQueueSize = 256

// Loop serialises posted functions onto one goroutine.
type Loop struct {
	queue  chan func()
	logger ports.Logger
	done   chan struct{}
	once   sync.Once
}

// New creates a loop with the given queue capacity. A non-positive size uses
// the default.
func New(size int, logger ports.Logger) *Loop {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Loop{
		queue:  make(chan func(), size),
		logger: logging.OrNoOp(logger),
		done:   make(chan struct{}),
	}
}

// Post enqueues fn. It blocks while the queue is full and drops fn once the
// loop has stopped.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	select {
	case <-l.done:
	case l.queue <- fn:
	}
}

// Run executes posted functions until ctx is cancelled. Panics raised by a
// posted function are logged and do not stop the loop.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			l.exec(ctx, fn)
		}
	}
}

// Done is closed after Run returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) exec(ctx context.Context, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error(ctx, "event loop task panicked", "error", fmt.Errorf("panic: %v", r))
		}
	}()
	fn()
}

// AfterFunc schedules fn on the loop after d. Stopping the returned timer
// after it fired but before the loop ran fn still prevents the call.
func (l *Loop) AfterFunc(d time.Duration, fn func()) ports.Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			if t.markFired() {
				fn()
			}
		})
	})
	return t
}

type loopTimer struct {
	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
	fired   bool
}

func (t *loopTimer) markFired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return false
	}
	t.fired = true
	return true
}

func (t *loopTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.timer.Stop()
	return true
}

var _ ports.Scheduler = (*Loop)(nil)
