package logging

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
)

const defaultBufferLimit = 1000

type logLevel int

const (
	levelDebug logLevel = iota
	levelInfo
	levelWarn
	levelError
)

type bufferedEntry struct {
	ctx    context.Context
	level  logLevel
	msg    string
	fields []interface{}
}

// EventBuffer holds log entries while the terminal belongs to the preview
// TUI. The oldest entries are dropped once the limit is reached.
type EventBuffer struct {
	mu      sync.Mutex
	limit   int
	events  []bufferedEntry
	dropped int
}

// NewEventBuffer creates a buffer with the provided capacity (defaults to 1000).
func NewEventBuffer(limit int) *EventBuffer {
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	return &EventBuffer{
		limit:  limit,
		events: make([]bufferedEntry, 0, limit),
	}
}

func (b *EventBuffer) add(entry bufferedEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.events) == b.limit {
		copy(b.events, b.events[1:])
		b.events[len(b.events)-1] = entry
		b.dropped++
		return
	}
	b.events = append(b.events, entry)
}

// Len reports how many entries are waiting to be flushed.
func (b *EventBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}

// Dropped reports how many entries were discarded because the buffer was full.
func (b *EventBuffer) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}

// Flush replays buffered events using the provided logger, preserving ordering.
func (b *EventBuffer) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	b.mu.Lock()
	events := make([]bufferedEntry, len(b.events))
	copy(events, b.events)
	b.events = b.events[:0]
	dropped := b.dropped
	b.dropped = 0
	b.mu.Unlock()

	if dropped > 0 {
		delegate.Warn(context.Background(), "log buffer overflowed", "dropped", dropped)
	}

	for _, entry := range events {
		entry.level.logTo(delegate)(entry.ctx, entry.msg, entry.fields...)
	}
}

func (lv logLevel) logTo(l ports.Logger) func(context.Context, string, ...interface{}) {
	switch lv {
	case levelDebug:
		return l.Debug
	case levelWarn:
		return l.Warn
	case levelError:
		return l.Error
	}
	return l.Info
}
