package logging

import (
	"context"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
)

// DeferredLogger queues entries in an EventBuffer while the preview owns the
// terminal. Debug entries are only queued in verbose mode, matching the level
// of the logger the buffer is flushed into.
type DeferredLogger struct {
	buffer *EventBuffer
	min    logLevel
	fields []interface{}
}

// NewDeferredLogger returns a logger queueing into buffer.
func NewDeferredLogger(buffer *EventBuffer, verbose bool) *DeferredLogger {
	threshold := levelWarn
	if verbose {
		threshold = levelDebug
	}
	return &DeferredLogger{buffer: buffer, min: threshold}
}

func (l *DeferredLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.queue(ctx, levelDebug, msg, fields)
}

func (l *DeferredLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.queue(ctx, levelInfo, msg, fields)
}

func (l *DeferredLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.queue(ctx, levelWarn, msg, fields)
}

func (l *DeferredLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.queue(ctx, levelError, msg, fields)
}

// With returns a logger sharing the buffer and threshold.
func (l *DeferredLogger) With(fields ...interface{}) ports.Logger {
	child := *l
	child.fields = append(append([]interface{}{}, l.fields...), fields...)
	return &child
}

func (l *DeferredLogger) queue(ctx context.Context, level logLevel, msg string, fields []interface{}) {
	if l == nil || l.buffer == nil || level < l.min {
		return
	}
	l.buffer.add(bufferedEntry{
		ctx:    ctx,
		level:  level,
		msg:    msg,
		fields: append(append([]interface{}{}, l.fields...), fields...),
	})
}

var _ ports.Logger = (*DeferredLogger)(nil)
