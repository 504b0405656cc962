package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
)

type recordedEntry struct {
	level  string
	msg    string
	fields []interface{}
}

type recorder struct {
	entries []recordedEntry
}

func (r *recorder) Debug(_ context.Context, msg string, fields ...interface{}) {
	r.entries = append(r.entries, recordedEntry{"debug", msg, fields})
}

func (r *recorder) Info(_ context.Context, msg string, fields ...interface{}) {
	r.entries = append(r.entries, recordedEntry{"info", msg, fields})
}

func (r *recorder) Warn(_ context.Context, msg string, fields ...interface{}) {
	r.entries = append(r.entries, recordedEntry{"warn", msg, fields})
}

func (r *recorder) Error(_ context.Context, msg string, fields ...interface{}) {
	r.entries = append(r.entries, recordedEntry{"error", msg, fields})
}

func (r *recorder) With(...interface{}) ports.Logger { return r }

func TestDeferredLoggerFlushPreservesOrderAndLevels(t *testing.T) {
	t.Parallel()

	buffer := NewEventBuffer(10)
	logger := NewDeferredLogger(buffer, true).With("component", "preview")

	ctx := context.Background()
	logger.Debug(ctx, "first")
	logger.Info(ctx, "second", "variant", "smallscreen")
	logger.Warn(ctx, "third")
	logger.Error(ctx, "fourth")
	require.Equal(t, 4, buffer.Len())

	rec := &recorder{}
	buffer.Flush(rec)

	require.Equal(t, 0, buffer.Len())
	require.Len(t, rec.entries, 4)
	require.Equal(t, []string{"debug", "info", "warn", "error"}, []string{
		rec.entries[0].level, rec.entries[1].level, rec.entries[2].level, rec.entries[3].level,
	})
	require.Equal(t, []interface{}{"component", "preview", "variant", "smallscreen"}, rec.entries[1].fields)
}

func TestEventBufferDropsOldestWhenFull(t *testing.T) {
	t.Parallel()

	buffer := NewEventBuffer(2)
	logger := NewDeferredLogger(buffer, false)
	ctx := context.Background()
	logger.Warn(ctx, "a")
	logger.Warn(ctx, "b")
	logger.Error(ctx, "c")

	require.Equal(t, 1, buffer.Dropped())

	rec := &recorder{}
	buffer.Flush(rec)
	require.Len(t, rec.entries, 3)
	require.Equal(t, "log buffer overflowed", rec.entries[0].msg)
	require.Equal(t, "b", rec.entries[1].msg)
	require.Equal(t, "c", rec.entries[2].msg)
	require.Equal(t, 0, buffer.Dropped())
}

func TestDeferredLoggerSkipsEntriesBelowThreshold(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	buffer := NewEventBuffer(10)
	quiet := NewDeferredLogger(buffer, false).With("component", "preview")
	quiet.Debug(ctx, "variant selected")
	quiet.Info(ctx, "tree mounted")
	quiet.Warn(ctx, "stalled")
	require.Equal(t, 1, buffer.Len())

	rec := &recorder{}
	buffer.Flush(rec)
	require.Len(t, rec.entries, 1)
	require.Equal(t, recordedEntry{"warn", "stalled", []interface{}{"component", "preview"}}, rec.entries[0])
}

func TestFlushWithNilDelegateKeepsEntries(t *testing.T) {
	t.Parallel()

	buffer := NewEventBuffer(0)
	NewDeferredLogger(buffer, true).Info(context.Background(), "kept")
	buffer.Flush(nil)
	require.Equal(t, 1, buffer.Len())
}

func TestNewCorrelatedContextKeepsExistingID(t *testing.T) {
	t.Parallel()

	ctx := WithCorrelationID(context.Background(), "fixed")
	require.Equal(t, "fixed", GetCorrelationID(NewCorrelatedContext(ctx)))

	fresh := NewCorrelatedContext(context.Background())
	require.Len(t, GetCorrelationID(fresh), 36)
}

func TestOrNoOp(t *testing.T) {
	t.Parallel()

	require.IsType(t, &NoOpLogger{}, OrNoOp(nil))
	rec := &recorder{}
	require.Same(t, rec, OrNoOp(rec))
}
