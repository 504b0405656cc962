package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
	puierrors "github.com/alexisbeaulieu97/playerui/pkg/errors"
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

func (r *recorder) warnings() []recordedEntry {
	var out []recordedEntry
	for _, e := range r.entries {
		if e.level == "warn" {
			out = append(out, e)
		}
	}
	return out
}

func TestBusDeliversInSubscriptionOrder(t *testing.T) {
	t.Parallel()

	bus := NewBus(nil)
	var order []string
	for _, name := range []string{"first", "second", "third"} {
		name := name
		_, err := bus.Subscribe(ports.EventPlay, func(context.Context, ports.Event) error {
			order = append(order, name)
			return nil
		})
		require.NoError(t, err)
	}

	require.NoError(t, bus.Publish(context.Background(), New(ports.EventPlay, nil)))
	require.Equal(t, []string{"first", "second", "third"}, order)
}

func TestBusLogsEventWithPayloadFields(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	bus := NewBus(rec)

	err := bus.Publish(context.Background(), New(ports.EventUIVariantChanged, map[string]interface{}{"variant": "tv", "index": 2}))
	require.NoError(t, err)

	require.Len(t, rec.entries, 1)
	require.Equal(t, "debug", rec.entries[0].level)
	require.Equal(t, []interface{}{"event_type", ports.EventUIVariantChanged, "handlers", 0, "index", 2, "variant", "tv"}, rec.entries[0].fields)
}

func TestBusHandlerFailuresDoNotStopDelivery(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	bus := NewBus(rec)

	var reached bool
	_, _ = bus.Subscribe(ports.EventPaused, func(context.Context, ports.Event) error {
		return errors.New("boom")
	})
	_, _ = bus.Subscribe(ports.EventPaused, func(context.Context, ports.Event) error {
		panic("kaput")
	})
	_, _ = bus.Subscribe(ports.EventPaused, func(context.Context, ports.Event) error {
		reached = true
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), New(ports.EventPaused, nil)))
	require.True(t, reached)

	warnings := rec.warnings()
	require.Len(t, warnings, 2)
	for _, w := range warnings {
		var handlerErr *puierrors.HandlerError
		require.ErrorAs(t, w.fields[3].(error), &handlerErr)
		require.Equal(t, ports.EventPaused, handlerErr.Event)
	}
	require.Contains(t, warnings[1].fields[3].(error).Error(), "panic: kaput")
}

func TestBusUnsubscribeDuringDispatchSkipsHandler(t *testing.T) {
	t.Parallel()

	bus := NewBus(nil)
	var second ports.Subscription
	var calls int

	_, _ = bus.Subscribe(ports.EventSourceUnloaded, func(context.Context, ports.Event) error {
		second.Unsubscribe()
		return nil
	})
	second, _ = bus.Subscribe(ports.EventSourceUnloaded, func(context.Context, ports.Event) error {
		calls++
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), New(ports.EventSourceUnloaded, nil)))
	require.Equal(t, 0, calls)
	require.Equal(t, 1, bus.SubscriberCount(ports.EventSourceUnloaded))
}

func TestBusUnsubscribeIsIdempotent(t *testing.T) {
	t.Parallel()

	bus := NewBus(nil)
	sub, err := bus.Subscribe(ports.EventPlay, func(context.Context, ports.Event) error { return nil })
	require.NoError(t, err)
	_, err = bus.Subscribe(ports.EventPlay, func(context.Context, ports.Event) error { return nil })
	require.NoError(t, err)

	sub.Unsubscribe()
	sub.Unsubscribe()
	require.Equal(t, 1, bus.SubscriberCount(ports.EventPlay))
	require.Equal(t, 1, bus.Total())
}

func TestNilBusIsInert(t *testing.T) {
	t.Parallel()

	var bus *Bus
	require.NoError(t, bus.Publish(context.Background(), New(ports.EventPlay, nil)))
	sub, err := bus.Subscribe(ports.EventPlay, func(context.Context, ports.Event) error { return nil })
	require.NoError(t, err)
	sub.Unsubscribe()
	require.Equal(t, 0, bus.Total())
}
