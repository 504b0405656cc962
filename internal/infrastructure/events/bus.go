package events

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/alexisbeaulieu97/playerui/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
	puierrors "github.com/alexisbeaulieu97/playerui/pkg/errors"
)

// Bus is a synchronous publisher that delivers events to handlers in
// subscription order and logs every dispatch.
type Bus struct {
	logger ports.Logger
	subs   map[string][]*subscriptionEntry
	nextID int
	mu     sync.RWMutex
}

// NewBus creates an event bus that writes each event as a debug log entry.
func NewBus(logger ports.Logger) *Bus {
	return &Bus{
		logger: logging.OrNoOp(logger),
		subs:   make(map[string][]*subscriptionEntry),
	}
}

// Publish delivers event to every handler subscribed to its type. Handler
// errors and panics are logged as HandlerError and never reach the caller.
func (b *Bus) Publish(ctx context.Context, event ports.Event) error {
	if b == nil || event == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	b.mu.RLock()
	handlers := append([]*subscriptionEntry(nil), b.subs[event.EventType()]...)
	b.mu.RUnlock()

	fields := []interface{}{"event_type", event.EventType(), "handlers", len(handlers)}
	switch payload := event.Payload().(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(payload))
		for key := range payload {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fields = append(fields, key, payload[key])
		}
	case nil:
	default:
		fields = append(fields, "payload", payload)
	}
	b.logger.Debug(ctx, "event", fields...)

	for _, entry := range handlers {
		if entry.cancelled() {
			continue
		}
		if err := b.invoke(ctx, entry.handler, event); err != nil {
			b.logger.Warn(ctx, "event handler failed",
				"event_type", event.EventType(),
				"error", puierrors.NewHandlerError(event.EventType(), err))
		}
	}

	return nil
}

func (b *Bus) invoke(ctx context.Context, handler ports.EventHandler, event ports.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return handler(ctx, event)
}

// Subscribe registers a handler for the provided event type. A handler that
// is unsubscribed while an event is being dispatched is not invoked for the
// remainder of that dispatch.
func (b *Bus) Subscribe(eventType string, handler ports.EventHandler) (ports.Subscription, error) {
	if b == nil || handler == nil {
		return noopSubscription{}, nil
	}
	b.mu.Lock()
	b.nextID++
	entry := &subscriptionEntry{id: b.nextID, handler: handler}
	b.subs[eventType] = append(b.subs[eventType], entry)
	b.mu.Unlock()

	return &subscription{
		cancel: func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			entry.removed.Store(true)
			handlers := b.subs[eventType]
			for i, candidate := range handlers {
				if candidate.id == entry.id {
					b.subs[eventType] = append(handlers[:i:i], handlers[i+1:]...)
					break
				}
			}
			if len(b.subs[eventType]) == 0 {
				delete(b.subs, eventType)
			}
		},
	}, nil
}

// SubscriberCount reports how many handlers listen for eventType.
func (b *Bus) SubscriberCount(eventType string) int {
	if b == nil {
		return 0
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[eventType])
}

// Total reports the number of live subscriptions across all event types.
func (b *Bus) Total() int {
	if b == nil {
		return 0
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	total := 0
	for _, handlers := range b.subs {
		total += len(handlers)
	}
	return total
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	once   sync.Once
	cancel func()
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}

type subscriptionEntry struct {
	id      int
	handler ports.EventHandler
	removed atomic.Bool
}

func (e *subscriptionEntry) cancelled() bool {
	return e.removed.Load()
}

var _ ports.EventPublisher = (*Bus)(nil)
