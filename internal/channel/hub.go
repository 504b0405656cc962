// Package channel implements the optional external message channel UI
// components may listen to for out-of-band updates.
package channel

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/playerui/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
)

// Forwarder receives every message sent through the hub, typically to relay
// it to a remote peer.
type Forwarder func(name string, data interface{})

// Hub is an in-process named-channel publish/subscribe surface.
type Hub struct {
	logger  ports.Logger
	forward Forwarder
	subs    map[string][]*entry
	nextID  int
	mu      sync.Mutex
}

type entry struct {
	id      int
	handler ports.MessageHandler
	removed bool
}

// NewHub creates an empty hub.
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		logger: logging.OrNoOp(logger).With("component", "channel"),
		subs:   make(map[string][]*entry),
	}
}

// SetForwarder installs fn as the outbound relay. A nil fn disables
// forwarding.
func (h *Hub) SetForwarder(fn Forwarder) {
	h.mu.Lock()
	h.forward = fn
	h.mu.Unlock()
}

// On implements ports.MessageChannel.
func (h *Hub) On(name string, handler ports.MessageHandler) ports.Subscription {
	if handler == nil {
		return unsubscribeFunc(nil)
	}
	h.mu.Lock()
	h.nextID++
	e := &entry{id: h.nextID, handler: handler}
	h.subs[name] = append(h.subs[name], e)
	h.mu.Unlock()

	var once sync.Once
	return unsubscribeFunc(func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			e.removed = true
			list := h.subs[name]
			for i, candidate := range list {
				if candidate == e {
					h.subs[name] = append(list[:i:i], list[i+1:]...)
					break
				}
			}
		})
	})
}

// Send implements ports.MessageChannel. The message is delivered to local
// listeners and then handed to the forwarder, if any.
func (h *Hub) Send(name string, data interface{}) {
	h.Deliver(name, data)
	h.mu.Lock()
	forward := h.forward
	h.mu.Unlock()
	if forward != nil {
		forward(name, data)
	}
}

// Deliver dispatches an inbound message to local listeners only. Listener
// panics are logged and do not stop delivery.
func (h *Hub) Deliver(name string, data interface{}) {
	h.mu.Lock()
	handlers := append([]*entry(nil), h.subs[name]...)
	h.mu.Unlock()

	h.logger.Debug(context.Background(), "channel message", "channel", name, "listeners", len(handlers))
	for _, e := range handlers {
		h.mu.Lock()
		removed := e.removed
		h.mu.Unlock()
		if removed {
			continue
		}
		h.invoke(name, e.handler, data)
	}
}

func (h *Hub) invoke(name string, handler ports.MessageHandler, data interface{}) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Warn(context.Background(), "channel listener failed", "channel", name, "error", fmt.Errorf("panic: %v", r))
		}
	}()
	handler(data)
}

// Listeners reports how many listeners are registered for name.
func (h *Hub) Listeners(name string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[name])
}

type unsubscribeFunc func()

func (f unsubscribeFunc) Unsubscribe() {
	if f != nil {
		f()
	}
}

var _ ports.MessageChannel = (*Hub)(nil)
