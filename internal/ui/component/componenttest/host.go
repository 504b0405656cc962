// Package componenttest provides a Host for exercising components outside a
// UI manager.
package componenttest

import (
	"context"

	"github.com/alexisbeaulieu97/playerui/internal/channel"
	"github.com/alexisbeaulieu97/playerui/internal/config"
	"github.com/alexisbeaulieu97/playerui/internal/eventloop"
	"github.com/alexisbeaulieu97/playerui/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/playerui/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/component"
)

// Host is an in-memory component.Host backed by a manual scheduler.
type Host struct {
	Cfg     config.UIConfig
	Bus     *events.Bus
	Hub     *channel.Hub
	Clock   *eventloop.Manual
	Log     ports.Logger
	NoChan  bool
	updates []func(config.UIConfig)
}

// NewHost returns a host with an empty configuration, a message hub and a
// manual scheduler.
func NewHost() *Host {
	return &Host{
		Bus:   events.NewBus(nil),
		Hub:   channel.NewHub(nil),
		Clock: eventloop.NewManual(),
		Log:   logging.NewNoOpLogger(),
	}
}

// Config implements component.Host.
func (h *Host) Config() config.UIConfig { return h.Cfg }

// OnConfigUpdated implements component.Host.
func (h *Host) OnConfigUpdated(fn func(cfg config.UIConfig)) ports.Subscription {
	h.updates = append(h.updates, fn)
	idx := len(h.updates) - 1
	return unsubscribe(func() { h.updates[idx] = nil })
}

// UpdateConfig replaces the configuration and notifies listeners.
func (h *Host) UpdateConfig(cfg config.UIConfig) {
	h.Cfg = cfg
	for _, fn := range h.updates {
		if fn != nil {
			fn(cfg)
		}
	}
	_ = h.Bus.Publish(context.Background(), events.New(ports.EventUIConfigUpdated, nil))
}

// ConfigListeners reports the number of live config listeners.
func (h *Host) ConfigListeners() int {
	n := 0
	for _, fn := range h.updates {
		if fn != nil {
			n++
		}
	}
	return n
}

// Events implements component.Host.
func (h *Host) Events() ports.EventPublisher { return h.Bus }

// Channel implements component.Host. It returns nil when NoChan is set.
func (h *Host) Channel() ports.MessageChannel {
	if h.NoChan || h.Hub == nil {
		return nil
	}
	return h.Hub
}

// Scheduler implements component.Host.
func (h *Host) Scheduler() ports.Scheduler { return h.Clock }

// Logger implements component.Host.
func (h *Host) Logger() ports.Logger { return h.Log }

type unsubscribe func()

func (f unsubscribe) Unsubscribe() { f() }

var _ component.Host = (*Host)(nil)
