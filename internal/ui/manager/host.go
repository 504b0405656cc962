package manager

import (
	"context"
	"maps"
	"slices"

	"github.com/alexisbeaulieu97/playerui/internal/config"
	"github.com/alexisbeaulieu97/playerui/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/component"
)

var _ component.Host = (*Manager)(nil)

// Config implements component.Host.
func (m *Manager) Config() config.UIConfig { return m.cfg }

// UpdateConfig validates and installs cfg, notifies config listeners in
// registration order and publishes ui.configupdated. The active variant is
// kept.
func (m *Manager) UpdateConfig(ctx context.Context, cfg config.UIConfig) error {
	next := cfg.Clone()
	if err := config.ValidateConfig(&next); err != nil {
		return err
	}
	m.cfg = next
	for _, id := range slices.Sorted(maps.Keys(m.listeners)) {
		if fn, ok := m.listeners[id]; ok {
			fn(next)
		}
	}
	m.logger.Debug(ctx, "ui configuration updated", "variant", m.ActiveVariant())
	return m.events.Publish(ctx, events.New(ports.EventUIConfigUpdated, nil))
}

// OnConfigUpdated implements component.Host.
func (m *Manager) OnConfigUpdated(fn func(cfg config.UIConfig)) ports.Subscription {
	if fn == nil {
		return subscription(nil)
	}
	m.nextID++
	id := m.nextID
	m.listeners[id] = fn
	return subscription(func() { delete(m.listeners, id) })
}

// ConfigListeners reports how many config listeners are registered.
func (m *Manager) ConfigListeners() int { return len(m.listeners) }

// Events implements component.Host.
func (m *Manager) Events() ports.EventPublisher { return m.events }

// Channel implements component.Host.
func (m *Manager) Channel() ports.MessageChannel { return m.channel }

// Scheduler implements component.Host.
func (m *Manager) Scheduler() ports.Scheduler { return m.sched }

// Logger implements component.Host.
func (m *Manager) Logger() ports.Logger { return m.logger }

type subscription func()

func (s subscription) Unsubscribe() {
	if s != nil {
		s()
	}
}
