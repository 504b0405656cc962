// Package component holds the component model shared by every widget: the
// Component capability interface, configuration merging, the embeddable Base
// and the Container composite.
package component

import (
	"github.com/alexisbeaulieu97/playerui/internal/config"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/dom"
)

// Component is the capability every UI element implements.
//
// Configure is called exactly once per mount by the owning Container or
// manager; calling it twice registers every listener twice. Release undoes
// Configure: it disposes every subscription and timer the component
// registered and drops its references to the player and host.
type Component interface {
	ID() string
	Render() *dom.Node
	Configure(player ports.Player, host Host)
	Release()
}

// Host is the UI instance a component is mounted under.
type Host interface {
	Config() config.UIConfig
	OnConfigUpdated(fn func(cfg config.UIConfig)) ports.Subscription
	Events() ports.EventPublisher
	// Channel returns the external message channel, or nil when none is
	// available.
	Channel() ports.MessageChannel
	Scheduler() ports.Scheduler
	Logger() ports.Logger
}

// Parent is implemented by components that own children.
type Parent interface {
	Components() []Component
}

// Failer exposes a construction error.
type Failer interface {
	Err() error
}

// Walk visits root and every descendant reachable through Parent, pre-order.
func Walk(root Component, fn func(c Component)) {
	if root == nil {
		return
	}
	fn(root)
	if p, ok := root.(Parent); ok {
		for _, child := range p.Components() {
			Walk(child, fn)
		}
	}
}
