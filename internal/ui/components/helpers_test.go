package components_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/playerui/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/playerui/internal/player"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/component"
	"github.com/alexisbeaulieu97/playerui/internal/ui/component/componenttest"
)

// mount renders and configures c against a fresh player and host.
func mount(t *testing.T, c component.Component) (*player.Simulated, *componenttest.Host) {
	t.Helper()
	pl := player.New(player.Options{})
	host := componenttest.NewHost()
	mountOn(t, c, pl, host)
	return pl, host
}

// mountOn renders and configures c against the given player and host.
func mountOn(t *testing.T, c component.Component, pl *player.Simulated, host *componenttest.Host) {
	t.Helper()
	c.Render()
	c.Configure(pl, host)
	t.Cleanup(c.Release)
}

func publish(t *testing.T, host *componenttest.Host, eventType string) {
	t.Helper()
	_ = host.Bus.Publish(context.Background(), events.New(eventType, nil))
}

// countEvents counts UI events of eventType published on host.
func countEvents(t *testing.T, host *componenttest.Host, eventType string) *int {
	t.Helper()
	n := new(int)
	sub, err := host.Bus.Subscribe(eventType, func(context.Context, ports.Event) error {
		*n++
		return nil
	})
	require.NoError(t, err)
	t.Cleanup(sub.Unsubscribe)
	return n
}
