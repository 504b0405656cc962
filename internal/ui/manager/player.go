package manager

import (
	"context"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
	uierrors "github.com/alexisbeaulieu97/playerui/pkg/errors"
)

// mountedPlayer is the player handed to a mounted tree. It records the
// handlers the tree registers so the event that caused a switch can be
// delivered to the tree that was built in response to it.
type mountedPlayer struct {
	ports.Player
	handlers map[string][]ports.EventHandler
}

func newMountedPlayer(player ports.Player) *mountedPlayer {
	return &mountedPlayer{Player: player, handlers: make(map[string][]ports.EventHandler)}
}

// On implements ports.Player.
func (p *mountedPlayer) On(eventType string, handler ports.EventHandler) (ports.Subscription, error) {
	sub, err := p.Player.On(eventType, handler)
	if err != nil {
		return nil, err
	}
	p.handlers[eventType] = append(p.handlers[eventType], handler)
	return sub, nil
}

// replay delivers ev to the handlers of this mount only.
func (p *mountedPlayer) replay(ctx context.Context, ev ports.Event, logger ports.Logger) {
	for _, h := range p.handlers[ev.EventType()] {
		if err := h(ctx, ev); err != nil {
			logger.Warn(ctx, "replayed handler failed", "event_type", ev.EventType(),
				"error", uierrors.NewHandlerError(ev.EventType(), err))
		}
	}
}
