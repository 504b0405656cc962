package components

import (
	"context"
	"slices"
	"time"

	"github.com/alexisbeaulieu97/playerui/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/component"
)

// DefaultHideDelay is how long controls stay visible after the last
// interaction.
const DefaultHideDelay = 5 * time.Second

// UIContainerOptions configures the root container.
type UIContainerOptions struct {
	// HideDelay is the inactivity period before controls hide. Negative
	// disables auto-hide.
	HideDelay time.Duration
	// HidePlayerStateExceptions lists playback states in which controls never
	// auto-hide.
	HidePlayerStateExceptions []ports.PlaybackState
}

var defaultHideExceptions = []ports.PlaybackState{ports.StateIdle, ports.StatePrepared, ports.StatePaused, ports.StateFinished}

// UIContainer is the root of a UI variant. It projects player state onto
// classes of its node and runs the controls auto-hide cycle, announcing it
// with ui.controlsshow and ui.controlshide.
type UIContainer struct {
	component.Container
	opts       UIContainerOptions
	stateClass string
	shown      bool
	hideTimer  ports.Timer
}

// NewUIContainer creates a root container.
func NewUIContainer(cfg component.Config, opts UIContainerOptions, children ...component.Component) *UIContainer {
	u := &UIContainer{}
	u.init(cfg, opts, children, component.Config{CSSClass: "ui-uicontainer"})
	return u
}

func (u *UIContainer) init(cfg component.Config, opts UIContainerOptions, children []component.Component, layers ...component.Config) {
	if opts.HideDelay == 0 {
		opts.HideDelay = DefaultHideDelay
	}
	if opts.HidePlayerStateExceptions == nil {
		opts.HidePlayerStateExceptions = defaultHideExceptions
	}
	u.opts = opts
	u.InitContainer(cfg, children, layers...)
}

// Configure implements component.Component. Children are configured before
// the root starts projecting state so their listeners see the initial
// controls announcement.
func (u *UIContainer) Configure(player ports.Player, host component.Host) {
	u.Container.Configure(player, host)

	u.setStateClass(player.State())
	for _, ev := range []string{ports.EventSourceLoaded, ports.EventSourceUnloaded, ports.EventPlay, ports.EventPaused, ports.EventPlaybackFinished, ports.EventError} {
		u.On(ev, func(ctx context.Context, _ ports.Event) error {
			u.setStateClass(u.Player().State())
			u.onStateChange(ctx)
			return nil
		})
	}
	u.On(ports.EventAdStarted, func(context.Context, ports.Event) error {
		u.Render().AddClass(u.Prefixed("ad"))
		return nil
	})
	adEnd := func(context.Context, ports.Event) error {
		u.Render().RemoveClass(u.Prefixed("ad"))
		return nil
	}
	u.On(ports.EventAdFinished, adEnd)
	u.On(ports.EventAdSkipped, adEnd)
	u.On(ports.EventAdError, adEnd)
	u.On(ports.EventStallStarted, func(context.Context, ports.Event) error {
		u.Render().AddClass(u.Prefixed("buffering"))
		return nil
	})
	u.On(ports.EventStallEnded, func(context.Context, ports.Event) error {
		u.Render().RemoveClass(u.Prefixed("buffering"))
		return nil
	})
	u.On(ports.EventViewModeChanged, func(context.Context, ports.Event) error {
		u.Render().ToggleClass(u.Prefixed("fullscreen"), u.Player().IsFullscreen())
		return nil
	})
	u.Render().ToggleClass(u.Prefixed("fullscreen"), player.IsFullscreen())

	u.showControls(context.Background())
	u.scheduleHide()
}

// Release implements component.Component.
func (u *UIContainer) Release() {
	u.hideTimer = nil
	u.shown = false
	u.Container.Release()
}

// Interact records user activity: controls are shown and the hide timer
// restarts.
func (u *UIContainer) Interact(ctx context.Context) {
	if !u.Live() {
		return
	}
	u.showControls(ctx)
	u.scheduleHide()
}

// ControlsShown reports whether controls are currently visible.
func (u *UIContainer) ControlsShown() bool { return u.shown }

// StateClass returns the applied player-state class.
func (u *UIContainer) StateClass() string { return u.stateClass }

func (u *UIContainer) onStateChange(ctx context.Context) {
	if u.hideExempt() {
		u.cancelHide()
		u.showControls(ctx)
		return
	}
	u.scheduleHide()
}

func (u *UIContainer) hideExempt() bool {
	p := u.Player()
	return p == nil || slices.Contains(u.opts.HidePlayerStateExceptions, p.State())
}

func (u *UIContainer) scheduleHide() {
	u.cancelHide()
	if u.opts.HideDelay < 0 || u.hideExempt() {
		return
	}
	u.hideTimer = u.After(u.opts.HideDelay, func() {
		u.hideTimer = nil
		if !u.hideExempt() {
			u.hideControls(context.Background())
		}
	})
}

func (u *UIContainer) cancelHide() {
	if u.hideTimer != nil {
		u.hideTimer.Stop()
		u.hideTimer = nil
	}
}

func (u *UIContainer) showControls(ctx context.Context) {
	if u.shown {
		return
	}
	u.shown = true
	u.Render().RemoveClass(u.Prefixed("controls-hidden"))
	u.Publish(ctx, events.New(ports.EventUIControlsShow, nil))
}

func (u *UIContainer) hideControls(ctx context.Context) {
	if !u.shown {
		return
	}
	u.shown = false
	u.Render().AddClass(u.Prefixed("controls-hidden"))
	u.Publish(ctx, events.New(ports.EventUIControlsHide, nil))
}

// setStateClass replaces the previous player-state class.
func (u *UIContainer) setStateClass(state ports.PlaybackState) {
	node := u.Render()
	if u.stateClass != "" {
		node.RemoveClass(u.stateClass)
	}
	u.stateClass = u.Prefixed("player-state-" + string(state))
	node.AddClass(u.stateClass)
}

// CastUIContainer is the root of cast receiver variants. Controls hide after
// the delay in every state but idle.
type CastUIContainer struct {
	UIContainer
}

// NewCastUIContainer creates a cast receiver root.
func NewCastUIContainer(cfg component.Config, opts UIContainerOptions, children ...component.Component) *CastUIContainer {
	c := &CastUIContainer{}
	if opts.HidePlayerStateExceptions == nil {
		opts.HidePlayerStateExceptions = []ports.PlaybackState{ports.StateIdle}
	}
	c.init(cfg, opts, children, component.Config{CSSClass: "ui-uicontainer"}, component.Config{CSSClasses: []string{"ui-cast-receiver"}})
	return c
}
