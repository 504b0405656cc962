package component

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync/atomic"
	"time"

	"github.com/alexisbeaulieu97/playerui/internal/config"
	"github.com/alexisbeaulieu97/playerui/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/dom"
)

var idCounter atomic.Uint64

// NextID returns a process-unique element id.
func NextID(prefix string) string {
	if prefix == "" {
		prefix = DefaultCSSPrefix
	}
	return fmt.Sprintf("%s-id-%d", prefix, idCounter.Add(1))
}

// Base implements the lifecycle shared by every component. Widgets embed it
// and override Configure/Release, calling through to Base.
type Base struct {
	id     string
	config Config
	node   *dom.Node
	hidden bool
	live   bool

	player ports.Player
	host   Host

	handles []ports.Subscription
	timers  map[*trackedTimer]struct{}

	visibility   map[int]func(hidden bool)
	visibilityID int

	err error
}

// NewBase resolves cfg against the given default layers (innermost first)
// and returns an unmounted base.
func NewBase(cfg Config, layers ...Config) Base {
	merged := Resolve(cfg, layers...)
	id := merged.ID
	if id == "" {
		id = NextID(merged.CSSPrefix)
	}
	b := Base{id: id, config: merged}
	if merged.Hidden != nil {
		b.hidden = *merged.Hidden
	}
	return b
}

// ID implements Component.
func (b *Base) ID() string { return b.id }

// Config returns the effective configuration.
func (b *Base) Config() Config { return b.config }

// Prefixed returns name with the configured CSS prefix.
func (b *Base) Prefixed(name string) string {
	if name == "" {
		return ""
	}
	return b.config.CSSPrefix + "-" + name
}

// Render implements Component. The node is created on first call.
func (b *Base) Render() *dom.Node {
	if b.node != nil {
		return b.node
	}
	n := dom.NewNode(b.config.Tag, b.id)
	n.AddClass(b.Prefixed(b.config.CSSClass))
	for _, class := range b.config.CSSClasses {
		n.AddClass(b.Prefixed(class))
	}
	if b.config.Role != "" {
		n.SetAttr("role", b.config.Role)
	}
	if b.config.AriaLabel != "" {
		n.SetAttr("aria-label", b.config.AriaLabel)
	}
	keys := slices.Sorted(maps.Keys(b.config.Attributes))
	for _, k := range keys {
		n.SetAttr(k, b.config.Attributes[k])
	}
	if b.config.Text != "" {
		n.SetText(b.config.Text)
	}
	if b.hidden {
		n.AddClass(b.Prefixed("hidden"))
	}
	b.node = n
	return n
}

// Node returns the rendered node, rendering it if needed.
func (b *Base) Node() *dom.Node { return b.Render() }

// Configure implements Component. It marks the component live and keeps the
// player and host until Release.
func (b *Base) Configure(player ports.Player, host Host) {
	b.player = player
	b.host = host
	b.live = true
}

// Release implements Component.
func (b *Base) Release() {
	b.live = false
	for _, h := range b.handles {
		h.Unsubscribe()
	}
	b.handles = nil
	for t := range b.timers {
		t.inner.Stop()
	}
	b.timers = nil
	b.visibility = nil
	b.player = nil
	b.host = nil
}

// Live reports whether the component is mounted.
func (b *Base) Live() bool { return b.live }

// Player returns the player while mounted, or nil.
func (b *Base) Player() ports.Player { return b.player }

// Host returns the host while mounted, or nil.
func (b *Base) Host() Host { return b.host }

// UIConfig returns the host's UI configuration, or the zero value while
// unmounted.
func (b *Base) UIConfig() config.UIConfig {
	if b.host == nil {
		return config.UIConfig{}
	}
	return b.host.Config()
}

// Logger returns the host logger tagged with the component id.
func (b *Base) Logger() ports.Logger {
	var l ports.Logger
	if b.host != nil {
		l = b.host.Logger()
	}
	return logging.OrNoOp(l).With("component_id", b.id)
}

// Track records a subscription to dispose on Release.
func (b *Base) Track(sub ports.Subscription) {
	if sub != nil {
		b.handles = append(b.handles, sub)
	}
}

// On subscribes fn to a player event. fn only runs while the component is
// mounted.
func (b *Base) On(event string, fn ports.EventHandler) {
	if b.player == nil || fn == nil {
		return
	}
	sub, err := b.player.On(event, b.guard(fn))
	if err != nil {
		b.Logger().Warn(context.Background(), "player subscription failed", "event_type", event, "error", err)
		return
	}
	b.Track(sub)
}

// Listen subscribes fn to a UI event published by the host.
func (b *Base) Listen(event string, fn ports.EventHandler) {
	if b.host == nil || b.host.Events() == nil || fn == nil {
		return
	}
	sub, err := b.host.Events().Subscribe(event, b.guard(fn))
	if err != nil {
		b.Logger().Warn(context.Background(), "ui subscription failed", "event_type", event, "error", err)
		return
	}
	b.Track(sub)
}

// Publish emits a UI event through the host. It is a no-op while unmounted.
func (b *Base) Publish(ctx context.Context, event ports.Event) {
	if !b.live || b.host == nil || b.host.Events() == nil {
		return
	}
	if err := b.host.Events().Publish(ctx, event); err != nil {
		b.Logger().Warn(ctx, "publish failed", "event_type", event.EventType(), "error", err)
	}
}

// OnChannel subscribes to a named external channel. Without a channel this
// is a no-op.
func (b *Base) OnChannel(name string, fn ports.MessageHandler) {
	if b.host == nil || fn == nil {
		return
	}
	ch := b.host.Channel()
	if ch == nil {
		return
	}
	b.Track(ch.On(name, func(data interface{}) {
		if b.live {
			fn(data)
		}
	}))
}

// Send writes to a named external channel if one is available.
func (b *Base) Send(name string, data interface{}) bool {
	if !b.live || b.host == nil || b.host.Channel() == nil {
		return false
	}
	b.host.Channel().Send(name, data)
	return true
}

// OnConfigUpdated runs fn after every UI configuration update.
func (b *Base) OnConfigUpdated(fn func(cfg config.UIConfig)) {
	if b.host == nil || fn == nil {
		return
	}
	b.Track(b.host.OnConfigUpdated(func(cfg config.UIConfig) {
		if b.live {
			fn(cfg)
		}
	}))
}

// After runs fn on the host scheduler after d. The timer is stopped on
// Release and fn never runs once the component is released.
func (b *Base) After(d time.Duration, fn func()) ports.Timer {
	if b.host == nil || b.host.Scheduler() == nil || fn == nil {
		return stoppedTimer{}
	}
	t := &trackedTimer{owner: b}
	if b.timers == nil {
		b.timers = make(map[*trackedTimer]struct{})
	}
	b.timers[t] = struct{}{}
	t.inner = b.host.Scheduler().AfterFunc(d, func() {
		delete(b.timers, t)
		if !b.live {
			return
		}
		fn()
	})
	return t
}

// PendingTimers reports how many timers are scheduled.
func (b *Base) PendingTimers() int { return len(b.timers) }

// Subscriptions reports how many subscriptions are held.
func (b *Base) Subscriptions() int { return len(b.handles) }

func (b *Base) guard(fn ports.EventHandler) ports.EventHandler {
	return func(ctx context.Context, ev ports.Event) error {
		if !b.live {
			return nil
		}
		return fn(ctx, ev)
	}
}

// Show clears the hidden state.
func (b *Base) Show() { b.setHidden(false) }

// Hide sets the hidden state.
func (b *Base) Hide() { b.setHidden(true) }

// SetVisible shows or hides the component.
func (b *Base) SetVisible(visible bool) { b.setHidden(!visible) }

// IsHidden reports the hidden state.
func (b *Base) IsHidden() bool { return b.hidden }

// IsShown reports the inverse of IsHidden.
func (b *Base) IsShown() bool { return !b.hidden }

func (b *Base) setHidden(hidden bool) {
	b.Render().ToggleClass(b.Prefixed("hidden"), hidden)
	if b.hidden == hidden {
		return
	}
	b.hidden = hidden
	ids := slices.Sorted(maps.Keys(b.visibility))
	for _, id := range ids {
		if fn, ok := b.visibility[id]; ok {
			fn(hidden)
		}
	}
}

// OnVisibilityChanged registers fn for show/hide transitions. Listeners are
// dropped on Release; callers that do not own the component dispose the
// returned subscription themselves.
func (b *Base) OnVisibilityChanged(fn func(hidden bool)) ports.Subscription {
	if fn == nil {
		return funcSubscription(nil)
	}
	if b.visibility == nil {
		b.visibility = make(map[int]func(bool))
	}
	b.visibilityID++
	id := b.visibilityID
	b.visibility[id] = fn
	return funcSubscription(func() { delete(b.visibility, id) })
}

// Fail records a construction error. Failed components are rejected when the
// tree is validated.
func (b *Base) Fail(err error) {
	if err != nil {
		b.err = errors.Join(b.err, err)
	}
}

// Err returns the recorded construction error.
func (b *Base) Err() error { return b.err }

type trackedTimer struct {
	owner *Base
	inner ports.Timer
}

func (t *trackedTimer) Stop() bool {
	if t.owner.timers != nil {
		delete(t.owner.timers, t)
	}
	if t.inner == nil {
		return false
	}
	return t.inner.Stop()
}

type stoppedTimer struct{}

func (stoppedTimer) Stop() bool { return false }

type funcSubscription func()

func (f funcSubscription) Unsubscribe() {
	if f != nil {
		f()
	}
}
