// Package manager selects and mounts one of several UI variants according to
// the player's current condition context, switching whenever a trigger event
// changes which variant applies.
package manager

import (
	"context"
	"slices"

	"github.com/alexisbeaulieu97/playerui/internal/config"
	"github.com/alexisbeaulieu97/playerui/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/playerui/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/component"
	"github.com/alexisbeaulieu97/playerui/internal/ui/dom"
	uierrors "github.com/alexisbeaulieu97/playerui/pkg/errors"
)

// maxPasses bounds how often one trigger may re-run selection when the
// switches themselves keep changing the context.
const maxPasses = 8

// Triggers lists the player events that cause the variant to be re-resolved.
var Triggers = []string{
	ports.EventSourceLoaded,
	ports.EventSourceUnloaded,
	ports.EventAdStarted,
	ports.EventAdFinished,
	ports.EventAdSkipped,
	ports.EventAdError,
	ports.EventViewportResized,
	ports.EventViewModeChanged,
	ports.EventPlay,
	ports.EventPaused,
}

// Options carries the manager's collaborators.
type Options struct {
	Config config.UIConfig
	Logger ports.Logger
	// Events receives UI events. Defaults to a fresh bus.
	Events ports.EventPublisher
	// Channel is the optional external message channel.
	Channel ports.MessageChannel
	// Scheduler runs component timers. Required.
	Scheduler ports.Scheduler
	// Environment reports device facts. Defaults to the player when it
	// implements ports.Environment.
	Environment ports.Environment
	// Mount receives the active root node. Defaults to a detached node.
	Mount dom.MountPoint
}

// Manager owns the active variant's tree and implements component.Host for
// it.
type Manager struct {
	player   ports.Player
	variants []Variant
	logger   ports.Logger
	events   ports.EventPublisher
	channel  ports.MessageChannel
	sched    ports.Scheduler
	env      ports.Environment
	mount    dom.MountPoint

	cfg       config.UIConfig
	listeners map[int]func(config.UIConfig)
	nextID    int

	facts     facts
	context   ConditionContext
	active    int
	root      component.Component
	mounted   *mountedPlayer
	subs      []ports.Subscription
	started   bool
	switching bool
	dirty     bool
}

// New validates variants and returns an unstarted manager.
func New(player ports.Player, variants []Variant, opts Options) (*Manager, error) {
	if player == nil {
		return nil, uierrors.NewConfigurationError("player", "player is required", nil)
	}
	if opts.Scheduler == nil {
		return nil, uierrors.NewConfigurationError("scheduler", "scheduler is required", nil)
	}
	if err := checkVariants(variants); err != nil {
		return nil, err
	}
	if err := checkTrees(variants); err != nil {
		return nil, err
	}
	cfg := opts.Config.Clone()
	if err := config.ValidateConfig(&cfg); err != nil {
		return nil, uierrors.NewConfigurationError("config", "invalid ui configuration", err)
	}

	logger := logging.OrNoOp(opts.Logger).With("layer", "ui", "component", "manager")
	bus := opts.Events
	if bus == nil {
		bus = events.NewBus(logger)
	}
	env := opts.Environment
	if env == nil {
		env, _ = player.(ports.Environment)
	}
	mount := opts.Mount
	if mount == nil {
		mount = dom.NewNode("div", "playerui")
	}
	return &Manager{
		player:    player,
		variants:  slices.Clone(variants),
		logger:    logger,
		events:    bus,
		channel:   opts.Channel,
		sched:     opts.Scheduler,
		env:       env,
		mount:     mount,
		cfg:       cfg,
		listeners: make(map[int]func(config.UIConfig)),
		active:    -1,
	}, nil
}

// Start subscribes to the trigger events and mounts the first matching
// variant. Calling Start twice is a no-op.
func (m *Manager) Start(ctx context.Context) error {
	if m.started {
		return nil
	}
	for _, name := range Triggers {
		sub, err := m.player.On(name, m.handleTrigger)
		if err != nil {
			m.unsubscribe()
			return err
		}
		m.subs = append(m.subs, sub)
	}
	m.started = true
	m.facts.seed(m.player)
	var trigger ports.Event
	if m.facts.ad != nil {
		trigger = events.New(ports.EventAdStarted, *m.facts.ad)
	}
	m.logger.Debug(ctx, "ui manager started", "variants", m.names())
	m.evaluate(ctx, trigger)
	return nil
}

func (m *Manager) handleTrigger(ctx context.Context, ev ports.Event) error {
	m.facts.observe(ev)
	m.evaluate(ctx, ev)
	return nil
}

// Resolve re-runs selection against the current context. Hosts call it when
// a fact outside the trigger events changed.
func (m *Manager) Resolve(ctx context.Context) {
	if m.started {
		m.evaluate(ctx, nil)
	}
}

// evaluate selects and mounts a variant. Calls made while a switch is in
// progress only mark the manager dirty; the running call then selects again
// with a fresh context. Only trigger, the event that started the evaluation,
// is replayed to newly mounted trees: events published during a switch were
// already dispatched to the handlers registered at that point.
func (m *Manager) evaluate(ctx context.Context, trigger ports.Event) {
	if m.switching {
		m.dirty = true
		return
	}
	m.switching = true
	defer func() { m.switching = false }()

	for pass := 1; ; pass++ {
		m.dirty = false
		m.context = snapshot(m.player, m.env, m.facts)
		idx := m.selectVariant(ctx, m.context)
		if idx != m.active {
			m.switchTo(ctx, idx, trigger)
		}
		if !m.dirty {
			return
		}
		if pass >= maxPasses {
			m.logger.Warn(ctx, "variant selection did not settle", "passes", pass, "variant", m.ActiveVariant())
			return
		}
	}
}

// selectVariant returns the first variant whose predicate matches. Later
// matches are logged as shadowed.
func (m *Manager) selectVariant(ctx context.Context, c ConditionContext) int {
	selected := -1
	var shadowed []string
	for i, v := range m.variants {
		matched := isCatchAll(v) || v.Condition(c)
		if !matched {
			continue
		}
		if selected < 0 {
			selected = i
			continue
		}
		if !isCatchAll(v) {
			shadowed = append(shadowed, v.Name)
		}
	}
	if len(shadowed) > 0 {
		m.logger.Debug(ctx, "several ui variants match",
			"variant", m.variants[selected].Name, "shadowed", shadowed, "context", c.String())
	}
	return selected
}

// switchTo tears the active tree down before building and mounting the
// variant at idx.
func (m *Manager) switchTo(ctx context.Context, idx int, trigger ports.Event) {
	previous := m.ActiveVariant()
	if m.root != nil {
		node := m.root.Render()
		m.root.Release()
		m.mount.RemoveChild(node)
		m.root = nil
		m.mounted = nil
	}

	v := m.variants[idx]
	root := v.Build()
	m.active = idx
	m.root = root
	m.mounted = newMountedPlayer(m.player)
	m.mount.AppendChild(root.Render())
	root.Configure(m.mounted, m)
	if trigger != nil {
		m.mounted.replay(ctx, trigger, m.logger)
	}

	m.logger.Info(ctx, "ui variant switched", "variant", v.Name, "previous", previous, "context", m.context.String())
	if err := m.events.Publish(ctx, events.New(ports.EventUIVariantChanged, v.Name)); err != nil {
		m.logger.Warn(ctx, "publish failed", "event_type", ports.EventUIVariantChanged, "error", err)
	}
}

// Release unmounts the active tree and stops listening to the player.
func (m *Manager) Release() {
	m.unsubscribe()
	m.started = false
	if m.root != nil {
		node := m.root.Render()
		m.root.Release()
		m.mount.RemoveChild(node)
	}
	m.root = nil
	m.mounted = nil
	m.active = -1
	m.listeners = make(map[int]func(config.UIConfig))
}

func (m *Manager) unsubscribe() {
	for _, sub := range m.subs {
		sub.Unsubscribe()
	}
	m.subs = nil
}

// Context returns the condition context of the last selection.
func (m *Manager) Context() ConditionContext { return m.context }

// ActiveVariant returns the mounted variant's name, or "" before Start.
func (m *Manager) ActiveVariant() string {
	if m.active < 0 {
		return ""
	}
	return m.variants[m.active].Name
}

// Root returns the mounted tree, or nil.
func (m *Manager) Root() component.Component { return m.root }

// Variants returns the variant names in selection order.
func (m *Manager) Variants() []string { return m.names() }

func (m *Manager) names() []string {
	names := make([]string, len(m.variants))
	for i, v := range m.variants {
		names[i] = v.Name
	}
	return names
}
