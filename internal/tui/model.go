// Package tui is an interactive terminal preview of a skin. It drives a
// simulated player from the keyboard and redraws the mounted UI tree after
// every change, so variant switches and component state can be watched live.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/playerui/internal/config"
	"github.com/alexisbeaulieu97/playerui/internal/eventloop"
	"github.com/alexisbeaulieu97/playerui/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/playerui/internal/player"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/factory"
	"github.com/alexisbeaulieu97/playerui/internal/ui/manager"
)

const (
	// CellWidth converts terminal columns to document pixels.
	CellWidth = 8
	// TickInterval is how often simulated playback advances.
	TickInterval = 250 * time.Millisecond
	seekStep     = 10 * time.Second
)

// Options configures a preview.
type Options struct {
	// Skin overrides Config.Skin when set.
	Skin     string
	Config   config.UIConfig
	Scenario player.Scenario
	Channel  ports.MessageChannel
	Logger   ports.Logger
	// FollowTerminal resizes the player when the terminal is resized.
	FollowTerminal bool
}

type tickMsg time.Time

// ChannelMsg carries an inbound external channel message onto the UI
// goroutine. Bridges post it with tea.Program.Send.
type ChannelMsg struct {
	Name string
	Data interface{}
}

// deliverer is implemented by channels that accept inbound messages.
type deliverer interface {
	Deliver(name string, data interface{})
}

// Model is the bubbletea model of the preview. The player, manager and clock
// are only touched from Update, which bubbletea runs on a single goroutine.
type Model struct {
	ctx     context.Context
	skin    string
	player  *player.Simulated
	clock   *eventloop.Manual
	manager *manager.Manager
	channel ports.MessageChannel
	logger  ports.Logger

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	follow     bool
	showHidden bool
	adCount    int
	switches   int
	status     string
	err        error
	quitting   bool
}

// NewModel builds the skin's manager, starts it and applies the scenario.
func NewModel(ctx context.Context, opts Options) (Model, error) {
	logger := logging.OrNoOp(opts.Logger).With("component", "tui")
	pl := player.New(player.Options{Logger: logger})
	clock := eventloop.NewManual()

	skin := opts.Skin
	if skin == "" {
		skin = opts.Config.Skin
	}
	if skin == "" {
		skin = config.SkinDefault
	}
	mgr, err := factory.Build(skin, pl, manager.Options{
		Config:    opts.Config,
		Logger:    logger,
		Channel:   opts.Channel,
		Scheduler: clock,
	})
	if err != nil {
		return Model{}, err
	}
	if err := mgr.Start(ctx); err != nil {
		return Model{}, err
	}
	if err := opts.Scenario.Apply(ctx, pl); err != nil {
		mgr.Release()
		return Model{}, err
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		ctx:     ctx,
		skin:    skin,
		player:  pl,
		clock:   clock,
		manager: mgr,
		channel: opts.Channel,
		logger:  logger,
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: s,
		follow:  opts.FollowTerminal,
	}, nil
}

// Init starts playback ticks and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.spinner.Tick)
}

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Player exposes the simulated player.
func (m Model) Player() *player.Simulated { return m.player }

// Manager exposes the UI manager.
func (m Model) Manager() *manager.Manager { return m.manager }

// Clock exposes the scheduler UI timers run on.
func (m Model) Clock() *eventloop.Manual { return m.clock }

// Switches counts variant switches caused by preview input.
func (m Model) Switches() int { return m.switches }

// Err returns the error of the last rejected command.
func (m Model) Err() error { return m.err }

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool { return m.quitting }

// Close releases the mounted UI.
func (m Model) Close() { m.manager.Release() }
