package manager_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/playerui/internal/config"
	"github.com/alexisbeaulieu97/playerui/internal/eventloop"
	"github.com/alexisbeaulieu97/playerui/internal/player"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/component"
	"github.com/alexisbeaulieu97/playerui/internal/ui/dom"
	"github.com/alexisbeaulieu97/playerui/internal/ui/manager"
	uierrors "github.com/alexisbeaulieu97/playerui/pkg/errors"
)

// stub records its lifecycle into a shared journal.
type stub struct {
	component.Base
	name    string
	journal *[]string
	ads     int
}

func newStub(name string, journal *[]string) *stub {
	p := &stub{name: name, journal: journal}
	p.Base = component.NewBase(component.Config{CSSClass: name})
	return p
}

func (p *stub) Configure(pl ports.Player, host component.Host) {
	p.Base.Configure(pl, host)
	*p.journal = append(*p.journal, "configure "+p.name)
	p.On(ports.EventAdStarted, func(context.Context, ports.Event) error {
		p.ads++
		return nil
	})
}

func (p *stub) Release() {
	*p.journal = append(*p.journal, "release "+p.name)
	p.Base.Release()
}

type fixture struct {
	journal []string
	built   map[string]*stub
	mount   *dom.Node
}

func (f *fixture) builder(name string) func() component.Component {
	return func() component.Component {
		p := newStub(name, &f.journal)
		f.built[name] = p
		return p
	}
}

// variants mirrors the modern skin: ads, small screen, then desktop.
func (f *fixture) variants() []manager.Variant {
	return []manager.Variant{
		{Name: "ads", Build: f.builder("ads"), Condition: func(c manager.ConditionContext) bool {
			return c.IsAd && c.AdRequiresUI
		}},
		{Name: "small", Build: f.builder("small"), Breakpoint: 600, Condition: func(c manager.ConditionContext) bool {
			return !c.IsAd && c.IsMobile && c.DocumentWidth < 600
		}},
		{Name: "desktop", Build: f.builder("desktop")},
	}
}

func newFixture() *fixture {
	return &fixture{built: make(map[string]*stub), mount: dom.NewNode("div", "mount")}
}

func (f *fixture) start(t *testing.T, pl *player.Simulated, logger ports.Logger) *manager.Manager {
	t.Helper()
	m, err := manager.New(pl, f.variants(), manager.Options{
		Scheduler: eventloop.NewManual(),
		Mount:     f.mount,
		Logger:    logger,
	})
	require.NoError(t, err)
	f.journal = nil
	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(m.Release)
	return m
}

func TestNewRejectsInvalidVariantLists(t *testing.T) {
	t.Parallel()

	build := func() component.Component { return component.NewContainer(component.Config{}, nil) }
	yes := func(manager.ConditionContext) bool { return true }
	failing := func() component.Component {
		c := component.NewContainer(component.Config{}, nil)
		c.Fail(errors.New("boom"))
		return c
	}

	tests := []struct {
		name     string
		variants []manager.Variant
		subject  string
	}{
		{name: "empty", variants: nil, subject: "variants"},
		{
			name:     "no catch-all",
			variants: []manager.Variant{{Name: "a", Build: build, Condition: yes}},
			subject:  "variants",
		},
		{
			name:     "catch-all not last",
			variants: []manager.Variant{{Name: "a", Build: build}, {Name: "b", Build: build, Condition: yes}},
			subject:  "a",
		},
		{
			name:     "duplicate name",
			variants: []manager.Variant{{Name: "a", Build: build, Condition: yes}, {Name: "a", Build: build}},
			subject:  "a",
		},
		{
			name:     "missing builder",
			variants: []manager.Variant{{Name: "a"}},
			subject:  "a",
		},
		{
			name: "diverging breakpoints",
			variants: []manager.Variant{
				{Name: "a", Build: build, Condition: yes, Breakpoint: 600},
				{Name: "b", Build: build, Condition: yes, Breakpoint: 800},
				{Name: "c", Build: build},
			},
			subject: "b",
		},
		{
			name: "condition on the catch-all without the flag",
			variants: []manager.Variant{
				{Name: "a", Build: build, Condition: yes},
				{Name: "c", Build: build, Condition: yes},
			},
			subject: "variants",
		},
		{
			name:     "flagged catch-all not last",
			variants: []manager.Variant{{Name: "a", Build: build, CatchAll: true}, {Name: "b", Build: build}},
			subject:  "a",
		},
		{
			name:     "tree with construction error",
			variants: []manager.Variant{{Name: "a", Build: failing}},
			subject:  "a",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := manager.New(player.New(player.Options{}), tt.variants, manager.Options{Scheduler: eventloop.NewManual()})
			var cfgErr *uierrors.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			require.Equal(t, tt.subject, cfgErr.Subject)
		})
	}
}

func TestCatchAllWithCondition(t *testing.T) {
	t.Parallel()

	build := func() component.Component { return component.NewContainer(component.Config{}, nil) }
	variants := []manager.Variant{
		{Name: "A", Build: build, Condition: func(c manager.ConditionContext) bool { return c.IsAd }},
		{Name: "B", Build: build, Condition: func(c manager.ConditionContext) bool { return c.IsMobile }},
		{Name: "C", Build: build, CatchAll: true, Condition: func(manager.ConditionContext) bool { return true }},
	}

	tests := []struct {
		name string
		opts player.Options
		ad   bool
		want string
	}{
		{name: "ad", opts: player.Options{Mobile: true}, ad: true, want: "A"},
		{name: "mobile", opts: player.Options{Mobile: true}, want: "B"},
		{name: "neither", opts: player.Options{}, want: "C"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pl := player.New(tt.opts)
			if tt.ad {
				pl.StartAd(context.Background(), ports.Ad{ID: "ad"})
			}
			m, err := manager.New(pl, variants, manager.Options{Scheduler: eventloop.NewManual()})
			require.NoError(t, err)
			t.Cleanup(m.Release)
			require.NoError(t, m.Start(context.Background()))
			require.Equal(t, tt.want, m.ActiveVariant())
		})
	}
}

func TestWidthVariantFlipsAtItsBreakpoint(t *testing.T) {
	t.Parallel()

	build := func() component.Component { return component.NewContainer(component.Config{}, nil) }
	v := manager.WidthVariant("narrow", build, 480, func(c manager.ConditionContext) bool { return !c.IsAd })
	require.Equal(t, 480, v.Breakpoint)

	require.True(t, v.Condition(manager.ConditionContext{IsMobile: true, DocumentWidth: 479}))
	require.False(t, v.Condition(manager.ConditionContext{IsMobile: true, DocumentWidth: 480}))
	require.False(t, v.Condition(manager.ConditionContext{DocumentWidth: 479}))
	require.False(t, v.Condition(manager.ConditionContext{IsMobile: true, IsAd: true, DocumentWidth: 479}))

	plain := manager.WidthVariant("narrow", build, 480, nil)
	require.True(t, plain.Condition(manager.ConditionContext{IsMobile: true, IsAd: true, DocumentWidth: 100}))
}

func TestNewRequiresScheduler(t *testing.T) {
	t.Parallel()

	f := newFixture()
	_, err := manager.New(player.New(player.Options{}), f.variants(), manager.Options{})
	var cfgErr *uierrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "scheduler", cfgErr.Subject)
}

func TestSelectionFollowsDeviceAndAdState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts player.Options
		ad   *ports.Ad
		want string
	}{
		{name: "mobile at 400", opts: player.Options{Mobile: true, Width: 400, DocumentWidth: 400}, want: "small"},
		{name: "mobile at 600", opts: player.Options{Mobile: true, Width: 600, DocumentWidth: 600}, want: "desktop"},
		{name: "mobile at 800", opts: player.Options{Mobile: true, Width: 800, DocumentWidth: 800}, want: "desktop"},
		{name: "desktop at 400", opts: player.Options{Width: 400, DocumentWidth: 400}, want: "desktop"},
		{
			name: "ad requiring ui",
			opts: player.Options{Mobile: true, Width: 400, DocumentWidth: 400},
			ad:   &ports.Ad{RequiresUI: true},
			want: "ads",
		},
		{
			name: "ad without ui",
			opts: player.Options{Mobile: true, Width: 400, DocumentWidth: 400},
			ad:   &ports.Ad{},
			want: "desktop",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pl := player.New(tt.opts)
			f := newFixture()
			m := f.start(t, pl, nil)
			if tt.ad != nil {
				pl.StartAd(context.Background(), *tt.ad)
			}
			require.Equal(t, tt.want, m.ActiveVariant())
			require.Len(t, f.mount.Children(), 1)
			require.True(t, f.mount.Children()[0].HasClass("pui-"+tt.want))
		})
	}
}

func TestSwitchReleasesOldTreeBeforeConfiguringNewOne(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pl := player.New(player.Options{Mobile: true, Width: 400, DocumentWidth: 400})
	f := newFixture()
	m := f.start(t, pl, nil)
	require.Equal(t, []string{"configure small"}, f.journal)
	small := f.built["small"]

	pl.StartAd(ctx, ports.Ad{RequiresUI: true})
	require.Equal(t, []string{"configure small", "release small", "configure ads"}, f.journal)
	require.False(t, small.Live())
	require.Nil(t, small.Render().Parent())
	require.Equal(t, "ads", m.ActiveVariant())
	require.True(t, m.Context().IsAd)
	require.True(t, m.Context().AdRequiresUI)

	pl.EndAd(ctx)
	require.Equal(t, "small", m.ActiveVariant())
	require.NotSame(t, small, f.built["small"])
}

func TestSameSelectionIsNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pl := player.New(player.Options{Mobile: true, Width: 400, DocumentWidth: 400})
	f := newFixture()
	m := f.start(t, pl, nil)

	var changes []string
	_, err := m.Events().Subscribe(ports.EventUIVariantChanged, func(_ context.Context, ev ports.Event) error {
		changes = append(changes, ev.Payload().(string))
		return nil
	})
	require.NoError(t, err)

	pl.Resize(ctx, 500, 300, 500)
	pl.LoadSource(ctx, ports.Source{Title: "clip"})
	require.Equal(t, []string{"configure small"}, f.journal)
	require.Empty(t, changes)
	require.Equal(t, 500, m.Context().DocumentWidth)

	pl.Resize(ctx, 800, 450, 800)
	require.Equal(t, []string{"desktop"}, changes)
}

func TestTriggerIsDeliveredToTheTreeItMounted(t *testing.T) {
	t.Parallel()

	pl := player.New(player.Options{})
	f := newFixture()
	f.start(t, pl, nil)

	pl.StartAd(context.Background(), ports.Ad{RequiresUI: true})
	require.Equal(t, 1, f.built["ads"].ads)
}

func TestStartDuringAdSeedsState(t *testing.T) {
	t.Parallel()

	pl := player.New(player.Options{})
	pl.StartAd(context.Background(), ports.Ad{RequiresUI: true})
	f := newFixture()
	m := f.start(t, pl, nil)

	require.Equal(t, "ads", m.ActiveVariant())
	require.Equal(t, 1, f.built["ads"].ads)
}

func TestReentrantTriggersAreCoalesced(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pl := player.New(player.Options{Mobile: true, Width: 400, DocumentWidth: 400})
	f := newFixture()
	m, err := manager.New(pl, f.variants(), manager.Options{Scheduler: eventloop.NewManual(), Mount: f.mount})
	require.NoError(t, err)
	t.Cleanup(m.Release)

	var changes []string
	var duringSwitch string
	_, err = m.Events().Subscribe(ports.EventUIVariantChanged, func(_ context.Context, ev ports.Event) error {
		name := ev.Payload().(string)
		changes = append(changes, name)
		if name == "small" {
			pl.Resize(ctx, 800, 450, 800)
			duringSwitch = m.ActiveVariant()
		}
		return nil
	})
	require.NoError(t, err)

	f.journal = nil
	require.NoError(t, m.Start(ctx))
	require.Equal(t, "small", duringSwitch)
	require.Equal(t, []string{"small", "desktop"}, changes)
	require.Equal(t, []string{"configure small", "release small", "configure desktop"}, f.journal)
	require.Equal(t, "desktop", m.ActiveVariant())
}

// autoplay starts playback from Configure and counts the events it sees.
type autoplay struct {
	component.Base
	counts map[string]int
}

func (a *autoplay) Configure(pl ports.Player, host component.Host) {
	a.Base.Configure(pl, host)
	for _, name := range []string{ports.EventAdStarted, ports.EventPlay} {
		a.On(name, func(context.Context, ports.Event) error {
			a.counts[name]++
			return nil
		})
	}
	_ = pl.Play(context.Background())
}

func TestEventsDuringSwitchDoNotReplaceTheTrigger(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pl := player.New(player.Options{Width: 1280})
	pl.LoadSource(ctx, player.DemoSource())

	var ads *autoplay
	m, err := manager.New(pl, []manager.Variant{
		{Name: "ads", Build: func() component.Component {
			ads = &autoplay{Base: component.NewBase(component.Config{}), counts: make(map[string]int)}
			return ads
		}, Condition: func(c manager.ConditionContext) bool { return c.IsAd }},
		{Name: "main", Build: func() component.Component { return component.NewContainer(component.Config{}, nil) }},
	}, manager.Options{Scheduler: eventloop.NewManual()})
	require.NoError(t, err)
	t.Cleanup(m.Release)
	require.NoError(t, m.Start(ctx))
	require.Equal(t, "main", m.ActiveVariant())

	pl.StartAd(ctx, ports.Ad{ID: "preroll", RequiresUI: true})
	require.Equal(t, "ads", m.ActiveVariant())
	require.Equal(t, ports.StatePlaying, pl.State())
	require.Equal(t, 1, ads.counts[ports.EventAdStarted])
	require.Equal(t, 1, ads.counts[ports.EventPlay])
}

func TestOverlappingPredicatesAreLogged(t *testing.T) {
	t.Parallel()

	build := func() component.Component { return component.NewContainer(component.Config{}, nil) }
	mobile := func(c manager.ConditionContext) bool { return c.IsMobile }
	rec := &recorder{}
	m, err := manager.New(player.New(player.Options{Mobile: true}), []manager.Variant{
		{Name: "first", Build: build, Condition: mobile},
		{Name: "second", Build: build, Condition: mobile},
		{Name: "fallback", Build: build},
	}, manager.Options{Scheduler: eventloop.NewManual(), Logger: rec})
	require.NoError(t, err)
	t.Cleanup(m.Release)
	require.NoError(t, m.Start(context.Background()))

	require.Equal(t, "first", m.ActiveVariant())
	entry, ok := rec.find("several ui variants match")
	require.True(t, ok)
	require.Equal(t, "debug", entry.level)
	require.Contains(t, entry.fields, []string{"second"})
}

func TestUpdateConfigNotifiesListeners(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pl := player.New(player.Options{})
	f := newFixture()
	m := f.start(t, pl, nil)

	var seen []string
	sub := m.OnConfigUpdated(func(cfg config.UIConfig) { seen = append(seen, cfg.Metadata.Title) })
	published := 0
	_, err := m.Events().Subscribe(ports.EventUIConfigUpdated, func(context.Context, ports.Event) error {
		published++
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, m.UpdateConfig(ctx, config.UIConfig{Metadata: config.Metadata{Title: "Override"}}))
	require.Equal(t, []string{"Override"}, seen)
	require.Equal(t, "Override", m.Config().Metadata.Title)
	require.Equal(t, 1, published)
	require.Equal(t, "desktop", m.ActiveVariant())

	err = m.UpdateConfig(ctx, config.UIConfig{Skin: "bogus"})
	var verr *uierrors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "Override", m.Config().Metadata.Title)

	sub.Unsubscribe()
	require.NoError(t, m.UpdateConfig(ctx, config.UIConfig{}))
	require.Len(t, seen, 1)
}

func TestReleaseUnmountsAndStopsListening(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pl := player.New(player.Options{})
	f := newFixture()
	m := f.start(t, pl, nil)
	desktop := f.built["desktop"]

	m.Release()
	require.False(t, desktop.Live())
	require.Zero(t, f.mount.ChildCount())
	require.Empty(t, m.ActiveVariant())
	require.Nil(t, m.Root())

	pl.StartAd(ctx, ports.Ad{RequiresUI: true})
	require.Empty(t, m.ActiveVariant())
	require.Zero(t, pl.Events().Total())
}

type entry struct {
	level  string
	msg    string
	fields []interface{}
}

type recorder struct {
	entries []entry
}

func (r *recorder) Debug(_ context.Context, msg string, fields ...interface{}) {
	r.entries = append(r.entries, entry{"debug", msg, fields})
}

func (r *recorder) Info(_ context.Context, msg string, fields ...interface{}) {
	r.entries = append(r.entries, entry{"info", msg, fields})
}

func (r *recorder) Warn(_ context.Context, msg string, fields ...interface{}) {
	r.entries = append(r.entries, entry{"warn", msg, fields})
}

func (r *recorder) Error(_ context.Context, msg string, fields ...interface{}) {
	r.entries = append(r.entries, entry{"error", msg, fields})
}

func (r *recorder) With(...interface{}) ports.Logger { return r }

func (r *recorder) find(msg string) (entry, bool) {
	for _, e := range r.entries {
		if e.msg == msg {
			return e, true
		}
	}
	return entry{}, false
}
