package manager

import (
	"fmt"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
)

// ConditionContext is a snapshot of the runtime facts variant predicates
// are evaluated against. It is recomputed as a whole on every trigger and
// never updated in place.
type ConditionContext struct {
	IsAd          bool
	AdRequiresUI  bool
	IsFullscreen  bool
	IsMobile      bool
	IsPlaying     bool
	Width         int
	DocumentWidth int
}

// String renders the context for logs.
func (c ConditionContext) String() string {
	return fmt.Sprintf("ad=%t adRequiresUI=%t fullscreen=%t mobile=%t playing=%t width=%d documentWidth=%d",
		c.IsAd, c.AdRequiresUI, c.IsFullscreen, c.IsMobile, c.IsPlaying, c.Width, c.DocumentWidth)
}

// viewporter is implemented by players that report their own size.
type viewporter interface {
	Viewport() ports.Viewport
}

// adReporter is implemented by players that expose the ad in progress.
type adReporter interface {
	ActiveAd() *ports.Ad
}

// facts collects what the manager learns from player events between
// snapshots.
type facts struct {
	ad       *ports.Ad
	viewport ports.Viewport
}

// seed primes facts from players that can report them directly, so a
// manager started mid-ad or after a resize sees the current state.
func (f *facts) seed(player ports.Player) {
	if r, ok := player.(adReporter); ok {
		if ad := r.ActiveAd(); ad != nil {
			cp := *ad
			f.ad = &cp
		}
	}
	if v, ok := player.(viewporter); ok {
		f.viewport = v.Viewport()
	}
}

func (f *facts) observe(ev ports.Event) {
	switch ev.EventType() {
	case ports.EventAdStarted:
		ad, _ := ev.Payload().(ports.Ad)
		f.ad = &ad
	case ports.EventAdFinished, ports.EventAdSkipped, ports.EventAdError, ports.EventSourceUnloaded:
		f.ad = nil
	case ports.EventViewportResized:
		if vp, ok := ev.Payload().(ports.Viewport); ok {
			f.viewport = vp
		}
	}
}

func snapshot(player ports.Player, env ports.Environment, f facts) ConditionContext {
	c := ConditionContext{
		IsAd:         f.ad != nil,
		AdRequiresUI: f.ad != nil && f.ad.RequiresUI,
		IsFullscreen: player.IsFullscreen(),
		IsPlaying:    player.State() == ports.StatePlaying,
		Width:        f.viewport.Width,
	}
	if env != nil {
		c.IsMobile = env.IsMobile()
		c.DocumentWidth = env.DocumentWidth()
	} else {
		c.DocumentWidth = f.viewport.DocumentWidth
	}
	return c
}
