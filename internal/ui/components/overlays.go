package components

import (
	"context"
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/playerui/internal/config"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/component"
)

// DefaultBufferingDelay is how long a stall lasts before the buffering
// overlay appears.
const DefaultBufferingDelay = time.Second

// BufferingOverlay appears when playback stalls for longer than its delay.
type BufferingOverlay struct {
	component.Container
	delay time.Duration
	timer ports.Timer
}

// NewBufferingOverlay creates the overlay. A zero delay uses
// DefaultBufferingDelay; a negative delay shows it immediately.
func NewBufferingOverlay(cfg component.Config, delay time.Duration) *BufferingOverlay {
	if delay == 0 {
		delay = DefaultBufferingDelay
	}
	o := &BufferingOverlay{delay: max(delay, 0)}
	indicators := []component.Component{
		NewLabel(component.Config{CSSClass: "ui-buffering-overlay-indicator"}),
		NewLabel(component.Config{CSSClass: "ui-buffering-overlay-indicator"}),
		NewLabel(component.Config{CSSClass: "ui-buffering-overlay-indicator"}),
	}
	o.InitContainer(cfg, indicators, component.Config{CSSClass: "ui-buffering-overlay", Hidden: component.Bool(true)})
	return o
}

// Configure implements component.Component.
func (o *BufferingOverlay) Configure(player ports.Player, host component.Host) {
	o.Container.Configure(player, host)
	o.On(ports.EventStallStarted, func(context.Context, ports.Event) error {
		o.stop()
		o.timer = o.After(o.delay, func() {
			o.timer = nil
			o.Show()
		})
		return nil
	})
	hide := func(context.Context, ports.Event) error {
		o.stop()
		o.Hide()
		return nil
	}
	o.On(ports.EventStallEnded, hide)
	o.On(ports.EventSourceUnloaded, hide)
}

// Release implements component.Component.
func (o *BufferingOverlay) Release() {
	o.timer = nil
	o.Container.Release()
}

func (o *BufferingOverlay) stop() {
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
}

// LoadingOverlay is visible between loading a source and the first play.
type LoadingOverlay struct {
	component.Base
}

// NewLoadingOverlay creates the overlay.
func NewLoadingOverlay(cfg component.Config) *LoadingOverlay {
	o := &LoadingOverlay{}
	o.Base = component.NewBase(cfg, component.Config{CSSClass: "ui-loading-overlay", Hidden: component.Bool(true)})
	return o
}

// Configure implements component.Component.
func (o *LoadingOverlay) Configure(player ports.Player, host component.Host) {
	o.Base.Configure(player, host)
	o.SetVisible(player.State() == ports.StatePrepared)
	o.On(ports.EventSourceLoaded, func(context.Context, ports.Event) error {
		o.Show()
		return nil
	})
	hide := func(context.Context, ports.Event) error {
		o.Hide()
		return nil
	}
	o.On(ports.EventPlay, hide)
	o.On(ports.EventSourceUnloaded, hide)
	o.On(ports.EventError, hide)
}

// PlaybackToggleOverlay covers the video with a large play/pause toggle.
type PlaybackToggleOverlay struct {
	component.Container
	toggle *PlaybackToggleButton
}

// NewPlaybackToggleOverlay creates the overlay.
func NewPlaybackToggleOverlay(cfg component.Config) *PlaybackToggleOverlay {
	o := &PlaybackToggleOverlay{}
	o.toggle = NewPlaybackToggleButton(component.Config{CSSClasses: []string{"ui-hugeplaybacktogglebutton"}})
	o.InitContainer(cfg, []component.Component{o.toggle}, component.Config{CSSClass: "ui-playbacktoggle-overlay"})
	return o
}

// Toggle returns the overlay's button.
func (o *PlaybackToggleOverlay) Toggle() *PlaybackToggleButton { return o.toggle }

// ErrorMessageOverlay shows fatal player errors. Messages configured under
// errorMessages in the UI configuration replace the player's text.
type ErrorMessageOverlay struct {
	component.Container
	label *Label
	code  int
}

// NewErrorMessageOverlay creates the overlay.
func NewErrorMessageOverlay(cfg component.Config) *ErrorMessageOverlay {
	o := &ErrorMessageOverlay{}
	o.label = NewLabel(component.Config{CSSClass: "ui-errormessage-label"})
	o.InitContainer(cfg, []component.Component{o.label}, component.Config{CSSClass: "ui-errormessage-overlay", Hidden: component.Bool(true)})
	return o
}

// Configure implements component.Component.
func (o *ErrorMessageOverlay) Configure(player ports.Player, host component.Host) {
	o.Container.Configure(player, host)
	o.On(ports.EventError, func(_ context.Context, ev ports.Event) error {
		perr, ok := ev.Payload().(ports.PlayerError)
		if !ok {
			return fmt.Errorf("unexpected error payload %T", ev.Payload())
		}
		o.code = perr.Code
		o.label.SetText(o.message(perr, o.UIConfig()))
		o.Show()
		return nil
	})
	o.OnConfigUpdated(func(cfg config.UIConfig) {
		if o.IsShown() {
			o.label.SetText(o.message(ports.PlayerError{Code: o.code, Message: o.label.Text()}, cfg))
		}
	})
	o.On(ports.EventSourceLoaded, func(context.Context, ports.Event) error {
		o.code = 0
		o.label.ClearText()
		o.Hide()
		return nil
	})
}

// Message returns the displayed message.
func (o *ErrorMessageOverlay) Message() string { return o.label.Text() }

func (o *ErrorMessageOverlay) message(perr ports.PlayerError, cfg config.UIConfig) string {
	if msg, ok := cfg.ErrorMessage(perr.Code); ok {
		return msg
	}
	if perr.Message != "" {
		return perr.Message
	}
	return fmt.Sprintf("Error %d", perr.Code)
}

// CastStatusOverlay is shown while casting.
type CastStatusOverlay struct {
	component.Container
}

// NewCastStatusOverlay creates the overlay.
func NewCastStatusOverlay(cfg component.Config) *CastStatusOverlay {
	o := &CastStatusOverlay{}
	status := NewLabel(component.Config{CSSClass: "ui-cast-status-label", Text: "Playing on a remote device"})
	o.InitContainer(cfg, []component.Component{status}, component.Config{CSSClass: "ui-cast-status-overlay", Hidden: component.Bool(true)})
	return o
}

// Configure implements component.Component.
func (o *CastStatusOverlay) Configure(player ports.Player, host component.Host) {
	o.Container.Configure(player, host)
	o.SetVisible(player.IsCasting())
	o.On(ports.EventCastStarted, func(context.Context, ports.Event) error {
		o.Show()
		return nil
	})
	o.On(ports.EventCastStopped, func(context.Context, ports.Event) error {
		o.Hide()
		return nil
	})
}

// RecommendationItem is one entry of the recommendation overlay.
type RecommendationItem struct {
	component.Container
	rec config.Recommendation
}

func newRecommendationItem(rec config.Recommendation) *RecommendationItem {
	i := &RecommendationItem{rec: rec}
	children := []component.Component{NewLabel(component.Config{CSSClass: "ui-recommendation-title", Text: rec.Title})}
	if rec.Duration > 0 {
		children = append(children, NewLabel(component.Config{
			CSSClass: "ui-recommendation-duration",
			Text:     FormatDuration(time.Duration(rec.Duration) * time.Second),
		}))
	}
	attrs := map[string]string{"href": rec.URL}
	if rec.Thumbnail != "" {
		attrs["data-thumbnail"] = rec.Thumbnail
	}
	i.InitContainer(component.Config{}, children, component.Config{Tag: "a", CSSClass: "ui-recommendation-item", Attributes: attrs})
	return i
}

// Recommendation returns the item's data.
func (i *RecommendationItem) Recommendation() config.Recommendation { return i.rec }

// RecommendationOverlay lists configured recommendations once playback
// finishes. Items are rebuilt whenever the UI configuration changes.
type RecommendationOverlay struct {
	component.Container
	items []*RecommendationItem
}

// NewRecommendationOverlay creates the overlay.
func NewRecommendationOverlay(cfg component.Config) *RecommendationOverlay {
	o := &RecommendationOverlay{}
	o.InitContainer(cfg, nil, component.Config{CSSClass: "ui-recommendation-overlay", Hidden: component.Bool(true)})
	return o
}

// Configure implements component.Component.
func (o *RecommendationOverlay) Configure(player ports.Player, host component.Host) {
	o.Container.Configure(player, host)
	o.rebuild(o.UIConfig().Recommendations)
	o.OnConfigUpdated(func(cfg config.UIConfig) { o.rebuild(cfg.Recommendations) })
	o.On(ports.EventPlaybackFinished, func(context.Context, ports.Event) error {
		o.SetVisible(len(o.items) > 0)
		return nil
	})
	hide := func(context.Context, ports.Event) error {
		o.Hide()
		return nil
	}
	o.On(ports.EventPlay, hide)
	o.On(ports.EventSourceUnloaded, hide)
}

// Release implements component.Component.
func (o *RecommendationOverlay) Release() {
	o.items = nil
	o.Container.Release()
}

// Items returns the current recommendation items.
func (o *RecommendationOverlay) Items() []*RecommendationItem { return o.items }

func (o *RecommendationOverlay) rebuild(recs []config.Recommendation) {
	for _, item := range o.items {
		o.RemoveComponent(item)
	}
	o.items = o.items[:0]
	for _, rec := range recs {
		item := newRecommendationItem(rec)
		o.items = append(o.items, item)
		o.AddComponent(item)
	}
}

// AdClickOverlay captures clicks on ads with a click-through URL and relays
// them on the adClickThrough channel.
type AdClickOverlay struct {
	Button
	url string
}

// NewAdClickOverlay creates the overlay.
func NewAdClickOverlay(cfg component.Config) *AdClickOverlay {
	o := &AdClickOverlay{}
	o.Button = *NewButton(cfg, component.Config{Tag: "div", CSSClass: "ui-adclick-overlay", Role: "link", Hidden: component.Bool(true)})
	return o
}

// Configure implements component.Component.
func (o *AdClickOverlay) Configure(player ports.Player, host component.Host) {
	o.Button.Configure(player, host)
	o.On(ports.EventAdStarted, func(_ context.Context, ev ports.Event) error {
		ad, _ := ev.Payload().(ports.Ad)
		o.url = ad.ClickThrough
		o.SetVisible(o.url != "")
		return nil
	})
	end := func(context.Context, ports.Event) error {
		o.url = ""
		o.Hide()
		return nil
	}
	o.On(ports.EventAdFinished, end)
	o.On(ports.EventAdSkipped, end)
	o.On(ports.EventAdError, end)
	o.handleClick(func(ctx context.Context) {
		if o.url == "" {
			return
		}
		o.Send(ports.MessageAdClickThrough, o.url)
		o.logFailure(ctx, "pause", o.Player().Pause(ctx))
	})
}

// SubtitleOverlay renders active subtitle cues. Subtitle setting list boxes
// project their selection onto its node as classes.
type SubtitleOverlay struct {
	component.Container
	cues map[string]*Label
}

// NewSubtitleOverlay creates the overlay.
func NewSubtitleOverlay(cfg component.Config) *SubtitleOverlay {
	o := &SubtitleOverlay{}
	o.InitContainer(cfg, nil, component.Config{CSSClass: "ui-subtitle-overlay"})
	return o
}

// Configure implements component.Component.
func (o *SubtitleOverlay) Configure(player ports.Player, host component.Host) {
	o.Container.Configure(player, host)
	o.cues = make(map[string]*Label)
	o.On(ports.EventCueEnter, func(_ context.Context, ev ports.Event) error {
		cue, ok := ev.Payload().(ports.Cue)
		if !ok {
			return nil
		}
		if existing, ok := o.cues[cue.ID]; ok {
			existing.SetText(cue.Text)
			return nil
		}
		label := NewLabel(component.Config{CSSClass: "ui-subtitle-label", Text: cue.Text})
		o.cues[cue.ID] = label
		o.AddComponent(label)
		return nil
	})
	o.On(ports.EventCueExit, func(_ context.Context, ev ports.Event) error {
		cue, ok := ev.Payload().(ports.Cue)
		if !ok {
			return nil
		}
		if label, ok := o.cues[cue.ID]; ok {
			delete(o.cues, cue.ID)
			o.RemoveComponent(label)
		}
		return nil
	})
	o.On(ports.EventSourceUnloaded, func(context.Context, ports.Event) error {
		o.clear()
		return nil
	})
}

// Release implements component.Component.
func (o *SubtitleOverlay) Release() {
	o.cues = nil
	o.Container.Release()
}

// ActiveCues returns the number of cues on screen.
func (o *SubtitleOverlay) ActiveCues() int { return len(o.cues) }

func (o *SubtitleOverlay) clear() {
	for id, label := range o.cues {
		delete(o.cues, id)
		o.RemoveComponent(label)
	}
}

// DefaultAdvisoryDuration is how long the advisory stays on screen after
// playback starts.
const DefaultAdvisoryDuration = 5 * time.Second

// Advisory shows the content advisory for a while after playback of a new
// source starts.
type Advisory struct {
	component.Container
	label    *MetadataAdvisory
	duration time.Duration
	pending  bool
}

// NewAdvisory creates the overlay.
func NewAdvisory(cfg component.Config, duration time.Duration) *Advisory {
	if duration <= 0 {
		duration = DefaultAdvisoryDuration
	}
	a := &Advisory{duration: duration}
	a.label = NewMetadataAdvisory(component.Config{})
	a.InitContainer(cfg, []component.Component{a.label}, component.Config{CSSClass: "ui-advisory", Hidden: component.Bool(true)})
	return a
}

// Configure implements component.Component.
func (a *Advisory) Configure(player ports.Player, host component.Host) {
	a.Container.Configure(player, host)
	a.pending = player.State() == ports.StatePrepared
	a.On(ports.EventSourceLoaded, func(context.Context, ports.Event) error {
		a.pending = true
		return nil
	})
	a.On(ports.EventPlay, func(context.Context, ports.Event) error {
		if !a.pending || !a.label.HasAdvisory() {
			return nil
		}
		a.pending = false
		a.label.Show()
		a.Show()
		a.After(a.duration, a.Hide)
		return nil
	})
	a.On(ports.EventSourceUnloaded, func(context.Context, ports.Event) error {
		a.pending = false
		a.Hide()
		return nil
	})
}
