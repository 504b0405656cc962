package components

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/playerui/internal/config"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/component"
	uierrors "github.com/alexisbeaulieu97/playerui/pkg/errors"
)

var labelDefaults = component.Config{Tag: "span", CSSClass: "ui-label"}

// Label displays a piece of text.
type Label struct {
	component.Base
	textChanged signal[string]
}

// NewLabel creates a label.
func NewLabel(cfg component.Config, layers ...component.Config) *Label {
	l := &Label{}
	l.Base = component.NewBase(cfg, append([]component.Config{labelDefaults}, layers...)...)
	return l
}

// SetText replaces the label text.
func (l *Label) SetText(text string) {
	node := l.Render()
	if node.Text() == text {
		return
	}
	node.SetText(text)
	l.textChanged.emit(text)
}

// Text returns the current text.
func (l *Label) Text() string { return l.Render().Text() }

// ClearText empties the label.
func (l *Label) ClearText() { l.SetText("") }

// IsEmpty reports whether the label has no text.
func (l *Label) IsEmpty() bool { return l.Text() == "" }

// OnTextChanged registers fn for text changes.
func (l *Label) OnTextChanged(fn func(text string)) ports.Subscription {
	return l.textChanged.subscribe(fn)
}

// Release implements component.Component.
func (l *Label) Release() {
	l.Base.Release()
	l.textChanged.reset()
}

// MetadataContent selects the field a MetadataLabel displays.
type MetadataContent int

const (
	// MetadataTitle shows the source title.
	MetadataTitle MetadataContent = iota
	// MetadataDescription shows the source description.
	MetadataDescription
)

var metadataContentClass = map[MetadataContent]string{
	MetadataTitle:       "label-metadata-title",
	MetadataDescription: "label-metadata-description",
}

func (c MetadataContent) String() string {
	switch c {
	case MetadataTitle:
		return "title"
	case MetadataDescription:
		return "description"
	}
	return fmt.Sprintf("MetadataContent(%d)", int(c))
}

// MetadataLabel shows the title or description of the current source. The
// title prefers the UI configuration over the source; the description
// prefers the source. Missing data leaves the initial text in place on
// mount; later refreshes clear it.
type MetadataLabel struct {
	Label
	content MetadataContent
}

// NewMetadataLabel creates a label bound to content.
func NewMetadataLabel(cfg component.Config, content MetadataContent) *MetadataLabel {
	class, ok := metadataContentClass[content]
	m := &MetadataLabel{content: content}
	m.Label = *NewLabel(cfg, component.Config{CSSClasses: []string{"label-metadata", class}})
	if !ok {
		m.Fail(uierrors.NewValidationError("content", fmt.Sprintf("unknown metadata content %d", int(content)), nil))
	}
	return m
}

// Content returns the bound field.
func (m *MetadataLabel) Content() MetadataContent { return m.content }

// Configure implements component.Component.
func (m *MetadataLabel) Configure(player ports.Player, host component.Host) {
	m.Label.Configure(player, host)

	if text, ok := m.resolve(); ok {
		m.SetText(text)
	}
	m.On(ports.EventSourceLoaded, func(context.Context, ports.Event) error {
		m.refresh()
		return nil
	})
	m.On(ports.EventSourceUnloaded, func(context.Context, ports.Event) error {
		m.ClearText()
		return nil
	})
	m.OnConfigUpdated(func(config.UIConfig) { m.refresh() })
	m.OnChannel(ports.MessageChangeMetadata, func(interface{}) { m.refresh() })
}

func (m *MetadataLabel) refresh() {
	text, _ := m.resolve()
	m.SetText(text)
}

func (m *MetadataLabel) resolve() (string, bool) {
	uicfg := m.UIConfig()
	var src *ports.Source
	if p := m.Player(); p != nil {
		src = p.Source()
	}
	switch m.content {
	case MetadataTitle:
		if uicfg.Metadata.Title != "" {
			return uicfg.Metadata.Title, true
		}
		return src.MetadataValue("title")
	case MetadataDescription:
		if v, ok := src.MetadataValue("description"); ok {
			return v, true
		}
		if uicfg.Metadata.Description != "" {
			return uicfg.Metadata.Description, true
		}
	}
	return "", false
}

// TimeLabelMode selects what a PlaybackTimeLabel shows.
type TimeLabelMode string

const (
	TimeCurrentAndTotal TimeLabelMode = "current-total"
	TimeCurrent         TimeLabelMode = "current"
	TimeTotal           TimeLabelMode = "total"
	TimeRemaining       TimeLabelMode = "remaining"
)

// PlaybackTimeLabelOptions configures a PlaybackTimeLabel.
type PlaybackTimeLabelOptions struct {
	Mode               TimeLabelMode `validate:"omitempty,oneof=current-total current total remaining"`
	HideInLivePlayback bool
}

// PlaybackTimeLabel renders the playhead position.
type PlaybackTimeLabel struct {
	Label
	opts PlaybackTimeLabelOptions
}

// NewPlaybackTimeLabel creates a time label.
func NewPlaybackTimeLabel(cfg component.Config, opts PlaybackTimeLabelOptions) *PlaybackTimeLabel {
	l := &PlaybackTimeLabel{opts: opts}
	if l.opts.Mode == "" {
		l.opts.Mode = TimeCurrentAndTotal
	}
	l.Label = *NewLabel(cfg, component.Config{CSSClass: "ui-playbacktimelabel"})
	l.Fail(component.ValidateOptions(opts))
	return l
}

// Configure implements component.Component.
func (l *PlaybackTimeLabel) Configure(player ports.Player, host component.Host) {
	l.Label.Configure(player, host)

	l.sync()
	update := func(_ context.Context, ev ports.Event) error {
		if tc, ok := ev.Payload().(ports.TimeChanged); ok {
			l.setTime(tc.Time, tc.Duration)
		}
		return nil
	}
	l.On(ports.EventTimeChanged, update)
	l.On(ports.EventSeeked, update)
	l.On(ports.EventSourceLoaded, func(context.Context, ports.Event) error {
		l.sync()
		return nil
	})
	l.On(ports.EventSourceUnloaded, func(context.Context, ports.Event) error {
		l.Render().RemoveClass(l.Prefixed("playbacktimelabel-live"))
		l.ClearText()
		return nil
	})
}

func (l *PlaybackTimeLabel) sync() {
	p := l.Player()
	if p == nil || p.Source() == nil {
		return
	}
	live := p.IsLive()
	l.Render().ToggleClass(l.Prefixed("playbacktimelabel-live"), live)
	if live {
		l.SetText("Live")
		if l.opts.HideInLivePlayback {
			l.Hide()
		}
		return
	}
	l.Show()
	l.setTime(p.CurrentTime(), p.Duration())
}

func (l *PlaybackTimeLabel) setTime(current, total time.Duration) {
	if p := l.Player(); p != nil && p.IsLive() {
		return
	}
	switch l.opts.Mode {
	case TimeCurrent:
		l.SetText(FormatDuration(current))
	case TimeTotal:
		l.SetText(FormatDuration(total))
	case TimeRemaining:
		l.SetText(FormatDuration(max(0, total-current)))
	default:
		l.SetText(FormatDuration(current) + " / " + FormatDuration(total))
	}
}

// FormatDuration renders d as mm:ss, or hh:mm:ss from one hour on.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h, m, s := total/3600, (total/60)%60, total%60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// DefaultAdMessage is used when no text is configured.
const DefaultAdMessage = "This ad will end in {remainingTime} seconds."

// AdMessageLabel shows a templated countdown during ads. Supported
// placeholders are {remainingTime}, {playedTime} and {adDuration}, all in
// whole seconds.
type AdMessageLabel struct {
	Label
	template string
	ad       *ports.Ad
}

// NewAdMessageLabel creates an ad message label. cfg.Text overrides the
// template.
func NewAdMessageLabel(cfg component.Config) *AdMessageLabel {
	l := &AdMessageLabel{}
	l.Label = *NewLabel(cfg, component.Config{CSSClass: "ui-label-ad-message", Hidden: component.Bool(true)})
	l.template = l.Config().Text
	if l.template == "" {
		l.template = DefaultAdMessage
	}
	l.Render().SetText("")
	return l
}

// Configure implements component.Component.
func (l *AdMessageLabel) Configure(player ports.Player, host component.Host) {
	l.Label.Configure(player, host)

	l.On(ports.EventAdStarted, func(_ context.Context, ev ports.Event) error {
		ad, _ := ev.Payload().(ports.Ad)
		l.ad = &ad
		l.update(0)
		l.Show()
		return nil
	})
	l.On(ports.EventTimeChanged, func(_ context.Context, ev ports.Event) error {
		if l.ad == nil {
			return nil
		}
		if tc, ok := ev.Payload().(ports.TimeChanged); ok {
			l.update(tc.Time)
		}
		return nil
	})
	end := func(context.Context, ports.Event) error {
		l.ad = nil
		l.ClearText()
		l.Hide()
		return nil
	}
	l.On(ports.EventAdFinished, end)
	l.On(ports.EventAdSkipped, end)
	l.On(ports.EventAdError, end)
}

func (l *AdMessageLabel) update(played time.Duration) {
	remaining := max(0, l.ad.Duration-played)
	r := strings.NewReplacer(
		"{remainingTime}", fmt.Sprint(int(remaining.Seconds())),
		"{playedTime}", fmt.Sprint(int(played.Seconds())),
		"{adDuration}", fmt.Sprint(int(l.ad.Duration.Seconds())),
	)
	l.SetText(r.Replace(l.template))
}

// SubtitleSettingsLabel shows the label of the selected subtitle track, or
// "Off" when none is selected.
type SubtitleSettingsLabel struct {
	Label
}

// NewSubtitleSettingsLabel creates the label.
func NewSubtitleSettingsLabel(cfg component.Config) *SubtitleSettingsLabel {
	l := &SubtitleSettingsLabel{}
	l.Label = *NewLabel(cfg, component.Config{CSSClass: "ui-label-subtitle-settings"})
	return l
}

// Configure implements component.Component.
func (l *SubtitleSettingsLabel) Configure(player ports.Player, host component.Host) {
	l.Label.Configure(player, host)
	l.sync()
	l.On(ports.EventTracksChanged, func(_ context.Context, ev ports.Event) error {
		if kind, ok := ev.Payload().(ports.TrackKind); ok && kind == ports.TrackSubtitles {
			l.sync()
		}
		return nil
	})
}

func (l *SubtitleSettingsLabel) sync() {
	for _, track := range l.Player().Tracks(ports.TrackSubtitles) {
		if track.Selected {
			l.SetText(track.Label)
			return
		}
	}
	l.SetText("Off")
}

// MetadataAdvisory shows the content classification and advisory text of
// the current source, read from the "classification" and "advisory"
// metadata keys. It hides itself when neither is present.
type MetadataAdvisory struct {
	Label
}

// NewMetadataAdvisory creates the advisory label.
func NewMetadataAdvisory(cfg component.Config) *MetadataAdvisory {
	a := &MetadataAdvisory{}
	a.Label = *NewLabel(cfg, component.Config{CSSClass: "ui-label-advisory", Hidden: component.Bool(true)})
	return a
}

// Configure implements component.Component.
func (a *MetadataAdvisory) Configure(player ports.Player, host component.Host) {
	a.Label.Configure(player, host)
	a.sync()
	a.On(ports.EventSourceLoaded, func(context.Context, ports.Event) error {
		a.sync()
		return nil
	})
	a.On(ports.EventSourceUnloaded, func(context.Context, ports.Event) error {
		a.ClearText()
		a.Hide()
		return nil
	})
}

func (a *MetadataAdvisory) sync() {
	src := a.Player().Source()
	classification, _ := src.MetadataValue("classification")
	advisory, _ := src.MetadataValue("advisory")
	parts := make([]string, 0, 2)
	for _, p := range []string{classification, advisory} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		a.ClearText()
		a.Hide()
		return
	}
	a.SetText(strings.Join(parts, " · "))
}

// HasAdvisory reports whether there is anything to show.
func (a *MetadataAdvisory) HasAdvisory() bool { return !a.IsEmpty() }
