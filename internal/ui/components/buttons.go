package components

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/component"
)

// PlaybackToggleButton plays or pauses; it is on while playing.
type PlaybackToggleButton struct {
	ToggleButton
}

// NewPlaybackToggleButton creates the button.
func NewPlaybackToggleButton(cfg component.Config) *PlaybackToggleButton {
	b := &PlaybackToggleButton{}
	b.ToggleButton = *NewToggleButton(cfg, component.Config{CSSClass: "ui-playbacktogglebutton", AriaLabel: "Play/Pause"})
	return b
}

// Configure implements component.Component.
func (b *PlaybackToggleButton) Configure(player ports.Player, host component.Host) {
	b.ToggleButton.Configure(player, host)
	b.SetOn(player.State() == ports.StatePlaying)

	sync := func(context.Context, ports.Event) error {
		if p := b.Player(); p != nil {
			b.SetOn(p.State() == ports.StatePlaying)
		}
		return nil
	}
	for _, ev := range []string{ports.EventPlay, ports.EventPaused, ports.EventPlaybackFinished, ports.EventSourceUnloaded, ports.EventError} {
		b.On(ev, sync)
	}
	b.handleClick(func(ctx context.Context) {
		p := b.Player()
		if p.State() == ports.StatePlaying {
			b.logFailure(ctx, "pause", p.Pause(ctx))
			return
		}
		b.logFailure(ctx, "play", p.Play(ctx))
	})
}

// PlayButton starts playback and is hidden while playing.
type PlayButton struct {
	Button
}

// NewPlayButton creates the button.
func NewPlayButton(cfg component.Config) *PlayButton {
	b := &PlayButton{}
	b.Button = *NewButton(cfg, component.Config{CSSClass: "ui-playbutton", AriaLabel: "Play"})
	return b
}

// Configure implements component.Component.
func (b *PlayButton) Configure(player ports.Player, host component.Host) {
	b.Button.Configure(player, host)
	b.SetVisible(player.State() != ports.StatePlaying)
	b.On(ports.EventPlay, func(context.Context, ports.Event) error {
		b.Hide()
		return nil
	})
	show := func(context.Context, ports.Event) error {
		b.Show()
		return nil
	}
	b.On(ports.EventPaused, show)
	b.On(ports.EventPlaybackFinished, show)
	b.On(ports.EventSourceUnloaded, show)
	b.handleClick(func(ctx context.Context) {
		b.logFailure(ctx, "play", b.Player().Play(ctx))
	})
}

// FullscreenToggleButton enters and leaves fullscreen.
type FullscreenToggleButton struct {
	ToggleButton
}

// NewFullscreenToggleButton creates the button.
func NewFullscreenToggleButton(cfg component.Config) *FullscreenToggleButton {
	b := &FullscreenToggleButton{}
	b.ToggleButton = *NewToggleButton(cfg, component.Config{CSSClass: "ui-fullscreentogglebutton", AriaLabel: "Fullscreen"})
	return b
}

// Configure implements component.Component.
func (b *FullscreenToggleButton) Configure(player ports.Player, host component.Host) {
	b.ToggleButton.Configure(player, host)
	b.SetOn(player.IsFullscreen())
	b.On(ports.EventViewModeChanged, func(context.Context, ports.Event) error {
		b.SetOn(b.Player().IsFullscreen())
		return nil
	})
	b.handleClick(func(ctx context.Context) {
		p := b.Player()
		b.logFailure(ctx, "fullscreen", p.SetFullscreen(ctx, !p.IsFullscreen()))
	})
}

// VolumeToggleButton mutes and unmutes; it is on while muted.
type VolumeToggleButton struct {
	ToggleButton
}

// NewVolumeToggleButton creates the button.
func NewVolumeToggleButton(cfg component.Config) *VolumeToggleButton {
	b := &VolumeToggleButton{}
	b.ToggleButton = *NewToggleButton(cfg, component.Config{CSSClass: "ui-volumetogglebutton", AriaLabel: "Mute"})
	return b
}

// Configure implements component.Component.
func (b *VolumeToggleButton) Configure(player ports.Player, host component.Host) {
	b.ToggleButton.Configure(player, host)
	b.SetOn(player.IsMuted())
	sync := func(context.Context, ports.Event) error {
		b.SetOn(b.Player().IsMuted())
		return nil
	}
	b.On(ports.EventMuted, sync)
	b.On(ports.EventUnmuted, sync)
	b.handleClick(func(ctx context.Context) {
		p := b.Player()
		b.logFailure(ctx, "mute", p.SetMuted(ctx, !p.IsMuted()))
	})
}

// CastToggleButton starts and stops casting.
type CastToggleButton struct {
	ToggleButton
}

// NewCastToggleButton creates the button.
func NewCastToggleButton(cfg component.Config) *CastToggleButton {
	b := &CastToggleButton{}
	b.ToggleButton = *NewToggleButton(cfg, component.Config{CSSClass: "ui-casttogglebutton", AriaLabel: "Cast"})
	return b
}

// Configure implements component.Component.
func (b *CastToggleButton) Configure(player ports.Player, host component.Host) {
	b.ToggleButton.Configure(player, host)
	b.SetOn(player.IsCasting())
	sync := func(context.Context, ports.Event) error {
		b.SetOn(b.Player().IsCasting())
		return nil
	}
	b.On(ports.EventCastStarted, sync)
	b.On(ports.EventCastStopped, sync)
	b.handleClick(func(ctx context.Context) {
		p := b.Player()
		b.logFailure(ctx, "cast", p.SetCasting(ctx, !p.IsCasting()))
	})
}

// SeekStepOptions configures RewindButton and ForwardButton.
type SeekStepOptions struct {
	Step time.Duration `validate:"gt=0"`
}

// DefaultSeekStep is used when no step is configured.
const DefaultSeekStep = 10 * time.Second

// SeekStepButton seeks relative to the playhead by a fixed step. It is hidden
// for live sources.
type SeekStepButton struct {
	Button
	step time.Duration
}

// NewRewindButton seeks backwards by opts.Step.
func NewRewindButton(cfg component.Config, opts SeekStepOptions) *SeekStepButton {
	return newSeekStepButton(cfg, opts, -1, component.Config{CSSClass: "ui-rewindbutton", AriaLabel: "Rewind"})
}

// NewForwardButton seeks forwards by opts.Step.
func NewForwardButton(cfg component.Config, opts SeekStepOptions) *SeekStepButton {
	return newSeekStepButton(cfg, opts, 1, component.Config{CSSClass: "ui-forwardbutton", AriaLabel: "Forward"})
}

func newSeekStepButton(cfg component.Config, opts SeekStepOptions, sign time.Duration, layer component.Config) *SeekStepButton {
	b := &SeekStepButton{}
	b.Button = *NewButton(cfg, layer)
	if opts.Step == 0 {
		opts.Step = DefaultSeekStep
	}
	b.Fail(component.ValidateOptions(opts))
	b.step = sign * opts.Step
	return b
}

// Step returns the signed seek offset.
func (b *SeekStepButton) Step() time.Duration { return b.step }

// Configure implements component.Component.
func (b *SeekStepButton) Configure(player ports.Player, host component.Host) {
	b.Button.Configure(player, host)
	sync := func(context.Context, ports.Event) error {
		b.SetVisible(!b.Player().IsLive())
		return nil
	}
	_ = sync(context.Background(), nil)
	b.On(ports.EventSourceLoaded, sync)
	b.handleClick(func(ctx context.Context) {
		p := b.Player()
		b.logFailure(ctx, "seek", p.Seek(ctx, p.CurrentTime()+b.step))
	})
}

// AdSkipButton skips the running ad once it becomes skippable. Its caption
// counts down until then.
type AdSkipButton struct {
	Button
	ad      *ports.Ad
	waiting string
	ready   string
}

// AdSkipOptions configures the captions. {remainingTime} is replaced with
// the seconds until the ad can be skipped.
type AdSkipOptions struct {
	UntilSkippable string
	Skippable      string
}

// NewAdSkipButton creates the button, hidden until an ad starts.
func NewAdSkipButton(cfg component.Config, opts AdSkipOptions) *AdSkipButton {
	b := &AdSkipButton{waiting: opts.UntilSkippable, ready: opts.Skippable}
	if b.waiting == "" {
		b.waiting = "Skip ad in {remainingTime}"
	}
	if b.ready == "" {
		b.ready = "Skip ad"
	}
	b.Button = *NewButton(cfg, component.Config{CSSClass: "ui-button-ad-skip", Hidden: component.Bool(true)})
	return b
}

// Configure implements component.Component.
func (b *AdSkipButton) Configure(player ports.Player, host component.Host) {
	b.Button.Configure(player, host)
	b.On(ports.EventAdStarted, func(_ context.Context, ev ports.Event) error {
		ad, _ := ev.Payload().(ports.Ad)
		if !ad.Skippable {
			b.ad = nil
			b.Hide()
			return nil
		}
		b.ad = &ad
		b.update(0)
		b.Show()
		return nil
	})
	b.On(ports.EventTimeChanged, func(_ context.Context, ev ports.Event) error {
		if tc, ok := ev.Payload().(ports.TimeChanged); ok && b.ad != nil {
			b.update(tc.Time)
		}
		return nil
	})
	end := func(context.Context, ports.Event) error {
		b.ad = nil
		b.Hide()
		return nil
	}
	b.On(ports.EventAdFinished, end)
	b.On(ports.EventAdSkipped, end)
	b.On(ports.EventAdError, end)
	b.handleClick(func(ctx context.Context) {
		b.logFailure(ctx, "skip ad", b.Player().SkipAd(ctx))
	})
}

func (b *AdSkipButton) update(played time.Duration) {
	remaining := b.ad.SkippableIn - played
	if remaining <= 0 {
		b.SetText(b.ready)
		b.Render().AddClass(b.Prefixed("skippable"))
		return
	}
	secs := int((remaining + time.Second - 1) / time.Second)
	b.SetText(strings.ReplaceAll(b.waiting, "{remainingTime}", fmt.Sprint(secs)))
	b.Render().RemoveClass(b.Prefixed("skippable"))
}

// ChannelButton sends a fixed message on the external channel when clicked.
// Without a channel it hides itself.
type ChannelButton struct {
	Button
	message string
	payload func() interface{}
}

// NewCustomCloseButton sends closePlayer.
func NewCustomCloseButton(cfg component.Config) *ChannelButton {
	return newChannelButton(cfg, ports.MessageClosePlayer, nil, component.Config{CSSClass: "ui-customclosebutton", AriaLabel: "Close"})
}

// NextEpisodeOptions identifies the episode announced by NextEpisodeButton.
type NextEpisodeOptions struct {
	EpisodeID string
	Title     string
}

// NewNextEpisodeButton sends nextEpisode with the configured episode.
func NewNextEpisodeButton(cfg component.Config, opts NextEpisodeOptions) *ChannelButton {
	payload := func() interface{} {
		return map[string]interface{}{"id": opts.EpisodeID, "title": opts.Title}
	}
	layer := component.Config{CSSClass: "ui-nextepisodebutton", AriaLabel: "Next episode"}
	if opts.Title != "" {
		layer.Text = opts.Title
	}
	return newChannelButton(cfg, ports.MessageNextEpisode, payload, layer)
}

func newChannelButton(cfg component.Config, message string, payload func() interface{}, layer component.Config) *ChannelButton {
	b := &ChannelButton{message: message, payload: payload}
	b.Button = *NewButton(cfg, layer)
	return b
}

// Message returns the channel name the button sends on.
func (b *ChannelButton) Message() string { return b.message }

// Configure implements component.Component.
func (b *ChannelButton) Configure(player ports.Player, host component.Host) {
	b.Button.Configure(player, host)
	if host.Channel() == nil {
		b.Hide()
		return
	}
	b.handleClick(func(context.Context) {
		var data interface{}
		if b.payload != nil {
			data = b.payload()
		}
		b.Send(b.message, data)
	})
}

// Hider is anything a CloseButton can hide.
type Hider interface {
	Hide()
}

// CloseButtonOptions names the component to hide.
type CloseButtonOptions struct {
	Target Hider `validate:"required"`
}

// CloseButton hides a target component it does not own.
type CloseButton struct {
	Button
	target Hider
}

// NewCloseButton creates the button.
func NewCloseButton(cfg component.Config, opts CloseButtonOptions) *CloseButton {
	b := &CloseButton{target: opts.Target}
	b.Button = *NewButton(cfg, component.Config{CSSClass: "ui-closebutton", AriaLabel: "Close"})
	b.Fail(component.ValidateOptions(opts))
	return b
}

// Configure implements component.Component.
func (b *CloseButton) Configure(player ports.Player, host component.Host) {
	b.Button.Configure(player, host)
	b.handleClick(func(context.Context) {
		if b.target != nil {
			b.target.Hide()
		}
	})
}
