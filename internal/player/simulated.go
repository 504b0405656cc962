// Package player provides an in-memory player that implements the narrow
// player surface the UI consumes. The CLI and the preview drive it directly
// to reproduce playback, ad and device scenarios without a media stack.
package player

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/alexisbeaulieu97/playerui/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/playerui/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
)

var (
	// ErrNoSource is returned by commands that need a loaded source.
	ErrNoSource = errors.New("no source loaded")
	// ErrNoAd is returned by SkipAd outside of ad playback.
	ErrNoAd = errors.New("no ad playing")
	// ErrNotSkippable is returned by SkipAd before the ad may be skipped.
	ErrNotSkippable = errors.New("ad is not skippable yet")
	// ErrUnknownTrack is returned when selecting a track id that does not
	// exist for the kind.
	ErrUnknownTrack = errors.New("unknown track")
	// ErrLive is returned when seeking in a live source.
	ErrLive = errors.New("source is live")
)

// Options configures a simulated player.
type Options struct {
	Logger        ports.Logger
	Mobile        bool
	Width         int
	Height        int
	DocumentWidth int
}

// Simulated is a deterministic, single-threaded player.
type Simulated struct {
	bus    *events.Bus
	logger ports.Logger

	source   *ports.Source
	state    ports.PlaybackState
	current  time.Duration
	muted    bool
	fullscr  bool
	casting  bool
	stalled  bool
	ad       *ports.Ad
	adPlayed time.Duration
	tracks   map[ports.TrackKind][]ports.Track
	viewport ports.Viewport
	mobile   bool
	lastErr  *ports.PlayerError
}

// New creates an idle player.
func New(opts Options) *Simulated {
	logger := logging.OrNoOp(opts.Logger).With("component", "player")
	docWidth := opts.DocumentWidth
	if docWidth == 0 {
		docWidth = opts.Width
	}
	return &Simulated{
		bus:      events.NewBus(logger),
		logger:   logger,
		state:    ports.StateIdle,
		tracks:   make(map[ports.TrackKind][]ports.Track),
		viewport: ports.Viewport{Width: opts.Width, Height: opts.Height, DocumentWidth: docWidth},
		mobile:   opts.Mobile,
	}
}

// Events exposes the player's event bus.
func (p *Simulated) Events() *events.Bus { return p.bus }

// On implements ports.Player.
func (p *Simulated) On(eventType string, handler ports.EventHandler) (ports.Subscription, error) {
	return p.bus.Subscribe(eventType, handler)
}

func (p *Simulated) emit(ctx context.Context, eventType string, payload interface{}) {
	if ctx == nil {
		ctx = context.Background()
	}
	_ = p.bus.Publish(ctx, events.New(eventType, payload))
}

// Source implements ports.Player. The returned value is a copy.
func (p *Simulated) Source() *ports.Source {
	if p.source == nil {
		return nil
	}
	cp := *p.source
	cp.Metadata = maps.Clone(p.source.Metadata)
	return &cp
}

// State implements ports.Player.
func (p *Simulated) State() ports.PlaybackState { return p.state }

// CurrentTime implements ports.Player.
func (p *Simulated) CurrentTime() time.Duration { return p.current }

// Duration implements ports.Player.
func (p *Simulated) Duration() time.Duration {
	if p.source == nil {
		return 0
	}
	return p.source.Duration
}

// IsLive implements ports.Player.
func (p *Simulated) IsLive() bool { return p.source != nil && p.source.Live }

// IsMuted implements ports.Player.
func (p *Simulated) IsMuted() bool { return p.muted }

// IsFullscreen implements ports.Player.
func (p *Simulated) IsFullscreen() bool { return p.fullscr }

// IsCasting implements ports.Player.
func (p *Simulated) IsCasting() bool { return p.casting }

// IsStalled reports whether playback is buffering.
func (p *Simulated) IsStalled() bool { return p.stalled }

// ActiveAd returns the ad being played, or nil.
func (p *Simulated) ActiveAd() *ports.Ad {
	if p.ad == nil {
		return nil
	}
	cp := *p.ad
	return &cp
}

// LastError returns the last fatal error, or nil.
func (p *Simulated) LastError() *ports.PlayerError { return p.lastErr }

// Tracks implements ports.Player.
func (p *Simulated) Tracks(kind ports.TrackKind) []ports.Track {
	return slices.Clone(p.tracks[kind])
}

// Viewport returns the current player and document size.
func (p *Simulated) Viewport() ports.Viewport { return p.viewport }

// IsMobile implements ports.Environment.
func (p *Simulated) IsMobile() bool { return p.mobile }

// DocumentWidth implements ports.Environment.
func (p *Simulated) DocumentWidth() int { return p.viewport.DocumentWidth }

// LoadSource replaces the current source and emits sourceloaded.
func (p *Simulated) LoadSource(ctx context.Context, src ports.Source) {
	if p.source != nil {
		p.Unload(ctx)
	}
	cp := src
	p.source = &cp
	p.current = 0
	p.lastErr = nil
	p.state = ports.StatePrepared
	p.logger.Debug(ctx, "source loaded", "title", src.Title)
	p.emit(ctx, ports.EventSourceLoaded, *p.Source())
}

// Unload removes the source and emits sourceunloaded.
func (p *Simulated) Unload(ctx context.Context) {
	if p.source == nil {
		return
	}
	p.source = nil
	p.ad = nil
	p.stalled = false
	p.current = 0
	p.state = ports.StateIdle
	p.emit(ctx, ports.EventSourceUnloaded, nil)
}

// Play implements ports.Player.
func (p *Simulated) Play(ctx context.Context) error {
	if p.source == nil {
		return ErrNoSource
	}
	if p.state == ports.StatePlaying {
		return nil
	}
	if p.state == ports.StateFinished {
		p.current = 0
	}
	p.state = ports.StatePlaying
	p.emit(ctx, ports.EventPlay, nil)
	return nil
}

// Pause implements ports.Player.
func (p *Simulated) Pause(ctx context.Context) error {
	if p.source == nil {
		return ErrNoSource
	}
	if p.state != ports.StatePlaying {
		return nil
	}
	p.state = ports.StatePaused
	p.emit(ctx, ports.EventPaused, nil)
	return nil
}

// Seek implements ports.Player. The position is clamped to the source.
func (p *Simulated) Seek(ctx context.Context, position time.Duration) error {
	if p.source == nil {
		return ErrNoSource
	}
	if p.source.Live {
		return ErrLive
	}
	p.current = max(0, min(position, p.source.Duration))
	p.emit(ctx, ports.EventSeeked, ports.TimeChanged{Time: p.current, Duration: p.source.Duration})
	return nil
}

// AdvanceTime moves the playhead by d while playing. An ad in progress is
// advanced instead of the content and ends once its duration is reached.
func (p *Simulated) AdvanceTime(ctx context.Context, d time.Duration) {
	if p.source == nil || p.state != ports.StatePlaying || p.stalled || d <= 0 {
		return
	}
	if p.ad != nil {
		p.adPlayed += d
		p.emit(ctx, ports.EventTimeChanged, ports.TimeChanged{Time: p.adPlayed, Duration: p.ad.Duration})
		if p.ad.Duration > 0 && p.adPlayed >= p.ad.Duration {
			p.EndAd(ctx)
		}
		return
	}
	p.current += d
	if !p.source.Live && p.source.Duration > 0 && p.current >= p.source.Duration {
		p.current = p.source.Duration
		p.emit(ctx, ports.EventTimeChanged, ports.TimeChanged{Time: p.current, Duration: p.source.Duration})
		p.state = ports.StateFinished
		p.emit(ctx, ports.EventPlaybackFinished, nil)
		return
	}
	p.emit(ctx, ports.EventTimeChanged, ports.TimeChanged{Time: p.current, Duration: p.source.Duration})
}

// StartAd begins ad playback.
func (p *Simulated) StartAd(ctx context.Context, ad ports.Ad) {
	cp := ad
	p.ad = &cp
	p.adPlayed = 0
	p.emit(ctx, ports.EventAdStarted, ad)
}

// EndAd finishes the current ad.
func (p *Simulated) EndAd(ctx context.Context) {
	if p.ad == nil {
		return
	}
	p.ad = nil
	p.emit(ctx, ports.EventAdFinished, nil)
}

// FailAd aborts the current ad with an ad error.
func (p *Simulated) FailAd(ctx context.Context, message string) {
	if p.ad == nil {
		return
	}
	p.ad = nil
	p.emit(ctx, ports.EventAdError, ports.PlayerError{Message: message})
}

// SkipAd implements ports.Player.
func (p *Simulated) SkipAd(ctx context.Context) error {
	if p.ad == nil {
		return ErrNoAd
	}
	if !p.ad.Skippable || p.adPlayed < p.ad.SkippableIn {
		return ErrNotSkippable
	}
	p.ad = nil
	p.emit(ctx, ports.EventAdSkipped, nil)
	return nil
}

// Stall starts buffering.
func (p *Simulated) Stall(ctx context.Context) {
	if p.stalled {
		return
	}
	p.stalled = true
	p.emit(ctx, ports.EventStallStarted, nil)
}

// Recover ends buffering.
func (p *Simulated) Recover(ctx context.Context) {
	if !p.stalled {
		return
	}
	p.stalled = false
	p.emit(ctx, ports.EventStallEnded, nil)
}

// Fail raises a fatal player error.
func (p *Simulated) Fail(ctx context.Context, code int, message string) {
	perr := ports.PlayerError{Code: code, Message: message}
	p.lastErr = &perr
	p.state = ports.StateIdle
	p.emit(ctx, ports.EventError, perr)
}

// Resize changes the viewport and emits playerresized.
func (p *Simulated) Resize(ctx context.Context, width, height, documentWidth int) {
	p.viewport = ports.Viewport{Width: width, Height: height, DocumentWidth: documentWidth}
	p.emit(ctx, ports.EventViewportResized, p.viewport)
}

// SetMobile changes the device class. The change is announced as a resize so
// listeners recompute layout-dependent state.
func (p *Simulated) SetMobile(ctx context.Context, mobile bool) {
	if p.mobile == mobile {
		return
	}
	p.mobile = mobile
	p.emit(ctx, ports.EventViewportResized, p.viewport)
}

// SetMuted implements ports.Player.
func (p *Simulated) SetMuted(ctx context.Context, muted bool) error {
	if p.muted == muted {
		return nil
	}
	p.muted = muted
	if muted {
		p.emit(ctx, ports.EventMuted, nil)
	} else {
		p.emit(ctx, ports.EventUnmuted, nil)
	}
	return nil
}

// SetFullscreen implements ports.Player.
func (p *Simulated) SetFullscreen(ctx context.Context, fullscreen bool) error {
	if p.fullscr == fullscreen {
		return nil
	}
	p.fullscr = fullscreen
	p.emit(ctx, ports.EventViewModeChanged, fullscreen)
	return nil
}

// SetTracks replaces the list for kind.
func (p *Simulated) SetTracks(ctx context.Context, kind ports.TrackKind, tracks []ports.Track) {
	p.tracks[kind] = slices.Clone(tracks)
	p.emit(ctx, ports.EventTracksChanged, kind)
}

// SelectTrack implements ports.Player.
func (p *Simulated) SelectTrack(ctx context.Context, kind ports.TrackKind, id string) error {
	list := p.tracks[kind]
	idx := slices.IndexFunc(list, func(t ports.Track) bool { return t.ID == id })
	if idx < 0 {
		return fmt.Errorf("%w: %s %q", ErrUnknownTrack, kind, id)
	}
	if list[idx].Selected {
		return nil
	}
	for i := range list {
		list[i].Selected = i == idx
	}
	p.emit(ctx, ports.EventTracksChanged, kind)
	return nil
}

// SetCasting implements ports.Player.
func (p *Simulated) SetCasting(ctx context.Context, casting bool) error {
	if casting {
		p.StartCast(ctx)
	} else {
		p.StopCast(ctx)
	}
	return nil
}

// StartCast switches to remote playback.
func (p *Simulated) StartCast(ctx context.Context) {
	if p.casting {
		return
	}
	p.casting = true
	p.emit(ctx, ports.EventCastStarted, nil)
}

// StopCast returns to local playback.
func (p *Simulated) StopCast(ctx context.Context) {
	if !p.casting {
		return
	}
	p.casting = false
	p.emit(ctx, ports.EventCastStopped, nil)
}

// ShowCue emits a subtitle cue.
func (p *Simulated) ShowCue(ctx context.Context, cue ports.Cue) {
	p.emit(ctx, ports.EventCueEnter, cue)
}

// HideCue removes a subtitle cue.
func (p *Simulated) HideCue(ctx context.Context, cue ports.Cue) {
	p.emit(ctx, ports.EventCueExit, cue)
}

var (
	_ ports.Player      = (*Simulated)(nil)
	_ ports.Environment = (*Simulated)(nil)
)
