package player

import (
	"context"
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
)

// DemoSource is the source loaded by the CLI and the preview.
func DemoSource() ports.Source {
	return ports.Source{
		Title:       "Big Buck Bunny",
		Description: "A giant rabbit takes revenge on three rodents.",
		Duration:    10 * time.Minute,
		Metadata: map[string]string{
			"classification": "PG",
			"advisory":       "Mild cartoon violence",
		},
	}
}

// DemoTracks are the track lists DemoSource offers.
func DemoTracks() map[ports.TrackKind][]ports.Track {
	return map[ports.TrackKind][]ports.Track{
		ports.TrackSubtitles: {
			{ID: "off", Label: "Off", Selected: true},
			{ID: "en", Label: "English"},
			{ID: "fr", Label: "Français"},
		},
		ports.TrackAudio: {
			{ID: "en", Label: "English", Selected: true},
			{ID: "fr", Label: "Français"},
		},
		ports.TrackVideoQuality: {
			{ID: "auto", Label: "Auto", Selected: true},
			{ID: "1080", Label: "1080p"},
			{ID: "720", Label: "720p"},
		},
		ports.TrackSpeed: {
			{ID: "0.5", Label: "0.5x"},
			{ID: "1", Label: "Normal", Selected: true},
			{ID: "2", Label: "2x"},
		},
	}
}

// DemoAd is a skippable linear ad that needs the ad UI.
func DemoAd(id string) ports.Ad {
	return ports.Ad{
		ID:           id,
		RequiresUI:   true,
		Duration:     15 * time.Second,
		SkippableIn:  5 * time.Second,
		Skippable:    true,
		ClickThrough: "https://example.com/advertiser",
	}
}

// Scenario describes a player state to reproduce: device, playback and ad.
type Scenario struct {
	Mobile bool
	// Width is the player and document width in pixels.
	Width int
	// State is one of idle, prepared, playing, paused or finished.
	State ports.PlaybackState
	// Position moves the playhead after the source is loaded.
	Position time.Duration
	Ad       *ports.Ad
	Stalled  bool
	Casting  bool
	Error    *ports.PlayerError
}

// Apply drives p into the scenario. The demo source and tracks are loaded
// unless the state is idle.
func (s Scenario) Apply(ctx context.Context, p *Simulated) error {
	if s.Width > 0 {
		p.Resize(ctx, s.Width, s.Width*9/16, s.Width)
	}
	p.SetMobile(ctx, s.Mobile)

	state := s.State
	if state == "" {
		state = ports.StatePrepared
	}
	if state != ports.StateIdle {
		p.LoadSource(ctx, DemoSource())
		for kind, tracks := range DemoTracks() {
			p.SetTracks(ctx, kind, tracks)
		}
		if s.Position > 0 {
			if err := p.Seek(ctx, s.Position); err != nil {
				return err
			}
		}
	}

	switch state {
	case ports.StateIdle, ports.StatePrepared:
	case ports.StatePlaying:
		if err := p.Play(ctx); err != nil {
			return err
		}
	case ports.StatePaused:
		if err := p.Play(ctx); err != nil {
			return err
		}
		if err := p.Pause(ctx); err != nil {
			return err
		}
	case ports.StateFinished:
		if err := p.Play(ctx); err != nil {
			return err
		}
		p.AdvanceTime(ctx, DemoSource().Duration)
	default:
		return fmt.Errorf("unknown playback state %q", state)
	}

	if s.Casting {
		p.StartCast(ctx)
	}
	if s.Ad != nil {
		p.StartAd(ctx, *s.Ad)
	}
	if s.Stalled {
		p.Stall(ctx)
	}
	if s.Error != nil {
		p.Fail(ctx, s.Error.Code, s.Error.Message)
	}
	return nil
}
