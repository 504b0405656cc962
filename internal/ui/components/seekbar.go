package components

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/component"
	uierrors "github.com/alexisbeaulieu97/playerui/pkg/errors"
)

// SeekBar shows the playback position as a percentage and seeks on user
// input. It is disabled during ads and for live sources.
type SeekBar struct {
	component.Base
	position float64
	inAd     bool
}

// NewSeekBar creates a seek bar.
func NewSeekBar(cfg component.Config) *SeekBar {
	s := &SeekBar{}
	s.Base = component.NewBase(cfg, component.Config{CSSClass: "ui-seekbar", Role: "slider", Attributes: map[string]string{
		"aria-valuemin": "0",
		"aria-valuemax": "100",
	}})
	s.setPosition(0)
	return s
}

// Configure implements component.Component.
func (s *SeekBar) Configure(player ports.Player, host component.Host) {
	s.Base.Configure(player, host)
	s.sync()
	s.On(ports.EventTimeChanged, func(_ context.Context, ev ports.Event) error {
		if tc, ok := ev.Payload().(ports.TimeChanged); ok && !s.inAd {
			s.setTime(tc.Time, tc.Duration)
		}
		return nil
	})
	s.On(ports.EventSeeked, func(_ context.Context, ev ports.Event) error {
		if tc, ok := ev.Payload().(ports.TimeChanged); ok {
			s.setTime(tc.Time, tc.Duration)
		}
		return nil
	})
	s.On(ports.EventSourceLoaded, func(context.Context, ports.Event) error {
		s.sync()
		return nil
	})
	s.On(ports.EventSourceUnloaded, func(context.Context, ports.Event) error {
		s.setPosition(0)
		return nil
	})
	s.On(ports.EventAdStarted, func(context.Context, ports.Event) error {
		s.inAd = true
		s.sync()
		return nil
	})
	adEnd := func(context.Context, ports.Event) error {
		s.inAd = false
		s.sync()
		return nil
	}
	s.On(ports.EventAdFinished, adEnd)
	s.On(ports.EventAdSkipped, adEnd)
	s.On(ports.EventAdError, adEnd)
}

// Position returns the playhead position in percent.
func (s *SeekBar) Position() float64 { return s.position }

// Enabled reports whether user seeking is possible.
func (s *SeekBar) Enabled() bool {
	p := s.Player()
	return s.Live() && p != nil && p.Source() != nil && !p.IsLive() && !s.inAd
}

// SeekTo seeks to percent of the duration.
func (s *SeekBar) SeekTo(ctx context.Context, percent float64) error {
	if percent < 0 || percent > 100 {
		return uierrors.NewValidationError("percent", fmt.Sprintf("%.1f is outside 0..100", percent), nil)
	}
	if !s.Enabled() {
		return nil
	}
	p := s.Player()
	target := time.Duration(float64(p.Duration()) * percent / 100)
	return p.Seek(ctx, target)
}

func (s *SeekBar) sync() {
	s.Render().ToggleClass(s.Prefixed("seekbar-disabled"), !s.Enabled())
	if p := s.Player(); p != nil && !s.inAd {
		s.setTime(p.CurrentTime(), p.Duration())
	}
}

func (s *SeekBar) setTime(current, total time.Duration) {
	if total <= 0 {
		s.setPosition(0)
		return
	}
	s.setPosition(100 * float64(current) / float64(total))
}

func (s *SeekBar) setPosition(percent float64) {
	s.position = min(max(percent, 0), 100)
	s.Render().SetAttr("aria-valuenow", strconv.FormatFloat(s.position, 'f', 1, 64))
}

// VolumeSlider shows the audio level. The player exposes mute only, so the
// level is 0 while muted and 100 otherwise; setting level 0 mutes.
type VolumeSlider struct {
	component.Base
}

// NewVolumeSlider creates a volume slider.
func NewVolumeSlider(cfg component.Config) *VolumeSlider {
	v := &VolumeSlider{}
	v.Base = component.NewBase(cfg, component.Config{CSSClass: "ui-volumeslider", Role: "slider"})
	v.setLevel(100)
	return v
}

// Configure implements component.Component.
func (v *VolumeSlider) Configure(player ports.Player, host component.Host) {
	v.Base.Configure(player, host)
	v.sync()
	sync := func(context.Context, ports.Event) error {
		v.sync()
		return nil
	}
	v.On(ports.EventMuted, sync)
	v.On(ports.EventUnmuted, sync)
}

// Level returns the displayed level.
func (v *VolumeSlider) Level() int {
	raw, _ := v.Render().Attr("aria-valuenow")
	level, _ := strconv.Atoi(raw)
	return level
}

// SetLevel applies a user-selected level.
func (v *VolumeSlider) SetLevel(ctx context.Context, level int) error {
	if level < 0 || level > 100 {
		return uierrors.NewValidationError("level", fmt.Sprintf("%d is outside 0..100", level), nil)
	}
	if !v.Live() {
		return nil
	}
	return v.Player().SetMuted(ctx, level == 0)
}

func (v *VolumeSlider) sync() {
	if v.Player().IsMuted() {
		v.setLevel(0)
		return
	}
	v.setLevel(100)
}

func (v *VolumeSlider) setLevel(level int) {
	v.Render().SetAttr("aria-valuenow", strconv.Itoa(level))
}
