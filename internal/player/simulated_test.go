package player

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
)

func record(t *testing.T, p *Simulated, names ...string) *[]string {
	t.Helper()
	var got []string
	for _, name := range names {
		name := name
		_, err := p.On(name, func(context.Context, ports.Event) error {
			got = append(got, name)
			return nil
		})
		require.NoError(t, err)
	}
	return &got
}

func TestPlaybackLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := New(Options{Width: 1280, Height: 720})
	got := record(t, p, ports.EventSourceLoaded, ports.EventPlay, ports.EventPaused,
		ports.EventPlaybackFinished, ports.EventSourceUnloaded)

	require.ErrorIs(t, p.Play(ctx), ErrNoSource)

	p.LoadSource(ctx, ports.Source{Title: "Big Buck Bunny", Duration: 10 * time.Second})
	require.Equal(t, ports.StatePrepared, p.State())
	require.NoError(t, p.Play(ctx))
	require.NoError(t, p.Play(ctx))
	p.AdvanceTime(ctx, 4*time.Second)
	require.Equal(t, 4*time.Second, p.CurrentTime())
	require.NoError(t, p.Pause(ctx))
	require.NoError(t, p.Play(ctx))
	p.AdvanceTime(ctx, time.Minute)
	require.Equal(t, ports.StateFinished, p.State())
	require.Equal(t, 10*time.Second, p.CurrentTime())
	p.Unload(ctx)

	require.Equal(t, []string{
		ports.EventSourceLoaded, ports.EventPlay, ports.EventPaused, ports.EventPlay,
		ports.EventPlaybackFinished, ports.EventSourceUnloaded,
	}, *got)
	require.Nil(t, p.Source())
}

func TestSourceIsCopied(t *testing.T) {
	t.Parallel()

	p := New(Options{})
	p.LoadSource(context.Background(), ports.Source{Metadata: map[string]string{"description": "X"}})

	src := p.Source()
	src.Metadata["description"] = "changed"
	v, ok := p.Source().MetadataValue("description")
	require.True(t, ok)
	require.Equal(t, "X", v)
}

func TestAdFlow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := New(Options{})
	got := record(t, p, ports.EventAdStarted, ports.EventAdSkipped, ports.EventAdFinished)
	p.LoadSource(ctx, ports.Source{Duration: time.Minute})
	require.NoError(t, p.Play(ctx))

	require.ErrorIs(t, p.SkipAd(ctx), ErrNoAd)

	p.StartAd(ctx, ports.Ad{ID: "pre", Duration: 10 * time.Second, Skippable: true, SkippableIn: 5 * time.Second})
	require.ErrorIs(t, p.SkipAd(ctx), ErrNotSkippable)
	p.AdvanceTime(ctx, 5*time.Second)
	require.Equal(t, time.Duration(0), p.CurrentTime())
	require.NoError(t, p.SkipAd(ctx))
	require.Nil(t, p.ActiveAd())

	p.StartAd(ctx, ports.Ad{ID: "mid", Duration: 2 * time.Second})
	p.AdvanceTime(ctx, 3*time.Second)
	require.Nil(t, p.ActiveAd())

	require.Equal(t, []string{ports.EventAdStarted, ports.EventAdSkipped, ports.EventAdStarted, ports.EventAdFinished}, *got)
}

func TestSelectTrack(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := New(Options{})
	p.SetTracks(ctx, ports.TrackAudio, []ports.Track{{ID: "en", Label: "English", Selected: true}, {ID: "de", Label: "Deutsch"}})
	got := record(t, p, ports.EventTracksChanged)

	require.NoError(t, p.SelectTrack(ctx, ports.TrackAudio, "de"))
	require.NoError(t, p.SelectTrack(ctx, ports.TrackAudio, "de"))
	require.ErrorIs(t, p.SelectTrack(ctx, ports.TrackAudio, "fr"), ErrUnknownTrack)

	tracks := p.Tracks(ports.TrackAudio)
	require.False(t, tracks[0].Selected)
	require.True(t, tracks[1].Selected)
	require.Len(t, *got, 1)
}

func TestEnvironmentAndViewport(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := New(Options{Width: 400, Mobile: true})
	require.True(t, p.IsMobile())
	require.Equal(t, 400, p.DocumentWidth())

	got := record(t, p, ports.EventViewportResized)
	p.Resize(ctx, 800, 450, 800)
	p.SetMobile(ctx, false)
	p.SetMobile(ctx, false)
	require.Equal(t, 800, p.DocumentWidth())
	require.Len(t, *got, 2)
}

func TestToggles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := New(Options{})
	got := record(t, p, ports.EventMuted, ports.EventUnmuted, ports.EventViewModeChanged,
		ports.EventStallStarted, ports.EventStallEnded, ports.EventCastStarted, ports.EventCastStopped, ports.EventError)

	require.NoError(t, p.SetMuted(ctx, true))
	require.NoError(t, p.SetMuted(ctx, false))
	require.NoError(t, p.SetFullscreen(ctx, true))
	require.True(t, p.IsFullscreen())
	p.Stall(ctx)
	p.Stall(ctx)
	require.True(t, p.IsStalled())
	p.Recover(ctx)
	p.StartCast(ctx)
	require.True(t, p.IsCasting())
	p.StopCast(ctx)
	p.Fail(ctx, 1203, "network")
	require.Equal(t, 1203, p.LastError().Code)

	require.Equal(t, []string{
		ports.EventMuted, ports.EventUnmuted, ports.EventViewModeChanged, ports.EventStallStarted,
		ports.EventStallEnded, ports.EventCastStarted, ports.EventCastStopped, ports.EventError,
	}, *got)
}

func TestSeekClampsAndRejectsLive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := New(Options{})
	p.LoadSource(ctx, ports.Source{Duration: 30 * time.Second})
	require.NoError(t, p.Seek(ctx, time.Hour))
	require.Equal(t, 30*time.Second, p.CurrentTime())
	require.NoError(t, p.Seek(ctx, -time.Second))
	require.Equal(t, time.Duration(0), p.CurrentTime())

	p.LoadSource(ctx, ports.Source{Live: true})
	require.True(t, p.IsLive())
	require.ErrorIs(t, p.Seek(ctx, time.Second), ErrLive)
}
