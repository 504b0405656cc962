package components_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/playerui/internal/config"
	"github.com/alexisbeaulieu97/playerui/internal/player"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/component"
	"github.com/alexisbeaulieu97/playerui/internal/ui/component/componenttest"
	"github.com/alexisbeaulieu97/playerui/internal/ui/components"
)

func TestLabelTextChanges(t *testing.T) {
	t.Parallel()

	l := components.NewLabel(component.Config{Text: "hello"})
	require.Equal(t, "span", l.Render().Tag())
	require.Equal(t, "hello", l.Text())

	var seen []string
	sub := l.OnTextChanged(func(text string) { seen = append(seen, text) })
	l.SetText("hello")
	l.SetText("world")
	l.ClearText()
	sub.Unsubscribe()
	l.SetText("again")

	require.Equal(t, []string{"world", ""}, seen)
	require.False(t, l.IsEmpty())
}

func TestMetadataLabelFollowsSource(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l := components.NewMetadataLabel(component.Config{}, components.MetadataTitle)
	pl, _ := mount(t, l)

	require.Equal(t, []string{"pui-ui-label", "pui-label-metadata", "pui-label-metadata-title"}, l.Render().Classes())
	require.Empty(t, l.Text())

	pl.LoadSource(ctx, ports.Source{Title: "X"})
	require.Equal(t, "X", l.Text())

	pl.Unload(ctx)
	require.Empty(t, l.Text())
}

func TestMetadataLabelPrecedence(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := ports.Source{Title: "Source title", Description: "Source description"}
	cfg := config.UIConfig{Metadata: config.Metadata{Title: "Configured title", Description: "Configured description"}}

	tests := []struct {
		name    string
		content components.MetadataContent
		source  ports.Source
		want    string
	}{
		{name: "title prefers configuration", content: components.MetadataTitle, source: src, want: "Configured title"},
		{name: "description prefers source", content: components.MetadataDescription, source: src, want: "Source description"},
		{name: "description falls back to configuration", content: components.MetadataDescription, source: ports.Source{Title: "t"}, want: "Configured description"},
		{name: "metadata map wins over field", content: components.MetadataDescription, source: ports.Source{Description: "field", Metadata: map[string]string{"description": "map"}}, want: "map"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			host := componenttest.NewHost()
			host.Cfg = cfg
			pl := player.New(player.Options{})
			l := components.NewMetadataLabel(component.Config{}, tt.content)
			mountOn(t, l, pl, host)

			pl.LoadSource(ctx, tt.source)
			require.Equal(t, tt.want, l.Text())
		})
	}
}

func TestMetadataLabelRefreshesOnConfigAndChannel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l := components.NewMetadataLabel(component.Config{}, components.MetadataTitle)
	pl, host := mount(t, l)
	pl.LoadSource(ctx, ports.Source{Title: "Source"})

	host.UpdateConfig(config.UIConfig{Metadata: config.Metadata{Title: "Updated"}})
	require.Equal(t, "Updated", l.Text())

	host.Cfg = config.UIConfig{Metadata: config.Metadata{Title: "Pushed"}}
	host.Hub.Send(ports.MessageChangeMetadata, map[string]string{"ignored": "payload"})
	require.Equal(t, "Pushed", l.Text())

	l.Release()
	pl.LoadSource(ctx, ports.Source{Title: "After release"})
	require.Equal(t, "Pushed", l.Text())
}

func TestMetadataLabelClearsRemovedValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l := components.NewMetadataLabel(component.Config{Text: "Placeholder"}, components.MetadataTitle)
	pl, host := mount(t, l)
	require.Equal(t, "Placeholder", l.Text(), "nothing to resolve on mount")

	host.UpdateConfig(config.UIConfig{Metadata: config.Metadata{Title: "Old"}})
	require.Equal(t, "Old", l.Text())

	host.UpdateConfig(config.UIConfig{})
	require.Empty(t, l.Text())

	host.UpdateConfig(config.UIConfig{Metadata: config.Metadata{Title: "Old"}})
	pl.LoadSource(ctx, ports.Source{Title: "Source"})
	host.Cfg = config.UIConfig{}
	host.Hub.Send(ports.MessageChangeMetadata, nil)
	require.Equal(t, "Source", l.Text())
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "00:00"},
		{in: -time.Second, want: "00:00"},
		{in: 65 * time.Second, want: "01:05"},
		{in: 65*time.Second + 900*time.Millisecond, want: "01:05"},
		{in: time.Hour + 2*time.Minute + 5*time.Second, want: "01:02:05"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, components.FormatDuration(tt.in), tt.in.String())
	}
}

func TestPlaybackTimeLabelModes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode components.TimeLabelMode
		want string
	}{
		{mode: "", want: "00:04 / 00:10"},
		{mode: components.TimeCurrent, want: "00:04"},
		{mode: components.TimeTotal, want: "00:10"},
		{mode: components.TimeRemaining, want: "00:06"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.mode), func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			l := components.NewPlaybackTimeLabel(component.Config{}, components.PlaybackTimeLabelOptions{Mode: tt.mode})
			require.NoError(t, l.Err())
			pl, _ := mount(t, l)

			pl.LoadSource(ctx, ports.Source{Duration: 10 * time.Second})
			require.NoError(t, pl.Play(ctx))
			pl.AdvanceTime(ctx, 4*time.Second)
			require.Equal(t, tt.want, l.Text())
		})
	}
}

func TestPlaybackTimeLabelLive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l := components.NewPlaybackTimeLabel(component.Config{}, components.PlaybackTimeLabelOptions{HideInLivePlayback: true})
	pl, _ := mount(t, l)

	pl.LoadSource(ctx, ports.Source{Live: true})
	require.Equal(t, "Live", l.Text())
	require.True(t, l.IsHidden())
	require.True(t, l.Render().HasClass("pui-playbacktimelabel-live"))

	pl.LoadSource(ctx, ports.Source{Duration: time.Minute})
	require.True(t, l.IsShown())
	require.Equal(t, "00:00 / 01:00", l.Text())
	require.False(t, l.Render().HasClass("pui-playbacktimelabel-live"))
}

func TestPlaybackTimeLabelRejectsUnknownMode(t *testing.T) {
	t.Parallel()

	l := components.NewPlaybackTimeLabel(component.Config{}, components.PlaybackTimeLabelOptions{Mode: "sideways"})
	require.Error(t, l.Err())
	require.ErrorContains(t, l.Err(), "mode")
}

func TestAdMessageLabelCountsDown(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l := components.NewAdMessageLabel(component.Config{})
	pl, _ := mount(t, l)
	require.True(t, l.IsHidden())
	require.Empty(t, l.Text())

	pl.LoadSource(ctx, ports.Source{Duration: time.Minute})
	require.NoError(t, pl.Play(ctx))
	pl.StartAd(ctx, ports.Ad{ID: "ad-1", Duration: 15 * time.Second})
	require.True(t, l.IsShown())
	require.Equal(t, "This ad will end in 15 seconds.", l.Text())

	pl.AdvanceTime(ctx, 5*time.Second)
	require.Equal(t, "This ad will end in 10 seconds.", l.Text())

	pl.EndAd(ctx)
	require.True(t, l.IsHidden())
	require.Empty(t, l.Text())
}

func TestAdMessageLabelCustomTemplate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l := components.NewAdMessageLabel(component.Config{Text: "{playedTime}/{adDuration}"})
	pl, _ := mount(t, l)

	pl.LoadSource(ctx, ports.Source{Duration: time.Minute})
	require.NoError(t, pl.Play(ctx))
	pl.StartAd(ctx, ports.Ad{Duration: 20 * time.Second})
	pl.AdvanceTime(ctx, 3*time.Second)
	require.Equal(t, "3/20", l.Text())
}

func TestSubtitleSettingsLabel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l := components.NewSubtitleSettingsLabel(component.Config{})
	pl, _ := mount(t, l)
	require.Equal(t, "Off", l.Text())

	pl.SetTracks(ctx, ports.TrackSubtitles, []ports.Track{{ID: "en", Label: "English"}, {ID: "fr", Label: "Français"}})
	require.Equal(t, "Off", l.Text())
	require.NoError(t, pl.SelectTrack(ctx, ports.TrackSubtitles, "fr"))
	require.Equal(t, "Français", l.Text())
}

func TestMetadataAdvisory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a := components.NewMetadataAdvisory(component.Config{})
	pl, _ := mount(t, a)
	require.False(t, a.HasAdvisory())

	pl.LoadSource(ctx, ports.Source{Metadata: map[string]string{"classification": "PG-13", "advisory": "Violence"}})
	require.Equal(t, "PG-13 · Violence", a.Text())
	require.True(t, a.HasAdvisory())

	pl.LoadSource(ctx, ports.Source{Metadata: map[string]string{"advisory": "Strobe effects"}})
	require.Equal(t, "Strobe effects", a.Text())

	pl.Unload(ctx)
	require.False(t, a.HasAdvisory())
	require.True(t, a.IsHidden())
}
