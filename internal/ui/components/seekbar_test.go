package components_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/component"
	"github.com/alexisbeaulieu97/playerui/internal/ui/components"
)

func TestSeekBarTracksPosition(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := components.NewSeekBar(component.Config{})
	pl, _ := mount(t, s)
	require.False(t, s.Enabled())
	require.True(t, s.Render().HasClass("pui-seekbar-disabled"))

	pl.LoadSource(ctx, ports.Source{Duration: 100 * time.Second})
	require.True(t, s.Enabled())
	require.False(t, s.Render().HasClass("pui-seekbar-disabled"))

	require.NoError(t, pl.Play(ctx))
	pl.AdvanceTime(ctx, 25*time.Second)
	require.InDelta(t, 25.0, s.Position(), 0.001)
	now, _ := s.Render().Attr("aria-valuenow")
	require.Equal(t, "25.0", now)

	require.NoError(t, s.SeekTo(ctx, 50))
	require.Equal(t, 50*time.Second, pl.CurrentTime())
	require.InDelta(t, 50.0, s.Position(), 0.001)

	require.ErrorContains(t, s.SeekTo(ctx, 150), "percent")
}

func TestSeekBarDisabledDuringAdsAndLive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := components.NewSeekBar(component.Config{})
	pl, _ := mount(t, s)
	pl.LoadSource(ctx, ports.Source{Duration: 100 * time.Second})
	require.NoError(t, pl.Play(ctx))
	pl.AdvanceTime(ctx, 10*time.Second)

	pl.StartAd(ctx, ports.Ad{Duration: 30 * time.Second})
	require.False(t, s.Enabled())
	pl.AdvanceTime(ctx, 20*time.Second)
	require.InDelta(t, 10.0, s.Position(), 0.001)
	require.NoError(t, s.SeekTo(ctx, 90))
	require.Equal(t, 10*time.Second, pl.CurrentTime())

	pl.EndAd(ctx)
	require.True(t, s.Enabled())

	pl.LoadSource(ctx, ports.Source{Live: true})
	require.False(t, s.Enabled())
	require.True(t, s.Render().HasClass("pui-seekbar-disabled"))
}

func TestVolumeSlider(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := components.NewVolumeSlider(component.Config{})
	require.Equal(t, 100, v.Level())
	pl, _ := mount(t, v)

	require.NoError(t, v.SetLevel(ctx, 0))
	require.True(t, pl.IsMuted())
	require.Equal(t, 0, v.Level())

	require.NoError(t, v.SetLevel(ctx, 40))
	require.False(t, pl.IsMuted())
	require.Equal(t, 100, v.Level())

	require.Error(t, v.SetLevel(ctx, 101))
}
