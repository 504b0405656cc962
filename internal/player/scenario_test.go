package player

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
)

func TestScenarioApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		scenario Scenario
		check    func(t *testing.T, p *Simulated)
	}{
		{
			name:     "defaults to a prepared source",
			scenario: Scenario{},
			check: func(t *testing.T, p *Simulated) {
				require.Equal(t, ports.StatePrepared, p.State())
				require.Equal(t, "Big Buck Bunny", p.Source().Title)
				require.Len(t, p.Tracks(ports.TrackSubtitles), 3)
			},
		},
		{
			name:     "idle keeps the player empty",
			scenario: Scenario{State: ports.StateIdle},
			check: func(t *testing.T, p *Simulated) {
				require.Nil(t, p.Source())
			},
		},
		{
			name:     "handheld paused mid-way",
			scenario: Scenario{Mobile: true, Width: 400, State: ports.StatePaused, Position: time.Minute},
			check: func(t *testing.T, p *Simulated) {
				require.True(t, p.IsMobile())
				require.Equal(t, 400, p.DocumentWidth())
				require.Equal(t, ports.StatePaused, p.State())
				require.Equal(t, time.Minute, p.CurrentTime())
			},
		},
		{
			name:     "finished",
			scenario: Scenario{State: ports.StateFinished},
			check: func(t *testing.T, p *Simulated) {
				require.Equal(t, ports.StateFinished, p.State())
			},
		},
		{
			name:     "ad while stalled and casting",
			scenario: Scenario{State: ports.StatePlaying, Ad: &ports.Ad{RequiresUI: true}, Stalled: true, Casting: true},
			check: func(t *testing.T, p *Simulated) {
				require.NotNil(t, p.ActiveAd())
				require.True(t, p.IsStalled())
				require.True(t, p.IsCasting())
			},
		},
		{
			name:     "error",
			scenario: Scenario{Error: &ports.PlayerError{Code: 1000, Message: "boom"}},
			check: func(t *testing.T, p *Simulated) {
				require.Equal(t, 1000, p.LastError().Code)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := New(Options{})
			require.NoError(t, tt.scenario.Apply(context.Background(), p))
			tt.check(t, p)
		})
	}
}

func TestScenarioRejectsUnknownState(t *testing.T) {
	t.Parallel()

	err := Scenario{State: "rewinding"}.Apply(context.Background(), New(Options{}))
	require.ErrorContains(t, err, "rewinding")
}
