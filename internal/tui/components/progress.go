// Package components holds small views shared by the preview.
package components

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	uicomponents "github.com/alexisbeaulieu97/playerui/internal/ui/components"
)

// Progress renders the playhead against the source duration.
type Progress struct {
	bar      progress.Model
	duration time.Duration
	live     bool
}

// NewProgress creates a progress view for a source of the given duration.
// Live sources have no meaningful duration and render a badge instead.
func NewProgress(duration time.Duration, live bool) Progress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30
	return Progress{bar: bar, duration: duration, live: live}
}

// Ratio is the played fraction, clamped to [0, 1].
func (p Progress) Ratio(position time.Duration) float64 {
	if p.duration <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1.0, float64(position)/float64(p.duration)))
}

// View renders the bar with an elapsed/total label.
func (p Progress) View(position time.Duration) string {
	bold := lipgloss.NewStyle().Bold(true)
	if p.live {
		return bold.Render("LIVE")
	}
	label := bold.Render(uicomponents.FormatDuration(position) + "/" + uicomponents.FormatDuration(p.duration))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(p.Ratio(position)))
}
