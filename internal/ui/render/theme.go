package render

import "github.com/charmbracelet/lipgloss"

// Palette holds the adaptive colours of the outline renderer, one per
// role, picked from a Tailwind-like shade scale.
type Palette struct {
	Muted  lipgloss.AdaptiveColor
	Accent lipgloss.AdaptiveColor
	Info   lipgloss.AdaptiveColor
	Text   lipgloss.AdaptiveColor
	Border lipgloss.AdaptiveColor
}

// DefaultPalette pairs slate, blue, cyan and green shades for light and dark
// terminals.
func DefaultPalette() Palette {
	return Palette{
		Muted:  lipgloss.AdaptiveColor{Light: "#94A3B8", Dark: "#64748B"},
		Accent: lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"},
		Info:   lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"},
		Text:   lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"},
		Border: lipgloss.AdaptiveColor{Light: "#CBD5E1", Dark: "#334155"},
	}
}

// Theme is the set of styles the outline renderer applies.
type Theme struct {
	Tag    lipgloss.Style
	ID     lipgloss.Style
	Class  lipgloss.Style
	Text   lipgloss.Style
	Hidden lipgloss.Style
	Guide  lipgloss.Style
	Frame  lipgloss.Style
}

// NewTheme derives a theme from p.
func NewTheme(p Palette) Theme {
	return Theme{
		Tag:    lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		ID:     lipgloss.NewStyle().Foreground(p.Muted),
		Class:  lipgloss.NewStyle().Foreground(p.Info),
		Text:   lipgloss.NewStyle().Foreground(p.Text),
		Hidden: lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Guide:  lipgloss.NewStyle().Foreground(p.Border),
		Frame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
	}
}

// DefaultTheme is NewTheme(DefaultPalette()).
func DefaultTheme() Theme { return NewTheme(DefaultPalette()) }

// PlainTheme renders without any styling, for files, diffs and tests.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{Tag: plain, ID: plain, Class: plain, Text: plain, Hidden: plain, Guide: plain, Frame: plain}
}
