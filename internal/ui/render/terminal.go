package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/playerui/internal/ui/dom"
)

// DefaultHiddenClass is the class components apply while hidden.
const DefaultHiddenClass = "pui-hidden"

// TerminalOptions configures Terminal.
type TerminalOptions struct {
	// Theme styles the outline. The zero value renders plain text.
	Theme *Theme
	// ShowHidden includes hidden subtrees, marked as hidden.
	ShowHidden bool
	// HiddenClass marks hidden nodes. Defaults to DefaultHiddenClass.
	HiddenClass string
	// HideIDs drops element ids, which change between builds.
	HideIDs bool
	// MaxText truncates text content to this many runes. Zero keeps it whole.
	MaxText int
	// Framed draws a border around the outline.
	Framed bool
}

// Terminal renders the tree rooted at n as an indented outline, one element
// per line: tag, id, classes and quoted text. Hidden subtrees are skipped
// unless ShowHidden is set.
func Terminal(n *dom.Node, opts TerminalOptions) string {
	if n == nil {
		return ""
	}
	theme := PlainTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	if opts.HiddenClass == "" {
		opts.HiddenClass = DefaultHiddenClass
	}

	var lines []string
	var walk func(node *dom.Node, depth int)
	walk = func(node *dom.Node, depth int) {
		hidden := node.HasClass(opts.HiddenClass)
		if hidden && !opts.ShowHidden {
			return
		}
		lines = append(lines, theme.Guide.Render(strings.Repeat("  ", depth))+outlineLine(node, hidden, theme, opts))
		for _, child := range node.Children() {
			walk(child, depth+1)
		}
	}
	walk(n, 0)

	out := strings.Join(lines, "\n")
	if opts.Framed {
		return theme.Frame.Render(out)
	}
	return out
}

func outlineLine(n *dom.Node, hidden bool, theme Theme, opts TerminalOptions) string {
	parts := []string{theme.Tag.Render(n.Tag())}
	if n.ID() != "" && !opts.HideIDs {
		parts[0] += theme.ID.Render("#" + n.ID())
	}
	for _, class := range n.Classes() {
		if class == opts.HiddenClass {
			continue
		}
		parts = append(parts, theme.Class.Render("."+class))
	}
	if text := n.Text(); text != "" {
		if opts.MaxText > 0 {
			text = truncate(text, opts.MaxText)
		}
		parts = append(parts, theme.Text.Render(strconv.Quote(text)))
	}
	line := strings.Join(parts, " ")
	if hidden {
		line = theme.Hidden.Render(line + " (hidden)")
	}
	return line
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}

// Width reports the display width of the widest line of s.
func Width(s string) int {
	return lipgloss.Width(s)
}
