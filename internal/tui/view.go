package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/playerui/internal/tui/components"
	uicomponents "github.com/alexisbeaulieu97/playerui/internal/ui/components"
	"github.com/alexisbeaulieu97/playerui/internal/ui/render"
)

// View renders the current state of the preview.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	title := titleStyle.Render(fmt.Sprintf("playerui • %s", m.skin))
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Left, title, "  ", variantStyle.Render(m.manager.ActiveVariant())))
	sections = append(sections, m.statusLine())

	if m.player.Source() != nil {
		sections = append(sections, components.NewProgress(m.player.Duration(), m.player.IsLive()).View(m.player.CurrentTime()))
	}
	if ad := m.player.ActiveAd(); ad != nil {
		sections = append(sections, adStyle.Render(fmt.Sprintf("ad %s (%s)", ad.ID, uicomponents.FormatDuration(ad.Duration))))
	}
	if m.player.IsStalled() {
		sections = append(sections, m.spinner.View()+" buffering")
	}
	if perr := m.player.LastError(); perr != nil {
		sections = append(sections, failureStyle.Render(fmt.Sprintf("error %d: %s", perr.Code, perr.Message)))
	}
	if m.err != nil {
		sections = append(sections, failureStyle.Render(m.err.Error()))
	}
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}

	if root := m.manager.Root(); root != nil {
		theme := render.DefaultTheme()
		outline := render.Terminal(root.Render(), render.TerminalOptions{
			Theme:      &theme,
			ShowHidden: m.showHidden,
			MaxText:    48,
		})
		sections = append(sections, sectionStyle.Render("Tree"), outline)
	}

	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) statusLine() string {
	p := m.player
	vp := p.Viewport()
	flags := []string{string(p.State()), fmt.Sprintf("%dpx", vp.DocumentWidth)}
	if p.IsMobile() {
		flags = append(flags, "handheld")
	}
	if p.IsMuted() {
		flags = append(flags, "muted")
	}
	if p.IsFullscreen() {
		flags = append(flags, "fullscreen")
	}
	if p.IsCasting() {
		flags = append(flags, "casting")
	}
	if m.showHidden {
		flags = append(flags, "showing hidden")
	}
	return statusStyle.Render(strings.Join(flags, " · "))
}
