package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/playerui/internal/player"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
)

// Update handles bubbletea messages and drives the player.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.manager.ActiveVariant()

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tickMsg:
		m.clock.Advance(TickInterval)
		m.player.AdvanceTime(m.ctx, TickInterval)
		cmd = tick()
	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if m.follow && msg.Width > 0 {
			width := msg.Width * CellWidth
			m.player.Resize(m.ctx, width, width*9/16, width)
		}
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case ChannelMsg:
		if d, ok := m.channel.(deliverer); ok {
			d.Deliver(msg.Name, msg.Data)
		}
	}

	if after := m.manager.ActiveVariant(); after != before {
		m.switches++
		m.status = fmt.Sprintf("switched %s → %s", before, after)
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	ctx := m.ctx
	p := m.player
	m.err = nil
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Hidden):
		m.showHidden = !m.showHidden
	case key.Matches(msg, m.keys.PlayPause):
		if p.State() == ports.StatePlaying {
			m.err = p.Pause(ctx)
		} else {
			m.err = p.Play(ctx)
		}
	case key.Matches(msg, m.keys.Rewind):
		m.err = p.Seek(ctx, p.CurrentTime()-seekStep)
	case key.Matches(msg, m.keys.Forward):
		m.err = p.Seek(ctx, p.CurrentTime()+seekStep)
	case key.Matches(msg, m.keys.Ad):
		if p.ActiveAd() != nil {
			p.EndAd(ctx)
			break
		}
		m.adCount++
		p.StartAd(ctx, player.DemoAd(fmt.Sprintf("ad-%d", m.adCount)))
	case key.Matches(msg, m.keys.SkipAd):
		m.err = p.SkipAd(ctx)
	case key.Matches(msg, m.keys.Stall):
		if p.IsStalled() {
			p.Recover(ctx)
		} else {
			p.Stall(ctx)
		}
	case key.Matches(msg, m.keys.Mute):
		m.err = p.SetMuted(ctx, !p.IsMuted())
	case key.Matches(msg, m.keys.Fullscreen):
		m.err = p.SetFullscreen(ctx, !p.IsFullscreen())
	case key.Matches(msg, m.keys.Cast):
		if p.IsCasting() {
			p.StopCast(ctx)
		} else {
			p.StartCast(ctx)
		}
	case key.Matches(msg, m.keys.Mobile):
		p.SetMobile(ctx, !p.IsMobile())
	case key.Matches(msg, m.keys.Fail):
		p.Fail(ctx, 3000, "simulated playback failure")
	case key.Matches(msg, m.keys.Reload):
		p.Unload(ctx)
		p.LoadSource(ctx, player.DemoSource())
		for kind, tracks := range player.DemoTracks() {
			p.SetTracks(ctx, kind, tracks)
		}
	}

	if m.err != nil {
		m.logger.Debug(ctx, "preview command rejected", "key", msg.String(), "error", m.err)
	}
	return nil
}
