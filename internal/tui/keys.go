package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap binds preview actions to keys.
type keyMap struct {
	PlayPause  key.Binding
	Rewind     key.Binding
	Forward    key.Binding
	Ad         key.Binding
	SkipAd     key.Binding
	Stall      key.Binding
	Mute       key.Binding
	Fullscreen key.Binding
	Cast       key.Binding
	Mobile     key.Binding
	Fail       key.Binding
	Reload     key.Binding
	Hidden     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PlayPause:  key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "play/pause")),
		Rewind:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "rewind")),
		Forward:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "forward")),
		Ad:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "start ad")),
		SkipAd:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip ad")),
		Stall:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "buffer")),
		Mute:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		Fullscreen: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fullscreen")),
		Cast:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cast")),
		Mobile:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "handheld")),
		Fail:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "fail")),
		Reload:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Hidden:     key.NewBinding(key.WithKeys("."), key.WithHelp(".", "hidden nodes")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayPause, k.Ad, k.Mobile, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PlayPause, k.Rewind, k.Forward, k.Reload},
		{k.Ad, k.SkipAd, k.Stall, k.Fail},
		{k.Mute, k.Fullscreen, k.Cast, k.Mobile},
		{k.Hidden, k.Help, k.Quit},
	}
}
