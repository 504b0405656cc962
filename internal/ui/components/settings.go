package components

import (
	"context"
	"slices"
	"time"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/component"
)

// SettingsPanelItem pairs a label with a selector. It hides itself while the
// selector offers fewer than two choices.
type SettingsPanelItem struct {
	component.Container
	label   *Label
	control Selector
}

// NewSettingsPanelItem creates an item.
func NewSettingsPanelItem(cfg component.Config, label string, control Selector) *SettingsPanelItem {
	i := &SettingsPanelItem{control: control}
	children := []component.Component{control}
	if label != "" {
		i.label = NewLabel(component.Config{Text: label, CSSClasses: []string{"ui-settings-panel-item-label"}})
		children = []component.Component{i.label, control}
	}
	i.InitContainer(cfg, children, component.Config{CSSClass: "ui-settings-panel-item", Role: "menuitem"})
	if control == nil {
		i.Fail(errMissingControl)
	}
	return i
}

// Control returns the item's selector.
func (i *SettingsPanelItem) Control() Selector { return i.control }

// Configure implements component.Component.
func (i *SettingsPanelItem) Configure(player ports.Player, host component.Host) {
	i.Container.Configure(player, host)
	if i.control == nil {
		return
	}
	i.sync(i.control.ItemCount())
	i.Track(i.control.OnItemsChanged(i.sync))
}

// IsActive reports whether the item offers a real choice.
func (i *SettingsPanelItem) IsActive() bool {
	return i.control != nil && i.control.ItemCount() > 1
}

func (i *SettingsPanelItem) sync(count int) {
	i.SetVisible(count > 1)
}

// SettingsPanelPage is one page of a settings panel. Only the active page of
// a panel is shown.
type SettingsPanelPage struct {
	component.Container
}

// NewSettingsPanelPage creates a page.
func NewSettingsPanelPage(cfg component.Config, children ...component.Component) *SettingsPanelPage {
	p := &SettingsPanelPage{}
	p.InitContainer(cfg, children, component.Config{CSSClass: "ui-settings-panel-page"})
	return p
}

// Items returns the page's settings items.
func (p *SettingsPanelPage) Items() []*SettingsPanelItem {
	var items []*SettingsPanelItem
	for _, child := range p.Components() {
		if item, ok := child.(*SettingsPanelItem); ok {
			items = append(items, item)
		}
	}
	return items
}

// HasActiveSettings reports whether any item on the page offers a choice.
func (p *SettingsPanelPage) HasActiveSettings() bool {
	return slices.ContainsFunc(p.Items(), (*SettingsPanelItem).IsActive)
}

// Page is one page of a settings panel.
type Page interface {
	component.Component
	Items() []*SettingsPanelItem
	HasActiveSettings() bool
	SetVisible(visible bool)
}

// SettingsPanelOptions configures a SettingsPanel.
type SettingsPanelOptions struct {
	// HideDelay closes the panel after this much inactivity. Zero disables
	// auto-hide.
	HideDelay time.Duration `validate:"gte=0"`
}

// SettingsPanel is a hidden-by-default panel of pages. Showing it starts the
// auto-hide timer; hiding it resets to the first page.
type SettingsPanel struct {
	component.Container
	opts    SettingsPanelOptions
	pages   []Page
	active  Page
	timer   ports.Timer
	changed signal[bool]
}

// NewSettingsPanel creates a panel with at least one page.
func NewSettingsPanel(cfg component.Config, opts SettingsPanelOptions, pages ...Page) *SettingsPanel {
	s := &SettingsPanel{opts: opts}
	children := make([]component.Component, 0, len(pages))
	for _, page := range pages {
		if page == nil {
			continue
		}
		s.pages = append(s.pages, page)
		children = append(children, page)
	}
	s.InitContainer(cfg, children, component.Config{CSSClass: "ui-settings-panel", Hidden: component.Bool(true)})
	s.Fail(component.ValidateOptions(opts))
	if len(s.pages) == 0 {
		s.Fail(errNoPages)
	}
	s.activate(s.first())
	return s
}

// Configure implements component.Component.
func (s *SettingsPanel) Configure(player ports.Player, host component.Host) {
	s.Container.Configure(player, host)
	s.Track(s.OnVisibilityChanged(func(hidden bool) {
		if hidden {
			s.stopTimer()
			s.activate(s.first())
			return
		}
		s.restartTimer()
	}))
	for _, page := range s.pages {
		for _, item := range page.Items() {
			s.Track(item.OnVisibilityChanged(func(bool) { s.changed.emit(s.HasActiveSettings()) }))
		}
	}
	s.Listen(ports.EventUIControlsHide, func(context.Context, ports.Event) error {
		s.Hide()
		return nil
	})
}

// Release implements component.Component.
func (s *SettingsPanel) Release() {
	s.timer = nil
	s.changed.reset()
	s.Container.Release()
	s.pages = nil
	s.active = nil
}

// Pages returns the panel's pages.
func (s *SettingsPanel) Pages() []Page { return slices.Clone(s.pages) }

// ActivePage returns the visible page.
func (s *SettingsPanel) ActivePage() Page { return s.active }

// SetActivePage shows page and hides every other page. Pages that do not
// belong to the panel are ignored.
func (s *SettingsPanel) SetActivePage(page Page) bool {
	if !slices.Contains(s.pages, page) {
		return false
	}
	s.activate(page)
	s.restartTimer()
	return true
}

// Toggle shows a hidden panel and hides a visible one.
func (s *SettingsPanel) Toggle() { s.SetVisible(s.IsHidden()) }

// Interact restarts the auto-hide timer.
func (s *SettingsPanel) Interact() { s.restartTimer() }

// HasActiveSettings reports whether any page offers a choice.
func (s *SettingsPanel) HasActiveSettings() bool {
	return slices.ContainsFunc(s.pages, Page.HasActiveSettings)
}

// OnSettingsStateChanged registers fn for changes of item availability.
func (s *SettingsPanel) OnSettingsStateChanged(fn func(active bool)) ports.Subscription {
	return s.changed.subscribe(fn)
}

func (s *SettingsPanel) first() Page {
	if len(s.pages) == 0 {
		return nil
	}
	return s.pages[0]
}

func (s *SettingsPanel) activate(page Page) {
	s.active = page
	for _, p := range s.pages {
		p.SetVisible(p == page)
	}
}

func (s *SettingsPanel) restartTimer() {
	s.stopTimer()
	if s.opts.HideDelay <= 0 || s.IsHidden() {
		return
	}
	s.timer = s.After(s.opts.HideDelay, func() {
		s.timer = nil
		s.Hide()
	})
}

func (s *SettingsPanel) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// SettingsToggleButtonOptions configures a SettingsToggleButton.
type SettingsToggleButtonOptions struct {
	Panel *SettingsPanel
	// AutoHideWhenNoActiveSettings hides the button while the panel has
	// nothing to choose from.
	AutoHideWhenNoActiveSettings bool
}

// SettingsToggleButton opens and closes a settings panel it does not own.
type SettingsToggleButton struct {
	ToggleButton
	opts SettingsToggleButtonOptions
}

// NewSettingsToggleButton creates the button.
func NewSettingsToggleButton(cfg component.Config, opts SettingsToggleButtonOptions) *SettingsToggleButton {
	b := &SettingsToggleButton{opts: opts}
	b.ToggleButton = *NewToggleButton(cfg, component.Config{CSSClass: "ui-settingstogglebutton", AriaLabel: "Settings"})
	if opts.Panel == nil {
		b.Fail(errMissingPanel)
	}
	return b
}

// Configure implements component.Component.
func (b *SettingsToggleButton) Configure(player ports.Player, host component.Host) {
	b.ToggleButton.Configure(player, host)
	panel := b.opts.Panel
	if panel == nil {
		return
	}
	b.SetOn(panel.IsShown())
	b.Track(panel.OnVisibilityChanged(func(hidden bool) { b.SetOn(!hidden) }))
	if b.opts.AutoHideWhenNoActiveSettings {
		b.SetVisible(panel.HasActiveSettings())
		b.Track(panel.OnSettingsStateChanged(b.SetVisible))
	}
	b.handleClick(func(context.Context) { panel.Toggle() })
}

// SettingsPanelPageOpenButton switches a panel to a target page.
type SettingsPanelPageOpenButton struct {
	Button
	panel  *SettingsPanel
	target Page
}

// NewSettingsPanelPageOpenButton creates the button.
func NewSettingsPanelPageOpenButton(cfg component.Config, panel *SettingsPanel, target Page) *SettingsPanelPageOpenButton {
	b := &SettingsPanelPageOpenButton{panel: panel, target: target}
	b.Button = *NewButton(cfg, component.Config{CSSClass: "ui-settings-panel-page-open-button"})
	if panel == nil {
		b.Fail(errMissingPanel)
	}
	if target == nil {
		b.Fail(errMissingPage)
	}
	return b
}

// Configure implements component.Component.
func (b *SettingsPanelPageOpenButton) Configure(player ports.Player, host component.Host) {
	b.Button.Configure(player, host)
	b.handleClick(func(context.Context) {
		if b.panel != nil {
			b.panel.SetActivePage(b.target)
		}
	})
}
