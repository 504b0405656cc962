package components

import (
	"context"
	"maps"
	"slices"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/component"
)

// SubtitleProperty is one observable subtitle style setting. The empty
// value means "not set".
type SubtitleProperty struct {
	name    string
	value   string
	changed signal[string]
}

// Name returns the property name.
func (p *SubtitleProperty) Name() string { return p.name }

// Value returns the current value.
func (p *SubtitleProperty) Value() string { return p.value }

// IsSet reports whether a value is set.
func (p *SubtitleProperty) IsSet() bool { return p.value != "" }

// Set changes the value and notifies listeners on change.
func (p *SubtitleProperty) Set(value string) {
	if p.value == value {
		return
	}
	p.value = value
	p.changed.emit(value)
}

// Clear unsets the value.
func (p *SubtitleProperty) Clear() { p.Set("") }

// OnChanged registers fn for value changes.
func (p *SubtitleProperty) OnChanged(fn func(value string)) ports.Subscription {
	return p.changed.subscribe(fn)
}

// Subtitle property names.
const (
	PropertyFontSize        = "fontSize"
	PropertyFontColor       = "fontColor"
	PropertyBackgroundColor = "backgroundColor"
	PropertyCharacterEdge   = "characterEdge"
)

// SubtitleSettingsManager holds the subtitle style settings shared by the
// subtitle settings widgets. It outlives UI variant switches.
type SubtitleSettingsManager struct {
	props map[string]*SubtitleProperty
}

// NewSubtitleSettingsManager creates a manager with every property unset.
func NewSubtitleSettingsManager() *SubtitleSettingsManager {
	m := &SubtitleSettingsManager{props: make(map[string]*SubtitleProperty)}
	for _, name := range []string{PropertyFontSize, PropertyFontColor, PropertyBackgroundColor, PropertyCharacterEdge} {
		m.props[name] = &SubtitleProperty{name: name}
	}
	return m
}

// Property returns the named property, or nil.
func (m *SubtitleSettingsManager) Property(name string) *SubtitleProperty {
	return m.props[name]
}

// FontSize returns the font size property.
func (m *SubtitleSettingsManager) FontSize() *SubtitleProperty { return m.props[PropertyFontSize] }

// BackgroundColor returns the caption background property.
func (m *SubtitleSettingsManager) BackgroundColor() *SubtitleProperty {
	return m.props[PropertyBackgroundColor]
}

// Values returns every set property.
func (m *SubtitleSettingsManager) Values() map[string]string {
	out := make(map[string]string)
	for name, p := range m.props {
		if p.IsSet() {
			out[name] = p.value
		}
	}
	return out
}

// Reset clears every property.
func (m *SubtitleSettingsManager) Reset() {
	for _, name := range slices.Sorted(maps.Keys(m.props)) {
		m.props[name].Clear()
	}
}

// SubtitleSettingOption maps a list item to the overlay class it applies.
// An empty Class means the item only removes the previous class.
type SubtitleSettingOption struct {
	Value string
	Label string
	Class string
}

// SubtitleSettingListBox binds a subtitle property to a list box and
// projects the selection onto the subtitle overlay as a class. At most one
// class applied by the list box is on the overlay at any time.
type SubtitleSettingListBox struct {
	ListBox
	overlay  *SubtitleOverlay
	property *SubtitleProperty
	options  []SubtitleSettingOption
	current  string
}

// NewSubtitleSettingListBox creates a list box for property.
func NewSubtitleSettingListBox(cfg component.Config, overlay *SubtitleOverlay, manager *SubtitleSettingsManager, property string, options []SubtitleSettingOption) *SubtitleSettingListBox {
	b := &SubtitleSettingListBox{overlay: overlay, options: slices.Clone(options)}
	b.ListBox = *NewListBox(cfg, component.Config{CSSClasses: []string{"ui-subtitlesettingslistbox"}})
	if overlay == nil {
		b.Fail(errMissingOverlay)
	}
	if manager == nil {
		b.Fail(errMissingManager)
	} else if b.property = manager.Property(property); b.property == nil {
		b.Fail(errUnknownProperty(property))
	}
	items := make([]ListItem, 0, len(options))
	for _, o := range options {
		items = append(items, ListItem{Key: o.Value, Label: o.Label})
	}
	b.SetItems(items)
	return b
}

// Configure implements component.Component.
func (b *SubtitleSettingListBox) Configure(player ports.Player, host component.Host) {
	b.ListBox.Configure(player, host)
	if b.property == nil || b.overlay == nil {
		return
	}
	b.apply(b.property.Value())
	b.Track(b.property.OnChanged(b.apply))
	b.Track(b.OnItemSelected(b.property.Set))
}

// Release implements component.Component. The applied overlay class stays;
// the overlay belongs to the same tree and is released with it.
func (b *SubtitleSettingListBox) Release() {
	b.ListBox.Release()
	b.current = ""
}

// AppliedClass returns the overlay class currently applied by this list box.
func (b *SubtitleSettingListBox) AppliedClass() string { return b.current }

// ToggleOverlayClass removes the class previously applied to the overlay,
// then applies class with the CSS prefix. An empty class only removes.
func (b *SubtitleSettingListBox) ToggleOverlayClass(class string) {
	if b.overlay == nil {
		return
	}
	node := b.overlay.Render()
	if b.current != "" {
		node.RemoveClass(b.current)
		b.current = ""
	}
	if class != "" {
		b.current = b.Prefixed(class)
		node.AddClass(b.current)
	}
}

func (b *SubtitleSettingListBox) apply(value string) {
	if value == "" {
		b.ClearSelection()
	} else {
		b.SelectItem(value)
	}
	class := ""
	for _, o := range b.options {
		if o.Value == value {
			class = o.Class
			break
		}
	}
	b.ToggleOverlayClass(class)
}

var fontSizeOptions = []SubtitleSettingOption{
	{Value: "", Label: "Default"},
	{Value: "50", Label: "50%", Class: "subtitle-font-size-50"},
	{Value: "75", Label: "75%", Class: "subtitle-font-size-75"},
	{Value: "100", Label: "100%", Class: "subtitle-font-size-100"},
	{Value: "150", Label: "150%", Class: "subtitle-font-size-150"},
	{Value: "200", Label: "200%", Class: "subtitle-font-size-200"},
	{Value: "300", Label: "300%", Class: "subtitle-font-size-300"},
}

// NewFontSizeListBox lists subtitle font sizes.
func NewFontSizeListBox(cfg component.Config, overlay *SubtitleOverlay, manager *SubtitleSettingsManager) *SubtitleSettingListBox {
	return NewSubtitleSettingListBox(cfg, overlay, manager, PropertyFontSize, fontSizeOptions)
}

var closeCaptionsOptions = []SubtitleSettingOption{
	{Value: "", Label: "Default"},
	{Value: "black", Label: "Black box", Class: "subtitle-bgcolor-black"},
	{Value: "white", Label: "White box", Class: "subtitle-bgcolor-white"},
	{Value: "transparent", Label: "No box", Class: "subtitle-bgcolor-transparent"},
}

// NewCloseCaptionsListBox lists caption box styles.
func NewCloseCaptionsListBox(cfg component.Config, overlay *SubtitleOverlay, manager *SubtitleSettingsManager) *SubtitleSettingListBox {
	return NewSubtitleSettingListBox(cfg, overlay, manager, PropertyBackgroundColor, closeCaptionsOptions)
}

// SubtitleSettingsPanelPage is a settings page holding the subtitle style
// list boxes and a reset button.
type SubtitleSettingsPanelPage struct {
	SettingsPanelPage
	manager *SubtitleSettingsManager
	reset   *Button
}

// NewSubtitleSettingsPanelPage creates the page.
func NewSubtitleSettingsPanelPage(cfg component.Config, overlay *SubtitleOverlay, manager *SubtitleSettingsManager) *SubtitleSettingsPanelPage {
	p := &SubtitleSettingsPanelPage{manager: manager}
	p.reset = NewButton(component.Config{Text: "Reset", CSSClasses: []string{"ui-subtitlesettingsresetbutton"}})
	children := []component.Component{
		NewSettingsPanelItem(component.Config{}, "Font size", NewFontSizeListBox(component.Config{}, overlay, manager)),
		NewSettingsPanelItem(component.Config{}, "Caption box", NewCloseCaptionsListBox(component.Config{}, overlay, manager)),
		p.reset,
	}
	p.InitContainer(cfg, children, component.Config{CSSClass: "ui-settings-panel-page"}, component.Config{CSSClasses: []string{"ui-subtitle-settings-panel-page"}})
	if manager == nil {
		p.Fail(errMissingManager)
	}
	return p
}

// ResetButton returns the page's reset button.
func (p *SubtitleSettingsPanelPage) ResetButton() *Button { return p.reset }

// Configure implements component.Component.
func (p *SubtitleSettingsPanelPage) Configure(player ports.Player, host component.Host) {
	p.SettingsPanelPage.Configure(player, host)
	if p.manager == nil {
		return
	}
	p.Track(p.reset.OnClick(func(_ context.Context) { p.manager.Reset() }))
}
