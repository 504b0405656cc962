package components

import (
	"context"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/component"
)

// ControlBar holds the playback controls and follows the root container's
// show/hide cycle.
type ControlBar struct {
	component.Container
}

// NewControlBar creates a control bar.
func NewControlBar(cfg component.Config, children ...component.Component) *ControlBar {
	c := &ControlBar{}
	c.InitContainer(cfg, children, component.Config{CSSClass: "ui-controlbar", Hidden: component.Bool(true)})
	return c
}

// Configure implements component.Component.
func (c *ControlBar) Configure(player ports.Player, host component.Host) {
	c.Container.Configure(player, host)
	followControls(&c.Base, c.Show, c.Hide)
}

// followControls wires show/hide to the controls announcements.
func followControls(b *component.Base, show, hide func()) {
	b.Listen(ports.EventUIControlsShow, func(context.Context, ports.Event) error {
		show()
		return nil
	})
	b.Listen(ports.EventUIControlsHide, func(context.Context, ports.Event) error {
		hide()
		return nil
	})
}

// TitleBarOptions configures a TitleBar.
type TitleBarOptions struct {
	// KeepHiddenWithoutMetadata keeps the bar hidden while none of its labels
	// has text.
	KeepHiddenWithoutMetadata bool
}

// TitleBar shows metadata labels at the top of the player.
type TitleBar struct {
	component.Container
	opts          TitleBarOptions
	controlsShown bool
}

// NewTitleBar creates a title bar. Without children it shows the title and
// description of the current source.
func NewTitleBar(cfg component.Config, opts TitleBarOptions, children ...component.Component) *TitleBar {
	if len(children) == 0 {
		children = []component.Component{
			NewMetadataLabel(component.Config{}, MetadataTitle),
			NewMetadataLabel(component.Config{}, MetadataDescription),
		}
	}
	t := &TitleBar{opts: opts}
	t.InitContainer(cfg, children, component.Config{CSSClass: "ui-titlebar", Hidden: component.Bool(true)})
	return t
}

type textSource interface {
	IsEmpty() bool
	OnTextChanged(fn func(string)) ports.Subscription
}

// Configure implements component.Component.
func (t *TitleBar) Configure(player ports.Player, host component.Host) {
	t.Container.Configure(player, host)
	for _, child := range t.Components() {
		if label, ok := child.(textSource); ok {
			t.Track(label.OnTextChanged(func(string) { t.sync() }))
		}
	}
	followControls(&t.Base, func() {
		t.controlsShown = true
		t.sync()
	}, func() {
		t.controlsShown = false
		t.sync()
	})
}

// Release implements component.Component.
func (t *TitleBar) Release() {
	t.controlsShown = false
	t.Container.Release()
}

// HasMetadata reports whether any label shows text.
func (t *TitleBar) HasMetadata() bool {
	for _, child := range t.Components() {
		if label, ok := child.(textSource); ok && !label.IsEmpty() {
			return true
		}
	}
	return false
}

func (t *TitleBar) sync() {
	visible := t.controlsShown && (!t.opts.KeepHiddenWithoutMetadata || t.HasMetadata())
	t.SetVisible(visible)
}

// Controls groups controls that must not be reachable during ad playback.
type Controls struct {
	component.Container
}

// NewControls creates a control group.
func NewControls(cfg component.Config, children ...component.Component) *Controls {
	c := &Controls{}
	c.InitContainer(cfg, children, component.Config{CSSClass: "ui-controls"})
	return c
}

// Configure implements component.Component.
func (c *Controls) Configure(player ports.Player, host component.Host) {
	c.Container.Configure(player, host)
	c.On(ports.EventAdStarted, func(context.Context, ports.Event) error {
		c.Hide()
		return nil
	})
	show := func(context.Context, ports.Event) error {
		c.Show()
		return nil
	}
	c.On(ports.EventAdFinished, show)
	c.On(ports.EventAdSkipped, show)
	c.On(ports.EventAdError, show)
}

// Spacer fills free space in a bar.
type Spacer struct {
	component.Base
}

// NewSpacer creates a spacer.
func NewSpacer(cfg component.Config) *Spacer {
	s := &Spacer{}
	s.Base = component.NewBase(cfg, component.Config{CSSClass: "ui-spacer"})
	return s
}

// WatermarkOptions configures the watermark link.
type WatermarkOptions struct {
	URL string `validate:"omitempty,url"`
}

// Watermark is a branding link.
type Watermark struct {
	component.Base
}

// NewWatermark creates a watermark.
func NewWatermark(cfg component.Config, opts WatermarkOptions) *Watermark {
	w := &Watermark{}
	layer := component.Config{Tag: "a", CSSClass: "ui-watermark"}
	if opts.URL != "" {
		layer.Attributes = map[string]string{"href": opts.URL, "target": "_blank"}
	}
	w.Base = component.NewBase(cfg, layer)
	w.Fail(component.ValidateOptions(opts))
	return w
}
