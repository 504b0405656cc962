package components

import (
	"context"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/component"
)

var buttonDefaults = component.Config{Tag: "button", CSSClass: "ui-button", Role: "button"}

// Button is a clickable component. Click handlers only run while the button
// is mounted.
type Button struct {
	component.Base
	clicked signal[context.Context]
}

// NewButton creates a button.
func NewButton(cfg component.Config, layers ...component.Config) *Button {
	b := &Button{}
	b.Base = component.NewBase(cfg, append([]component.Config{buttonDefaults}, layers...)...)
	return b
}

// OnClick registers fn for clicks.
func (b *Button) OnClick(fn func(ctx context.Context)) ports.Subscription {
	return b.clicked.subscribe(fn)
}

// Click simulates a user activation.
func (b *Button) Click(ctx context.Context) {
	if !b.Live() || b.IsHidden() {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	b.clicked.emit(ctx)
}

// SetText replaces the button caption.
func (b *Button) SetText(text string) { b.Render().SetText(text) }

// Release implements component.Component.
func (b *Button) Release() {
	b.Base.Release()
	b.clicked.reset()
}

// handleClick registers a click handler that is dropped on Release.
func (b *Button) handleClick(fn func(ctx context.Context)) {
	b.Track(b.OnClick(fn))
}

// logFailure reports a failed player command.
func (b *Button) logFailure(ctx context.Context, action string, err error) {
	if err != nil {
		b.Logger().Warn(ctx, "player command failed", "action", action, "error", err)
	}
}

// ToggleButton is a two-state button. Exactly one of the on/off classes is
// applied at any time.
type ToggleButton struct {
	Button
	on      bool
	toggled signal[bool]
}

// NewToggleButton creates a toggle button in the off state.
func NewToggleButton(cfg component.Config, layers ...component.Config) *ToggleButton {
	t := &ToggleButton{}
	t.Button = *NewButton(cfg, append([]component.Config{{CSSClass: "ui-togglebutton"}}, layers...)...)
	t.apply()
	return t
}

// IsOn reports the current state.
func (t *ToggleButton) IsOn() bool { return t.on }

// SetOn switches state and notifies listeners on change.
func (t *ToggleButton) SetOn(on bool) {
	if t.on == on {
		return
	}
	t.on = on
	t.apply()
	t.toggled.emit(on)
}

// Toggle flips the state.
func (t *ToggleButton) Toggle() { t.SetOn(!t.on) }

// OnToggle registers fn for state changes.
func (t *ToggleButton) OnToggle(fn func(on bool)) ports.Subscription {
	return t.toggled.subscribe(fn)
}

// Release implements component.Component.
func (t *ToggleButton) Release() {
	t.Button.Release()
	t.toggled.reset()
}

func (t *ToggleButton) apply() {
	node := t.Render()
	on, off := t.Prefixed("on"), t.Prefixed("off")
	if t.on {
		node.RemoveClass(off)
		node.AddClass(on)
		node.SetAttr("aria-pressed", "true")
		return
	}
	node.RemoveClass(on)
	node.AddClass(off)
	node.SetAttr("aria-pressed", "false")
}
