package components

import (
	"context"
	"slices"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/component"
	"github.com/alexisbeaulieu97/playerui/internal/ui/dom"
)

// ListItem is one choice of a list selector.
type ListItem struct {
	Key   string
	Label string
}

// ListSelector is the shared core of ListBox and SelectBox: an ordered item
// list with at most one selected key. Item nodes are rendered as children of
// the selector node with the selected class on the chosen item.
type ListSelector struct {
	component.Base
	itemTag      string
	items        []ListItem
	selected     string
	itemsChanged signal[int]
	itemSelected signal[string]
}

func (l *ListSelector) initSelector(cfg component.Config, itemTag string, layers ...component.Config) {
	l.Base = component.NewBase(cfg, layers...)
	l.itemTag = itemTag
}

// Items returns a copy of the item list.
func (l *ListSelector) Items() []ListItem { return slices.Clone(l.items) }

// ItemCount returns the number of items.
func (l *ListSelector) ItemCount() int { return len(l.items) }

// HasItem reports whether key is listed.
func (l *ListSelector) HasItem(key string) bool {
	return slices.ContainsFunc(l.items, func(i ListItem) bool { return i.Key == key })
}

// AddItem appends an item or relabels an existing key.
func (l *ListSelector) AddItem(key, label string) {
	if idx := l.index(key); idx >= 0 {
		l.items[idx].Label = label
	} else {
		l.items = append(l.items, ListItem{Key: key, Label: label})
	}
	l.redraw()
	l.itemsChanged.emit(len(l.items))
}

// RemoveItem drops key and clears the selection if it was selected.
func (l *ListSelector) RemoveItem(key string) bool {
	idx := l.index(key)
	if idx < 0 {
		return false
	}
	l.items = slices.Delete(l.items, idx, idx+1)
	if l.selected == key {
		l.selected = ""
	}
	l.redraw()
	l.itemsChanged.emit(len(l.items))
	return true
}

// SetItems replaces all items, keeping the selection if its key survives.
func (l *ListSelector) SetItems(items []ListItem) {
	l.items = slices.Clone(items)
	if !l.HasItem(l.selected) {
		l.selected = ""
	}
	l.redraw()
	l.itemsChanged.emit(len(l.items))
}

// ClearItems removes every item.
func (l *ListSelector) ClearItems() { l.SetItems(nil) }

// SelectItem marks key as selected without notifying selection listeners.
// It reports whether key exists.
func (l *ListSelector) SelectItem(key string) bool {
	if !l.HasItem(key) {
		return false
	}
	l.selected = key
	l.redraw()
	return true
}

// ClearSelection deselects the selected item.
func (l *ListSelector) ClearSelection() {
	if l.selected == "" {
		return
	}
	l.selected = ""
	l.redraw()
}

// SelectedItem returns the selected key, or "" if none.
func (l *ListSelector) SelectedItem() string { return l.selected }

// Choose applies a user selection: the item is selected and selection
// listeners run. Ignored while unmounted.
func (l *ListSelector) Choose(key string) bool {
	if !l.Live() || !l.SelectItem(key) {
		return false
	}
	l.itemSelected.emit(key)
	return true
}

// OnItemSelected registers fn for user selections.
func (l *ListSelector) OnItemSelected(fn func(key string)) ports.Subscription {
	return l.itemSelected.subscribe(fn)
}

// OnItemsChanged registers fn for item list changes. fn receives the new
// item count.
func (l *ListSelector) OnItemsChanged(fn func(count int)) ports.Subscription {
	return l.itemsChanged.subscribe(fn)
}

// Release implements component.Component.
func (l *ListSelector) Release() {
	l.Base.Release()
	l.itemSelected.reset()
	l.itemsChanged.reset()
}

func (l *ListSelector) index(key string) int {
	return slices.IndexFunc(l.items, func(i ListItem) bool { return i.Key == key })
}

func (l *ListSelector) redraw() {
	node := l.Render()
	node.Empty()
	for _, item := range l.items {
		child := dom.NewNode(l.itemTag, "")
		child.AddClass(l.Prefixed("listbox-item"))
		child.SetAttr("data-key", item.Key)
		child.SetText(item.Label)
		if item.Key == l.selected {
			child.AddClass(l.Prefixed("selected"))
			child.SetAttr("aria-selected", "true")
		}
		node.AppendChild(child)
	}
}

// ListBox renders its items as a list of buttons.
type ListBox struct {
	ListSelector
}

// NewListBox creates a list box.
func NewListBox(cfg component.Config, layers ...component.Config) *ListBox {
	b := &ListBox{}
	b.initSelector(cfg, "button", append([]component.Config{{Tag: "div", CSSClass: "ui-listbox", Role: "listbox"}}, layers...)...)
	return b
}

// SelectBox renders its items as a drop-down.
type SelectBox struct {
	ListSelector
}

// NewSelectBox creates a select box.
func NewSelectBox(cfg component.Config, layers ...component.Config) *SelectBox {
	b := &SelectBox{}
	b.initSelector(cfg, "option", append([]component.Config{{Tag: "select", CSSClass: "ui-selectbox"}}, layers...)...)
	return b
}

// Selector is the list surface shared by ListBox and SelectBox.
type Selector interface {
	component.Component
	ItemCount() int
	SetItems(items []ListItem)
	SelectItem(key string) bool
	SelectedItem() string
	Choose(key string) bool
	OnItemSelected(fn func(key string)) ports.Subscription
	OnItemsChanged(fn func(count int)) ports.Subscription
}

var (
	_ Selector = (*ListBox)(nil)
	_ Selector = (*SelectBox)(nil)
)

var trackKindClass = map[ports.TrackKind]string{
	ports.TrackSubtitles:    "ui-subtitleselectbox",
	ports.TrackAudio:        "ui-audiotrackselectbox",
	ports.TrackVideoQuality: "ui-videoqualityselectbox",
	ports.TrackAudioQuality: "ui-audioqualityselectbox",
	ports.TrackSpeed:        "ui-playbackspeedselectbox",
}

// TrackSelectBox mirrors one of the player's track lists and selects the
// chosen track on the player.
type TrackSelectBox struct {
	SelectBox
	kind ports.TrackKind
}

// NewTrackSelectBox creates a selector for kind.
func NewTrackSelectBox(cfg component.Config, kind ports.TrackKind) *TrackSelectBox {
	b := &TrackSelectBox{kind: kind}
	class, ok := trackKindClass[kind]
	b.SelectBox = *NewSelectBox(cfg, component.Config{CSSClass: class})
	if !ok {
		b.Fail(errUnknownTrackKind(kind))
	}
	return b
}

// Kind returns the bound track kind.
func (b *TrackSelectBox) Kind() ports.TrackKind { return b.kind }

// Configure implements component.Component.
func (b *TrackSelectBox) Configure(player ports.Player, host component.Host) {
	b.SelectBox.Configure(player, host)
	b.sync()
	b.On(ports.EventTracksChanged, func(_ context.Context, ev ports.Event) error {
		if kind, ok := ev.Payload().(ports.TrackKind); ok && kind == b.kind {
			b.sync()
		}
		return nil
	})
	reload := func(context.Context, ports.Event) error {
		b.sync()
		return nil
	}
	b.On(ports.EventSourceLoaded, reload)
	b.On(ports.EventSourceUnloaded, reload)
	b.Track(b.OnItemSelected(func(key string) {
		ctx := context.Background()
		if err := b.Player().SelectTrack(ctx, b.kind, key); err != nil {
			b.Logger().Warn(ctx, "track selection failed", "kind", string(b.kind), "track", key, "error", err)
		}
	}))
}

func (b *TrackSelectBox) sync() {
	tracks := b.Player().Tracks(b.kind)
	items := make([]ListItem, 0, len(tracks))
	selected := ""
	for _, t := range tracks {
		items = append(items, ListItem{Key: t.ID, Label: t.Label})
		if t.Selected {
			selected = t.ID
		}
	}
	b.SetItems(items)
	if selected == "" {
		b.ClearSelection()
		return
	}
	b.SelectItem(selected)
}
