package component

import (
	"errors"
	"fmt"
	"slices"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/dom"
)

var containerDefaults = Config{CSSClass: "ui-container"}

// Container is a component that exclusively owns an ordered list of
// children. Insertion order is render order.
type Container struct {
	Base
	children []Component
	attached bool
}

// NewContainer creates a container holding children.
func NewContainer(cfg Config, children []Component, layers ...Config) *Container {
	c := &Container{}
	c.InitContainer(cfg, children, layers...)
	return c
}

// InitContainer initialises an embedded Container. Widgets that build on
// Container call it from their constructor.
func (c *Container) InitContainer(cfg Config, children []Component, layers ...Config) {
	c.Base = NewBase(cfg, append([]Config{containerDefaults}, layers...)...)
	c.children = slices.DeleteFunc(slices.Clone(children), func(ch Component) bool { return ch == nil })
}

// Components implements Parent.
func (c *Container) Components() []Component {
	return slices.Clone(c.children)
}

// ChildCount returns the number of owned children.
func (c *Container) ChildCount() int { return len(c.children) }

// Render implements Component. Child nodes are appended in order on the
// first call.
func (c *Container) Render() *dom.Node {
	node := c.Base.Render()
	if !c.attached {
		for _, child := range c.children {
			node.AppendChild(child.Render())
		}
		c.attached = true
	}
	return node
}

// Configure implements Component and cascades to every child in order.
func (c *Container) Configure(player ports.Player, host Host) {
	c.Base.Configure(player, host)
	for _, child := range c.children {
		child.Configure(player, host)
	}
}

// Release implements Component. Children are released in reverse order and
// dropped, leaving the container and its node empty.
func (c *Container) Release() {
	for i := len(c.children) - 1; i >= 0; i-- {
		c.children[i].Release()
	}
	c.Base.Release()
	if c.attached {
		c.Node().Empty()
	}
	c.children = nil
	c.attached = false
}

// AddComponent appends child. If the container is rendered the child node is
// attached; if it is mounted the child is configured.
func (c *Container) AddComponent(child Component) {
	if child == nil {
		return
	}
	c.children = append(c.children, child)
	if c.attached {
		c.Node().AppendChild(child.Render())
	}
	if c.Live() {
		child.Configure(c.Player(), c.Host())
	}
}

// RemoveComponent detaches child and releases it if the container is
// mounted. It reports whether child was owned by the container.
func (c *Container) RemoveComponent(child Component) bool {
	idx := slices.Index(c.children, child)
	if idx < 0 {
		return false
	}
	c.children = slices.Delete(c.children, idx, idx+1)
	if c.Live() {
		child.Release()
	}
	if c.attached {
		c.Node().RemoveChild(child.Render())
	}
	return true
}

// Validate walks the tree under root and joins every construction error,
// prefixed with the id of the failing component.
func Validate(root Component) error {
	var errs []error
	Walk(root, func(c Component) {
		f, ok := c.(Failer)
		if !ok {
			return
		}
		if err := f.Err(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c.ID(), err))
		}
	})
	return errors.Join(errs...)
}
