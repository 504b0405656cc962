// Package dom is the abstract render target components draw into. It models
// just enough of a document tree for the UI core: element tags, ids, class
// sets, attributes, text content and ordered children.
package dom

import "slices"

// MountPoint is the output target a UI root attaches to.
type MountPoint interface {
	AppendChild(child *Node)
	RemoveChild(child *Node) bool
}

// Node is a single element of the render tree. Nodes are not safe for
// concurrent use.
type Node struct {
	tag      string
	id       string
	classes  []string
	attrs    map[string]string
	attrKeys []string
	text     string
	children []*Node
	parent   *Node
}

// NewNode creates a detached element.
func NewNode(tag, id string) *Node {
	if tag == "" {
		tag = "div"
	}
	return &Node{tag: tag, id: id}
}

// Tag returns the element name.
func (n *Node) Tag() string { return n.tag }

// ID returns the element id.
func (n *Node) ID() string { return n.id }

// Parent returns the node this node is attached to, or nil.
func (n *Node) Parent() *Node { return n.parent }

// AddClass adds each class not yet present, keeping insertion order.
func (n *Node) AddClass(classes ...string) {
	for _, class := range classes {
		if class == "" || slices.Contains(n.classes, class) {
			continue
		}
		n.classes = append(n.classes, class)
	}
}

// RemoveClass removes class and reports whether it was present.
func (n *Node) RemoveClass(class string) bool {
	idx := slices.Index(n.classes, class)
	if idx < 0 {
		return false
	}
	n.classes = slices.Delete(n.classes, idx, idx+1)
	return true
}

// HasClass reports whether class is applied.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.classes, class)
}

// ToggleClass adds class when on is true and removes it otherwise.
func (n *Node) ToggleClass(class string, on bool) {
	if on {
		n.AddClass(class)
		return
	}
	n.RemoveClass(class)
}

// Classes returns a copy of the class list in insertion order.
func (n *Node) Classes() []string {
	return slices.Clone(n.classes)
}

// SetText replaces the text content.
func (n *Node) SetText(text string) { n.text = text }

// Text returns the text content.
func (n *Node) Text() string { return n.text }

// SetAttr sets an attribute. Attribute order follows first assignment.
func (n *Node) SetAttr(key, value string) {
	if key == "" {
		return
	}
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	if _, ok := n.attrs[key]; !ok {
		n.attrKeys = append(n.attrKeys, key)
	}
	n.attrs[key] = value
}

// RemoveAttr deletes an attribute.
func (n *Node) RemoveAttr(key string) {
	if _, ok := n.attrs[key]; !ok {
		return
	}
	delete(n.attrs, key)
	n.attrKeys = slices.DeleteFunc(n.attrKeys, func(k string) bool { return k == key })
}

// Attr returns an attribute value.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// AttrKeys returns attribute names in assignment order.
func (n *Node) AttrKeys() []string {
	return slices.Clone(n.attrKeys)
}

// AppendChild attaches child as the last child, detaching it from any
// previous parent first.
func (n *Node) AppendChild(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child and reports whether it was attached here.
func (n *Node) RemoveChild(child *Node) bool {
	if child == nil {
		return false
	}
	idx := slices.Index(n.children, child)
	if idx < 0 {
		return false
	}
	n.children = slices.Delete(n.children, idx, idx+1)
	child.parent = nil
	return true
}

// Remove detaches the node from its parent.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Empty detaches every child.
func (n *Node) Empty() {
	for _, child := range n.children {
		child.parent = nil
	}
	n.children = nil
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int { return len(n.children) }

// Walk visits n and its descendants depth-first, pre-order. Returning false
// from fn skips the subtree of the visited node.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.children {
		child.walk(fn, depth+1)
	}
}

// Find returns the first node in the subtree with the given id.
func (n *Node) Find(id string) *Node {
	var found *Node
	n.Walk(func(node *Node, _ int) bool {
		if found != nil {
			return false
		}
		if node.id == id {
			found = node
			return false
		}
		return true
	})
	return found
}

// FindByClass returns every node in the subtree carrying class.
func (n *Node) FindByClass(class string) []*Node {
	var out []*Node
	n.Walk(func(node *Node, _ int) bool {
		if node.HasClass(class) {
			out = append(out, node)
		}
		return true
	})
	return out
}
