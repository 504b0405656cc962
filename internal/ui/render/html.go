// Package render turns a dom tree into output: HTML markup for embedding and
// a styled outline for terminals.
package render

import (
	"html"
	"strings"

	"github.com/rohanthewiz/element"

	"github.com/alexisbeaulieu97/playerui/internal/ui/dom"
)

// HTML serialises the tree rooted at n. Text and attribute values are
// escaped; the tag set is the one components render.
func HTML(n *dom.Node) string {
	if n == nil {
		return ""
	}
	b := element.NewBuilder()
	writeHTML(b, n)
	return b.String()
}

func writeHTML(b *element.Builder, n *dom.Node) {
	attrs := htmlAttrs(n)
	body := func() {
		if n.Text() != "" {
			b.T(html.EscapeString(n.Text()))
		}
		for _, child := range n.Children() {
			writeHTML(b, child)
		}
	}

	switch n.Tag() {
	case "span":
		b.Span(attrs...).R(b.Wrap(body))
	case "a":
		b.A(attrs...).R(b.Wrap(body))
	case "button":
		b.Button(attrs...).R(b.Wrap(body))
	case "select":
		b.Select(attrs...).R(b.Wrap(body))
	case "option":
		b.Option(attrs...).R(b.Wrap(body))
	case "div":
		b.Div(attrs...).R(b.Wrap(body))
	default:
		b.Div(append(attrs, "data-tag", html.EscapeString(n.Tag()))...).R(b.Wrap(body))
	}
}

// htmlAttrs returns id, class and the remaining attributes in insertion
// order as alternating key/value pairs.
func htmlAttrs(n *dom.Node) []string {
	attrs := make([]string, 0, 4+2*len(n.AttrKeys()))
	if n.ID() != "" {
		attrs = append(attrs, "id", html.EscapeString(n.ID()))
	}
	if classes := n.Classes(); len(classes) > 0 {
		attrs = append(attrs, "class", html.EscapeString(strings.Join(classes, " ")))
	}
	for _, key := range n.AttrKeys() {
		v, _ := n.Attr(key)
		attrs = append(attrs, key, html.EscapeString(v))
	}
	return attrs
}
