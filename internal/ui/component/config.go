package component

import (
	"maps"
	"slices"

	"dario.cat/mergo"
)

// DefaultCSSPrefix is prepended to every class a component applies.
const DefaultCSSPrefix = "pui"

// Config is the declarative configuration of a component. Zero values mean
// "not set"; slices and maps are merged, everything else takes the first set
// value (see MergeConfig).
type Config struct {
	// ID overrides the generated element id.
	ID string
	// Tag is the element name of the component's node.
	Tag string
	// CSSPrefix is prepended to CSSClass and CSSClasses.
	CSSPrefix string
	// CSSClass is the component's primary class. It is override-only: the
	// first layer that sets it wins.
	CSSClass string
	// CSSClasses are additional classes, concatenated across layers.
	CSSClasses []string
	// Hidden sets the initial visibility.
	Hidden *bool
	Role   string
	// AriaLabel is rendered as the aria-label attribute.
	AriaLabel string
	// Text is the initial text content.
	Text       string
	Attributes map[string]string
	// Options holds widget-specific keys.
	Options map[string]any
}

// Bool returns a pointer to v, for Config.Hidden.
func Bool(v bool) *bool {
	return &v
}

// Clone returns a deep copy of the slice and map fields.
func (c Config) Clone() Config {
	out := c
	out.CSSClasses = slices.Clone(c.CSSClasses)
	out.Attributes = maps.Clone(c.Attributes)
	out.Options = maps.Clone(c.Options)
	if c.Hidden != nil {
		out.Hidden = Bool(*c.Hidden)
	}
	return out
}

// Option returns a widget option and whether it was set.
func (c Config) Option(key string) (any, bool) {
	v, ok := c.Options[key]
	return v, ok
}

// MergeConfig combines three configuration layers in the fixed order user,
// defaults, inherited. Scalar and pointer fields take the first non-zero value
// in that order; CSSClasses is the concatenation user+defaults+inherited;
// Attributes and Options are unioned with the same precedence per key.
// Inputs are never modified.
func MergeConfig(user, defaults, inherited Config) Config {
	out := user.Clone()
	for _, layer := range []Config{defaults, inherited} {
		// Merge only fails on mismatched types, which Config rules out.
		_ = mergo.Merge(&out, layer.Clone(), mergo.WithAppendSlice, mergo.WithoutDereference)
	}
	return out
}

// Resolve folds a component's default layers from the innermost (most
// generic) to the outermost (most specific). Each layer is merged as
// MergeConfig(user, layer, previous), mirroring how a widget refines the
// defaults of the widget it builds on. Duplicate classes are dropped.
func Resolve(user Config, layers ...Config) Config {
	merged := user.Clone()
	if len(layers) > 0 {
		merged = MergeConfig(user, layers[0], Config{})
		for _, layer := range layers[1:] {
			merged = MergeConfig(user, layer, merged)
		}
	}
	merged.CSSClasses = dedupe(merged.CSSClasses)
	if merged.CSSPrefix == "" {
		merged.CSSPrefix = DefaultCSSPrefix
	}
	return merged
}

func dedupe(in []string) []string {
	if len(in) == 0 {
		return in
	}
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}
