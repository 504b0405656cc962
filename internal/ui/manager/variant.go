package manager

import (
	"fmt"

	"github.com/alexisbeaulieu97/playerui/internal/ui/component"
	uierrors "github.com/alexisbeaulieu97/playerui/pkg/errors"
)

// Predicate decides whether a variant applies to a context.
type Predicate func(ConditionContext) bool

// Variant pairs a UI tree with its activation predicate.
type Variant struct {
	// Name identifies the variant in logs and ui.variantchanged events.
	Name string
	// Build constructs a fresh tree. It is called on every activation.
	Build func() component.Component
	// Condition selects the variant. Nil marks the catch-all, which must be
	// the last entry.
	Condition Predicate
	// CatchAll marks the fallback when Condition is set anyway. The
	// fallback is selected without consulting Condition.
	CatchAll bool
	// Breakpoint is the document width the predicate switches on, or zero
	// when the predicate does not look at widths. Condition must compare
	// DocumentWidth against this value and no other; WidthVariant builds
	// both from one number. Every variant of a manager that declares one
	// must declare the same value.
	Breakpoint int
}

// WidthVariant returns a variant selected on handheld devices narrower than
// breakpoint when also holds. A nil also only checks the width.
func WidthVariant(name string, build func() component.Component, breakpoint int, also Predicate) Variant {
	return Variant{
		Name:       name,
		Build:      build,
		Breakpoint: breakpoint,
		Condition: func(c ConditionContext) bool {
			if !c.IsMobile || c.DocumentWidth >= breakpoint {
				return false
			}
			return also == nil || also(c)
		},
	}
}

// checkVariants enforces the static rules of a variant list.
func checkVariants(variants []Variant) error {
	if len(variants) == 0 {
		return uierrors.NewConfigurationError("variants", "no UI variants", nil)
	}
	names := make(map[string]int, len(variants))
	breakpoint, breakpointFrom := 0, ""
	for i, v := range variants {
		if v.Name == "" {
			return uierrors.NewConfigurationError(fmt.Sprintf("variants[%d]", i), "variant has no name", nil)
		}
		if prev, ok := names[v.Name]; ok {
			return uierrors.NewConfigurationError(v.Name, fmt.Sprintf("duplicates variants[%d]", prev), nil)
		}
		names[v.Name] = i
		if v.Build == nil {
			return uierrors.NewConfigurationError(v.Name, "variant has no builder", nil)
		}
		if isCatchAll(v) && i != len(variants)-1 {
			return uierrors.NewConfigurationError(v.Name, "catch-all variant must be last", nil)
		}
		if v.Breakpoint < 0 {
			return uierrors.NewConfigurationError(v.Name, fmt.Sprintf("negative breakpoint %d", v.Breakpoint), nil)
		}
		if v.Breakpoint == 0 {
			continue
		}
		if breakpoint == 0 {
			breakpoint, breakpointFrom = v.Breakpoint, v.Name
			continue
		}
		if v.Breakpoint != breakpoint {
			return uierrors.NewConfigurationError(v.Name,
				fmt.Sprintf("breakpoint %d conflicts with %d declared by %s", v.Breakpoint, breakpoint, breakpointFrom), nil)
		}
	}
	if !isCatchAll(variants[len(variants)-1]) {
		return uierrors.NewConfigurationError("variants", "last variant must be a catch-all", nil)
	}
	return nil
}

func isCatchAll(v Variant) bool {
	return v.Condition == nil || v.CatchAll
}

// checkTrees builds every variant once and rejects trees holding components
// that failed construction.
func checkTrees(variants []Variant) error {
	for _, v := range variants {
		root := v.Build()
		if root == nil {
			return uierrors.NewConfigurationError(v.Name, "builder returned no tree", nil)
		}
		if err := component.Validate(root); err != nil {
			return uierrors.NewConfigurationError(v.Name, "invalid component tree", err)
		}
	}
	return nil
}
