package component_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/playerui/internal/ui/component"
)

func TestMergeConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		user      component.Config
		defaults  component.Config
		inherited component.Config
		check     func(t *testing.T, got component.Config)
	}{
		{
			name:      "user scalar wins over every layer",
			user:      component.Config{CSSClass: "user", Tag: "span"},
			defaults:  component.Config{CSSClass: "default", Tag: "button"},
			inherited: component.Config{CSSClass: "inherited", Role: "button"},
			check: func(t *testing.T, got component.Config) {
				require.Equal(t, "user", got.CSSClass)
				require.Equal(t, "span", got.Tag)
				require.Equal(t, "button", got.Role)
			},
		},
		{
			name:      "defaults win over inherited",
			defaults:  component.Config{AriaLabel: "Play"},
			inherited: component.Config{AriaLabel: "Component"},
			check: func(t *testing.T, got component.Config) {
				require.Equal(t, "Play", got.AriaLabel)
			},
		},
		{
			name:      "classes concatenate user defaults inherited",
			user:      component.Config{CSSClasses: []string{"u1", "u2"}},
			defaults:  component.Config{CSSClasses: []string{"d1"}},
			inherited: component.Config{CSSClasses: []string{"i1"}},
			check: func(t *testing.T, got component.Config) {
				require.Equal(t, []string{"u1", "u2", "d1", "i1"}, got.CSSClasses)
			},
		},
		{
			name:      "explicit false hidden is kept",
			user:      component.Config{Hidden: component.Bool(false)},
			defaults:  component.Config{Hidden: component.Bool(true)},
			inherited: component.Config{},
			check: func(t *testing.T, got component.Config) {
				require.NotNil(t, got.Hidden)
				require.False(t, *got.Hidden)
			},
		},
		{
			name:      "maps are unioned with user precedence",
			user:      component.Config{Attributes: map[string]string{"tabindex": "1"}},
			defaults:  component.Config{Attributes: map[string]string{"tabindex": "0", "data-kind": "button"}},
			inherited: component.Config{Options: map[string]any{"step": 10}},
			check: func(t *testing.T, got component.Config) {
				require.Equal(t, map[string]string{"tabindex": "1", "data-kind": "button"}, got.Attributes)
				require.Equal(t, 10, got.Options["step"])
			},
		},
		{
			name: "absent everywhere stays absent",
			check: func(t *testing.T, got component.Config) {
				require.Empty(t, got.CSSClasses)
				require.Nil(t, got.Hidden)
				require.Empty(t, got.Attributes)
				require.Equal(t, "", got.Text)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, component.MergeConfig(tt.user, tt.defaults, tt.inherited))
		})
	}
}

func TestMergeConfigDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	user := component.Config{CSSClasses: make([]string, 1, 8), Attributes: map[string]string{"a": "1"}}
	user.CSSClasses[0] = "u"
	defaults := component.Config{CSSClasses: []string{"d"}, Attributes: map[string]string{"b": "2"}, Hidden: component.Bool(true)}

	got := component.MergeConfig(user, defaults, component.Config{})
	got.CSSClasses[0] = "changed"
	*got.Hidden = false

	require.Equal(t, "u", user.CSSClasses[0])
	require.Equal(t, []string{"u"}, user.CSSClasses)
	require.Equal(t, map[string]string{"a": "1"}, user.Attributes)
	require.True(t, *defaults.Hidden)
}

func TestResolveFoldsLayersOutward(t *testing.T) {
	t.Parallel()

	generic := component.Config{CSSClass: "component", Tag: "div", CSSClasses: []string{"base"}}
	button := component.Config{CSSClass: "button", Tag: "button"}
	toggle := component.Config{CSSClasses: []string{"toggle", "base"}}

	got := component.Resolve(component.Config{CSSClasses: []string{"mine"}}, generic, button, toggle)
	require.Equal(t, "button", got.CSSClass)
	require.Equal(t, "button", got.Tag)
	require.Equal(t, component.DefaultCSSPrefix, got.CSSPrefix)
	require.Equal(t, []string{"mine", "toggle", "base"}, got.CSSClasses)
}
