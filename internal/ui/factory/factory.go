// Package factory assembles the stock UI variants and the managers that
// switch between them.
package factory

import (
	"fmt"
	"slices"

	"github.com/alexisbeaulieu97/playerui/internal/config"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/component"
	"github.com/alexisbeaulieu97/playerui/internal/ui/manager"
	uierrors "github.com/alexisbeaulieu97/playerui/pkg/errors"
)

// SmallScreenBreakpoint is the document width below which handheld devices
// get the small-screen layouts.
const SmallScreenBreakpoint = 600

// Variant names.
const (
	VariantModern         = "modern"
	VariantAds            = "ads"
	VariantSmallScreen    = "smallscreen"
	VariantSmallScreenAds = "smallscreen-ads"
	VariantBranded        = "branded"
	VariantCast           = "cast"
	VariantTV             = "tv"
)

// Builder creates a manager for a player.
type Builder func(player ports.Player, opts manager.Options) (*manager.Manager, error)

var builders = map[string]Builder{
	config.SkinDefault:     BuildDefaultUI,
	config.SkinModern:      BuildModernUI,
	config.SkinSmallScreen: BuildModernSmallScreenUI,
	config.SkinBranded:     BuildBrandedSmallScreenUI,
	config.SkinCast:        BuildModernCastReceiverUI,
	config.SkinTV:          BuildModernTvUI,
}

// Build creates the manager of the named skin. An empty name selects the
// default skin.
func Build(skin string, player ports.Player, opts manager.Options) (*manager.Manager, error) {
	if skin == "" {
		skin = config.SkinDefault
	}
	b, ok := builders[skin]
	if !ok {
		return nil, uierrors.NewConfigurationError("skin", fmt.Sprintf("unknown skin %q (known: %v)", skin, Skins()), nil)
	}
	return b(player, opts)
}

// Skins lists the skin names Build accepts.
func Skins() []string {
	return slices.Clone(config.SkinNames)
}

// Variants returns the variant list of the named skin without building a
// manager.
func Variants(skin string) ([]manager.Variant, error) {
	if skin == "" {
		skin = config.SkinDefault
	}
	switch skin {
	case config.SkinDefault, config.SkinBranded:
		return brandedVariants(), nil
	case config.SkinModern:
		return modernVariants(), nil
	case config.SkinSmallScreen:
		return smallScreenVariants(), nil
	case config.SkinCast:
		return []manager.Variant{{Name: VariantCast, Build: tree(ModernCastReceiverUI)}}, nil
	case config.SkinTV:
		return []manager.Variant{{Name: VariantTV, Build: tree(ModernTvUI)}}, nil
	}
	return nil, uierrors.NewConfigurationError("skin", fmt.Sprintf("unknown skin %q", skin), nil)
}

func tree[T component.Component](fn func() T) func() component.Component {
	return func() component.Component { return fn() }
}

func adNeedsUI(c manager.ConditionContext) bool {
	return c.IsAd && c.AdRequiresUI
}

func modernVariants() []manager.Variant {
	return []manager.Variant{
		manager.WidthVariant(VariantSmallScreenAds, tree(ModernSmallScreenAdsUI), SmallScreenBreakpoint, adNeedsUI),
		{Name: VariantAds, Build: tree(ModernAdsUI), Condition: adNeedsUI},
		manager.WidthVariant(VariantSmallScreen, tree(ModernSmallScreenUI), SmallScreenBreakpoint,
			func(c manager.ConditionContext) bool { return !c.IsAd && !c.AdRequiresUI }),
		{Name: VariantModern, Build: tree(ModernUI)},
	}
}

func smallScreenVariants() []manager.Variant {
	return []manager.Variant{
		{Name: VariantSmallScreenAds, Build: tree(ModernSmallScreenAdsUI), Condition: adNeedsUI},
		{Name: VariantSmallScreen, Build: tree(ModernSmallScreenUI)},
	}
}

func brandedVariants() []manager.Variant {
	return []manager.Variant{
		{Name: VariantSmallScreenAds, Build: tree(ModernSmallScreenAdsUI), Condition: adNeedsUI},
		{Name: VariantBranded, Build: tree(BrandedSmallScreenUI)},
	}
}

// BuildModernUI switches between desktop and handheld layouts at
// SmallScreenBreakpoint, each with an ad counterpart.
func BuildModernUI(player ports.Player, opts manager.Options) (*manager.Manager, error) {
	return manager.New(player, modernVariants(), opts)
}

// BuildModernSmallScreenUI always uses the handheld layouts.
func BuildModernSmallScreenUI(player ports.Player, opts manager.Options) (*manager.Manager, error) {
	return manager.New(player, smallScreenVariants(), opts)
}

// BuildBrandedSmallScreenUI uses the branded handheld layout.
func BuildBrandedSmallScreenUI(player ports.Player, opts manager.Options) (*manager.Manager, error) {
	return manager.New(player, brandedVariants(), opts)
}

// BuildModernCastReceiverUI uses the cast receiver layout only.
func BuildModernCastReceiverUI(player ports.Player, opts manager.Options) (*manager.Manager, error) {
	variants, _ := Variants(config.SkinCast)
	return manager.New(player, variants, opts)
}

// BuildModernTvUI uses the television layout only.
func BuildModernTvUI(player ports.Player, opts manager.Options) (*manager.Manager, error) {
	variants, _ := Variants(config.SkinTV)
	return manager.New(player, variants, opts)
}

// BuildDefaultUI is the skin used when none is configured.
func BuildDefaultUI(player ports.Player, opts manager.Options) (*manager.Manager, error) {
	return BuildBrandedSmallScreenUI(player, opts)
}
