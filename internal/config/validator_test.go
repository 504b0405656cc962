package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	uierrors "github.com/alexisbeaulieu97/playerui/pkg/errors"
)

func TestValidateConfigRejectsNil(t *testing.T) {
	t.Parallel()

	err := ValidateConfig(nil)
	var valErr *uierrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, "config", valErr.Field)
}

func TestValidateConfigRejectsDuplicateRecommendations(t *testing.T) {
	t.Parallel()

	cfg := &UIConfig{Recommendations: []Recommendation{
		{Title: "One", URL: "https://example.com/a"},
		{Title: "Two", URL: "https://example.com/a"},
	}}

	err := ValidateConfig(cfg)
	var valErr *uierrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, "recommendations[1].url", valErr.Field)
	require.Contains(t, valErr.Message, "recommendations[0]")
}

func TestValidateConfigRejectsNonPositiveErrorCodes(t *testing.T) {
	t.Parallel()

	err := ValidateConfig(&UIConfig{ErrorMessages: map[int]string{0: "zero"}})
	var valErr *uierrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, "errorMessages", valErr.Field)
}

func TestValidateConfigAcceptsEverySkin(t *testing.T) {
	t.Parallel()

	for _, skin := range SkinNames {
		require.NoError(t, ValidateConfig(&UIConfig{Skin: skin}), skin)
	}
}

func TestValidateConfigRequiresRecommendationTitle(t *testing.T) {
	t.Parallel()

	err := ValidateConfig(&UIConfig{Recommendations: []Recommendation{{URL: "https://example.com"}}})
	var valErr *uierrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, "recommendations[0].title", valErr.Field)
	require.Contains(t, valErr.Message, "required")
}
