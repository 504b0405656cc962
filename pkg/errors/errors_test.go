package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("ui.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "ui.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "ui.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("recommendations[0].url", "must be a valid URL", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "recommendations[0].url", validationErr.Field)
	require.Equal(t, "validation error: recommendations[0].url: must be a valid URL", err.Error())
}

func TestConfigurationErrorFormatsSubjectAndCause(t *testing.T) {
	t.Parallel()

	cause := stdErrors.New("unknown content")
	err := NewConfigurationError("smallscreen", "invalid component", cause)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "smallscreen", cfgErr.Subject)
	require.True(t, stdErrors.Is(err, cause))
	require.Equal(t, "configuration error [smallscreen]: invalid component: unknown content", err.Error())
}

func TestConfigurationErrorWithoutSubject(t *testing.T) {
	t.Parallel()

	err := NewConfigurationError("", "no catch-all variant", nil)
	require.Equal(t, "configuration error: no catch-all variant", err.Error())
}

func TestHandlerErrorIncludesEvent(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("boom")
	err := NewHandlerError("sourceunloaded", underlying)

	var handlerErr *HandlerError
	require.ErrorAs(t, err, &handlerErr)
	require.Equal(t, "sourceunloaded", handlerErr.Event)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "sourceunloaded")
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var cfgErr *ConfigurationError
	var handlerErr *HandlerError
	require.Empty(t, parseErr.Error())
	require.Empty(t, cfgErr.Error())
	require.Empty(t, handlerErr.Error())
	require.Nil(t, cfgErr.Unwrap())
}
