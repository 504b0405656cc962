package component

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/playerui/internal/config"
	uierrors "github.com/alexisbeaulieu97/playerui/pkg/errors"
)

// ValidateOptions checks a widget option struct against its `validate` tags
// using the shared validator. The first violation is returned as a
// ValidationError keyed by the offending field.
func ValidateOptions(opts any) error {
	err := config.GetValidator().Struct(opts)
	if err == nil {
		return nil
	}
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		fe := ves[0]
		return uierrors.NewValidationError(fe.Field(), fmt.Sprintf("value %v failed validation for tag '%s'", fe.Value(), fe.Tag()), err)
	}
	return uierrors.NewValidationError("options", err.Error(), err)
}
