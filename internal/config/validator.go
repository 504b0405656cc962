package config

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	uierrors "github.com/alexisbeaulieu97/playerui/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("skin", func(fl validator.FieldLevel) bool {
			return slices.Contains(SkinNames, fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *UIConfig) error {
	if cfg == nil {
		return uierrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Recommendations))
	for i, rec := range cfg.Recommendations {
		if prev, ok := seen[rec.URL]; ok {
			return uierrors.NewValidationError(
				fmt.Sprintf("recommendations[%d].url", i),
				fmt.Sprintf("duplicates recommendations[%d]", prev),
				nil,
			)
		}
		seen[rec.URL] = i
	}

	for code := range cfg.ErrorMessages {
		if code <= 0 {
			return uierrors.NewValidationError("errorMessages", fmt.Sprintf("error code %d must be positive", code), nil)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into validation errors
// keyed by the YAML path of the offending field.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlFieldPath(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return uierrors.NewValidationError(field, msg, err)
	}

	return uierrors.NewValidationError("config", err.Error(), err)
}

// yamlFieldPath drops the root struct name from the namespace, which the tag
// name func already reports in YAML spelling.
func yamlFieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
