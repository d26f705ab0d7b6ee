// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/gharrison91/camp-connect-sub002/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string contains non-whitespace content.
var NotBlank = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_not_blank", "must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_not_blank", "cannot be blank")
	}
	return nil
})
