// Package validate checks decoded request DTOs against their `validate` struct tags.
// Every handler funnels its input through Struct so that a missing field always
// produces the same client-facing error.
package validate

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/user/quill-go/apperror"
)

// A single validator instance caches struct metadata and is safe for concurrent use.
var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// `nonul` rejects NUL bytes, which PostgreSQL TEXT columns cannot store.
	if err := val.RegisterValidation("nonul", func(fl validator.FieldLevel) bool {
		return !strings.ContainsRune(fl.Field().String(), 0)
	}); err != nil {
		panic(err)
	}
	return val
}

// Struct validates s. A failed `required` rule becomes the fixed
// "Please enter all the fields" ValidationError; any other rule failure keeps
// the same status with a message naming the offending field.
func Struct(s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.NewInternalError("failed to validate request", err)
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return apperror.NewMissingFieldsError(err)
		}
	}
	fe := fieldErrs[0]
	if fe.Tag() == "nonul" {
		return apperror.NewValidationError(fe.Field()+" must not contain NUL characters", err)
	}
	return apperror.NewValidationError("Invalid value for "+fe.Field(), err)
}
