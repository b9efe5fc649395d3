// Package validate wraps go-playground/validator for request payloads.
package validate

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-movie-watchlist/pkg/apierror"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct runs struct-tag validation and maps the first failure to a
// client-facing bad request error.
func Struct(payload any) error {
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apierror.BadRequest("Invalid request payload.")
	}

	return apierror.BadRequest(message(fieldErrs[0]))
}

func message(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return "Field '" + field + "' is required."
	case "min":
		return "Field '" + field + "' must be minimum " + fe.Param() + " characters long."
	case "oneof":
		return "Field '" + field + "' must be one of: " + fe.Param() + "."
	default:
		return "Field '" + field + "' is invalid."
	}
}
