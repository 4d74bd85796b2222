package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Describe converts a validator error into a user-facing message naming the
// offending field. Only the first failed rule is reported; clients fix one
// field at a time anyway.
func Describe(err error) (field, message string) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "", err.Error()
	}

	e := verrs[0]
	return e.Field(), describeTag(e)
}

func describeTag(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("must contain at least %s entry", e.Param())
		}
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", e.Param())
	case "not_future":
		return "cannot be in the future"
	default:
		return fmt.Sprintf("failed validation (%s)", e.Tag())
	}
}
