package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"go-resume-registry/internal/domain"
)

// RegisterValidators registers custom validators and type handling on the
// validator instance shared by the usecase layer.
func RegisterValidators(v *validator.Validate) {
	// Expose domain.Date to the validator as its underlying time.Time so
	// required / not_future see the actual value.
	v.RegisterCustomTypeFunc(dateValue, domain.Date{})
	_ = v.RegisterValidation("not_future", NotFuture)

	// Report fields under their JSON (wire) names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

func dateValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(domain.Date); ok {
		return d.Time
	}
	return nil
}

// NotFuture validates that a date field is not after the current moment.
// Used for dates of birth.
func NotFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return true
	}
	return !t.After(time.Now())
}
