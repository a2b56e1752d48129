package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/coachplanhq/coachplan/internal/apierr"

	"github.com/go-playground/validator/v10"
)

// New returns a validator reporting fields by their json tag names.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates s and converts validator failures into an
// apierr.Validation error with per-field messages.
func Struct(v *validator.Validate, s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return apierr.BadRequest("invalid request")
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = messageFor(fieldErr)
	}
	return apierr.Validation(fields)
}

func messageFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fieldErr.Param())
	case "datetime":
		return fmt.Sprintf("must match the %s format", fieldErr.Param())
	default:
		return fmt.Sprintf("failed the '%s' rule", fieldErr.Tag())
	}
}
