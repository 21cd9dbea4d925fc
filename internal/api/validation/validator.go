// Package validation checks request payloads and renders failures as
// problem field errors keyed by the JSON names clients actually sent.
package validation

import (
	"reflect"
	"strings"

	"github.com/aqualog/hydration-api/pkg/problem"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks a request struct and returns one field error per failed
// rule, or nil when the struct is valid.
func Validate(s any) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return []problem.FieldError{{Field: "body", Message: "is invalid"}}
	}

	fieldErrors := make([]problem.FieldError, 0, len(violations))
	for _, violation := range violations {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   violation.Field(),
			Message: messageFor(violation),
		})
	}
	return fieldErrors
}

func messageFor(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "is required"
	case "min":
		if violation.Kind() == reflect.Slice {
			return "must contain at least " + violation.Param() + " items"
		}
		return "must be at least " + violation.Param()
	case "max":
		if violation.Kind() == reflect.Slice {
			return "must contain at most " + violation.Param() + " items"
		}
		return "must be at most " + violation.Param()
	case "gt":
		return "must be greater than " + violation.Param()
	case "lte":
		return "must be at most " + violation.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(violation.Param()), ", ")
	case "gtfield":
		return "must be after " + snakeCase(violation.Param())
	case "timezone":
		return "must be a valid IANA timezone"
	default:
		return "is invalid"
	}
}

// snakeCase lowers a Go field name referenced by a cross-field rule, so the
// message points at the JSON key rather than the struct field.
func snakeCase(s string) string {
	var b strings.Builder
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(c + 'a' - 'A')
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}
