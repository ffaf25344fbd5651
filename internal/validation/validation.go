// Package validation checks form payloads before anything is written and
// reports failures per field, keyed by the field's wire name.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Accepts digits with optional leading +, separated by spaces, dots,
// dashes or parentheses, e.g. "123-456-7890" or "+1 (415) 555 0132".
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s().-]{6,19}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// Error reports one reason per invalid field.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

// Struct validates v against its struct tags. It returns nil on success and
// a *Error describing every invalid field otherwise.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var ferrs validator.ValidationErrors
	if !errors.As(err, &ferrs) {
		return err
	}

	fields := make(map[string]string, len(ferrs))
	for _, fe := range ferrs {
		fields[fe.Field()] = reason(fe)
	}
	return &Error{Fields: fields}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "url":
		return "must be a valid URL"
	case "phone":
		return "must be a valid phone number"
	default:
		return "is invalid"
	}
}
