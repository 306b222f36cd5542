// Package validate wraps go-playground/validator so request payloads and
// client side forms share the same rules and report failures by JSON field
// name.
package validate

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// FieldError represents a single field validation failure.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

// Message renders a short human readable description of the failure.
func (e FieldError) Message() string {
	switch e.Tag {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return "Must be at least " + e.Param + " characters."
	case "max":
		return "Must be at most " + e.Param + " characters."
	case "eqfield":
		return "Passwords do not match."
	case "oneof":
		return "Must be one of: " + e.Param + "."
	case "singleline":
		return "Must not contain line breaks."
	default:
		return "Invalid value."
	}
}

// Errors collects multiple validation failures.
type Errors []FieldError

func (v Errors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}

	parts := make([]string, len(v))
	for i, err := range v {
		if err.Param != "" {
			parts[i] = err.Field + " failed on " + err.Tag + "=" + err.Param
		} else {
			parts[i] = err.Field + " failed on " + err.Tag
		}
	}
	return strings.Join(parts, "; ")
}

// Messages maps each failing field to its message. Only the first failure
// per field is kept.
func (v Errors) Messages() map[string]string {
	out := make(map[string]string, len(v))
	for _, e := range v {
		if _, ok := out[e.Field]; !ok {
			out[e.Field] = e.Message()
		}
	}
	return out
}

// Struct validates s using its `validate` tags.
func Struct(s any) error {
	return convert(get().Struct(s))
}

// Var validates a single value against tag, e.g. Var(email, "required,email").
func Var(field any, tag string) error {
	return convert(get().Var(field, tag))
}

// AsErrors extracts Errors from err.
func AsErrors(err error) (Errors, bool) {
	var ve Errors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func convert(err error) error {
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	failures := make(Errors, 0, len(ve))
	for _, fe := range ve {
		failures = append(failures, FieldError{
			Field: fieldPath(fe),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return failures
}

// fieldPath drops the root struct name so nested fields read as
// "attendee_data.full_name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func get() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("singleline", func(fl validator.FieldLevel) bool {
			return !strings.ContainsAny(fl.Field().String(), "\r\n")
		})
	})
	return validate
}
