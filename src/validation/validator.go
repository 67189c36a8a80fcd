// Package validation checks submitted form values against a record schema.
package validation

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/SampleSite/SampleSite-Backend/src/models"
	"github.com/go-playground/validator/v10"
)

// ErrInvalid is wrapped by every ValidationError.
var ErrInvalid = errors.New("invalid input")

var validate = validator.New()

// FieldErrors maps a field name to its error messages.
type FieldErrors map[string][]string

// ValidationError reports the per-field errors of a rejected submission.
type ValidationError struct {
	Kind   models.Kind
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+strings.Join(e.Fields[name], " "))
	}
	return fmt.Sprintf("invalid %s: %s", e.Kind, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

// Validate checks values against the schema and builds the typed record.
// Missing fields count as empty. Values are used verbatim.
func Validate[T models.Record](schema models.Schema[T], values map[string]string) (T, error) {
	if errs := Check(schema.Fields, values); errs != nil {
		var zero T
		return zero, &ValidationError{Kind: schema.Kind, Fields: errs}
	}
	return schema.Build(values), nil
}

// Check returns the errors of every field that fails its rules, or nil.
func Check(fields []models.Field, values map[string]string) FieldErrors {
	var errs FieldErrors
	for _, field := range fields {
		if msg := checkField(field, values[field.Name]); msg != "" {
			if errs == nil {
				errs = FieldErrors{}
			}
			errs[field.Name] = append(errs[field.Name], msg)
		}
	}
	return errs
}

func checkField(field models.Field, value string) string {
	err := validate.Var(value, rulesFor(field))
	if err == nil {
		return ""
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err.Error()
	}
	switch fieldErrs[0].Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %d characters (it has %d).",
			field.MaxLength, utf8.RuneCountInString(value))
	default:
		return "Enter a valid value."
	}
}

// rulesFor renders a field's constraints as validator tags.
func rulesFor(field models.Field) string {
	rules := "required"
	if field.MaxLength > 0 {
		rules += ",max=" + strconv.Itoa(field.MaxLength)
	}
	return rules
}
