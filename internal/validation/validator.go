// Package validation builds go-playground validators that report field paths
// the way they appear in YAML documents, and converts their failures into
// typed validation errors.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/genform/pkg/errors"
)

// New returns a validator that names fields after their yaml tags.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(yamlFieldName)
	return v
}

// Convert turns the first validator failure into an *errors.ValidationError.
// Non-validator errors are wrapped under fallbackField.
func Convert(err error, fallbackField string) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError(fallbackField, err.Error(), err)
	}

	first := fieldErrs[0]
	return apperrors.NewValidationError(FieldPath(first), Describe(first), err)
}

// FieldPath drops the root struct name so the path reads like the document,
// e.g. "catalog.resolutions[2].width".
func FieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

// Describe renders a short human message for a failed tag.
func Describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s entries", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "unique":
		return "identifiers must be unique"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "aspect_ratio":
		return fmt.Sprintf("unknown aspect ratio %q", fe.Value())
	case "resolution":
		return fmt.Sprintf("unknown resolution %q", fe.Value())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func yamlFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}
