package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Issue is a single validation problem
type Issue struct {
	Path    string
	Message string
}

// String renders the issue as `<message> at "<path>"`
func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return fmt.Sprintf("%s at %q", i.Message, i.Path)
}

// ValidationError collects all issues found while validating a value
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return "Validation error: " + strings.Join(parts, "; ")
}

// Defaulter is implemented by values that fill in their own defaults before validation
type Defaulter interface {
	ApplyDefaults()
}

// Parse applies defaults (when v implements Defaulter) and validates v
func Parse(v any) error {
	if d, ok := v.(Defaulter); ok {
		d.ApplyDefaults()
	}
	return Validate(v)
}

// Validate runs tag validation on a struct (or pointer to struct) and returns
// a *ValidationError describing every failed constraint
func Validate(v any) error {
	err := validator_().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate: %w", err)
	}

	issues := make([]Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, Issue{
			Path:    fieldPath(fe.Namespace()),
			Message: message(fe),
		})
	}
	return &ValidationError{Issues: issues}
}

// Var validates a single value against a tag expression, e.g. Var(name, "required")
func Var(path string, value any, tag string) error {
	err := validator_().Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate %s: %w", path, err)
	}

	issues := make([]Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, Issue{Path: path, Message: message(fe)})
	}
	return &ValidationError{Issues: issues}
}

func validator_() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	})
	return validate
}

// fieldPath drops the root struct name from a validator namespace
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func message(fe validator.FieldError) string {
	kind := fe.Kind()

	switch fe.Tag() {
	case "required":
		if kind == reflect.String {
			return "Expected a non-empty string"
		}
		return "Required"
	case "min":
		switch kind {
		case reflect.String:
			if fe.Param() == "1" {
				return "Expected a non-empty string"
			}
			return fmt.Sprintf("Expected at least %s characters", fe.Param())
		case reflect.Slice, reflect.Map, reflect.Array:
			return fmt.Sprintf("Expected at least %s item(s)", fe.Param())
		default:
			return fmt.Sprintf("Expected a number greater than or equal to %s", fe.Param())
		}
	case "gte":
		return fmt.Sprintf("Expected a number greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Expected a number less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Expected one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	case "required_without":
		return fmt.Sprintf("Required when %s is not set", fe.Param())
	default:
		return fmt.Sprintf("Failed %q validation", fe.Tag())
	}
}
