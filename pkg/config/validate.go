package config

import (
	"fmt"
	"strings"
)

// FieldError represents a validation error for a specific configuration
// field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g.,
	// "beans[0].methods[1].parameters[0].index").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in an
// override-configuration document. It implements the error interface and
// provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the document and returns a ValidationError if any
// rules fail. All errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	seen := make(map[string]int)
	for i, bean := range cfg.Beans {
		prefix := fmt.Sprintf("beans[%d]", i)
		if bean.Class == "" {
			errs = append(errs, FieldError{Field: prefix + ".class", Message: "class name must not be empty"})
		} else if prev, dup := seen[bean.Class]; dup {
			errs = append(errs, FieldError{
				Field:   prefix + ".class",
				Message: fmt.Sprintf("class %q already configured at beans[%d]", bean.Class, prev),
			})
		} else {
			seen[bean.Class] = i
		}

		errs = append(errs, validateMembers(prefix+".fields", bean.Fields)...)
		errs = append(errs, validateMembers(prefix+".getters", bean.Getters)...)
		errs = append(errs, validateMethods(prefix+".methods", bean.Methods, false)...)
		errs = append(errs, validateMethods(prefix+".constructors", bean.Constructors, true)...)
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateMembers(prefix string, members []MemberConfig) []FieldError {
	var errs []FieldError
	for i, m := range members {
		if m.Name == "" {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("%s[%d].name", prefix, i),
				Message: "member name must not be empty",
			})
		}
	}
	return errs
}

func validateMethods(prefix string, methods []MethodConfig, constructor bool) []FieldError {
	var errs []FieldError
	for i, m := range methods {
		mp := fmt.Sprintf("%s[%d]", prefix, i)
		if m.Name == "" && !constructor {
			errs = append(errs, FieldError{Field: mp + ".name", Message: "method name must not be empty"})
		}
		seen := make(map[int]bool)
		for j, p := range m.Parameters {
			pp := fmt.Sprintf("%s.parameters[%d]", mp, j)
			if p.Index < 0 {
				errs = append(errs, FieldError{Field: pp + ".index", Message: "parameter index must not be negative"})
				continue
			}
			if seen[p.Index] {
				errs = append(errs, FieldError{
					Field:   pp + ".index",
					Message: fmt.Sprintf("parameter index %d configured twice", p.Index),
				})
			}
			seen[p.Index] = true
		}
	}
	return errs
}
