package util

import (
	"fmt"
	"sort"
	"strings"
)

// FormError collects per-field validation messages for a request body.
type FormError struct {
	Errors  map[string]string
	Message string
}

func (e *FormError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("form error: %s", e.Message)
	}
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e.Errors[field])
	}
	return fmt.Sprintf("form error: %s (%s)", e.Message, strings.Join(parts, "; "))
}

func NewFormError(message string, errors map[string]string) *FormError {
	return &FormError{
		Message: message,
		Errors:  errors,
	}
}

// ValidationError reports malformed input that is not tied to a form, such as
// a record inside an uploaded import file.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Message
	}
	return fmt.Sprintf("validation error: %s %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
