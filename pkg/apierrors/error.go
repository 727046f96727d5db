package apierrors

import (
	"fmt"
	"strings"
)

// FieldError is a single validation violation. Field is a dot-joined path
// into the request (empty for request-level rules such as "at least one
// field must be provided").
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationError carries every violated field of a rejected request, in
// the order the fields were checked.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Details))
	for _, detail := range e.Details {
		if detail.Field == "" {
			parts = append(parts, detail.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", detail.Field, detail.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Details: []FieldError{{Field: field, Message: message}}}
}
