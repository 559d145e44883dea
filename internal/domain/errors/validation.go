package errors

import (
	"net/http"
	"strings"
)

// ValidationError reports every offending field of a request at once,
// implementing the AppError interface.
type ValidationError struct {
	violations []FieldViolation
}

// NewValidationError creates a validation error from the collected violations.
func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{violations: violations}
}

// Violations returns the complete offending-field list.
func (e *ValidationError) Violations() []FieldViolation {
	return e.violations
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message() + ": " + e.Details()
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Input validation failed"
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	parts := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		parts = append(parts, v.Field+": "+v.Reason)
	}

	return strings.Join(parts, "; ")
}
