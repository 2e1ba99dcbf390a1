package validation

import (
	"fmt"
	"strings"
)

// ValidationErrorType represents the type of validation error
type ValidationErrorType string

const (
	ErrorTypeRequired     ValidationErrorType = "required"
	ErrorTypeInvalidValue ValidationErrorType = "invalid_value"
	ErrorTypeInvalidRange ValidationErrorType = "invalid_range"
)

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string
	Type    ValidationErrorType
	Message string
	Value   interface{}
}

// Error implements the error interface for FieldError
func (fe *FieldError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", fe.Field, fe.Message)
}

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError creates an empty validation error to accumulate into
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Error implements the error interface for ValidationError
func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation error"
	}

	if len(ve.Errors) == 1 {
		return ve.Errors[0].Error()
	}

	var messages []string
	for _, err := range ve.Errors {
		messages = append(messages, err.Error())
	}

	return fmt.Sprintf("multiple validation errors: %s", strings.Join(messages, "; "))
}

// HasErrors reports whether any field error was recorded
func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// AddRequiredError records a missing required field
func (ve *ValidationError) AddRequiredError(field string) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Type:    ErrorTypeRequired,
		Message: "is required",
	})
}

// AddInvalidValueError records a field with an unusable value
func (ve *ValidationError) AddInvalidValueError(field string, value interface{}, reason string) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Type:    ErrorTypeInvalidValue,
		Message: reason,
		Value:   value,
	})
}

// AddInvalidRangeError records a field outside its allowed range
func (ve *ValidationError) AddInvalidRangeError(field string, value interface{}, min, max int) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Type:    ErrorTypeInvalidRange,
		Message: fmt.Sprintf("must be between %d and %d", min, max),
		Value:   value,
	})
}

// GetUserFriendlyMessage returns a message suitable for CLI output
func (ve *ValidationError) GetUserFriendlyMessage() string {
	var messages []string
	for _, err := range ve.Errors {
		messages = append(messages, fmt.Sprintf("%s %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}
