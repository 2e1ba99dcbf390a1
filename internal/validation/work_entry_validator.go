package validation

import (
	"time"
)

// WorkEntryValidator provides validation for WorkEntry-related operations
type WorkEntryValidator struct{}

// NewWorkEntryValidator creates a new work entry validator
func NewWorkEntryValidator() *WorkEntryValidator {
	return &WorkEntryValidator{}
}

// ValidateEntryID validates a work entry id supplied by a caller
func (wv *WorkEntryValidator) ValidateEntryID(id int64) error {
	if id <= 0 {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("entry_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateTimes validates the start/end ordering of a work entry
func (wv *WorkEntryValidator) ValidateTimes(start time.Time, end *time.Time) error {
	validationError := NewValidationError()

	if start.IsZero() {
		validationError.AddRequiredError("start")
	}
	if end != nil && end.Before(start) {
		validationError.AddInvalidValueError("end", *end, "must not precede start")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}
