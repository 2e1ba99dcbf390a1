package validation

import (
	"strings"
)

// Task description length constraints
const (
	TaskDescriptionMinLength = 1
	TaskDescriptionMaxLength = 255
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct{}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{}
}

// ValidateDescription validates a task description for creation or update
func (tv *TaskValidator) ValidateDescription(description string) error {
	validationError := NewValidationError()

	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		validationError.AddRequiredError("description")
		return validationError
	}

	if len(trimmed) > TaskDescriptionMaxLength {
		validationError.AddInvalidRangeError("description", trimmed, TaskDescriptionMinLength, TaskDescriptionMaxLength)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTaskID validates a task id supplied by a caller
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if id <= 0 {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
