package domain

// Task represents a hierarchical unit of trackable work in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID          int64
	Description string
	Notes       string
	ParentID    *int64
	SubtaskIDs  []int64
	IsOver      bool
}

// NewTask creates a new Task with the given description, optionally under a parent.
func NewTask(description string, parentID *int64) Task {
	return Task{
		Description: description,
		ParentID:    parentID,
		SubtaskIDs:  []int64{},
	}
}

// IsRoot returns true if the task has no parent.
func (t Task) IsRoot() bool {
	return t.ParentID == nil
}

// SetDescription replaces the task description. The change is persisted by the
// next SaveTask call, which performs a full record rewrite.
func (t *Task) SetDescription(description string) {
	t.Description = description
}

// SetNotes replaces the free-form notes attached to the task.
func (t *Task) SetNotes(notes string) {
	t.Notes = notes
}

// SetOver sets the completion flag.
func (t *Task) SetOver(over bool) {
	t.IsOver = over
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Description != ""
}

// String returns the task description for display purposes.
func (t Task) String() string {
	return t.Description
}
