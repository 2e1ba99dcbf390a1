package sqlite

import "time"

// Task is the stored record shape for a row of the tasks table.
// SubtaskIDs is persisted as a JSON array in a TEXT column and kept
// redundantly on the parent for fast hierarchy traversal.
type Task struct {
	ID          int64
	Description string
	ParentID    *int64
	SubtaskIDs  []int64
	IsOver      bool
	Notes       string
}

// WorkEntry is the stored record shape for a row of the work_entries table.
// Timestamps are persisted as epoch milliseconds in INTEGER columns.
// A NULL end_ms marks the entry as open.
type WorkEntry struct {
	ID            int64
	Start         time.Time
	End           *time.Time
	RelatedTaskID *int64
	Satisfaction  *int
}
