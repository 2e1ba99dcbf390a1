package domain

import (
	"time"
)

// Satisfaction ratings are clamped into [MinSatisfaction, MaxSatisfaction].
const (
	MinSatisfaction = 0
	MaxSatisfaction = 5
)

// WorkEntry represents a timed work session in the domain model.
// An entry with a nil End is open: work on it is still in progress.
type WorkEntry struct {
	ID            int64
	Start         time.Time
	End           *time.Time
	RelatedTaskID *int64
	Satisfaction  *int
}

// NewWorkEntry creates a new open WorkEntry, optionally linked to a task.
// A nil relatedTaskID records untracked "free work".
func NewWorkEntry(relatedTaskID *int64, start time.Time) WorkEntry {
	return WorkEntry{
		Start:         start,
		RelatedTaskID: relatedTaskID,
	}
}

// IsOpen returns true if the work entry has not been finished yet.
func (we WorkEntry) IsOpen() bool {
	return we.End == nil
}

// Finish sets the end time for the work entry. Once closed the end time is
// immutable: finishing an already closed entry returns it unchanged.
func (we WorkEntry) Finish(end time.Time) WorkEntry {
	if we.End != nil {
		return we
	}
	we.End = &end
	return we
}

// Rate sets the satisfaction rating, clamped into the valid range.
func (we WorkEntry) Rate(value int) WorkEntry {
	clamped := ClampSatisfaction(value)
	we.Satisfaction = &clamped
	return we
}

// Duration returns the duration of the work entry.
// If the entry is still open, it returns the duration up to now.
func (we WorkEntry) Duration() time.Duration {
	if we.End == nil {
		return time.Since(we.Start)
	}
	return we.End.Sub(we.Start)
}

// IsValid checks if the work entry has valid data.
func (we WorkEntry) IsValid() bool {
	if we.Start.IsZero() {
		return false
	}
	if we.End != nil && we.End.Before(we.Start) {
		return false
	}
	if we.Satisfaction != nil && (*we.Satisfaction < MinSatisfaction || *we.Satisfaction > MaxSatisfaction) {
		return false
	}
	return true
}

// ClampSatisfaction clamps a rating into [MinSatisfaction, MaxSatisfaction].
func ClampSatisfaction(value int) int {
	if value < MinSatisfaction {
		return MinSatisfaction
	}
	if value > MaxSatisfaction {
		return MaxSatisfaction
	}
	return value
}
