package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kz2wd/time-tracker/internal/repository/sqlite"
)

func TestTaskMapperRoundTrip(t *testing.T) {
	mapper := NewTaskMapper()
	parentID := int64(4)

	tests := []struct {
		name string
		task Task
	}{
		{
			name: "root task with empty subtasks",
			task: Task{ID: 1, Description: "Root", SubtaskIDs: []int64{}},
		},
		{
			name: "subtask with notes and completion",
			task: Task{
				ID:          2,
				Description: "Child",
				Notes:       "remember the thing",
				ParentID:    &parentID,
				SubtaskIDs:  []int64{5, 9},
				IsOver:      true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roundTripped := mapper.FromDatabase(mapper.ToDatabase(tt.task))
			assert.Equal(t, tt.task, roundTripped)
		})
	}
}

func TestTaskMapperDefaultsNilSubtaskIDs(t *testing.T) {
	mapper := NewTaskMapper()
	domainTask := mapper.FromDatabase(sqlite.Task{ID: 1, Description: "old record"})
	assert.NotNil(t, domainTask.SubtaskIDs)
	assert.Empty(t, domainTask.SubtaskIDs)
}

func TestWorkEntryMapperRoundTrip(t *testing.T) {
	mapper := NewWorkEntryMapper()
	start := time.UnixMilli(1000)
	end := time.UnixMilli(61000)
	taskID := int64(3)
	satisfaction := 4

	tests := []struct {
		name  string
		entry WorkEntry
	}{
		{
			name:  "open free work entry",
			entry: WorkEntry{ID: 1, Start: start},
		},
		{
			name: "closed rated entry linked to a task",
			entry: WorkEntry{
				ID:            2,
				Start:         start,
				End:           &end,
				RelatedTaskID: &taskID,
				Satisfaction:  &satisfaction,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roundTripped := mapper.FromDatabase(mapper.ToDatabase(tt.entry))
			assert.Equal(t, tt.entry, roundTripped)
		})
	}
}

func TestMapperAggregates(t *testing.T) {
	mapper := NewMapper()
	assert.NotNil(t, mapper.Task)
	assert.NotNil(t, mapper.WorkEntry)
}
