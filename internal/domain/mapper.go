package domain

import (
	"github.com/kz2wd/time-tracker/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task. The id travels with
// the record; create paths ignore it because the store assigns keys.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:          domainTask.ID,
		Description: domainTask.Description,
		ParentID:    domainTask.ParentID,
		SubtaskIDs:  domainTask.SubtaskIDs,
		IsOver:      domainTask.IsOver,
		Notes:       domainTask.Notes,
	}
}

// FromDatabase converts a database Task to a domain Task, defaulting
// optional fields that older records may lack.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	subtaskIDs := dbTask.SubtaskIDs
	if subtaskIDs == nil {
		subtaskIDs = []int64{}
	}
	return Task{
		ID:          dbTask.ID,
		Description: dbTask.Description,
		ParentID:    dbTask.ParentID,
		SubtaskIDs:  subtaskIDs,
		IsOver:      dbTask.IsOver,
		Notes:       dbTask.Notes,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []*Task {
	domainTasks := make([]*Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTask := m.FromDatabase(*task)
		domainTasks[i] = &domainTask
	}
	return domainTasks
}

// WorkEntryMapper handles conversion between domain and database WorkEntry models.
type WorkEntryMapper struct{}

// NewWorkEntryMapper creates a new WorkEntryMapper instance.
func NewWorkEntryMapper() *WorkEntryMapper {
	return &WorkEntryMapper{}
}

// ToDatabase converts a domain WorkEntry to a database WorkEntry.
func (m *WorkEntryMapper) ToDatabase(domainEntry WorkEntry) sqlite.WorkEntry {
	return sqlite.WorkEntry{
		ID:            domainEntry.ID,
		Start:         domainEntry.Start,
		End:           domainEntry.End,
		RelatedTaskID: domainEntry.RelatedTaskID,
		Satisfaction:  domainEntry.Satisfaction,
	}
}

// FromDatabase converts a database WorkEntry to a domain WorkEntry.
func (m *WorkEntryMapper) FromDatabase(dbEntry sqlite.WorkEntry) WorkEntry {
	return WorkEntry{
		ID:            dbEntry.ID,
		Start:         dbEntry.Start,
		End:           dbEntry.End,
		RelatedTaskID: dbEntry.RelatedTaskID,
		Satisfaction:  dbEntry.Satisfaction,
	}
}

// FromDatabaseSlice converts a slice of database WorkEntries to domain WorkEntries.
func (m *WorkEntryMapper) FromDatabaseSlice(dbEntries []*sqlite.WorkEntry) []*WorkEntry {
	domainEntries := make([]*WorkEntry, len(dbEntries))
	for i, entry := range dbEntries {
		domainEntry := m.FromDatabase(*entry)
		domainEntries[i] = &domainEntry
	}
	return domainEntries
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task      *TaskMapper
	WorkEntry *WorkEntryMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:      NewTaskMapper(),
		WorkEntry: NewWorkEntryMapper(),
	}
}
