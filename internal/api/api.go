package api

import (
	"context"

	"github.com/kz2wd/time-tracker/internal/domain"
	"github.com/kz2wd/time-tracker/internal/errors"
	"github.com/kz2wd/time-tracker/internal/repository/sqlite"
	"github.com/kz2wd/time-tracker/internal/validation"
)

// API is the single entry point around the task and work entry repositories.
// It is the surface the presentation layer consumes: it never renders
// anything and owns no state beyond the store handle.
type API interface {
	// Task operations
	CreateTask(ctx context.Context, description string, parent *domain.Task) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListRootTasks(ctx context.Context) ([]*domain.Task, error)
	SaveTask(ctx context.Context, task *domain.Task) error
	DeleteTask(ctx context.Context, id int64) error

	// Work entry operations
	StartWork(ctx context.Context, task *domain.Task) (*domain.WorkEntry, error)
	FinishWork(ctx context.Context, entry *domain.WorkEntry) error
	RateWork(ctx context.Context, entry *domain.WorkEntry, satisfaction int) error
	GetActiveWork(ctx context.Context) (*domain.WorkEntry, []*domain.WorkEntry, error)
	GetWorkedSeconds(ctx context.Context, sinceHours *float64, taskID *int64) (int64, error)

	// Utility
	Close() error
}

type apiImpl struct {
	repo               sqlite.Repository
	mapper             *domain.Mapper
	taskValidator      *validation.TaskValidator
	workEntryValidator *validation.WorkEntryValidator
}

// New creates a new API instance over an opened repository.
func New(repo sqlite.Repository) API {
	return &apiImpl{
		repo:               repo,
		mapper:             domain.NewMapper(),
		taskValidator:      validation.NewTaskValidator(),
		workEntryValidator: validation.NewWorkEntryValidator(),
	}
}

// CreateTask creates a new task, optionally under a parent. The child insert
// and the parent subtask splice happen in one transaction.
func (a *apiImpl) CreateTask(ctx context.Context, description string, parent *domain.Task) (*domain.Task, error) {
	if err := a.taskValidator.ValidateDescription(description); err != nil {
		return nil, errors.NewValidationError("invalid task description", err)
	}

	var parentID *int64
	if parent != nil {
		if err := a.taskValidator.ValidateTaskID(parent.ID); err != nil {
			return nil, errors.NewValidationError("invalid parent task", err)
		}
		parentID = &parent.ID
	}

	dbTask := sqlite.Task{
		Description: description,
		ParentID:    parentID,
		SubtaskIDs:  []int64{},
	}
	if err := a.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	if parent != nil {
		parent.SubtaskIDs = append(parent.SubtaskIDs, dbTask.ID)
	}

	domainTask := a.mapper.Task.FromDatabase(dbTask)
	return &domainTask, nil
}

// GetTask retrieves a task by id.
func (a *apiImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}

	dbTask, err := a.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	domainTask := a.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// ListRootTasks returns every task without a parent.
func (a *apiImpl) ListRootTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := a.repo.ListRootTasks(ctx)
	if err != nil {
		return nil, err
	}
	return a.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// SaveTask performs a full record rewrite of the task keyed by its id.
func (a *apiImpl) SaveTask(ctx context.Context, task *domain.Task) error {
	if err := a.taskValidator.ValidateTaskID(task.ID); err != nil {
		return errors.NewValidationError("invalid task ID", err)
	}
	if err := a.taskValidator.ValidateDescription(task.Description); err != nil {
		return errors.NewValidationError("invalid task description", err)
	}

	dbTask := a.mapper.Task.ToDatabase(*task)
	return a.repo.UpdateTask(ctx, &dbTask)
}

// DeleteTask removes a task with detach semantics; deleting an absent id is
// a no-op.
func (a *apiImpl) DeleteTask(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}
	return a.repo.DeleteTask(ctx, id)
}

// StartWork opens a new work session, optionally linked to a task. A nil
// task records untracked free work. StartWork does not guard against an
// already open session; GetActiveWork reconciles duplicates.
func (a *apiImpl) StartWork(ctx context.Context, task *domain.Task) (*domain.WorkEntry, error) {
	var relatedTaskID *int64
	if task != nil {
		if err := a.taskValidator.ValidateTaskID(task.ID); err != nil {
			return nil, errors.NewValidationError("invalid task ID", err)
		}
		relatedTaskID = &task.ID
	}

	dbEntry, err := a.repo.StartWorkEntry(ctx, relatedTaskID)
	if err != nil {
		return nil, err
	}
	domainEntry := a.mapper.WorkEntry.FromDatabase(*dbEntry)
	return &domainEntry, nil
}

// FinishWork stamps the end time on an open session and persists it.
// Finishing an already closed session is a no-op.
func (a *apiImpl) FinishWork(ctx context.Context, entry *domain.WorkEntry) error {
	if err := a.workEntryValidator.ValidateEntryID(entry.ID); err != nil {
		return errors.NewValidationError("invalid work entry ID", err)
	}
	if entry.End != nil {
		return nil
	}

	dbEntry := a.mapper.WorkEntry.ToDatabase(*entry)
	if err := a.repo.FinishWorkEntry(ctx, &dbEntry); err != nil {
		return err
	}
	entry.End = dbEntry.End
	return nil
}

// RateWork clamps the satisfaction rating into [0,5] and persists it.
func (a *apiImpl) RateWork(ctx context.Context, entry *domain.WorkEntry, satisfaction int) error {
	if err := a.workEntryValidator.ValidateEntryID(entry.ID); err != nil {
		return errors.NewValidationError("invalid work entry ID", err)
	}

	rated := entry.Rate(satisfaction)
	dbEntry := a.mapper.WorkEntry.ToDatabase(rated)
	if err := a.repo.UpdateWorkEntry(ctx, &dbEntry); err != nil {
		return err
	}
	entry.Satisfaction = rated.Satisfaction
	return nil
}

// GetActiveWork returns the single open work entry, or nil when idle. When
// duplicate open entries are found the store self-heals: all but the latest
// are closed at zero duration and returned as the second result.
func (a *apiImpl) GetActiveWork(ctx context.Context) (*domain.WorkEntry, []*domain.WorkEntry, error) {
	dbActive, dbRepaired, err := a.repo.ActiveWorkEntry(ctx)
	if err != nil {
		return nil, nil, err
	}

	var active *domain.WorkEntry
	if dbActive != nil {
		entry := a.mapper.WorkEntry.FromDatabase(*dbActive)
		active = &entry
	}
	return active, a.mapper.WorkEntry.FromDatabaseSlice(dbRepaired), nil
}

// GetWorkedSeconds returns the total seconds worked, optionally restricted
// to one task and/or the last sinceHours hours. Open sessions contribute
// their elapsed time up to now.
func (a *apiImpl) GetWorkedSeconds(ctx context.Context, sinceHours *float64, taskID *int64) (int64, error) {
	return a.repo.WorkedSeconds(ctx, sinceHours, taskID)
}

// Close closes the underlying repository.
func (a *apiImpl) Close() error {
	return a.repo.Close()
}
