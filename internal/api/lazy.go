package api

import (
	"context"
	"sync"

	"github.com/kz2wd/time-tracker/internal/domain"
	"github.com/kz2wd/time-tracker/internal/repository/sqlite"
)

// RepositoryFactory opens the underlying store.
type RepositoryFactory func() (sqlite.Repository, error)

// LazyAPI opens the store once per process, on first use, and memoizes the
// handle for reuse. An open failure is memoized too: every subsequent
// operation fails with the same store-unavailable error.
type LazyAPI struct {
	factory RepositoryFactory
	once    sync.Once
	api     API
	err     error
}

// NewLazy creates an API whose store is opened on first use.
func NewLazy(factory RepositoryFactory) *LazyAPI {
	return &LazyAPI{factory: factory}
}

func (l *LazyAPI) get() (API, error) {
	l.once.Do(func() {
		repo, err := l.factory()
		if err != nil {
			l.err = err
			return
		}
		l.api = New(repo)
	})
	return l.api, l.err
}

func (l *LazyAPI) CreateTask(ctx context.Context, description string, parent *domain.Task) (*domain.Task, error) {
	a, err := l.get()
	if err != nil {
		return nil, err
	}
	return a.CreateTask(ctx, description, parent)
}

func (l *LazyAPI) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	a, err := l.get()
	if err != nil {
		return nil, err
	}
	return a.GetTask(ctx, id)
}

func (l *LazyAPI) ListRootTasks(ctx context.Context) ([]*domain.Task, error) {
	a, err := l.get()
	if err != nil {
		return nil, err
	}
	return a.ListRootTasks(ctx)
}

func (l *LazyAPI) SaveTask(ctx context.Context, task *domain.Task) error {
	a, err := l.get()
	if err != nil {
		return err
	}
	return a.SaveTask(ctx, task)
}

func (l *LazyAPI) DeleteTask(ctx context.Context, id int64) error {
	a, err := l.get()
	if err != nil {
		return err
	}
	return a.DeleteTask(ctx, id)
}

func (l *LazyAPI) StartWork(ctx context.Context, task *domain.Task) (*domain.WorkEntry, error) {
	a, err := l.get()
	if err != nil {
		return nil, err
	}
	return a.StartWork(ctx, task)
}

func (l *LazyAPI) FinishWork(ctx context.Context, entry *domain.WorkEntry) error {
	a, err := l.get()
	if err != nil {
		return err
	}
	return a.FinishWork(ctx, entry)
}

func (l *LazyAPI) RateWork(ctx context.Context, entry *domain.WorkEntry, satisfaction int) error {
	a, err := l.get()
	if err != nil {
		return err
	}
	return a.RateWork(ctx, entry, satisfaction)
}

func (l *LazyAPI) GetActiveWork(ctx context.Context) (*domain.WorkEntry, []*domain.WorkEntry, error) {
	a, err := l.get()
	if err != nil {
		return nil, nil, err
	}
	return a.GetActiveWork(ctx)
}

func (l *LazyAPI) GetWorkedSeconds(ctx context.Context, sinceHours *float64, taskID *int64) (int64, error) {
	a, err := l.get()
	if err != nil {
		return 0, err
	}
	return a.GetWorkedSeconds(ctx, sinceHours, taskID)
}

// Close closes the store if it was ever opened. A LazyAPI that never ran an
// operation has nothing to close.
func (l *LazyAPI) Close() error {
	if l.api == nil {
		return nil
	}
	return l.api.Close()
}
