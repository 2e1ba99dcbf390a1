package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/kz2wd/time-tracker/internal/errors"
	"github.com/kz2wd/time-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Task operations
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	ListRootTasks(ctx context.Context) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id int64) error

	// Work entry operations
	StartWorkEntry(ctx context.Context, relatedTaskID *int64) (*WorkEntry, error)
	GetWorkEntry(ctx context.Context, id int64) (*WorkEntry, error)
	ListWorkEntries(ctx context.Context) ([]*WorkEntry, error)
	FinishWorkEntry(ctx context.Context, entry *WorkEntry) error
	UpdateWorkEntry(ctx context.Context, entry *WorkEntry) error
	ActiveWorkEntry(ctx context.Context) (*WorkEntry, []*WorkEntry, error)
	WorkedSeconds(ctx context.Context, sinceHours *float64, taskID *int64) (int64, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB

	// now is replaceable in tests for deterministic aggregation and repair
	now func() time.Time
}

// New creates a new SQLite repository instance. A store that cannot be
// opened or upgraded is unavailable as a whole, so any failure here is
// surfaced as a store-unavailable error.
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStoreUnavailableError(dbPath, err)
	}

	// Run schema migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStoreUnavailableError(dbPath, err)
	}

	return &SQLiteRepository{db: db, now: time.Now}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// SetClock replaces the repository clock. Intended for tests.
func (r *SQLiteRepository) SetClock(now func() time.Time) {
	r.now = now
}
