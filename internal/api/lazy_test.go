package api

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kz2wd/time-tracker/internal/errors"
	"github.com/kz2wd/time-tracker/internal/repository/sqlite"
)

func TestLazyAPIOpensOnce(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tt.db")

	calls := 0
	lazy := NewLazy(func() (sqlite.Repository, error) {
		calls++
		return sqlite.New(dbPath)
	})
	defer lazy.Close()

	ctx := context.Background()
	assert.Equal(t, 0, calls, "store must not open before first use")

	_, err := lazy.CreateTask(ctx, "First", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	_, err = lazy.ListRootTasks(ctx)
	require.NoError(t, err)
	_, _, err = lazy.GetActiveWork(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "the handle is memoized across operations")
}

func TestLazyAPIMemoizesOpenFailure(t *testing.T) {
	calls := 0
	lazy := NewLazy(func() (sqlite.Repository, error) {
		calls++
		// A directory path cannot be opened as a database file
		return sqlite.New(t.TempDir())
	})
	defer lazy.Close()

	ctx := context.Background()

	_, err := lazy.ListRootTasks(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStoreUnavailable))

	// Every later operation fails identically without retrying the open
	_, second := lazy.CreateTask(ctx, "Task", nil)
	require.Error(t, second)
	assert.Equal(t, err, second)
	assert.Equal(t, 1, calls)
}

func TestLazyAPICloseBeforeOpen(t *testing.T) {
	lazy := NewLazy(func() (sqlite.Repository, error) {
		t.Fatal("factory must not run on Close")
		return nil, nil
	})

	assert.NoError(t, lazy.Close())
}
