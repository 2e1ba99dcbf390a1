package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kz2wd/time-tracker/internal/errors"
)

func TestStartWorkEntry(t *testing.T) {
	repo, clock := setupTestDBWithClock(t)
	ctx := context.Background()
	clock.Set(1000)

	t.Run("free work", func(t *testing.T) {
		entry, err := repo.StartWorkEntry(ctx, nil)
		require.NoError(t, err)
		assert.Greater(t, entry.ID, int64(0))
		assert.Equal(t, int64(1000), TimeToMillis(entry.Start))
		assert.Nil(t, entry.End)
		assert.Nil(t, entry.RelatedTaskID)

		retrieved, err := repo.GetWorkEntry(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, entry.ID, retrieved.ID)
		assert.Nil(t, retrieved.End)
		assert.Nil(t, retrieved.Satisfaction)
	})

	t.Run("linked to a task", func(t *testing.T) {
		task := &Task{Description: "Tracked"}
		require.NoError(t, repo.CreateTask(ctx, task))

		entry, err := repo.StartWorkEntry(ctx, &task.ID)
		require.NoError(t, err)

		retrieved, err := repo.GetWorkEntry(ctx, entry.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved.RelatedTaskID)
		assert.Equal(t, task.ID, *retrieved.RelatedTaskID)
	})
}

func TestFinishWorkEntry(t *testing.T) {
	repo, clock := setupTestDBWithClock(t)
	ctx := context.Background()

	clock.Set(1000)
	entry, err := repo.StartWorkEntry(ctx, nil)
	require.NoError(t, err)

	clock.Set(5000)
	require.NoError(t, repo.FinishWorkEntry(ctx, entry))
	require.NotNil(t, entry.End)
	assert.Equal(t, int64(5000), TimeToMillis(*entry.End))

	retrieved, err := repo.GetWorkEntry(ctx, entry.ID)
	require.NoError(t, err)
	require.NotNil(t, retrieved.End)
	assert.Equal(t, int64(5000), TimeToMillis(*retrieved.End))

	// Finishing again is a no-op: the first end time is immutable
	clock.Set(9000)
	require.NoError(t, repo.FinishWorkEntry(ctx, retrieved))
	again, err := repo.GetWorkEntry(ctx, entry.ID)
	require.NoError(t, err)
	require.NotNil(t, again.End)
	assert.Equal(t, int64(5000), TimeToMillis(*again.End))
}

func TestUpdateWorkEntry(t *testing.T) {
	repo, clock := setupTestDBWithClock(t)
	ctx := context.Background()

	clock.Set(1000)
	entry, err := repo.StartWorkEntry(ctx, nil)
	require.NoError(t, err)

	satisfaction := 4
	entry.Satisfaction = &satisfaction
	require.NoError(t, repo.UpdateWorkEntry(ctx, entry))

	retrieved, err := repo.GetWorkEntry(ctx, entry.ID)
	require.NoError(t, err)
	require.NotNil(t, retrieved.Satisfaction)
	assert.Equal(t, 4, *retrieved.Satisfaction)
}

func TestUpdateWorkEntryNotFound(t *testing.T) {
	repo := setupTestDB(t)

	entry := &WorkEntry{ID: 999, Start: time.UnixMilli(0)}
	err := repo.UpdateWorkEntry(context.Background(), entry)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestActiveWorkEntry(t *testing.T) {
	t.Run("idle store returns nil", func(t *testing.T) {
		repo, _ := setupTestDBWithClock(t)

		active, repaired, err := repo.ActiveWorkEntry(context.Background())
		require.NoError(t, err)
		assert.Nil(t, active)
		assert.Empty(t, repaired)
	})

	t.Run("single open entry is returned", func(t *testing.T) {
		repo, clock := setupTestDBWithClock(t)
		ctx := context.Background()

		clock.Set(1000)
		entry, err := repo.StartWorkEntry(ctx, nil)
		require.NoError(t, err)

		active, repaired, err := repo.ActiveWorkEntry(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, entry.ID, active.ID)
		assert.Empty(t, repaired)
	})

	t.Run("closed entries are ignored", func(t *testing.T) {
		repo, clock := setupTestDBWithClock(t)
		ctx := context.Background()

		clock.Set(1000)
		entry, err := repo.StartWorkEntry(ctx, nil)
		require.NoError(t, err)
		clock.Set(2000)
		require.NoError(t, repo.FinishWorkEntry(ctx, entry))

		active, repaired, err := repo.ActiveWorkEntry(ctx)
		require.NoError(t, err)
		assert.Nil(t, active)
		assert.Empty(t, repaired)
	})

	t.Run("duplicate open entries are repaired", func(t *testing.T) {
		repo, clock := setupTestDBWithClock(t)
		ctx := context.Background()

		clock.Set(100)
		older, err := repo.StartWorkEntry(ctx, nil)
		require.NoError(t, err)
		clock.Set(200)
		newer, err := repo.StartWorkEntry(ctx, nil)
		require.NoError(t, err)

		active, repaired, err := repo.ActiveWorkEntry(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, newer.ID, active.ID)

		// The losing entry was closed at zero duration
		require.Len(t, repaired, 1)
		assert.Equal(t, older.ID, repaired[0].ID)
		retrieved, err := repo.GetWorkEntry(ctx, older.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved.End)
		assert.Equal(t, int64(100), TimeToMillis(*retrieved.End))

		// The invariant holds after repair
		active, repaired, err = repo.ActiveWorkEntry(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, newer.ID, active.ID)
		assert.Empty(t, repaired)
	})

	t.Run("start tie keeps the highest id", func(t *testing.T) {
		repo, clock := setupTestDBWithClock(t)
		ctx := context.Background()

		clock.Set(500)
		_, err := repo.StartWorkEntry(ctx, nil)
		require.NoError(t, err)
		second, err := repo.StartWorkEntry(ctx, nil)
		require.NoError(t, err)

		active, repaired, err := repo.ActiveWorkEntry(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, second.ID, active.ID)
		assert.Len(t, repaired, 1)
	})
}

func TestWorkedSeconds(t *testing.T) {
	repo, clock := setupTestDBWithClock(t)
	ctx := context.Background()

	// One closed second-long entry and one entry open since 2000
	clock.Set(0)
	first, err := repo.StartWorkEntry(ctx, nil)
	require.NoError(t, err)
	clock.Set(1000)
	require.NoError(t, repo.FinishWorkEntry(ctx, first))

	clock.Set(2000)
	_, err = repo.StartWorkEntry(ctx, nil)
	require.NoError(t, err)

	clock.Set(5000)
	seconds, err := repo.WorkedSeconds(ctx, nil, nil)
	require.NoError(t, err)
	// (1000-0 + 5000-2000) / 1000
	assert.Equal(t, int64(4), seconds)
}

func TestWorkedSecondsFilters(t *testing.T) {
	repo, clock := setupTestDBWithClock(t)
	ctx := context.Background()

	task := &Task{Description: "Tracked"}
	require.NoError(t, repo.CreateTask(ctx, task))
	other := &Task{Description: "Other"}
	require.NoError(t, repo.CreateTask(ctx, other))

	hourMillis := int64(time.Hour / time.Millisecond)

	// Entry on the tracked task, started two hours ago, 30 minutes long
	clock.Set(0)
	old, err := repo.StartWorkEntry(ctx, &task.ID)
	require.NoError(t, err)
	clock.Set(30 * 60 * 1000)
	require.NoError(t, repo.FinishWorkEntry(ctx, old))

	// Entry on the tracked task, started 30 minutes before now, 10 minutes long
	clock.Set(2*hourMillis - 30*60*1000)
	recent, err := repo.StartWorkEntry(ctx, &task.ID)
	require.NoError(t, err)
	clock.Set(2*hourMillis - 20*60*1000)
	require.NoError(t, repo.FinishWorkEntry(ctx, recent))

	// Entry on the other task inside the window
	clock.Set(2*hourMillis - 15*60*1000)
	unrelated, err := repo.StartWorkEntry(ctx, &other.ID)
	require.NoError(t, err)
	clock.Set(2*hourMillis - 10*60*1000)
	require.NoError(t, repo.FinishWorkEntry(ctx, unrelated))

	clock.Set(2 * hourMillis)

	t.Run("cutoff excludes entries started before it", func(t *testing.T) {
		oneHour := 1.0
		seconds, err := repo.WorkedSeconds(ctx, &oneHour, &task.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(10*60), seconds)
	})

	t.Run("task filter excludes other tasks", func(t *testing.T) {
		seconds, err := repo.WorkedSeconds(ctx, nil, &task.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(40*60), seconds)
	})

	t.Run("no filters counts everything", func(t *testing.T) {
		seconds, err := repo.WorkedSeconds(ctx, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(45*60), seconds)
	})
}

func TestWorkedSecondsFloorsAtConversion(t *testing.T) {
	repo, clock := setupTestDBWithClock(t)
	ctx := context.Background()

	// Two entries of 700ms each: 1400ms floors to 1s, not 0s
	clock.Set(0)
	first, err := repo.StartWorkEntry(ctx, nil)
	require.NoError(t, err)
	clock.Set(700)
	require.NoError(t, repo.FinishWorkEntry(ctx, first))

	clock.Set(1000)
	second, err := repo.StartWorkEntry(ctx, nil)
	require.NoError(t, err)
	clock.Set(1700)
	require.NoError(t, repo.FinishWorkEntry(ctx, second))

	seconds, err := repo.WorkedSeconds(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), seconds)
}

func TestListWorkEntries(t *testing.T) {
	repo, clock := setupTestDBWithClock(t)
	ctx := context.Background()

	clock.Set(100)
	_, err := repo.StartWorkEntry(ctx, nil)
	require.NoError(t, err)
	clock.Set(200)
	_, err = repo.StartWorkEntry(ctx, nil)
	require.NoError(t, err)

	entries, err := repo.ListWorkEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestGetWorkEntryNotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetWorkEntry(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
