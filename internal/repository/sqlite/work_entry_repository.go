package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/kz2wd/time-tracker/internal/logging"
)

const workEntryColumns = "id, start_ms, end_ms, related_task_id, satisfaction"

// StartWorkEntry creates a new open work entry stamped with the current
// time, optionally linked to a task. It does not check for an already open
// entry; a race that opens two entries is reconciled by the repair pass in
// ActiveWorkEntry.
func (r *SQLiteRepository) StartWorkEntry(ctx context.Context, relatedTaskID *int64) (*WorkEntry, error) {
	entry := &WorkEntry{
		Start:         r.now(),
		RelatedTaskID: relatedTaskID,
	}

	err := r.runWrite(ctx, "start work entry", func(tx *sql.Tx) error {
		query := `
		INSERT INTO work_entries (start_ms, end_ms, related_task_id, satisfaction)
		VALUES (?, ?, ?, ?)`

		id, err := ExecuteWithLastInsertID(ctx, tx, query,
			TimeToMillis(entry.Start), nil, nullableInt64(entry.RelatedTaskID), nil)
		if err != nil {
			return err
		}
		entry.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// GetWorkEntry retrieves a work entry by ID
func (r *SQLiteRepository) GetWorkEntry(ctx context.Context, id int64) (*WorkEntry, error) {
	var entry *WorkEntry
	err := r.runRead(ctx, "get work entry", func(tx *sql.Tx) error {
		var err error
		entry, err = getWorkEntryTx(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func getWorkEntryTx(ctx context.Context, tx *sql.Tx, id int64) (*WorkEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM work_entries WHERE id = ?`, workEntryColumns)
	return QuerySingle(ctx, tx, query, ScanWorkEntry, "work entry", fmt.Sprintf("%d", id), id)
}

// ListWorkEntries retrieves all work entries in store iteration order
func (r *SQLiteRepository) ListWorkEntries(ctx context.Context) ([]*WorkEntry, error) {
	var entries []*WorkEntry
	err := r.runRead(ctx, "list work entries", func(tx *sql.Tx) error {
		query := fmt.Sprintf(`SELECT %s FROM work_entries ORDER BY id ASC`, workEntryColumns)
		var err error
		entries, err = QueryMultiple(ctx, tx, query, ScanWorkEntries, "work entries")
		return err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// FinishWorkEntry stamps the end time on an open entry and persists it.
// Finishing an already closed entry is a no-op: the first stamped end time
// is immutable.
func (r *SQLiteRepository) FinishWorkEntry(ctx context.Context, entry *WorkEntry) error {
	if entry.End != nil {
		return nil
	}
	end := r.now()
	entry.End = &end
	return r.UpdateWorkEntry(ctx, entry)
}

// UpdateWorkEntry performs a full record rewrite keyed by entry.ID
func (r *SQLiteRepository) UpdateWorkEntry(ctx context.Context, entry *WorkEntry) error {
	return r.runWrite(ctx, "update work entry", func(tx *sql.Tx) error {
		return updateWorkEntryTx(ctx, tx, entry)
	})
}

func updateWorkEntryTx(ctx context.Context, tx *sql.Tx, entry *WorkEntry) error {
	query := `
	UPDATE work_entries
	SET start_ms = ?, end_ms = ?, related_task_id = ?, satisfaction = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, tx, query, "work entry", fmt.Sprintf("%d", entry.ID),
		TimeToMillis(entry.Start), TimePtrToMillis(entry.End),
		nullableInt64(entry.RelatedTaskID), nullableInt(entry.Satisfaction), entry.ID)
}

// ActiveWorkEntry returns the single open work entry, or nil if none is
// open. If more than one open entry is found the invariant was violated by
// racing starts: the entry with the latest start (ties broken by highest id)
// is kept as canonical and every other open entry is closed at zero duration
// within the same transaction. The repaired entries are returned so callers
// can observe the reconciliation instead of it being a hidden side effect.
func (r *SQLiteRepository) ActiveWorkEntry(ctx context.Context) (*WorkEntry, []*WorkEntry, error) {
	var active *WorkEntry
	var repaired []*WorkEntry

	err := r.runWrite(ctx, "get active work entry", func(tx *sql.Tx) error {
		query := fmt.Sprintf(`
		SELECT %s FROM work_entries
		WHERE end_ms IS NULL
		ORDER BY start_ms ASC, id ASC`, workEntryColumns)

		open, err := QueryMultiple(ctx, tx, query, ScanWorkEntries, "work entries")
		if err != nil {
			return err
		}

		switch len(open) {
		case 0:
			return nil
		case 1:
			active = open[0]
			return nil
		}

		// Invariant violated: keep the latest start, close the rest at
		// zero duration.
		active = open[len(open)-1]
		logging.Debugf("repairing %d duplicate open work entries, keeping %d\n", len(open)-1, active.ID)
		for _, entry := range open[:len(open)-1] {
			start := entry.Start
			entry.End = &start
			if err := updateWorkEntryTx(ctx, tx, entry); err != nil {
				return err
			}
			repaired = append(repaired, entry)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return active, repaired, nil
}

// WorkedSeconds accumulates the total time worked across entries, filtered
// to a task and/or a cutoff of now minus sinceHours. An open entry
// contributes its elapsed time up to now. The sum is accumulated in
// milliseconds and floored once at the final seconds conversion.
func (r *SQLiteRepository) WorkedSeconds(ctx context.Context, sinceHours *float64, taskID *int64) (int64, error) {
	now := r.now()

	var conditions []string
	var args []interface{}
	if taskID != nil {
		conditions = append(conditions, "related_task_id = ?")
		args = append(args, *taskID)
	}
	if sinceHours != nil {
		cutoff := now.Add(-time.Duration(*sinceHours * float64(time.Hour)))
		conditions = append(conditions, "start_ms >= ?")
		args = append(args, TimeToMillis(cutoff))
	}

	query := fmt.Sprintf(`SELECT %s FROM work_entries`, workEntryColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	var totalMillis int64
	err := r.runRead(ctx, "worked seconds", func(tx *sql.Tx) error {
		entries, err := QueryMultiple(ctx, tx, query, ScanWorkEntries, "work entries", args...)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			end := now
			if entry.End != nil {
				end = *entry.End
			}
			totalMillis += TimeToMillis(end) - TimeToMillis(entry.Start)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return totalMillis / 1000, nil
}

func nullableInt(value *int) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
