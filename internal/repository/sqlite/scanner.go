package sqlite

import (
	"database/sql"

	"github.com/kz2wd/time-tracker/internal/errors"
	"github.com/kz2wd/time-tracker/internal/logging"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a database row. Optional fields missing
// from rows written under an older schema default (subtask_ids to the empty
// list, is_over to false, notes to empty); a missing description is a
// malformed record.
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var description sql.NullString
	var parentID sql.NullInt64
	var subtaskIDs sql.NullString
	var isOver sql.NullBool
	var notes sql.NullString

	err := scanner.Scan(
		&task.ID,
		&description,
		&parentID,
		&subtaskIDs,
		&isOver,
		&notes,
	)
	if err != nil {
		return nil, err
	}

	if !description.Valid {
		return nil, errors.NewMalformedRecordError("task", "description", nil)
	}
	task.Description = description.String

	if parentID.Valid {
		task.ParentID = &parentID.Int64
	}

	ids, err := DecodeSubtaskIDs(subtaskIDs.String)
	if err != nil {
		return nil, errors.NewMalformedRecordError("task", "subtask_ids", err)
	}
	task.SubtaskIDs = ids
	task.IsOver = isOver.Valid && isOver.Bool
	task.Notes = notes.String

	return task, nil
}

// ScanTasks scans multiple tasks from database rows. Malformed records are
// skipped and logged as a data-quality signal rather than aborting the scan.
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			if errors.IsErrorType(err, errors.ErrorTypeMalformedRecord) {
				logging.Warnf("skipping malformed task record: %v\n", err)
				continue
			}
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ScanWorkEntry scans a single work entry from a database row. end_ms and
// satisfaction are optional; a missing start_ms is a malformed record.
func ScanWorkEntry(scanner Scanner) (*WorkEntry, error) {
	entry := &WorkEntry{}
	var startMillis sql.NullInt64
	var endMillis sql.NullInt64
	var relatedTaskID sql.NullInt64
	var satisfaction sql.NullInt64

	err := scanner.Scan(
		&entry.ID,
		&startMillis,
		&endMillis,
		&relatedTaskID,
		&satisfaction,
	)
	if err != nil {
		return nil, err
	}

	if !startMillis.Valid {
		return nil, errors.NewMalformedRecordError("work entry", "start_ms", nil)
	}
	entry.Start = MillisToTime(startMillis.Int64)

	if endMillis.Valid {
		end := MillisToTime(endMillis.Int64)
		entry.End = &end
	}
	if relatedTaskID.Valid {
		entry.RelatedTaskID = &relatedTaskID.Int64
	}
	if satisfaction.Valid {
		value := int(satisfaction.Int64)
		entry.Satisfaction = &value
	}

	return entry, nil
}

// ScanWorkEntries scans multiple work entries from database rows, skipping
// and logging malformed records.
func ScanWorkEntries(rows Rows) ([]*WorkEntry, error) {
	var entries []*WorkEntry
	for rows.Next() {
		entry, err := ScanWorkEntry(rows)
		if err != nil {
			if errors.IsErrorType(err, errors.ErrorTypeMalformedRecord) {
				logging.Warnf("skipping malformed work entry record: %v\n", err)
				continue
			}
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
