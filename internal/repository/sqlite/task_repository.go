package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

const taskColumns = "id, description, parent_id, subtask_ids, is_over, notes"

// CreateTask inserts a new task and, if the task has a parent, appends the
// new id to the parent's subtask list. Both writes happen in one transaction
// so a failure leaves neither the child record nor the parent update visible.
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	return r.runWrite(ctx, "create task", func(tx *sql.Tx) error {
		subtaskIDs, err := EncodeSubtaskIDs(task.SubtaskIDs)
		if err != nil {
			return HandleDatabaseError("encode subtask ids", err)
		}

		query := `
		INSERT INTO tasks (description, parent_id, subtask_ids, is_over, notes)
		VALUES (?, ?, ?, ?, ?)`

		id, err := ExecuteWithLastInsertID(ctx, tx, query,
			task.Description, nullableInt64(task.ParentID), subtaskIDs, task.IsOver, task.Notes)
		if err != nil {
			return err
		}
		task.ID = id
		if task.SubtaskIDs == nil {
			task.SubtaskIDs = []int64{}
		}

		if task.ParentID != nil {
			return spliceIntoParent(ctx, tx, *task.ParentID, id)
		}
		return nil
	})
}

// spliceIntoParent appends childID to the parent's subtask list, reading the
// parent's current state inside the enclosing transaction.
func spliceIntoParent(ctx context.Context, tx *sql.Tx, parentID int64, childID int64) error {
	parent, err := getTaskTx(ctx, tx, parentID)
	if err != nil {
		return err
	}
	parent.SubtaskIDs = append(parent.SubtaskIDs, childID)
	return updateTaskTx(ctx, tx, parent)
}

func getTaskTx(ctx context.Context, tx *sql.Tx, id int64) (*Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = ?`, taskColumns)
	return QuerySingle(ctx, tx, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

func updateTaskTx(ctx context.Context, tx *sql.Tx, task *Task) error {
	subtaskIDs, err := EncodeSubtaskIDs(task.SubtaskIDs)
	if err != nil {
		return HandleDatabaseError("encode subtask ids", err)
	}

	query := `
	UPDATE tasks
	SET description = ?, parent_id = ?, subtask_ids = ?, is_over = ?, notes = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, tx, query, "task", fmt.Sprintf("%d", task.ID),
		task.Description, nullableInt64(task.ParentID), subtaskIDs, task.IsOver, task.Notes, task.ID)
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	var task *Task
	err := r.runRead(ctx, "get task", func(tx *sql.Tx) error {
		var err error
		task, err = getTaskTx(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// ListTasks retrieves all tasks in store iteration order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	var tasks []*Task
	err := r.runRead(ctx, "list tasks", func(tx *sql.Tx) error {
		query := fmt.Sprintf(`SELECT %s FROM tasks ORDER BY id ASC`, taskColumns)
		var err error
		tasks, err = QueryMultiple(ctx, tx, query, ScanTasks, "tasks")
		return err
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListRootTasks retrieves all tasks without a parent, narrowed by the
// parent_id index.
func (r *SQLiteRepository) ListRootTasks(ctx context.Context) ([]*Task, error) {
	var tasks []*Task
	err := r.runRead(ctx, "list root tasks", func(tx *sql.Tx) error {
		query := fmt.Sprintf(`SELECT %s FROM tasks WHERE parent_id IS NULL ORDER BY id ASC`, taskColumns)
		var err error
		tasks, err = QueryMultiple(ctx, tx, query, ScanTasks, "tasks")
		return err
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTask performs a full record rewrite keyed by task.ID. Updating an
// absent id fails with not-found semantics.
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) error {
	return r.runWrite(ctx, "update task", func(tx *sql.Tx) error {
		return updateTaskTx(ctx, tx, task)
	})
}

// DeleteTask removes a task with detach semantics, in one transaction: the
// id is spliced out of the parent's subtask list and each direct child is
// promoted to a root, keeping its own subtree. Deleting an absent id is a
// no-op.
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	return r.runWrite(ctx, "delete task", func(tx *sql.Tx) error {
		task, err := getTaskTx(ctx, tx, id)
		if err != nil {
			if isNotFound(err) {
				return nil
			}
			return err
		}

		if task.ParentID != nil {
			parent, err := getTaskTx(ctx, tx, *task.ParentID)
			if err != nil && !isNotFound(err) {
				return err
			}
			if err == nil {
				parent.SubtaskIDs = removeID(parent.SubtaskIDs, id)
				if err := updateTaskTx(ctx, tx, parent); err != nil {
					return err
				}
			}
		}

		// Promote direct children to roots
		if _, err := tx.ExecContext(ctx, `UPDATE tasks SET parent_id = NULL WHERE parent_id = ?`, id); err != nil {
			return HandleDatabaseError("detach subtasks", err)
		}

		return ExecuteWithRowsAffected(ctx, tx, `DELETE FROM tasks WHERE id = ?`, "task", fmt.Sprintf("%d", id), id)
	})
}

func removeID(ids []int64, id int64) []int64 {
	result := make([]int64, 0, len(ids))
	for _, candidate := range ids {
		if candidate != id {
			result = append(result, candidate)
		}
	}
	return result
}

func nullableInt64(value *int64) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
