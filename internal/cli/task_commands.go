package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/kz2wd/time-tracker/internal/api"
	"github.com/kz2wd/time-tracker/internal/domain"
	"github.com/kz2wd/time-tracker/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute creates a task, optionally under a parent
func (c *AddCommand) Execute(ctx context.Context, args []string, parentID int64) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", "usage: tt add \"task description\" [--parent id]")
	}
	description := strings.Join(args, " ")

	var parent *domain.Task
	if parentID > 0 {
		found, err := c.api.GetTask(ctx, parentID)
		if err != nil {
			return c.errorHandler.Handle("find parent task", err)
		}
		parent = found
	}

	task, err := c.api.CreateTask(ctx, description, parent)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	if parent != nil {
		fmt.Printf("Added task %d under %d: %s\n", task.ID, parent.ID, task.Description)
	} else {
		fmt.Printf("Added task %d: %s\n", task.ID, task.Description)
	}
	return nil
}

// TasksCommand handles the tasks listing command
type TasksCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewTasksCommand creates a new tasks command handler
func NewTasksCommand(app *App) *TasksCommand {
	return &TasksCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute lists root tasks with their subtask trees
func (c *TasksCommand) Execute(ctx context.Context) error {
	roots, err := c.api.ListRootTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	if len(roots) == 0 {
		fmt.Println("No tasks yet. Add one with: tt add \"task description\"")
		return nil
	}

	for _, task := range roots {
		c.printTask(ctx, task, 0)
	}
	return nil
}

func (c *TasksCommand) printTask(ctx context.Context, task *domain.Task, depth int) {
	marker := "[ ]"
	if task.IsOver {
		marker = "[x]"
	}
	fmt.Printf("%s%s %d: %s\n", strings.Repeat("  ", depth), marker, task.ID, task.Description)

	for _, subtaskID := range task.SubtaskIDs {
		subtask, err := c.api.GetTask(ctx, subtaskID)
		if err != nil {
			// A dangling subtask id should not break the listing
			continue
		}
		c.printTask(ctx, subtask, depth+1)
	}
}

// DoneCommand handles the done command
type DoneCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute marks a task as over
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseTaskID(args, "done")
	if err != nil {
		return err
	}

	task, err := c.api.GetTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("find task", err)
	}

	task.SetOver(true)
	if err := c.api.SaveTask(ctx, task); err != nil {
		return c.errorHandler.Handle("mark task done", err)
	}

	fmt.Printf("Task %d done: %s\n", task.ID, task.Description)
	return nil
}

// NoteCommand handles the note command
type NoteCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewNoteCommand creates a new note command handler
func NewNoteCommand(app *App) *NoteCommand {
	return &NoteCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute replaces the notes on a task
func (c *NoteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "note", "usage: tt note <task-id> \"notes\"")
	}
	id, err := parseTaskID(args[:1], "note")
	if err != nil {
		return err
	}

	task, err := c.api.GetTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("find task", err)
	}

	task.SetNotes(strings.Join(args[1:], " "))
	if err := c.api.SaveTask(ctx, task); err != nil {
		return c.errorHandler.Handle("save notes", err)
	}

	fmt.Printf("Updated notes for task %d\n", task.ID)
	return nil
}

// RemoveCommand handles the rm command
type RemoveCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewRemoveCommand creates a new rm command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute deletes a task. Subtasks are kept and promoted to roots.
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseTaskID(args, "rm")
	if err != nil {
		return err
	}

	if err := c.api.DeleteTask(ctx, id); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	fmt.Printf("Deleted task %d\n", id)
	return nil
}

func parseTaskID(args []string, command string) (int64, error) {
	if len(args) < 1 {
		return 0, errors.NewInvalidInputError("command", command, fmt.Sprintf("usage: tt %s <task-id>", command))
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError("task_id", args[0], "must be a number")
	}
	return id, nil
}
