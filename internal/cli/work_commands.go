package cli

import (
	"context"
	"fmt"

	"github.com/kz2wd/time-tracker/internal/api"
	"github.com/kz2wd/time-tracker/internal/domain"
)

// StartCommand handles the start command
type StartCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewStartCommand creates a new start command handler
func NewStartCommand(app *App) *StartCommand {
	return &StartCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute opens a work session, linked to a task when an id is given. Any
// session left open is finished first so at most one stays active.
func (c *StartCommand) Execute(ctx context.Context, args []string) error {
	active, _, err := c.api.GetActiveWork(ctx)
	if err != nil {
		return c.errorHandler.Handle("check active work", err)
	}
	if active != nil {
		if err := c.api.FinishWork(ctx, active); err != nil {
			return c.errorHandler.Handle("finish previous work", err)
		}
		fmt.Println("Finished previous work session")
	}

	var task *domain.Task
	if len(args) > 0 {
		id, err := parseTaskID(args, "start")
		if err != nil {
			return err
		}
		task, err = c.api.GetTask(ctx, id)
		if err != nil {
			return c.errorHandler.Handle("find task", err)
		}
	}

	entry, err := c.api.StartWork(ctx, task)
	if err != nil {
		return c.errorHandler.Handle("start work", err)
	}

	if task != nil {
		fmt.Printf("Started working on task %d: %s\n", task.ID, task.Description)
	} else {
		fmt.Printf("Started free work session %d\n", entry.ID)
	}
	return nil
}

// StopCommand handles the stop command
type StopCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewStopCommand creates a new stop command handler
func NewStopCommand(app *App) *StopCommand {
	return &StopCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute finishes the active work session. A satisfaction rating in [0,5]
// may be attached; out-of-range values are clamped.
func (c *StopCommand) Execute(ctx context.Context, rating int, hasRating bool) error {
	active, repaired, err := c.api.GetActiveWork(ctx)
	if err != nil {
		return c.errorHandler.Handle("find active work", err)
	}
	reportRepaired(repaired)

	if active == nil {
		fmt.Println("No active work session")
		return nil
	}

	if err := c.api.FinishWork(ctx, active); err != nil {
		return c.errorHandler.Handle("finish work", err)
	}

	if hasRating {
		if err := c.api.RateWork(ctx, active, rating); err != nil {
			return c.errorHandler.Handle("rate work", err)
		}
	}

	fmt.Printf("Finished work session %d (%s)\n", active.ID, formatDuration(active.Duration()))
	if hasRating && active.Satisfaction != nil {
		fmt.Printf("Satisfaction: %d/5\n", *active.Satisfaction)
	}
	return nil
}

// StatusCommand handles the status command
type StatusCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute shows the active work session, if any
func (c *StatusCommand) Execute(ctx context.Context) error {
	active, repaired, err := c.api.GetActiveWork(ctx)
	if err != nil {
		return c.errorHandler.Handle("find active work", err)
	}
	reportRepaired(repaired)

	if active == nil {
		fmt.Println("Idle")
		return nil
	}

	if active.RelatedTaskID != nil {
		task, err := c.api.GetTask(ctx, *active.RelatedTaskID)
		if err == nil {
			fmt.Printf("Working on task %d: %s (%s)\n", task.ID, task.Description, formatDuration(active.Duration()))
			return nil
		}
	}
	fmt.Printf("Free work session %d (%s)\n", active.ID, formatDuration(active.Duration()))
	return nil
}

// WorkedCommand handles the worked command
type WorkedCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewWorkedCommand creates a new worked command handler
func NewWorkedCommand(app *App) *WorkedCommand {
	return &WorkedCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute reports total time worked, optionally limited to the last hours
// and/or a single task
func (c *WorkedCommand) Execute(ctx context.Context, sinceHours float64, hasSince bool, taskID int64) error {
	var since *float64
	if hasSince {
		since = &sinceHours
	}
	var task *int64
	if taskID > 0 {
		task = &taskID
	}

	seconds, err := c.api.GetWorkedSeconds(ctx, since, task)
	if err != nil {
		return c.errorHandler.Handle("compute worked time", err)
	}

	fmt.Printf("Worked %s\n", formatSeconds(seconds))
	return nil
}

func reportRepaired(repaired []*domain.WorkEntry) {
	for _, entry := range repaired {
		fmt.Printf("Closed duplicate open session %d\n", entry.ID)
	}
}
