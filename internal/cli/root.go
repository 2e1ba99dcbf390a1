package cli

import (
	"github.com/spf13/cobra"

	"github.com/kz2wd/time-tracker/internal/api"
)

// NewRootCommand builds the cobra command tree over the given API
func NewRootCommand(apiInstance api.API) *cobra.Command {
	app := NewApp(apiInstance)

	root := &cobra.Command{
		Use:   "tt",
		Short: "A command-line time tracker with hierarchical tasks",
		Long: `Time Tracker (tt) tracks time spent on hierarchical tasks.

EXAMPLES:
  tt add "Write report"                  # Create a root task
  tt add "Draft outline" --parent 1      # Create a subtask under task 1
  tt tasks                               # List the task tree
  tt start 1                             # Start working on task 1
  tt start                               # Start an untracked work session
  tt status                              # Show the active session
  tt stop --rate 4                       # Finish the session and rate it
  tt worked --hours 8                    # Time worked in the last 8 hours
  tt worked --task 1                     # Total time worked on task 1
  tt done 1                              # Mark task 1 as over
  tt rm 1                                # Delete task 1 (subtasks become roots)

CONFIGURATION:
  TT_DB_DIR         Database directory (default: ~/.tt)
  TT_DB_FILENAME    Database filename (default: tt.db)
  TT_APP_TIMEOUT    Operation timeout (default: 60s)
  TT_DEBUG          Enable debug output`,
		SilenceUsage: true,
	}

	addCmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			parentID, _ := cmd.Flags().GetInt64("parent")
			return NewAddCommand(app).Execute(cmd.Context(), args, parentID)
		},
	}
	addCmd.Flags().Int64("parent", 0, "id of the parent task")
	root.AddCommand(addCmd)

	root.AddCommand(&cobra.Command{
		Use:   "tasks",
		Short: "List the task tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewTasksCommand(app).Execute(cmd.Context())
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task as over",
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewDoneCommand(app).Execute(cmd.Context(), args)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "note <task-id> <notes>",
		Short: "Replace the notes on a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewNoteCommand(app).Execute(cmd.Context(), args)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "rm <task-id>",
		Short: "Delete a task, promoting its subtasks to roots",
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewRemoveCommand(app).Execute(cmd.Context(), args)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "start [task-id]",
		Short: "Start a work session, optionally on a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewStartCommand(app).Execute(cmd.Context(), args)
		},
	})

	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "Finish the active work session",
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, _ := cmd.Flags().GetInt("rate")
			hasRating := cmd.Flags().Changed("rate")
			return NewStopCommand(app).Execute(cmd.Context(), rating, hasRating)
		},
	}
	stopCmd.Flags().Int("rate", 0, "satisfaction rating in [0,5]")
	root.AddCommand(stopCmd)

	root.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the active work session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewStatusCommand(app).Execute(cmd.Context())
		},
	})

	workedCmd := &cobra.Command{
		Use:   "worked",
		Short: "Report total time worked",
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, _ := cmd.Flags().GetFloat64("hours")
			hasHours := cmd.Flags().Changed("hours")
			taskID, _ := cmd.Flags().GetInt64("task")
			return NewWorkedCommand(app).Execute(cmd.Context(), hours, hasHours, taskID)
		},
	}
	workedCmd.Flags().Float64("hours", 0, "only count work started in the last N hours")
	workedCmd.Flags().Int64("task", 0, "only count work on the given task")
	root.AddCommand(workedCmd)

	return root
}
