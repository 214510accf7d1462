package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mfinley/taskwise/internal/config"
	"github.com/mfinley/taskwise/internal/db"
	"github.com/mfinley/taskwise/internal/models"
	"github.com/mfinley/taskwise/internal/output"
)

var addCmd = &cobra.Command{
	Use:   "add [description]",
	Short: "Add a new task",
	Long: `Add a new task. The due date accepts natural language.

Examples:
  taskwise add "Buy groceries" --due "tomorrow at 5pm"
  taskwise add "File taxes" --priority high --context home --project finances`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		store, err := db.Open(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer store.Close()

		priorityFlag, _ := cmd.Flags().GetString("priority")
		if priorityFlag == "" {
			priorityFlag = cfg.Get(config.KeyPriorityDefault, "medium")
		}
		priority, err := models.ParsePriority(priorityFlag)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		due, _ := cmd.Flags().GetString("due")
		var dueDateTime string
		if due != "" {
			ts, ok := newResolver(cfg).ResolveDateTime(due)
			if !ok {
				warnIfNoAPIKey(cfg)
				output.Warn("Could not parse date %q. No due date set.", due)
			} else {
				dueDateTime = ts
			}
		}

		contextName, _ := cmd.Flags().GetString("context")
		projectName, _ := cmd.Flags().GetString("project")

		task, err := store.AddTask(args[0], &priority, dueDateTime, contextName, projectName)
		if err != nil {
			output.Error("adding task: %v", err)
			return err
		}

		output.Success("Task added with ID %d", task.ID)
		output.Tasks(os.Stdout, []models.Task{*task})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringP("priority", "p", "", "Task priority (high, medium, low)")
	addCmd.Flags().String("due", "", "Due date/time in natural language (e.g. 'tomorrow at 5pm')")
	addCmd.Flags().StringP("context", "c", "", "Task context (e.g. 'work', 'personal')")
	addCmd.Flags().String("project", "", "Project the task belongs to")
}
