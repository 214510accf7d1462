package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mfinley/taskwise/internal/config"
	"github.com/mfinley/taskwise/internal/db"
	"github.com/mfinley/taskwise/internal/models"
	"github.com/mfinley/taskwise/internal/output"
)

var editCmd = &cobra.Command{
	Use:   "edit [task-id]",
	Short: "Edit an existing task",
	Long: `Edit a task. Only the supplied flags change; pass --context "" or
--project "" to clear an association.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			output.Error("invalid task id %q", args[0])
			return err
		}

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

		task, err := store.GetTask(id)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		var upd models.TaskUpdate

		if cmd.Flags().Changed("description") {
			desc, _ := cmd.Flags().GetString("description")
			upd.Description = &desc
		}
		if cmd.Flags().Changed("priority") {
			p, _ := cmd.Flags().GetString("priority")
			priority, err := models.ParsePriority(p)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			s := string(priority)
			upd.Priority = &s
		}
		if due, _ := cmd.Flags().GetString("due"); due != "" {
			ts, ok := newResolver(cfg).ResolveDateTime(due)
			if !ok {
				warnIfNoAPIKey(cfg)
				output.Warn("Could not parse date %q. Keeping existing due date.", due)
			} else {
				upd.DueDateTime = &ts
			}
		}
		// Changed, not value: --context "" clears the association
		if cmd.Flags().Changed("context") {
			name, _ := cmd.Flags().GetString("context")
			upd.ContextName = &name
		}
		if cmd.Flags().Changed("project") {
			name, _ := cmd.Flags().GetString("project")
			upd.ProjectName = &name
		}

		if upd.Empty() {
			output.Warn("No changes specified. Task remains unchanged.")
			output.Tasks(os.Stdout, []models.Task{*task})
			return nil
		}

		updated, err := store.EditTask(id, upd)
		if err != nil {
			output.Error("updating task: %v", err)
			return err
		}

		output.Success("Task %d updated:", id)
		output.Tasks(os.Stdout, []models.Task{*updated})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringP("description", "d", "", "New task description")
	editCmd.Flags().StringP("priority", "p", "", "New priority (high, medium, low)")
	editCmd.Flags().String("due", "", "New due date/time in natural language")
	editCmd.Flags().StringP("context", "c", "", "New context (empty string clears)")
	editCmd.Flags().String("project", "", "New project (empty string clears)")
}
