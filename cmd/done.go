package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mfinley/taskwise/internal/db"
	"github.com/mfinley/taskwise/internal/models"
	"github.com/mfinley/taskwise/internal/output"
)

var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			output.Error("invalid task id %q", args[0])
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

		if task.Completed {
			output.Warn("Task %d is already marked as completed.", id)
			return nil
		}

		if err := store.MarkTaskDone(id); err != nil {
			output.Error("marking task done: %v", err)
			return err
		}

		output.Success("Task %d marked as completed:", id)
		updated, err := store.GetTask(id)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		output.Tasks(os.Stdout, []models.Task{*updated})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
