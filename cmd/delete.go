package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mfinley/taskwise/internal/db"
	"github.com/mfinley/taskwise/internal/models"
	"github.com/mfinley/taskwise/internal/output"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [task-id]",
	Short: "Delete a task",
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

		fmt.Println("Task to delete:")
		output.Tasks(os.Stdout, []models.Task{*task})

		force, _ := cmd.Flags().GetBool("force")
		if !force && !confirm("Are you sure you want to delete this task?") {
			output.Warn("Deletion cancelled.")
			return nil
		}

		if err := store.DeleteTask(id); err != nil {
			output.Error("deleting task: %v", err)
			return err
		}

		output.Success("Task %d deleted.", id)
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().Bool("force", false, "Delete without confirmation")
}
