package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfinley/taskwise/internal/config"
	"github.com/mfinley/taskwise/internal/db"
	"github.com/mfinley/taskwise/internal/models"
	"github.com/mfinley/taskwise/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks with optional filters",
	Long: `List tasks. Completed tasks are hidden unless --all or --completed is given.

Examples:
  taskwise list --due "this week"
  taskwise list --priority high --context work
  taskwise list --overdue`,
	Args: cobra.NoArgs,
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

		filter := models.TaskFilter{}
		filter.All, _ = cmd.Flags().GetBool("all")
		filter.CompletedOnly, _ = cmd.Flags().GetBool("completed")
		filter.OverdueOnly, _ = cmd.Flags().GetBool("overdue")
		filter.ContextName, _ = cmd.Flags().GetString("context")
		filter.ProjectName, _ = cmd.Flags().GetString("project")

		if p, _ := cmd.Flags().GetString("priority"); p != "" {
			priority, err := models.ParsePriority(p)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			filter.Priority = string(priority)
		}

		if due, _ := cmd.Flags().GetString("due"); due != "" {
			start, end := newResolver(cfg).ResolveDateRange(due)
			if start == "" && end == "" {
				warnIfNoAPIKey(cfg)
				output.Warn("Could not parse date range %q. Showing all dates.", due)
			}
			filter.DueStart = start
			filter.DueEnd = end
		}

		tasks, err := store.ListTasks(filter)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found matching your criteria.")
			return nil
		}

		fmt.Printf("Found %d tasks:\n", len(tasks))
		output.Tasks(os.Stdout, tasks)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolP("all", "a", false, "List all tasks, including completed ones")
	listCmd.Flags().StringP("priority", "p", "", "Filter by priority (high, medium, low)")
	listCmd.Flags().String("due", "", "Filter by due date range (e.g. 'today', 'this week')")
	listCmd.Flags().StringP("context", "c", "", "Filter by context")
	listCmd.Flags().String("project", "", "Filter by project")
	listCmd.Flags().Bool("overdue", false, "Show only overdue tasks")
	listCmd.Flags().Bool("completed", false, "Show only completed tasks")
}
