package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfinley/taskwise/internal/db"
	"github.com/mfinley/taskwise/internal/output"
)

var addProjectCmd = &cobra.Command{
	Use:   "add-project [name]",
	Short: "Add a new project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := db.Open(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer store.Close()

		proj, err := store.CreateProject(args[0])
		if err != nil {
			output.Error("adding project: %v", err)
			return err
		}

		output.Success("Project %q added with ID %d.", proj.Name, proj.ID)
		return nil
	},
}

var listProjectsCmd = &cobra.Command{
	Use:   "list-projects",
	Short: "List all projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := db.Open(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer store.Close()

		projects, err := store.ListProjects()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if len(projects) == 0 {
			fmt.Println("No projects found.")
			return nil
		}

		output.Projects(os.Stdout, projects)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addProjectCmd)
	rootCmd.AddCommand(listProjectsCmd)
}
