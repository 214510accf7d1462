package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfinley/taskwise/internal/db"
	"github.com/mfinley/taskwise/internal/output"
)

var addContextCmd = &cobra.Command{
	Use:   "add-context [name]",
	Short: "Add a new context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := db.Open(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer store.Close()

		ctx, err := store.CreateContext(args[0])
		if err != nil {
			output.Error("adding context: %v", err)
			return err
		}

		output.Success("Context %q added with ID %d.", ctx.Name, ctx.ID)
		return nil
	},
}

var listContextsCmd = &cobra.Command{
	Use:   "list-contexts",
	Short: "List all contexts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := db.Open(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer store.Close()

		contexts, err := store.ListContexts()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if len(contexts) == 0 {
			fmt.Println("No contexts found.")
			return nil
		}

		output.Contexts(os.Stdout, contexts)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addContextCmd)
	rootCmd.AddCommand(listContextsCmd)
}
