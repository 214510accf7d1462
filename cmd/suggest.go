package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfinley/taskwise/internal/config"
	"github.com/mfinley/taskwise/internal/db"
	"github.com/mfinley/taskwise/internal/dateparse"
	"github.com/mfinley/taskwise/internal/gemini"
	"github.com/mfinley/taskwise/internal/output"
	"github.com/mfinley/taskwise/internal/suggest"
)

var suggestDueCmd = &cobra.Command{
	Use:   "suggest-due [description]",
	Short: "Suggest a due date for a task description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		if !warnIfNoAPIKey(cfg) {
			return nil
		}

		fmt.Println("Analyzing task description...")

		suggested, err := suggest.DueDate(gemini.New(cfg.APIKey()), args[0])
		if err != nil {
			output.Warn("Could not suggest a due date for this task.")
			return nil
		}

		output.Success("Suggested due date: %s", dateparse.FormatRelative(&suggested))
		fmt.Printf("Raw date: %s\n", suggested)
		return nil
	},
}

var suggestContextCmd = &cobra.Command{
	Use:   "suggest-context [description]",
	Short: "Suggest a context for a task description",
	Long:  `Pick the most relevant of the existing contexts for a task description, or 'general' when none fits.`,
	Args:  cobra.ExactArgs(1),
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

		contexts, err := store.ListContexts()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		names := make([]string, len(contexts))
		for i, c := range contexts {
			names[i] = c.Name
		}

		if len(names) > 0 && !warnIfNoAPIKey(cfg) {
			fmt.Println("general")
			return nil
		}

		suggested, err := suggest.Context(gemini.New(cfg.APIKey()), args[0], names)
		if err != nil {
			output.Warn("Could not suggest a context for this task.")
			fmt.Println("general")
			return nil
		}

		fmt.Println(suggested)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestDueCmd)
	rootCmd.AddCommand(suggestContextCmd)
}
