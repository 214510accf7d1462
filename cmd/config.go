package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mfinley/taskwise/internal/config"
	"github.com/mfinley/taskwise/internal/models"
	"github.com/mfinley/taskwise/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Long:  `Show the current configuration, or set the Gemini API key and the default priority for new tasks.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		apiKey, _ := cmd.Flags().GetString("api-key")
		defaultPriority, _ := cmd.Flags().GetString("default-priority")

		if apiKey != "" {
			if err := cfg.Set(config.KeyAPIKey, apiKey); err != nil {
				output.Error("%v", err)
				return err
			}
			output.Success("Gemini API key set.")
		}

		if defaultPriority != "" {
			p, err := models.ParsePriority(defaultPriority)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			if err := cfg.Set(config.KeyPriorityDefault, string(p)); err != nil {
				output.Error("%v", err)
				return err
			}
			output.Success("Default priority set to %s.", p)
		}

		if apiKey == "" && defaultPriority == "" {
			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SETTING\tVALUE")
			fmt.Fprintf(tw, "API Key\t%s\n", maskKey(cfg.APIKey()))
			fmt.Fprintf(tw, "Default Priority\t%s\n", cfg.Get(config.KeyPriorityDefault, "medium"))
			tw.Flush()
		}

		return nil
	},
}

func maskKey(key string) string {
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "Not set"
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("api-key", "", "Set the Gemini API key")
	configCmd.Flags().String("default-priority", "", "Set the default priority for new tasks (high, medium, low)")
}
