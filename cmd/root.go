package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mfinley/taskwise/internal/config"
	"github.com/mfinley/taskwise/internal/dateparse"
	"github.com/mfinley/taskwise/internal/gemini"
	"github.com/mfinley/taskwise/internal/output"
)

var (
	version string
	baseDir string
)

// SetVersion sets the version string reported by --version
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "taskwise",
	Short: "Task tracking CLI with natural-language due dates",
	Long: `taskwise - A command-line task manager that stores tasks, contexts,
and projects locally and uses the Gemini API to turn free-text date
expressions ("tomorrow at 5pm") into due dates.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)
}

// Base directory is $TASKWISE_HOME when set, ~/.taskwise otherwise
func initBaseDir() {
	if dir := os.Getenv("TASKWISE_HOME"); dir != "" {
		baseDir = dir
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine home directory: %v\n", err)
		os.Exit(1)
	}
	baseDir = filepath.Join(home, ".taskwise")
}

// getBaseDir returns the per-user base directory
func getBaseDir() string {
	return baseDir
}

// newResolver builds the date resolver for the loaded config. The
// inference fallback is wired in only when a credential exists.
func newResolver(cfg *config.Config) *dateparse.Resolver {
	r := &dateparse.Resolver{}
	if key := cfg.APIKey(); key != "" {
		r.Gen = gemini.New(key)
	}
	return r
}

// warnIfNoAPIKey nudges the user once per command when AI features
// are unavailable. Returns true when a key is configured.
func warnIfNoAPIKey(cfg *config.Config) bool {
	if cfg.APIKey() != "" {
		return true
	}
	output.Warn("Gemini API key not set. AI features will be unavailable.")
	output.Warn("Set it with: taskwise config --api-key YOUR_API_KEY")
	return false
}
