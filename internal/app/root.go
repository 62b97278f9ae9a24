// Package app contains the Cobra command tree for tend.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "tend",
	Short: "Personal productivity tracking with daily scores and a growing plant",
	Long: `tend turns logged tasks and behavioral events into a daily productivity
score (focus, consistency, energy), derives work sessions from raw event
timestamps, and grows a plant as weekly task completion improves. A trained
regression model, when present, provides a second score estimate alongside
the rule-based one.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("tend", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  score      Compute today's productivity score")
		fmt.Println("  features   Show the model feature vector")
		fmt.Println("  sessions   Show derived work sessions")
		fmt.Println("  insights   Show behavioral pattern stats")
		fmt.Println("  plant      Show or grow the plant")
		fmt.Println("  log        Record a behavioral event")
		fmt.Println("  task       Manage tasks")
		fmt.Println("  user       Manage users")
		fmt.Println("  serve      Run the HTTP API")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/tend/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
