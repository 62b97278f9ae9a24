package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tendhq/tend/internal/insights"
	"github.com/tendhq/tend/internal/output"
)

var (
	flagInsightsUser   string
	flagInsightsWindow string
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show behavioral pattern stats for a user",
	RunE:  runInsights,
}

func init() {
	insightsCmd.Flags().StringVar(&flagInsightsUser, "user", "", "User id")
	insightsCmd.Flags().StringVar(&flagInsightsWindow, "window", "week", "Reporting window: today, week, or all")
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
	_, db, _, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	if flagInsightsUser == "" {
		return fmt.Errorf("--user is required")
	}

	user, err := resolveUser(db, flagInsightsUser)
	if err != nil {
		return err
	}
	events, tasks, win, err := loadWindow(db, flagInsightsUser, flagInsightsWindow)
	if err != nil {
		return err
	}

	report := insights.Analyze(events, tasks, user, win.Name)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Println(output.Section(fmt.Sprintf("Insights for %s (%s)", flagInsightsUser, win.Name)))
	fmt.Println(output.MetricLine("Completed", fmt.Sprintf("%d", report.Tasks.Completed)))
	fmt.Println(output.MetricLine("Pending", fmt.Sprintf("%d", report.Tasks.Pending)))
	fmt.Println(output.MetricLine("Missed", fmt.Sprintf("%d", report.Tasks.Missed)))
	fmt.Println(output.MetricLine("Completion rate", fmt.Sprintf("%.0f%%", report.Tasks.CompletionRate*100)))
	fmt.Println(output.MetricLine("Snooze rate", fmt.Sprintf("%.0f%%", report.Snooze.SnoozeRate*100)))
	if report.Weekday.MostCommon != "" {
		fmt.Println(output.MetricLine("Most productive day", report.Weekday.MostCommon))
	}

	fmt.Println(output.Section("Completions by time of day"))
	table := output.NewTable("Hours", "Completions")
	for _, key := range []string{"0-5", "6-11", "12-17", "18-23"} {
		table.AddRow(key, fmt.Sprintf("%d", report.Timing.Buckets[key]))
	}
	table.Print()
	return nil
}
