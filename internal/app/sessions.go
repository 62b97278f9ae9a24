package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tendhq/tend/internal/output"
	"github.com/tendhq/tend/internal/segment"
)

var (
	flagSessionsUser   string
	flagSessionsWindow string
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show work sessions derived from the event log",
	Long: `Derive work sessions for a user and window. Task start/completion pairs
take priority; when no pairs exist the raw event timeline is split on
idle gaps of fifteen minutes or more.`,
	RunE: runSessions,
}

func init() {
	sessionsCmd.Flags().StringVar(&flagSessionsUser, "user", "", "User id")
	sessionsCmd.Flags().StringVar(&flagSessionsWindow, "window", "today", "Reporting window: today, week, or all")
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	_, db, _, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	if flagSessionsUser == "" {
		return fmt.Errorf("--user is required")
	}

	events, _, win, err := loadWindow(db, flagSessionsUser, flagSessionsWindow)
	if err != nil {
		return err
	}

	sessions := segment.Segment(events)
	metrics := segment.ComputeMetrics(sessions)

	if flagJSON {
		out := struct {
			Sessions []segment.Session `json:"sessions"`
			Metrics  segment.Metrics   `json:"metrics"`
		}{Sessions: sessions, Metrics: metrics}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(output.Section(fmt.Sprintf("Sessions for %s (%s)", flagSessionsUser, win.Name)))
	if len(sessions) == 0 {
		fmt.Println(output.StyleMuted.Render(" no sessions in this window"))
		return nil
	}

	table := output.NewTable("Start", "End", "Minutes")
	for _, s := range sessions {
		table.AddRow(
			s.Start.Format(time.RFC3339),
			s.End.Format(time.RFC3339),
			fmt.Sprintf("%.1f", s.Minutes()),
		)
	}
	table.Print()

	fmt.Println(output.MetricLine("Count", fmt.Sprintf("%d", metrics.Count)))
	fmt.Println(output.MetricLine("Avg minutes", fmt.Sprintf("%.1f", metrics.AvgMinutes)))
	return nil
}
