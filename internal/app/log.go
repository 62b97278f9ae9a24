package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tendhq/tend/internal/journal"
)

var (
	flagLogUser string
	flagLogTask string
	flagLogData []string
	flagLogTime string
)

var logCmd = &cobra.Command{
	Use:   "log <kind>",
	Short: "Record a behavioral event",
	Long: `Record an event in the log. Known kinds: daily_check_in,
wake_time_logged, task_created, task_started, task_completed,
task_snoozed, reminder_sent, screen_transition, button_clicked.
Unknown kinds are stored as given.

Examples:
  tend log daily_check_in --user u1
  tend log wake_time_logged --user u1 --data time=2026-09-01T06:30:00Z
  tend log task_started --user u1 --task t1`,
	Args: cobra.ExactArgs(1),
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVar(&flagLogUser, "user", "", "User id")
	logCmd.Flags().StringVar(&flagLogTask, "task", "", "Related task id")
	logCmd.Flags().StringArrayVar(&flagLogData, "data", nil, "Payload entry as key=value (repeatable)")
	logCmd.Flags().StringVar(&flagLogTime, "time", "", "Event timestamp (RFC3339, default now)")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	_, db, _, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	if flagLogUser == "" {
		return fmt.Errorf("--user is required")
	}

	e := journal.Event{
		UserID: flagLogUser,
		TaskID: flagLogTask,
		Kind:   journal.ParseKind(args[0]),
	}

	if len(flagLogData) > 0 {
		e.Payload = make(map[string]string, len(flagLogData))
		for _, kv := range flagLogData {
			key, value, ok := strings.Cut(kv, "=")
			if !ok {
				return fmt.Errorf("invalid --data entry %q (want key=value)", kv)
			}
			e.Payload[key] = value
		}
	}

	if flagLogTime != "" {
		ts, err := time.Parse(time.RFC3339, flagLogTime)
		if err != nil {
			return fmt.Errorf("invalid --time: %w", err)
		}
		e.Timestamp = ts
	}

	stored, err := db.InsertEvent(e)
	if err != nil {
		return fmt.Errorf("recording event: %w", err)
	}

	if flagVerbose {
		fmt.Printf("recorded %s event %s\n", stored.Kind, stored.ID)
	}
	return nil
}
