package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tendhq/tend/internal/journal"
	"github.com/tendhq/tend/internal/output"
)

var (
	flagTaskUser     string
	flagTaskTitle    string
	flagTaskPriority int
	flagTaskCategory string
	flagTaskDue      string
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a task",
	RunE:  runTaskAdd,
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Mark a task completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskDone,
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's tasks",
	RunE:  runTaskList,
}

func init() {
	taskAddCmd.Flags().StringVar(&flagTaskUser, "user", "", "User id")
	taskAddCmd.Flags().StringVar(&flagTaskTitle, "title", "", "Task title")
	taskAddCmd.Flags().IntVar(&flagTaskPriority, "priority", 0, "Priority 1-3")
	taskAddCmd.Flags().StringVar(&flagTaskCategory, "category", "", "Category")
	taskAddCmd.Flags().StringVar(&flagTaskDue, "due", "", "Due time (RFC3339)")

	taskDoneCmd.Flags().StringVar(&flagTaskUser, "user", "", "User id")
	taskListCmd.Flags().StringVar(&flagTaskUser, "user", "", "User id")

	taskCmd.AddCommand(taskAddCmd, taskDoneCmd, taskListCmd)
	rootCmd.AddCommand(taskCmd)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	_, db, _, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	if flagTaskUser == "" || flagTaskTitle == "" {
		return fmt.Errorf("--user and --title are required")
	}

	t := journal.Task{
		UserID:   flagTaskUser,
		Title:    flagTaskTitle,
		Priority: flagTaskPriority,
		Category: flagTaskCategory,
	}
	if flagTaskDue != "" {
		due, err := time.Parse(time.RFC3339, flagTaskDue)
		if err != nil {
			return fmt.Errorf("invalid --due: %w", err)
		}
		t.DueAt = &due
	}

	stored, err := db.CreateTask(t)
	if err != nil {
		return fmt.Errorf("creating task: %w", err)
	}

	_, _ = db.InsertEvent(journal.Event{
		UserID: stored.UserID,
		TaskID: stored.ID,
		Kind:   journal.KindTaskCreated,
	})

	fmt.Println(stored.ID)
	return nil
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	_, db, _, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	taskID := args[0]
	now := time.Now().UTC()
	if err := db.CompleteTask(taskID, now); err != nil {
		return err
	}

	if flagTaskUser != "" {
		_, _ = db.InsertEvent(journal.Event{
			UserID:    flagTaskUser,
			TaskID:    taskID,
			Kind:      journal.KindTaskCompleted,
			Timestamp: now,
		})
	}

	if flagVerbose {
		fmt.Println("completed", taskID)
	}
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	_, db, _, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	if flagTaskUser == "" {
		return fmt.Errorf("--user is required")
	}

	tasks, err := db.ListTasks(flagTaskUser)
	if err != nil {
		return err
	}

	if flagJSON {
		if tasks == nil {
			tasks = []journal.Task{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	}

	table := output.NewTable("ID", "Title", "Status", "Due")
	for _, t := range tasks {
		due := "-"
		if t.DueAt != nil {
			due = t.DueAt.Format("2006-01-02 15:04")
		}
		table.AddRow(t.ID, t.Title, string(t.Status), due)
	}
	table.Print()
	return nil
}
