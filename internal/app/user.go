package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tendhq/tend/internal/journal"
	"github.com/tendhq/tend/internal/output"
)

var (
	flagUserName       string
	flagUserEmail      string
	flagUserChronotype string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a user",
	RunE:  runUserAdd,
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered users",
	RunE:  runUserList,
}

func init() {
	userAddCmd.Flags().StringVar(&flagUserName, "name", "", "Display name")
	userAddCmd.Flags().StringVar(&flagUserEmail, "email", "", "Email address")
	userAddCmd.Flags().StringVar(&flagUserChronotype, "chronotype", "neutral", "Chronotype: morning, night_owl, or neutral")

	userCmd.AddCommand(userAddCmd, userListCmd)
	rootCmd.AddCommand(userCmd)
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	_, db, _, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	if flagUserName == "" {
		return fmt.Errorf("--name is required")
	}

	u, err := db.CreateUser(journal.User{
		Name:       flagUserName,
		Email:      flagUserEmail,
		Chronotype: flagUserChronotype,
	})
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	fmt.Println(u.ID)
	return nil
}

func runUserList(cmd *cobra.Command, args []string) error {
	_, db, _, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	users, err := db.ListUsers()
	if err != nil {
		return err
	}

	if flagJSON {
		if users == nil {
			users = []journal.User{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(users)
	}

	table := output.NewTable("ID", "Name", "Chronotype")
	for _, u := range users {
		table.AddRow(u.ID, u.Name, u.Chronotype)
	}
	table.Print()
	return nil
}
