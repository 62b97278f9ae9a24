package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tendhq/tend/internal/feature"
	"github.com/tendhq/tend/internal/output"
)

var (
	flagFeaturesUser   string
	flagFeaturesWindow string
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Show the feature vector fed to the score model",
	Long: `Extract the fixed-order numeric feature vector for a user and window.
This is exactly what a trained model sees, so it is the first place to
look when a prediction seems off.`,
	RunE: runFeatures,
}

func init() {
	featuresCmd.Flags().StringVar(&flagFeaturesUser, "user", "", "User id")
	featuresCmd.Flags().StringVar(&flagFeaturesWindow, "window", "today", "Reporting window: today, week, or all")
	rootCmd.AddCommand(featuresCmd)
}

func runFeatures(cmd *cobra.Command, args []string) error {
	_, db, eng, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	if flagFeaturesUser == "" {
		return fmt.Errorf("--user is required")
	}

	user, err := resolveUser(db, flagFeaturesUser)
	if err != nil {
		return err
	}
	events, tasks, win, err := loadWindow(db, flagFeaturesUser, flagFeaturesWindow)
	if err != nil {
		return err
	}

	vec := eng.Features(events, tasks, user)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(vec)
	}

	fmt.Println(output.Section(fmt.Sprintf("Features for %s (%s)", flagFeaturesUser, win.Name)))
	table := output.NewTable("Feature", "Value")
	values := vec.Values()
	for i, name := range feature.Names() {
		table.AddRow(name, fmt.Sprintf("%g", values[i]))
	}
	table.Print()
	return nil
}
