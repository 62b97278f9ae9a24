package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tendhq/tend/internal/output"
	"github.com/tendhq/tend/internal/plant"
)

var (
	flagPlantUser string
	flagPlantGrow bool
)

var plantCmd = &cobra.Command{
	Use:   "plant",
	Short: "Show or grow the weekly plant",
	Long: `Show the current plant level. With --grow, re-evaluate this week's task
completion ratio and update the level (0-10).`,
	RunE: runPlant,
}

func init() {
	plantCmd.Flags().StringVar(&flagPlantUser, "user", "", "User id")
	plantCmd.Flags().BoolVar(&flagPlantGrow, "grow", false, "Re-evaluate growth from this week's tasks")
	rootCmd.AddCommand(plantCmd)
}

func runPlant(cmd *cobra.Command, args []string) error {
	_, db, _, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	if flagPlantUser == "" {
		return fmt.Errorf("--user is required")
	}

	state, err := db.GetPlant(flagPlantUser)
	if err != nil {
		return fmt.Errorf("loading plant: %w", err)
	}

	if !flagPlantGrow {
		if flagJSON {
			return json.NewEncoder(os.Stdout).Encode(state)
		}
		fmt.Println(output.Section("Plant"))
		fmt.Println(" " + output.PlantStage(state.Level))
		return nil
	}

	tasks, err := db.ListTasks(flagPlantUser)
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}

	update := plant.Grow(state.Level, tasks, time.Now())
	state.UserID = flagPlantUser
	state.Level = update.Level
	state.LastUpdated = time.Now().UTC()
	if err := db.SavePlant(state); err != nil {
		return fmt.Errorf("saving plant: %w", err)
	}

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(update)
	}

	fmt.Println(output.Section("Plant"))
	fmt.Println(" " + output.PlantStage(update.Level))
	fmt.Println(" " + update.Message)
	return nil
}
