package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tendhq/tend/internal/engine"
	"github.com/tendhq/tend/internal/output"
	"github.com/tendhq/tend/internal/store"
)

var (
	flagScoreUser   string
	flagScoreWindow string
	flagScoreAll    bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the productivity score for a user and window",
	Long: `Compute the rule-based productivity score (focus, consistency, energy,
total) over the chosen window, plus the learned model's estimate when a
trained model is available.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&flagScoreUser, "user", "", "User id to score")
	scoreCmd.Flags().StringVar(&flagScoreWindow, "window", "today", "Reporting window: today, week, or all")
	scoreCmd.Flags().BoolVar(&flagScoreAll, "all", false, "Score every registered user")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	_, db, eng, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	if flagScoreAll {
		return scoreAllUsers(db, eng)
	}
	if flagScoreUser == "" {
		return fmt.Errorf("--user is required (or pass --all)")
	}

	eval, win, err := evaluateUser(db, eng, flagScoreUser, flagScoreWindow)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(eval)
	}

	renderEvaluation(flagScoreUser, win.Name, eval)
	return nil
}

func evaluateUser(db *store.DB, eng *engine.Engine, userID, windowName string) (engine.Evaluation, store.Window, error) {
	user, err := resolveUser(db, userID)
	if err != nil {
		return engine.Evaluation{}, store.Window{}, err
	}
	events, tasks, win, err := loadWindow(db, userID, windowName)
	if err != nil {
		return engine.Evaluation{}, store.Window{}, err
	}

	eval := eng.Evaluate(events, tasks, user, time.Now())

	// Record history; a snapshot failure never fails the command.
	_, _ = db.InsertScoreSnapshot(store.ScoreSnapshot{
		UserID:        userID,
		Window:        win.Name,
		Score:         eval.Score,
		Predicted:     eval.Predicted,
		HasPrediction: eval.HasPrediction,
	})

	return eval, win, nil
}

// scoreAllUsers evaluates every registered user concurrently. Evaluations
// are independent pure computations, so they parallelize freely.
func scoreAllUsers(db *store.DB, eng *engine.Engine) error {
	users, err := db.ListUsers()
	if err != nil {
		return fmt.Errorf("listing users: %w", err)
	}
	if len(users) == 0 {
		fmt.Println("no users registered")
		return nil
	}

	evals := make([]engine.Evaluation, len(users))
	var g errgroup.Group
	for i, u := range users {
		i, u := i, u
		g.Go(func() error {
			eval, _, err := evaluateUser(db, eng, u.ID, flagScoreWindow)
			if err != nil {
				return fmt.Errorf("scoring %s: %w", u.ID, err)
			}
			evals[i] = eval
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if flagJSON {
		out := make(map[string]engine.Evaluation, len(users))
		for i, u := range users {
			out[u.ID] = evals[i]
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	table := output.NewTable("User", "Focus", "Consistency", "Energy", "Total", "Model")
	for i, u := range users {
		name := u.Name
		if name == "" {
			name = u.ID
		}
		model := "-"
		if evals[i].HasPrediction {
			model = fmt.Sprintf("%.1f", evals[i].Predicted)
		}
		s := evals[i].Score
		table.AddRow(name,
			fmt.Sprintf("%d", s.Focus),
			fmt.Sprintf("%d", s.Consistency),
			fmt.Sprintf("%d", s.Energy),
			fmt.Sprintf("%d", s.Total),
			model)
	}
	table.Print()
	return nil
}

func renderEvaluation(userID, window string, eval engine.Evaluation) {
	fmt.Println(output.Section(fmt.Sprintf("Score for %s (%s)", userID, window)))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Focus"), output.ScoreBar(float64(eval.Score.Focus), 20))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Consistency"), output.ScoreBar(float64(eval.Score.Consistency), 20))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Energy"), output.ScoreBar(float64(eval.Score.Energy), 20))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Total"), output.ScoreBar(float64(eval.Score.Total), 20))

	if eval.HasPrediction {
		fmt.Println(output.MetricLine("Model estimate", fmt.Sprintf("%.1f", eval.Predicted)))
	} else if flagVerbose {
		fmt.Println(output.StyleMuted.Render(" no trained model loaded; rule-based score only"))
	}

	fmt.Println(output.MetricLine("Sessions", fmt.Sprintf("%d", eval.Sessions.Count)))
	fmt.Println(output.MetricLine("Avg session (min)", fmt.Sprintf("%.1f", eval.Sessions.AvgMinutes)))
	fmt.Println()
}
