package app

import (
	"fmt"
	"time"

	"github.com/tendhq/tend/internal/config"
	"github.com/tendhq/tend/internal/engine"
	"github.com/tendhq/tend/internal/journal"
	"github.com/tendhq/tend/internal/output"
	"github.com/tendhq/tend/internal/predict"
	"github.com/tendhq/tend/internal/store"
)

// setup loads config, opens the database, and builds the engine with the
// model loaded once. Every scoring command goes through here.
func setup() (*config.Config, *store.DB, *engine.Engine, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor {
		output.SetNoColor(true)
	} else if !cfg.Output.Color {
		output.SetNoColor(true)
	} else {
		output.AutoDetect()
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening database: %w", err)
	}

	eng := engine.New(predict.NewPredictor(cfg.ModelPath))
	return cfg, db, eng, nil
}

// loadWindow fetches the events and tasks for one user and window name.
func loadWindow(db *store.DB, userID, windowName string) ([]journal.Event, []journal.Task, store.Window, error) {
	win, err := store.WindowFor(windowName, time.Now())
	if err != nil {
		return nil, nil, store.Window{}, err
	}
	events, err := db.EventsInWindow(userID, win)
	if err != nil {
		return nil, nil, store.Window{}, fmt.Errorf("loading events: %w", err)
	}
	tasks, err := db.ListTasks(userID)
	if err != nil {
		return nil, nil, store.Window{}, fmt.Errorf("loading tasks: %w", err)
	}
	return events, tasks, win, nil
}

// resolveUser returns the stored user, or a bare profile when the id was
// never registered (scoring still works; every signal just defaults).
func resolveUser(db *store.DB, userID string) (journal.User, error) {
	u, err := db.GetUser(userID)
	if err != nil {
		return journal.User{}, err
	}
	if u == nil {
		return journal.User{ID: userID}, nil
	}
	return *u, nil
}
