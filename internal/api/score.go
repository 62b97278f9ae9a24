package api

import (
	"errors"
	"net/http"

	"github.com/tendhq/tend/internal/journal"
	"github.com/tendhq/tend/internal/store"
)

// loadWindow fetches the events and tasks an evaluation needs.
func (s *Server) loadWindow(userID string, w store.Window) ([]journal.Event, []journal.Task, error) {
	events, err := s.db.EventsInWindow(userID, w)
	if err != nil {
		return nil, nil, err
	}
	tasks, err := s.db.ListTasks(userID)
	if err != nil {
		return nil, nil, err
	}
	return events, tasks, nil
}

// handleScore serves GET /v1/score?user=...&window=today|week|all with the
// combined rule-based and learned result.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	userID, win, err := s.userWindow(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	user, err := s.db.GetUser(userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "not_found", errors.New("unknown user"))
		return
	}

	events, tasks, err := s.loadWindow(userID, win)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	eval := s.engine.Evaluate(events, tasks, *user, s.now())

	// Persist a snapshot so trends survive across requests. Failure to
	// record history never fails the read.
	_, _ = s.db.InsertScoreSnapshot(store.ScoreSnapshot{
		UserID:        userID,
		Window:        win.Name,
		Score:         eval.Score,
		Predicted:     eval.Predicted,
		HasPrediction: eval.HasPrediction,
	})

	writeJSON(w, http.StatusOK, eval)
}

// handleFeatures serves GET /v1/features with the raw feature vector, for
// debugging model inputs.
func (s *Server) handleFeatures(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	userID, win, err := s.userWindow(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	events, tasks, err := s.loadWindow(userID, win)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	vec := s.engine.Features(events, tasks, journal.User{ID: userID})
	writeJSON(w, http.StatusOK, vec)
}
