package api

import (
	"net/http"

	"github.com/tendhq/tend/internal/insights"
	"github.com/tendhq/tend/internal/journal"
	"github.com/tendhq/tend/internal/plant"
)

// handleInsights serves GET /v1/insights with behavioral pattern stats.
func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
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
		user = &journal.User{ID: userID}
	}

	events, tasks, err := s.loadWindow(userID, win)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	writeJSON(w, http.StatusOK, insights.Analyze(events, tasks, *user, win.Name))
}

// handlePlant serves GET /v1/plant (current state) and POST /v1/plant
// (re-evaluate growth against this week's tasks).
func (s *Server) handlePlant(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", errMissingUser)
		return
	}

	state, err := s.db.GetPlant(userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, state)
	case http.MethodPost:
		tasks, err := s.db.ListTasks(userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err)
			return
		}
		update := plant.Grow(state.Level, tasks, s.now())
		state.UserID = userID
		state.Level = update.Level
		state.LastUpdated = s.now().UTC()
		if err := s.db.SavePlant(state); err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err)
			return
		}
		writeJSON(w, http.StatusOK, update)
	default:
		http.NotFound(w, r)
	}
}
