package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/tendhq/tend/internal/journal"
)

// eventRequest is the POST /v1/events body.
type eventRequest struct {
	UserID    string            `json:"user_id"`
	TaskID    string            `json:"task_id,omitempty"`
	Kind      string            `json:"kind"`
	Payload   map[string]string `json:"payload,omitempty"`
	Device    string            `json:"device,omitempty"`
	Timestamp string            `json:"timestamp,omitempty"`
}

func (e eventRequest) validate() error {
	switch {
	case strings.TrimSpace(e.UserID) == "":
		return errors.New("missing user_id")
	case strings.TrimSpace(e.Kind) == "":
		return errors.New("missing kind")
	}
	if e.Timestamp != "" {
		if _, err := time.Parse(time.RFC3339, e.Timestamp); err != nil {
			return errors.New("invalid timestamp; must be RFC3339")
		}
	}
	return nil
}

func (s *Server) handlePostEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("invalid JSON body"))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	e := journal.Event{
		UserID:  req.UserID,
		TaskID:  req.TaskID,
		Kind:    journal.ParseKind(req.Kind),
		Payload: req.Payload,
		Device:  req.Device,
	}
	if req.Timestamp != "" {
		ts, _ := time.Parse(time.RFC3339, req.Timestamp)
		e.Timestamp = ts
	}

	stored, err := s.db.InsertEvent(e)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}
