package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/tendhq/tend/internal/journal"
)

// taskRequest is the POST /v1/tasks body.
type taskRequest struct {
	UserID   string `json:"user_id"`
	Title    string `json:"title"`
	Priority int    `json:"priority,omitempty"`
	Category string `json:"category,omitempty"`
	DueAt    string `json:"due_at,omitempty"`
}

func (t taskRequest) validate() error {
	switch {
	case strings.TrimSpace(t.UserID) == "":
		return errors.New("missing user_id")
	case strings.TrimSpace(t.Title) == "":
		return errors.New("missing title")
	}
	if t.DueAt != "" {
		if _, err := time.Parse(time.RFC3339, t.DueAt); err != nil {
			return errors.New("invalid due_at; must be RFC3339")
		}
	}
	return nil
}

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.createTask(w, r)
	case http.MethodGet:
		s.listTasks(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("invalid JSON body"))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	t := journal.Task{
		UserID:   req.UserID,
		Title:    req.Title,
		Priority: req.Priority,
		Category: req.Category,
	}
	if req.DueAt != "" {
		due, _ := time.Parse(time.RFC3339, req.DueAt)
		t.DueAt = &due
	}

	stored, err := s.db.CreateTask(t)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	// Task creation is itself a behavioral signal.
	_, _ = s.db.InsertEvent(journal.Event{
		UserID: stored.UserID,
		TaskID: stored.ID,
		Kind:   journal.KindTaskCreated,
	})

	writeJSON(w, http.StatusCreated, stored)
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("missing user parameter"))
		return
	}
	tasks, err := s.db.ListTasks(userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if tasks == nil {
		tasks = []journal.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

// completeRequest is the POST /v1/tasks/complete body.
type completeRequest struct {
	UserID string `json:"user_id"`
	TaskID string `json:"task_id"`
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req completeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("invalid JSON body"))
		return
	}
	if req.UserID == "" || req.TaskID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("missing user_id or task_id"))
		return
	}

	now := s.now().UTC()
	if err := s.db.CompleteTask(req.TaskID, now); err != nil {
		writeError(w, http.StatusNotFound, "not_found", err)
		return
	}

	_, _ = s.db.InsertEvent(journal.Event{
		UserID:    req.UserID,
		TaskID:    req.TaskID,
		Kind:      journal.KindTaskCompleted,
		Timestamp: now,
	})

	writeJSON(w, http.StatusOK, map[string]string{"status": "completed"})
}
