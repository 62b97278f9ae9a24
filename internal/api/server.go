// Package api exposes the scoring engine and its collaborators over HTTP.
// Handlers stay thin: validate, resolve the window, call the engine or
// store, encode JSON.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/tendhq/tend/internal/engine"
	"github.com/tendhq/tend/internal/store"
)

// Server wires HTTP routes for the tend API.
type Server struct {
	db     *store.DB
	engine *engine.Engine
	// now is swappable in tests so window resolution is deterministic.
	now func() time.Time
}

// NewServer creates an API server around the store and engine.
func NewServer(db *store.DB, eng *engine.Engine) *Server {
	return &Server{db: db, engine: eng, now: time.Now}
}

// Register attaches all routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/users", s.handleUsers)
	mux.HandleFunc("/v1/events", s.handlePostEvent)
	mux.HandleFunc("/v1/tasks", s.handleTasks)
	mux.HandleFunc("/v1/tasks/complete", s.handleCompleteTask)
	mux.HandleFunc("/v1/score", s.handleScore)
	mux.HandleFunc("/v1/features", s.handleFeatures)
	mux.HandleFunc("/v1/insights", s.handleInsights)
	mux.HandleFunc("/v1/plant", s.handlePlant)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"model_ready": s.engine.ModelReady(),
	})
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// userWindow resolves the user and window query parameters shared by the
// read endpoints.
func (s *Server) userWindow(r *http.Request) (userID string, w store.Window, err error) {
	userID = r.URL.Query().Get("user")
	if userID == "" {
		return "", store.Window{}, errMissingUser
	}
	name := r.URL.Query().Get("window")
	if name == "" {
		name = "today"
	}
	w, err = store.WindowFor(name, s.now())
	return userID, w, err
}
