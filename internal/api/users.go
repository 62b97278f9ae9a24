package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/tendhq/tend/internal/journal"
)

var errMissingUser = errors.New("missing user parameter")

// userRequest is the POST /v1/users body.
type userRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Chronotype string `json:"chronotype,omitempty"`
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req userRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", errors.New("invalid JSON body"))
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			writeError(w, http.StatusBadRequest, "bad_request", errors.New("missing name"))
			return
		}
		u, err := s.db.CreateUser(journal.User{
			Name:       req.Name,
			Email:      req.Email,
			Chronotype: req.Chronotype,
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err)
			return
		}
		writeJSON(w, http.StatusCreated, u)
	case http.MethodGet:
		users, err := s.db.ListUsers()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err)
			return
		}
		if users == nil {
			users = []journal.User{}
		}
		writeJSON(w, http.StatusOK, users)
	default:
		http.NotFound(w, r)
	}
}
