package server

import (
	"encoding/json"
	"net/http"

	"github.com/tomoki/misuki/internal/database"
)

// Profile API

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	facts, err := s.db.GetProfileFacts(userID, r.URL.Query().Get("category"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	if facts == nil {
		facts = []database.ProfileFact{}
	}
	respondJSON(w, http.StatusOK, facts)
}

type upsertProfileRequest struct {
	UserID   int64  `json:"user_id"`
	Category string `json:"category"`
	Key      string `json:"fact_key"`
	Value    string `json:"fact_value"`
}

func (s *Server) handleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	var req upsertProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == 0 || req.Category == "" || req.Key == "" {
		respondError(w, http.StatusBadRequest, "user_id, category, and fact_key are required")
		return
	}

	if err := s.db.UpsertProfileFact(req.UserID, req.Category, req.Key, req.Value); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save profile fact")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Override API

func (s *Server) handleGetOverride(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	override, err := s.db.GetActiveOverride(userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load override")
		return
	}
	if override == nil {
		respondError(w, http.StatusNotFound, "no active override")
		return
	}

	respondJSON(w, http.StatusOK, override)
}

func (s *Server) handleSetOverride(w http.ResponseWriter, r *http.Request) {
	var override database.ScheduleOverride
	if err := json.NewDecoder(r.Body).Decode(&override); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if override.UserID == 0 || override.ActivityType == "" || override.ActivityText == "" {
		respondError(w, http.StatusBadRequest, "user_id, activity_type, and activity_text are required")
		return
	}

	saved, err := s.db.SetOverride(&override)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to set override")
		return
	}

	respondJSON(w, http.StatusOK, saved)
}

func (s *Server) handleClearOverride(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	if err := s.db.ClearOverride(userID); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to clear override")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
