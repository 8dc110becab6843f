package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Health Check

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(); err != nil {
		respondError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Chat API

type chatMessageRequest struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
}

func (s *Server) handleChatMessage(w http.ResponseWriter, r *http.Request) {
	var req chatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == 0 || req.Message == "" {
		respondError(w, http.StatusBadRequest, "user_id and message are required")
		return
	}

	now := time.Now()
	result, err := s.processor.HandleMessage(req.UserID, req.Message, now)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to process message")
		return
	}

	contextText, err := s.builder.Build(req.UserID, now)
	if err != nil {
		fmt.Printf("Warning: failed to build context: %v\n", err)
		contextText = ""
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"result":  result,
		"context": contextText,
	})
}

func (s *Server) handleGetContext(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	contextText, err := s.builder.Build(userID, time.Now())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to build context")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"context": contextText})
}

func (s *Server) handleGetStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	desc, err := s.resolver.Resolve(userID, time.Now())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to resolve status")
		return
	}

	respondJSON(w, http.StatusOK, desc)
}

// Helpers

func parseUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return 0, false
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid user_id")
		return 0, false
	}

	return userID, true
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		fmt.Printf("Error encoding JSON response: %v\n", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
