package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/tomoki/misuki/internal/database"
	"github.com/tomoki/misuki/internal/timeutil"
)

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	now := time.Now().In(s.localTZ)

	var events []database.FutureEvent
	var err error

	switch r.URL.Query().Get("view") {
	case "pending":
		events, err = s.db.GetPendingEvents(userID, timeutil.DateString(now))
	case "overdue":
		events, err = s.db.GetOverdueEvents(userID, timeutil.DateString(now))
	case "today":
		events, err = s.db.GetTodayEvents(userID, timeutil.DateString(now), timeutil.ClockString(now))
	case "completed":
		completed := database.EventStatusCompleted
		events, err = s.db.ListEvents(userID, &completed)
	default:
		events, err = s.db.ListEvents(userID, nil)
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list events")
		return
	}

	if events == nil {
		events = []database.FutureEvent{}
	}
	respondJSON(w, http.StatusOK, events)
}

func (s *Server) handleCompleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	changed, err := s.db.CompleteEvent(id, time.Now())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to complete event")
		return
	}
	if !changed {
		respondError(w, http.StatusNotFound, "no pending event with that id")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleSweepEvents(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "invalid days")
			return
		}
		days = parsed
	}

	swept, err := s.events.SweepStale(userID, days, time.Now().In(s.localTZ))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to sweep events")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"swept": swept})
}
