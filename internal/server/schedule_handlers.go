package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/tomoki/misuki/internal/database"
)

func (s *Server) handleGetScheduleWeek(w http.ResponseWriter, r *http.Request) {
	week, err := s.db.GetScheduleWeek()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load schedule")
		return
	}

	respondJSON(w, http.StatusOK, week)
}

func (s *Server) handleGetScheduleDay(w http.ResponseWriter, r *http.Request) {
	day, ok := parseDay(w, r)
	if !ok {
		return
	}

	slots, err := s.db.GetScheduleDay(day)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load schedule day")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"day_of_week": day,
		"slots":       slots,
	})
}

type saveScheduleDayRequest struct {
	Slots []database.ScheduleSlot `json:"slots"`
}

// handleSaveScheduleDay is the editor save contract: the browser posts a
// full-day replacement and gets {"success": true} back
func (s *Server) handleSaveScheduleDay(w http.ResponseWriter, r *http.Request) {
	day, ok := parseDay(w, r)
	if !ok {
		return
	}

	var req saveScheduleDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.db.ReplaceScheduleDay(day, req.Slots); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func parseDay(w http.ResponseWriter, r *http.Request) (int, bool) {
	day, err := strconv.Atoi(r.PathValue("day"))
	if err != nil || day < 0 || day > 6 {
		respondError(w, http.StatusBadRequest, "day must be 0 (Sunday) through 6 (Saturday)")
		return 0, false
	}
	return day, true
}
