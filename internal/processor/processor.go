// Package processor orchestrates what happens to each incoming chat
// message: store it, try to close a pending plan, otherwise try to detect a
// new one, then run the stale sweep. Everything is synchronous and
// request-scoped; there are no background workers.
package processor

import (
	"fmt"
	"time"

	"github.com/tomoki/misuki/internal/database"
	"github.com/tomoki/misuki/internal/extractor"
	"github.com/tomoki/misuki/internal/lifecycle"
)

// Result summarizes what one message triggered
type Result struct {
	MessageID        int64                `json:"message_id"`
	CompletedEventID *int64               `json:"completed_event_id,omitempty"`
	Detected         *extractor.Candidate `json:"detected,omitempty"`
	EventSaved       bool                 `json:"event_saved"`
	SweptEvents      int64                `json:"swept_events"`
}

type Processor struct {
	db        *database.DB
	events    *lifecycle.Manager
	localTZ   *time.Location
	staleDays int
}

func New(db *database.DB, events *lifecycle.Manager, localTZ *time.Location, staleDays int) *Processor {
	if staleDays <= 0 {
		staleDays = lifecycle.DefaultStaleDays
	}
	return &Processor{
		db:        db,
		events:    events,
		localTZ:   localTZ,
		staleDays: staleDays,
	}
}

// HandleMessage runs the full per-message pass. Detection failures are not
// errors: a message with no temporal intent just stores and sweeps.
func (p *Processor) HandleMessage(userID int64, text string, now time.Time) (*Result, error) {
	messageID, err := p.db.CreateConversationMessage(userID, "user", text, now)
	if err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	result := &Result{MessageID: messageID}

	pending, err := p.db.GetAllPendingEvents(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending events: %w", err)
	}

	localNow := now.In(p.localTZ)

	if completedID := lifecycle.DetectCompletion(text, pending); completedID != nil {
		if err := p.events.MarkCompleted(*completedID, now); err != nil {
			fmt.Printf("Warning: failed to mark event %d completed: %v\n", *completedID, err)
		} else {
			result.CompletedEventID = completedID
		}
	} else if candidate := extractor.Detect(text, localNow); candidate != nil {
		result.Detected = candidate
		saved, err := p.events.Save(userID, candidate, &messageID, localNow)
		if err != nil {
			fmt.Printf("Warning: failed to save detected event: %v\n", err)
		}
		result.EventSaved = saved
	}

	// Inline backstop; deliberately not a scheduled job
	swept, err := p.events.SweepStale(userID, p.staleDays, localNow)
	if err != nil {
		fmt.Printf("Warning: stale sweep failed: %v\n", err)
	}
	result.SweptEvents = swept

	return result, nil
}
