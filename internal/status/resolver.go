// Package status resolves the persona's current activity from the weekly
// schedule, the active override, and the conversation history.
package status

import (
	"fmt"
	"time"

	"github.com/tomoki/misuki/internal/database"
)

// DefaultWokenWindow bounds how recently the user must have messaged for
// the persona to count as just-woken.
const DefaultWokenWindow = 5 * time.Minute

// Descriptor is the ephemeral per-query status of the persona
type Descriptor struct {
	Type       string `json:"type"`
	Emoji      string `json:"emoji"`
	Text       string `json:"text"`
	Detail     string `json:"detail"`
	Color      string `json:"color"`
	WasWoken   bool   `json:"was_woken"`
	IsOverride bool   `json:"is_override"`
}

// slotColors maps slot types to their display colors
var slotColors = map[database.SlotType]string{
	database.SlotTypePersonal:   "#f59e0b",
	database.SlotTypeClass:      "#3b82f6",
	database.SlotTypeStudying:   "#8b5cf6",
	database.SlotTypeCommute:    "#6b7280",
	database.SlotTypeFree:       "#22c55e",
	database.SlotTypeSleep:      "#1e3a8a",
	database.SlotTypeBreak:      "#14b8a6",
	database.SlotTypeUniversity: "#2563eb",
	database.SlotTypeChurch:     "#d97706",
}

// ColorForSlotType returns the display color for a slot type
func ColorForSlotType(t database.SlotType) string {
	if color, ok := slotColors[t]; ok {
		return color
	}
	return slotColors[database.SlotTypeFree]
}

// Resolver derives the persona's current status. The schedule is always
// evaluated in the persona's home timezone; the woken check correlates with
// stored message timestamps in the caller's operating timezone. Both
// locations are explicit parameters here, never process-global state.
type Resolver struct {
	db          *database.DB
	homeTZ      *time.Location
	localTZ     *time.Location
	wokenWindow time.Duration
}

func NewResolver(db *database.DB, homeTZ, localTZ *time.Location, wokenWindow time.Duration) *Resolver {
	if wokenWindow <= 0 {
		wokenWindow = DefaultWokenWindow
	}
	return &Resolver{
		db:          db,
		homeTZ:      homeTZ,
		localTZ:     localTZ,
		wokenWindow: wokenWindow,
	}
}

// Resolve computes the status descriptor for a user at the given instant.
// An active override fully replaces the schedule-derived status; it is never
// merged. Each resolution also records the last-seen status.
func (r *Resolver) Resolve(userID int64, now time.Time) (*Descriptor, error) {
	override, err := r.db.GetActiveOverride(userID)
	if err != nil {
		return nil, err
	}
	if override != nil {
		desc := &Descriptor{
			Type:       override.ActivityType,
			Emoji:      override.ActivityEmoji,
			Text:       override.ActivityText,
			Detail:     override.ActivityDetail,
			Color:      override.ActivityColor,
			IsOverride: true,
		}
		return desc, r.record(userID, desc)
	}

	slot, err := r.currentSlot(now)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		// Empty schedule; report free time rather than failing the query
		desc := &Descriptor{
			Type:  string(database.SlotTypeFree),
			Text:  "free time",
			Color: ColorForSlotType(database.SlotTypeFree),
		}
		return desc, r.record(userID, desc)
	}

	desc := &Descriptor{
		Type:   string(slot.Type),
		Emoji:  slot.Emoji,
		Text:   slot.Activity,
		Detail: fmt.Sprintf("since %s", slot.Time),
		Color:  ColorForSlotType(slot.Type),
	}

	if slot.Type == database.SlotTypeSleep {
		woken, err := r.wasWoken(userID, now)
		if err != nil {
			return nil, err
		}
		desc.WasWoken = woken
	}

	return desc, r.record(userID, desc)
}

// currentSlot picks the slot whose start time is the latest one at or before
// now on the persona's home-timezone weekday. Before the first slot of the
// day the last slot of the previous day still applies (day-boundary wrap).
func (r *Resolver) currentSlot(now time.Time) (*database.ScheduleSlot, error) {
	homeNow := now.In(r.homeTZ)
	clock := homeNow.Format("15:04")

	slots, err := r.db.GetScheduleDay(int(homeNow.Weekday()))
	if err != nil {
		return nil, err
	}

	var current *database.ScheduleSlot
	for i := range slots {
		if slots[i].Time <= clock {
			current = &slots[i]
		}
	}
	if current != nil {
		return current, nil
	}

	prevDay := (int(homeNow.Weekday()) + 6) % 7
	prevSlots, err := r.db.GetScheduleDay(prevDay)
	if err != nil {
		return nil, err
	}
	if len(prevSlots) == 0 {
		return nil, nil
	}
	return &prevSlots[len(prevSlots)-1], nil
}

// wasWoken reports whether the user's latest message arrived within the
// woken window of now. The comparison happens on the caller's wall clock so
// it lines up with stored conversation timestamps.
func (r *Resolver) wasWoken(userID int64, now time.Time) (bool, error) {
	last, err := r.db.GetLatestUserMessageTime(userID)
	if err != nil {
		return false, err
	}
	if last == nil {
		return false, nil
	}

	localNow := now.In(r.localTZ)
	elapsed := localNow.Sub(last.In(r.localTZ))
	return elapsed >= 0 && elapsed <= r.wokenWindow, nil
}

func (r *Resolver) record(userID int64, desc *Descriptor) error {
	return r.db.UpsertStatusRecord(&database.StatusRecord{
		UserID:     userID,
		StatusType: desc.Type,
		Emoji:      desc.Emoji,
		Text:       desc.Text,
		Detail:     desc.Detail,
		Color:      desc.Color,
		IsOverride: desc.IsOverride,
	})
}
