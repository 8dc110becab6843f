package database

import (
	"fmt"
	"sort"
)

// SlotType classifies a schedule slot's activity
type SlotType string

const (
	SlotTypePersonal   SlotType = "personal"
	SlotTypeClass      SlotType = "class"
	SlotTypeStudying   SlotType = "studying"
	SlotTypeCommute    SlotType = "commute"
	SlotTypeFree       SlotType = "free"
	SlotTypeSleep      SlotType = "sleep"
	SlotTypeBreak      SlotType = "break"
	SlotTypeUniversity SlotType = "university"
	SlotTypeChurch     SlotType = "church"
)

var validSlotTypes = map[SlotType]bool{
	SlotTypePersonal:   true,
	SlotTypeClass:      true,
	SlotTypeStudying:   true,
	SlotTypeCommute:    true,
	SlotTypeFree:       true,
	SlotTypeSleep:      true,
	SlotTypeBreak:      true,
	SlotTypeUniversity: true,
	SlotTypeChurch:     true,
}

// IsValidSlotType reports whether t is one of the known slot types
func IsValidSlotType(t SlotType) bool {
	return validSlotTypes[t]
}

// ScheduleSlot is one entry in the persona's weekly schedule.
// Slots have no identity beyond day and position; a day's slots are
// replaced wholesale on save and kept ordered by start time.
type ScheduleSlot struct {
	ID        int64    `json:"-"`
	DayOfWeek int      `json:"day_of_week"`
	Position  int      `json:"-"`
	Time      string   `json:"time"`
	Activity  string   `json:"activity"`
	Emoji     string   `json:"emoji"`
	Type      SlotType `json:"type"`
}

// GetScheduleDay retrieves the ordered slots for one weekday (0=Sunday)
func (d *DB) GetScheduleDay(dayOfWeek int) ([]ScheduleSlot, error) {
	rows, err := d.Query(`
		SELECT id, day_of_week, position, time, activity, emoji, type
		FROM schedule_slots
		WHERE day_of_week = ?
		ORDER BY time ASC, position ASC
	`, dayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule day: %w", err)
	}
	defer rows.Close()

	var slots []ScheduleSlot
	for rows.Next() {
		var slot ScheduleSlot
		if err := rows.Scan(&slot.ID, &slot.DayOfWeek, &slot.Position, &slot.Time, &slot.Activity, &slot.Emoji, &slot.Type); err != nil {
			return nil, fmt.Errorf("failed to scan schedule slot: %w", err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule slots: %w", err)
	}

	return slots, nil
}

// GetScheduleWeek retrieves the full weekly schedule keyed by weekday
func (d *DB) GetScheduleWeek() (map[int][]ScheduleSlot, error) {
	week := make(map[int][]ScheduleSlot, 7)
	for day := 0; day < 7; day++ {
		slots, err := d.GetScheduleDay(day)
		if err != nil {
			return nil, err
		}
		week[day] = slots
	}
	return week, nil
}

// ReplaceScheduleDay swaps out a full day's slots in one transaction.
// Slots are sorted by start time before insert so the ordering invariant
// holds no matter what order the editor sends them in.
func (d *DB) ReplaceScheduleDay(dayOfWeek int, slots []ScheduleSlot) error {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return fmt.Errorf("invalid day of week: %d", dayOfWeek)
	}
	for _, slot := range slots {
		if !IsValidSlotType(slot.Type) {
			return fmt.Errorf("invalid slot type: %s", slot.Type)
		}
	}

	sorted := make([]ScheduleSlot, len(slots))
	copy(sorted, slots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})

	tx, err := d.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin schedule replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM schedule_slots WHERE day_of_week = ?`, dayOfWeek); err != nil {
		return fmt.Errorf("failed to clear schedule day: %w", err)
	}

	for i, slot := range sorted {
		_, err := tx.Exec(`
			INSERT INTO schedule_slots (day_of_week, position, time, activity, emoji, type)
			VALUES (?, ?, ?, ?, ?, ?)
		`, dayOfWeek, i, slot.Time, slot.Activity, slot.Emoji, slot.Type)
		if err != nil {
			return fmt.Errorf("failed to insert schedule slot: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schedule replace: %w", err)
	}

	return nil
}

// CountScheduleSlots returns the total number of slots across the week
func (d *DB) CountScheduleSlots() (int, error) {
	var count int
	err := d.QueryRow(`SELECT COUNT(*) FROM schedule_slots`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count schedule slots: %w", err)
	}
	return count, nil
}
