package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomoki/misuki/internal/database"
)

const testUserID int64 = 1

func newTestResolver(t *testing.T) (*Resolver, *database.DB) {
	t.Helper()
	db := database.NewTestDB(t)
	return NewResolver(db, time.UTC, time.UTC, DefaultWokenWindow), db
}

func seedWednesday(t *testing.T, db *database.DB) {
	t.Helper()
	// 2026-03-04 is a Wednesday (weekday 3)
	require.NoError(t, db.ReplaceScheduleDay(3, []database.ScheduleSlot{
		{Time: "07:00", Activity: "Morning routine", Emoji: "☀️", Type: database.SlotTypePersonal},
		{Time: "09:00", Activity: "Music theory lecture", Emoji: "📚", Type: database.SlotTypeClass},
		{Time: "15:00", Activity: "Piano practice", Emoji: "🎹", Type: database.SlotTypeStudying},
		{Time: "23:00", Activity: "Sleeping", Emoji: "😴", Type: database.SlotTypeSleep},
	}))
}

func TestResolvePicksLatestStartedSlot(t *testing.T) {
	r, db := newTestResolver(t)
	seedWednesday(t, db)

	// 10:30 falls inside the 09:00 lecture slot
	desc, err := r.Resolve(testUserID, time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "class", desc.Type)
	assert.Equal(t, "Music theory lecture", desc.Text)
	assert.Equal(t, "since 09:00", desc.Detail)
	assert.Equal(t, ColorForSlotType(database.SlotTypeClass), desc.Color)
	assert.False(t, desc.IsOverride)
	assert.False(t, desc.WasWoken)
}

func TestResolveSlotBoundaryIsInclusive(t *testing.T) {
	r, db := newTestResolver(t)
	seedWednesday(t, db)

	// Exactly at 15:00 the practice slot has started
	desc, err := r.Resolve(testUserID, time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "Piano practice", desc.Text)
}

func TestResolveWrapsToPreviousDay(t *testing.T) {
	r, db := newTestResolver(t)

	// Wednesday ends with a sleep slot; Thursday starts at 08:00
	require.NoError(t, db.ReplaceScheduleDay(3, []database.ScheduleSlot{
		{Time: "07:00", Activity: "Morning routine", Emoji: "☀️", Type: database.SlotTypePersonal},
		{Time: "23:00", Activity: "Sleeping", Emoji: "😴", Type: database.SlotTypeSleep},
	}))
	require.NoError(t, db.ReplaceScheduleDay(4, []database.ScheduleSlot{
		{Time: "08:00", Activity: "Lecture", Emoji: "📚", Type: database.SlotTypeClass},
	}))

	// Thursday 02:00: before Thursday's first slot, so Wednesday's last slot
	// (sleep) still applies
	desc, err := r.Resolve(testUserID, time.Date(2026, 3, 5, 2, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "sleep", desc.Type)
	assert.Equal(t, "Sleeping", desc.Text)
}

func TestResolveEmptySchedule(t *testing.T) {
	r, _ := newTestResolver(t)

	desc, err := r.Resolve(testUserID, time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "free", desc.Type)
	assert.Equal(t, "free time", desc.Text)
	assert.False(t, desc.IsOverride)
}

func TestResolveOverrideTakesPrecedence(t *testing.T) {
	r, db := newTestResolver(t)
	seedWednesday(t, db)

	_, err := db.SetOverride(&database.ScheduleOverride{
		UserID:        testUserID,
		ActivityType:  "going_somewhere",
		ActivityEmoji: "🎡",
		ActivityText:  "at the amusement park",
		ActivityColor: "#4A90D9",
	})
	require.NoError(t, err)

	desc, err := r.Resolve(testUserID, time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, desc.IsOverride)
	assert.Equal(t, "at the amusement park", desc.Text)
	assert.Equal(t, "going_somewhere", desc.Type)

	// Clearing the override drops back to the schedule
	require.NoError(t, db.ClearOverride(testUserID))

	desc, err = r.Resolve(testUserID, time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, desc.IsOverride)
	assert.Equal(t, "Music theory lecture", desc.Text)
}

func TestResolveWasWoken(t *testing.T) {
	r, db := newTestResolver(t)
	seedWednesday(t, db)

	// 23:30 falls in the sleep slot
	now := time.Date(2026, 3, 4, 23, 30, 0, 0, time.UTC)

	// No messages at all: asleep, not woken
	desc, err := r.Resolve(testUserID, now)
	require.NoError(t, err)
	assert.Equal(t, "sleep", desc.Type)
	assert.False(t, desc.WasWoken)

	// A message two minutes ago is inside the woken window
	_, err = db.CreateConversationMessage(testUserID, "user", "hey, you up?", now.Add(-2*time.Minute))
	require.NoError(t, err)

	desc, err = r.Resolve(testUserID, now)
	require.NoError(t, err)
	assert.True(t, desc.WasWoken)

	// Ten minutes later the window has passed
	desc, err = r.Resolve(testUserID, now.Add(10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "sleep", desc.Type)
	assert.False(t, desc.WasWoken)
}

func TestResolveWokenOnlyDuringSleep(t *testing.T) {
	r, db := newTestResolver(t)
	seedWednesday(t, db)

	now := time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)
	_, err := db.CreateConversationMessage(testUserID, "user", "morning!", now.Add(-time.Minute))
	require.NoError(t, err)

	desc, err := r.Resolve(testUserID, now)
	require.NoError(t, err)
	assert.Equal(t, "class", desc.Type)
	assert.False(t, desc.WasWoken)
}

func TestResolveHomeTimezoneDrivesSchedule(t *testing.T) {
	db := database.NewTestDB(t)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	r := NewResolver(db, tokyo, time.UTC, DefaultWokenWindow)

	// Thursday in Tokyo while it is still Wednesday afternoon in UTC
	require.NoError(t, db.ReplaceScheduleDay(4, []database.ScheduleSlot{
		{Time: "00:00", Activity: "Sleeping", Emoji: "😴", Type: database.SlotTypeSleep},
	}))

	// 2026-03-04 16:00 UTC is 2026-03-05 01:00 in Tokyo
	desc, err := r.Resolve(testUserID, time.Date(2026, 3, 4, 16, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "Sleeping", desc.Text)
}

func TestResolveRecordsStatusLog(t *testing.T) {
	r, db := newTestResolver(t)
	seedWednesday(t, db)

	_, err := r.Resolve(testUserID, time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	rec, err := db.GetStatusRecord(testUserID)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "class", rec.StatusType)
	assert.False(t, rec.IsOverride)

	// The next resolution overwrites the record
	_, err = r.Resolve(testUserID, time.Date(2026, 3, 4, 16, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	rec, err = db.GetStatusRecord(testUserID)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "studying", rec.StatusType)
}
