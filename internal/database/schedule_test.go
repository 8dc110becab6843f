package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceScheduleDaySortsByTime(t *testing.T) {
	db := NewTestDB(t)

	err := db.ReplaceScheduleDay(1, []ScheduleSlot{
		{Time: "22:00", Activity: "Sleeping", Emoji: "😴", Type: SlotTypeSleep},
		{Time: "07:00", Activity: "Morning routine", Emoji: "☀️", Type: SlotTypePersonal},
		{Time: "09:00", Activity: "Lecture", Emoji: "📚", Type: SlotTypeClass},
	})
	require.NoError(t, err)

	slots, err := db.GetScheduleDay(1)
	require.NoError(t, err)
	require.Len(t, slots, 3)

	assert.Equal(t, "07:00", slots[0].Time)
	assert.Equal(t, "09:00", slots[1].Time)
	assert.Equal(t, "22:00", slots[2].Time)
	assert.Equal(t, SlotTypeClass, slots[1].Type)
}

func TestReplaceScheduleDayOverwrites(t *testing.T) {
	db := NewTestDB(t)

	require.NoError(t, db.ReplaceScheduleDay(2, []ScheduleSlot{
		{Time: "08:00", Activity: "Old entry", Emoji: "🕐", Type: SlotTypeFree},
		{Time: "12:00", Activity: "Old entry", Emoji: "🕐", Type: SlotTypeFree},
	}))

	require.NoError(t, db.ReplaceScheduleDay(2, []ScheduleSlot{
		{Time: "10:00", Activity: "New entry", Emoji: "✨", Type: SlotTypeStudying},
	}))

	slots, err := db.GetScheduleDay(2)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "New entry", slots[0].Activity)

	// Other days are untouched
	other, err := db.GetScheduleDay(3)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestReplaceScheduleDayValidation(t *testing.T) {
	db := NewTestDB(t)

	err := db.ReplaceScheduleDay(7, nil)
	assert.Error(t, err)

	err = db.ReplaceScheduleDay(-1, nil)
	assert.Error(t, err)

	err = db.ReplaceScheduleDay(1, []ScheduleSlot{
		{Time: "08:00", Activity: "Nap", Emoji: "😴", Type: SlotType("nap")},
	})
	assert.Error(t, err)

	// Nothing was written by the failed calls
	count, err := db.CountScheduleSlots()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGetScheduleWeek(t *testing.T) {
	db := NewTestDB(t)

	require.NoError(t, db.ReplaceScheduleDay(0, []ScheduleSlot{
		{Time: "10:00", Activity: "Church", Emoji: "⛪", Type: SlotTypeChurch},
	}))
	require.NoError(t, db.ReplaceScheduleDay(6, []ScheduleSlot{
		{Time: "11:00", Activity: "Free time", Emoji: "🎮", Type: SlotTypeFree},
	}))

	week, err := db.GetScheduleWeek()
	require.NoError(t, err)
	require.Len(t, week, 7)
	assert.Len(t, week[0], 1)
	assert.Len(t, week[6], 1)
	assert.Empty(t, week[3])
}

func TestSeedDefaultWeek(t *testing.T) {
	db := NewTestDB(t)

	require.NoError(t, db.SeedDefaultWeek())

	count, err := db.CountScheduleSlots()
	require.NoError(t, err)
	require.NotZero(t, count)

	// Every weekday has slots and each day stays time-ordered
	for day := 0; day < 7; day++ {
		slots, err := db.GetScheduleDay(day)
		require.NoError(t, err)
		require.NotEmpty(t, slots, "day %d", day)
		for i := 1; i < len(slots); i++ {
			assert.LessOrEqual(t, slots[i-1].Time, slots[i].Time)
		}
	}

	// Seeding again is a no-op on a populated schedule
	require.NoError(t, db.SeedDefaultWeek())
	after, err := db.CountScheduleSlots()
	require.NoError(t, err)
	assert.Equal(t, count, after)
}
