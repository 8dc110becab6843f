package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overrideTestUser int64 = 1

func TestOverrideLifecycle(t *testing.T) {
	db := NewTestDB(t)

	// No override to start with
	active, err := db.GetActiveOverride(overrideTestUser)
	require.NoError(t, err)
	assert.Nil(t, active)

	first, err := db.SetOverride(&ScheduleOverride{
		UserID:        overrideTestUser,
		ActivityType:  "going_somewhere",
		ActivityEmoji: "🎡",
		ActivityText:  "at the amusement park",
		ActivityColor: "#4A90D9",
	})
	require.NoError(t, err)
	assert.True(t, first.Active)
	assert.NotEmpty(t, first.PlanID, "a missing plan id gets generated")

	active, err = db.GetActiveOverride(overrideTestUser)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "at the amusement park", active.ActivityText)

	// A second override replaces the first
	second, err := db.SetOverride(&ScheduleOverride{
		UserID:       overrideTestUser,
		PlanID:       "plan-123",
		ActivityType: "meeting_someone",
		ActivityText: "out with friends",
	})
	require.NoError(t, err)
	assert.Equal(t, "plan-123", second.PlanID)

	active, err = db.GetActiveOverride(overrideTestUser)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "out with friends", active.ActivityText)
	assert.Equal(t, second.ID, active.ID)

	require.NoError(t, db.ClearOverride(overrideTestUser))

	active, err = db.GetActiveOverride(overrideTestUser)
	require.NoError(t, err)
	assert.Nil(t, active)

	// Clearing when nothing is active is fine
	require.NoError(t, db.ClearOverride(overrideTestUser))
}

func TestOverridesAreScopedPerUser(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.SetOverride(&ScheduleOverride{UserID: 1, ActivityText: "studying late"})
	require.NoError(t, err)

	other, err := db.GetActiveOverride(2)
	require.NoError(t, err)
	assert.Nil(t, other)
}
