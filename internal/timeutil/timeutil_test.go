package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextWeekday(t *testing.T) {
	// 2026-03-04 is a Wednesday
	wednesday := time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)

	friday := NextWeekday(wednesday, time.Friday)
	assert.Equal(t, "2026-03-06", DateString(friday))
	assert.Equal(t, 0, friday.Hour())

	sunday := NextWeekday(wednesday, time.Sunday)
	assert.Equal(t, "2026-03-08", DateString(sunday))

	// Same weekday means a full week out, never today
	nextWednesday := NextWeekday(wednesday, time.Wednesday)
	assert.Equal(t, "2026-03-11", DateString(nextWednesday))
}

func TestMidnight(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	assert.NoError(t, err)

	at := time.Date(2026, 3, 4, 23, 59, 59, 0, tokyo)
	midnight := Midnight(at)

	assert.Equal(t, "2026-03-04", DateString(midnight))
	assert.Zero(t, midnight.Hour())
	assert.Equal(t, tokyo, midnight.Location())
}

func TestResolveLocation(t *testing.T) {
	loc, fallback := ResolveLocation("Asia/Tokyo")
	assert.False(t, fallback)
	assert.Equal(t, "Asia/Tokyo", loc.String())

	loc, fallback = ResolveLocation("")
	assert.True(t, fallback)
	assert.Equal(t, time.UTC, loc)

	loc, fallback = ResolveLocation("Not/AZone")
	assert.True(t, fallback)
	assert.Equal(t, time.UTC, loc)
}

func TestStorageFormats(t *testing.T) {
	at := time.Date(2026, 3, 4, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2026-03-04", DateString(at))
	assert.Equal(t, "15:04:05", ClockString(at))
}
