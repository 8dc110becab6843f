package extractor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveClockTimeMarkers(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		hour   string
		minute string
		marker string
		want   string
		frame  TimeFrame
		ok     bool
	}{
		{"pm adds twelve", "3", "", "pm", "15:00:00", TimeFrameToday, true},
		{"pm leaves afternoon hours", "15", "", "pm", "15:00:00", TimeFrameToday, true},
		{"twelve am is midnight, already past", "12", "", "am", "", "", false},
		{"am morning hour already past", "9", "", "am", "", "", false},
		{"am hour still ahead", "11", "30", "am", "11:30:00", TimeFrameToday, true},
		{"bare hour passed assumes pm", "4", "", "", "16:00:00", TimeFrameToday, true},
		{"bare hour ahead stays am", "11", "", "", "11:00:00", TimeFrameToday, true},
		{"explicit 24h clock", "18", "15", "", "18:15:00", TimeFrameToday, true},
		{"another bare hour passed assumes pm", "8", "", "", "20:00:00", TimeFrameToday, true},
		{"invalid hour", "25", "", "", "", "", false},
		{"invalid minutes", "5", "75", "pm", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at, frame, ok := resolveClockTime(tt.hour, tt.minute, tt.marker, now)
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.want, at.Format("15:04:05"))
			assert.Equal(t, tt.frame, frame)
		})
	}
}

func TestResolveClockTimeNoonRule(t *testing.T) {
	morning := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)
	afternoon := time.Date(2026, 3, 4, 14, 0, 0, 0, time.UTC)

	at, frame, ok := resolveClockTime("12", "", "", morning)
	require.True(t, ok)
	assert.Equal(t, TimeFrameToday, frame)
	assert.Equal(t, 4, at.Day())

	at, frame, ok = resolveClockTime("12", "", "", afternoon)
	require.True(t, ok)
	assert.Equal(t, TimeFrameTomorrow, frame)
	assert.Equal(t, 5, at.Day())
	assert.Equal(t, 12, at.Hour())

	// Explicit 12pm past noon is today and gone, so it is rejected
	_, _, ok = resolveClockTime("12", "", "pm", afternoon)
	assert.False(t, ok)
}
