package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	cfg := LoadFromEnv()

	assert.Equal(t, "./misuki.db", cfg.DBPath)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "Asia/Tokyo", cfg.HomeTimezone)
	assert.Equal(t, "UTC", cfg.LocalTimezone)
	assert.Equal(t, 7, cfg.StaleEventDays)
	assert.Equal(t, 5, cfg.WokenWindowMinutes)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("MISUKI_DB_PATH", "/tmp/test.db")
	t.Setenv("MISUKI_HTTP_PORT", "9090")
	t.Setenv("MISUKI_STALE_EVENT_DAYS", "14")
	t.Setenv("MISUKI_WOKEN_WINDOW_MINUTES", "not-a-number")

	cfg := LoadFromEnv()

	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, 14, cfg.StaleEventDays)
	// Unparseable values fall back to the default
	assert.Equal(t, 5, cfg.WokenWindowMinutes)
}
