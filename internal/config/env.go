package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()
}

type Config struct {
	DBPath   string
	HTTPPort int

	// HomeTimezone is the persona's fixed home timezone; the weekly schedule
	// is always evaluated in it. LocalTimezone is the caller's operating
	// timezone, used for message timestamps and the woken check.
	HomeTimezone  string
	LocalTimezone string

	StaleEventDays     int
	WokenWindowMinutes int
}

func LoadFromEnv() *Config {
	cfg := &Config{
		DBPath:             getEnvOrDefault("MISUKI_DB_PATH", "./misuki.db"),
		HTTPPort:           getEnvAsIntOrDefault("MISUKI_HTTP_PORT", 8080),
		HomeTimezone:       getEnvOrDefault("MISUKI_HOME_TIMEZONE", "Asia/Tokyo"),
		LocalTimezone:      getEnvOrDefault("MISUKI_LOCAL_TIMEZONE", "UTC"),
		StaleEventDays:     getEnvAsIntOrDefault("MISUKI_STALE_EVENT_DAYS", 7),
		WokenWindowMinutes: getEnvAsIntOrDefault("MISUKI_WOKEN_WINDOW_MINUTES", 5),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
