package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer        string // Required: issuer claim for session tokens
	SigningSecret string // Required: HS256 secret for session tokens

	BootstrapToken string // Optional: token required to perform bootstrap

	DatabaseFile string        // Optional: path to SQLite database file (default: ./booking.db)
	TokenTTL     time.Duration // Optional: session token lifetime (default: 24h)

	OpenHour     int           // First bookable hour of day (default: 9)
	CloseHour    int           // First non-bookable hour of day (default: 17)
	SlotDuration time.Duration // Slot granularity (default: 30m)

	RelaxedPasswords bool // Optional: keep only the minimum-length password rule

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:        getEnvOrDefault("BOOKING_ISSUER", "smartappointment-booking"),
		SigningSecret: os.Getenv("BOOKING_SIGNING_SECRET"),
		BootstrapToken: os.Getenv(
			"BOOTSTRAP_TOKEN",
		), // Optional: if set, required to perform bootstrap
		DatabaseFile:        getEnvOrDefault("BOOKING_DATABASE_FILE", "booking.db"),
		TokenTTL:            getEnvDurationOrDefault("BOOKING_TOKEN_TTL", 24*time.Hour),
		OpenHour:            getEnvIntOrDefault("BOOKING_OPEN_HOUR", 9),
		CloseHour:           getEnvIntOrDefault("BOOKING_CLOSE_HOUR", 17),
		SlotDuration:        getEnvDurationOrDefault("BOOKING_SLOT_DURATION", 30*time.Minute),
		RelaxedPasswords:    getEnvBoolOrDefault("BOOKING_RELAXED_PASSWORDS", false),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
