// Package config provides helpers for reading typed configuration values
// from environment variables with sane defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// GetEnvString returns the value of an environment variable or the default
// value if the variable is not set or empty.
func GetEnvString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvInt returns the value of an environment variable as an integer.
// If the variable is not set or cannot be parsed, the default value is
// returned and a warning is logged.
func GetEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		slog.Warn("invalid integer value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Int("default", defaultValue))
		return defaultValue
	}
	return value
}

// GetEnvBool returns the value of an environment variable as a boolean.
// Accepted values follow strconv.ParseBool conventions ("1", "t", "true", ...).
// Invalid values fall back to the default with a warning.
func GetEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	switch valueStr {
	case "1", "t", "T", "true", "TRUE", "True":
		return true
	case "0", "f", "F", "false", "FALSE", "False":
		return false
	default:
		slog.Warn("invalid boolean value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Bool("default", defaultValue))
		return defaultValue
	}
}

// GetEnvDuration returns the value of an environment variable as a
// time.Duration (parsed with time.ParseDuration, e.g. "30s", "1h30m").
// Invalid values fall back to the default with a warning.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("invalid duration value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.String("default", defaultValue.String()))
		return defaultValue
	}
	return value
}
