// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// MinPasswordLength is the shortest password that still holds one character
// of every class.
const MinPasswordLength = 4

// DefaultListenAddr is used when SEEDPASS_LISTEN_ADDR is unset. The GUI has
// no authentication, so it stays on loopback unless told otherwise.
const DefaultListenAddr = "127.0.0.1:8080"

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr     string
	DBPath         string
	PasswordLength int
	LogLevel       slog.Level
}

// Load reads configuration from environment variables and returns a validated Config.
// All variables are optional: SEEDPASS_LISTEN_ADDR (127.0.0.1:8080),
// SEEDPASS_DB_PATH (passwords.db), SEEDPASS_PASSWORD_LENGTH (12) and
// SEEDPASS_LOG_LEVEL (info).
func Load() (*Config, error) {
	listenAddr := DefaultListenAddr
	if v, ok := os.LookupEnv("SEEDPASS_LISTEN_ADDR"); ok && v != "" {
		listenAddr = v
	}

	dbPath := "passwords.db"
	if v, ok := os.LookupEnv("SEEDPASS_DB_PATH"); ok && v != "" {
		dbPath = v
	}

	passwordLength := 12
	if v, ok := os.LookupEnv("SEEDPASS_PASSWORD_LENGTH"); ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("SEEDPASS_PASSWORD_LENGTH has invalid integer %q: %w", v, err)
		}
		if parsed < MinPasswordLength {
			return nil, fmt.Errorf("SEEDPASS_PASSWORD_LENGTH must be at least %d, got %d", MinPasswordLength, parsed)
		}
		passwordLength = parsed
	}

	logLevel := slog.LevelInfo
	if v, ok := os.LookupEnv("SEEDPASS_LOG_LEVEL"); ok && v != "" {
		if err := logLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("SEEDPASS_LOG_LEVEL has invalid level %q: %w", v, err)
		}
	}

	return &Config{
		ListenAddr:     listenAddr,
		DBPath:         dbPath,
		PasswordLength: passwordLength,
		LogLevel:       logLevel,
	}, nil
}
