// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Environment variable names.
const (
	keyPort         = "PORT"
	keyDatabaseURL  = "DATABASE_URL"
	keyLogLevel     = "LOG_LEVEL"
	keyCORSOrigins  = "CORS_ORIGINS"
	keyMaxBodyBytes = "MAX_BODY_BYTES"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory is loaded first when present; variables
// already set in the environment take precedence over it.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config.Load: read .env: %w", err)
	}

	// Empty variables count as unset, so defaults apply to them too.
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault(keyPort, "8080")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyCORSOrigins, "http://localhost:3000")
	v.SetDefault(keyMaxBodyBytes, 1<<20)

	maxBody, err := cast.ToInt64E(v.Get(keyMaxBodyBytes))
	if err != nil || maxBody <= 0 {
		return Config{}, fmt.Errorf("invalid %s %q: must be a positive number of bytes", keyMaxBodyBytes, v.GetString(keyMaxBodyBytes))
	}

	cfg := Config{
		Port:         v.GetString(keyPort),
		DatabaseURL:  v.GetString(keyDatabaseURL),
		LogLevel:     v.GetString(keyLogLevel),
		CORSOrigins:  splitCSV(v.GetString(keyCORSOrigins)),
		MaxBodyBytes: maxBody,
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, keyDatabaseURL)
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
