package biblio

import (
	"os"
	"strconv"
)

// Config holds the bibliographic lookup settings.
type Config struct {
	Enabled   bool
	LogCalls  bool
	Endpoint  string
	TimeoutMs int
}

// DefaultConfig returns the defaults: lookups enabled against the
// public Open Library API.
func DefaultConfig() Config {
	return Config{
		Enabled:   true,
		LogCalls:  false,
		Endpoint:  "https://openlibrary.org",
		TimeoutMs: 8000,
	}
}

// LoadConfig reads lookup configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PROVOST_LOOKUP_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PROVOST_LOOKUP_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PROVOST_LOOKUP_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("PROVOST_LOOKUP_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.TimeoutMs = ms
		}
	}
	return cfg
}
