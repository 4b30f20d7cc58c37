// Package config loads configuration from environment variables.
package config

import (
	"os"
	"time"
)

// Env holds the configuration values for the application.
type Env struct {
	Port         string
	RulesFile    string
	RulesURL     string
	RulesTimeout time.Duration
	LogLevel     string
}

// Load reads the environment. Unset or malformed values take their defaults.
func Load() Env {
	timeout, err := time.ParseDuration(get("RULES_TIMEOUT", "2s"))
	if err != nil || timeout <= 0 {
		timeout = 2 * time.Second
	}
	return Env{
		Port:         get("PORT", "8080"),
		RulesFile:    get("RULES_FILE", ""),
		RulesURL:     get("RULES_URL", ""),
		RulesTimeout: timeout,
		LogLevel:     get("LOG_LEVEL", "info"),
	}
}

// get returns the value of the environment variable k or def if not set.
func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
