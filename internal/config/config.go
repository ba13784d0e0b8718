// Package config loads application configuration from environment variables.
package config

import (
	"os"
	"strconv"

	"github.com/blockedby/openmeasures-gateway/internal/llm"
	"github.com/blockedby/openmeasures-gateway/internal/openmeasures"
)

// Config holds all application configuration. Values are fixed at load
// time; the core never reads the environment itself.
type Config struct {
	// open measures
	OMBaseURL    string
	OMTimeoutSec int

	// llm
	ClaudeAPIKey     string
	ClaudeAPIURL     string
	ClaudeModel      string
	ClaudeMaxTokens  int
	ClaudeTimeoutSec int

	// server
	HTTPPort int

	// logging
	LogLevel string
	LogFile  string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		OMBaseURL:        getEnv("OM_BASE_URL", openmeasures.DefaultBaseURL),
		OMTimeoutSec:     getEnvInt("OM_TIMEOUT_SECONDS", 30),
		ClaudeAPIKey:     getEnv("CLAUDE_API_KEY", ""),
		ClaudeAPIURL:     getEnv("CLAUDE_API_URL", llm.DefaultAPIURL),
		ClaudeModel:      getEnv("CLAUDE_MODEL", llm.DefaultModel),
		ClaudeMaxTokens:  getEnvInt("CLAUDE_MAX_TOKENS", llm.DefaultMaxTokens),
		ClaudeTimeoutSec: getEnvInt("CLAUDE_TIMEOUT_SECONDS", 60),
		HTTPPort:         getEnvInt("HTTP_PORT", 5000),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFile:          getEnv("LOG_FILE", ""),
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
