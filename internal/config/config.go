// Package config provides environment-based configuration for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

const defaultPort = 8080

// Config holds the runtime configuration loaded from the environment.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int

	// GeminiAPIKey authenticates calls to the Gemini API. Required.
	GeminiAPIKey string
}

// Load reads configuration from the environment. GEMINI_API_KEY must be
// set; PORT is optional and defaults to 8080.
func Load() (*Config, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	cfg := &Config{
		Port:         defaultPort,
		GeminiAPIKey: apiKey,
	}

	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q: %w", raw, err)
		}
		if port < 1 || port > 65535 {
			return nil, fmt.Errorf("PORT %d out of range", port)
		}
		cfg.Port = port
	}

	return cfg, nil
}
