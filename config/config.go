// Package config loads runtime configuration from the environment.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/fwojciec/promptaudit/gemini"
)

// Config holds everything the binary needs at startup.
type Config struct {
	// APIKey authenticates against the Gemini API. Required for any
	// real analysis.
	APIKey string
	// Model is the default judge model.
	Model string
	// Timeout bounds each outbound audit call.
	Timeout time.Duration
	// Host and Port configure the HTTP server.
	Host string
	Port string
}

// Load reads configuration from environment variables, falling back to
// defaults. A .env file in the working directory is loaded first when
// present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		Model:   getEnv("PROMPTAUDIT_MODEL", gemini.DefaultModel),
		Timeout: getDuration("PROMPTAUDIT_TIMEOUT", gemini.DefaultAnalyzeTimeout),
		Host:    getEnv("PROMPTAUDIT_HOST", "127.0.0.1"),
		Port:    getEnv("PROMPTAUDIT_PORT", "8080"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
