package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/promptaudit/config"
	"github.com/fwojciec/promptaudit/gemini"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("PROMPTAUDIT_MODEL", "")
	t.Setenv("PROMPTAUDIT_TIMEOUT", "")
	t.Setenv("PROMPTAUDIT_HOST", "")
	t.Setenv("PROMPTAUDIT_PORT", "")

	cfg := config.Load()

	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, gemini.DefaultModel, cfg.Model)
	assert.Equal(t, gemini.DefaultAnalyzeTimeout, cfg.Timeout)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PROMPTAUDIT_MODEL", "gemini-2.5-pro")
	t.Setenv("PROMPTAUDIT_TIMEOUT", "30s")
	t.Setenv("PROMPTAUDIT_HOST", "0.0.0.0")
	t.Setenv("PROMPTAUDIT_PORT", "9090")

	cfg := config.Load()

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("PROMPTAUDIT_TIMEOUT", "not-a-duration")

	cfg := config.Load()

	assert.Equal(t, gemini.DefaultAnalyzeTimeout, cfg.Timeout)
}
