package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datawarden/internal/config"
	"datawarden/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, 120, cfg.Gemini.TimeoutSecs)
	assert.Equal(t, int64(10), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, 5, cfg.Upload.PreviewRows)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DATAWARDEN_GEMINI_API_KEY", "env-key")
	t.Setenv("DATAWARDEN_GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("DATAWARDEN_SERVER_PORT", ":9090")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestValidate_MissingAPIKey(t *testing.T) {
	cfg := &config.Config{}

	err := cfg.Validate()

	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
}

func TestValidate_WhitespaceAPIKey(t *testing.T) {
	cfg := &config.Config{Gemini: config.GeminiConfig{APIKey: "   "}}

	assert.ErrorIs(t, cfg.Validate(), domain.ErrMissingAPIKey)
}

func TestValidate_OK(t *testing.T) {
	cfg := &config.Config{Gemini: config.GeminiConfig{APIKey: "key"}}

	assert.NoError(t, cfg.Validate())
}
