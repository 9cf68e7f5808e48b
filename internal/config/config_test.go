package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamamaa/worship/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "gemini-3-flash-preview", cfg.Parser.DefaultModel)
	assert.Equal(t, 120, cfg.Parser.TimeoutSecs)
	assert.Equal(t, "", cfg.Storage.DataDir)
	assert.Equal(t, int64(10), cfg.Storage.MaxImageMB)
	assert.Equal(t, int64(50), cfg.Storage.MaxTemplateMB)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WORSHIP_SERVER_PORT", ":9999")
	t.Setenv("WORSHIP_PARSER_DEFAULT_MODEL", "gemini-2.0-flash")
	t.Setenv("WORSHIP_STORAGE_MAX_IMAGE_MB", "25")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Port)
	assert.Equal(t, "gemini-2.0-flash", cfg.Parser.DefaultModel)
	assert.Equal(t, int64(25), cfg.Storage.MaxImageMB)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "7777")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.Server.Port)
}

func TestLoad_CORSOriginsParsed(t *testing.T) {
	t.Setenv("WORSHIP_CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example ,")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORS.AllowedOrigins)
}
