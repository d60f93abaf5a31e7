package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 24, cfg.JWTExpirationHours)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 200, cfg.RenderDefaultSize)
	assert.Equal(t, 2048, cfg.RenderMaxSize)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("RENDER_DEFAULT_SIZE", "128")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 128, cfg.RenderDefaultSize)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsBadRenderSizes(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("RENDER_DEFAULT_SIZE", "512")
	t.Setenv("RENDER_MAX_SIZE", "256")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MalformedInt(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "soon")

	_, err := Load()
	assert.Error(t, err)
}
