package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/boxscore")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/boxscore", cfg.DatabaseURL)
	assert.Equal(t, 2, cfg.DBPoolMinConns)
	assert.Equal(t, 10, cfg.DBPoolMaxConns)
	assert.Equal(t, 8000, cfg.APIPort)
	assert.Equal(t, "raw_data", cfg.DataDir)
	assert.True(t, cfg.RateLimitEnabled)
	assert.True(t, cfg.CacheEnabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/boxscore")
	t.Setenv("API_PORT", "9000")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DATA_DIR", "/srv/exports")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_WINDOW", "30")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.APIPort)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/srv/exports", cfg.DataDir)
	assert.False(t, cfg.RateLimitEnabled)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
}

func TestEnvHelpersFallBackOnGarbage(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/boxscore")
	t.Setenv("API_PORT", "not-a-number")
	t.Setenv("CACHE_ENABLED", "not-a-bool")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.APIPort)
	assert.True(t, cfg.CacheEnabled)
}
