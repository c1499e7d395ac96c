package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDBURL(t *testing.T) {
	t.Setenv("DB_URL", "")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "DB_URL")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_URL", "sqlite::memory:")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGIN", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("LOG_FILE", "")
	t.Setenv("LOG_FILE_MAX_SIZE_MB", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite::memory:", cfg.DBURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, 100, cfg.LogFileMaxMB)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://catalog:secret@db:5432/catalog")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_FILE_MAX_SIZE_MB", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 25, cfg.LogFileMaxMB)
}

func TestLoadRejectsBadRotationSize(t *testing.T) {
	t.Setenv("DB_URL", "sqlite::memory:")
	t.Setenv("LOG_FILE_MAX_SIZE_MB", "lots")

	_, err := Load()
	assert.ErrorContains(t, err, "LOG_FILE_MAX_SIZE_MB")
}
