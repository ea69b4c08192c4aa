package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "erfsite.sqlite3", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.UseMemoryStore())
	assert.False(t, cfg.SeedDemo)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ERFSITE_ADDR", "127.0.0.1:9999")
	t.Setenv("ERFSITE_DB_PATH", "")
	t.Setenv("ERFSITE_ENV", "production")
	t.Setenv("ERFSITE_SEED_DEMO", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9999", cfg.ListenAddr)
	assert.True(t, cfg.UseMemoryStore())
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.SeedDemo)
}
