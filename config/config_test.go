package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, StorageDriverPostgres, cfg.App.StorageDriver)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiry)
	assert.Equal(t, 5*time.Minute, cfg.Redis.StatsTTL)
	assert.Equal(t, 10, cfg.Pharmacy.LowStockThreshold)
	assert.True(t, cfg.Redis.Enabled)
	assert.True(t, cfg.Scheduler.Enabled)
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=9090\nSTORAGE_DRIVER=memory\nJWT_SECRET=from-file\nJWT_ACCESS_EXPIRY=30m\nREDIS_ENABLED=false\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	t.Setenv("APP_PORT", "7070")
	t.Setenv("LOW_STOCK_THRESHOLD", "3")

	cfg, err := load(file)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.App.Port)
	assert.Equal(t, StorageDriverMemory, cfg.App.StorageDriver)
	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessExpiry)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 3, cfg.Pharmacy.LowStockThreshold)
}

func TestLoad_Rejects(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := load(filepath.Join(t.TempDir(), "missing.env"))
		assert.Error(t, err)
	})

	t.Run("unknown storage driver", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("STORAGE_DRIVER", "sqlite")
		_, err := load(filepath.Join(t.TempDir(), "missing.env"))
		assert.Error(t, err)
	})
}
