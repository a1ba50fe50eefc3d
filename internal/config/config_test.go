package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "plan_tracker", cfg.Database.Name)
	assert.Equal(t, CatalogSourceMongo, cfg.Catalog.Source)
	assert.Equal(t, 32, cfg.Catalog.CacheSizeMB)
	assert.Equal(t, time.Hour, cfg.Catalog.CacheTTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "plan-tracker", cfg.Log.ServiceName)
	assert.Equal(t, 50, cfg.Log.MaxSizeMB)
	assert.Zero(t, cfg.Log.MaxBackups)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  address: ":9090"
catalog:
  source: s3
  snapshot_key: catalog/v2.json
  cache_ttl: 15m
s3:
  bucket_name: plans
redis:
  addr: localhost:6379
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("REDIS_DB", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, CatalogSourceS3, cfg.Catalog.Source)
	assert.Equal(t, "catalog/v2.json", cfg.Catalog.SnapshotKey)
	assert.Equal(t, 15*time.Minute, cfg.Catalog.CacheTTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("catalog:\n  source: s3\n"), 0o600))
	_, err := LoadConfig(dir)
	assert.Error(t, err)

	t.Setenv("CATALOG_SOURCE", "postgres")
	_, err = LoadConfig(t.TempDir())
	assert.Error(t, err)
}
