package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, filepath.Join("data", "inventory.txt"), cfg.CatalogPath())
	assert.Equal(t, filepath.Join("data", "customers.txt"), cfg.CustomerPath())
	assert.Equal(t, filepath.Join("data", "users.txt"), cfg.UserPath())
	assert.Equal(t, time.Second, cfg.SettleDelay)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: /tmp/store\nsettle_delay: 0s\n"), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/tmp/store", cfg.DataDir)
	assert.Zero(t, cfg.SettleDelay)
	// Unset fields keep their defaults.
	assert.Equal(t, "inventory.txt", cfg.CatalogFile)
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog_file: products.txt\n"), 0o644))
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "products.txt", cfg.CatalogFile)
}

func TestLoadMissingNamedFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}
