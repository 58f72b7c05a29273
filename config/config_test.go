package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.False(t, cfg.IsProd())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Address)
	assert.False(t, cfg.Redis.InMemory)
	assert.Equal(t, "@every 60m", cfg.Catalog.RefreshSchedule)
	assert.Equal(t, 5*time.Second, cfg.Orders.PollInterval)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
	assert.True(t, cfg.Location.Enabled)
	assert.InDelta(t, 32.879765, cfg.Location.Latitude, 1e-9)
	assert.Equal(t, "Convenience", cfg.Ranking.DefaultSort)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ordering.yaml")
	content := `
env: prod
server:
  port: 9090
orders:
  poll_interval: 2s
ranking:
  default_sort: Wait Time
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("ORDERING_REDIS_ADDRESS", "localhost:6380")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Orders.PollInterval)
	assert.Equal(t, "Wait Time", cfg.Ranking.DefaultSort)
	assert.Equal(t, "localhost:6380", cfg.Redis.Address)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	assert.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
	assert.Error(t, InitLogger(LogConfig{Level: "loud"}))
}

func TestGetResourcePath(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "/srv/ordering")
	assert.Equal(t, "/srv/ordering/resources/catalog.json", GetResourcePath(CATALOG_RESOURCE))
}

func TestResolvePath(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "/srv/ordering")
	assert.Equal(t, "/srv/ordering/resources/catalog.json", ResolvePath("resources/catalog.json"))
	assert.Equal(t, "/tmp/catalog.json", ResolvePath("/tmp/catalog.json"))
}
