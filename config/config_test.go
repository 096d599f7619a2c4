package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  read_timeout: 3s
leveldb:
  path: /tmp/posts
log:
  level: debug
seed:
  count: 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/tmp/posts", cfg.LevelDB.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "", cfg.Log.AppLogFile)
	assert.Equal(t, 10, cfg.Seed.Count)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("BLOG_SERVER_PORT", "7070")
	t.Setenv("BLOG_LEVELDB_PATH", "/var/lib/posts")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "/var/lib/posts", cfg.LevelDB.Path)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "data/blogposts", cfg.LevelDB.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
