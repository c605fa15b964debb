package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops a YAML config into a temp dir and points CONFIG_PATH
// at it. Only the env-var source is exercised here: the --config flag
// path calls flag.Parse, which cannot be re-run across tests.
func writeConfig(t *testing.T, yaml string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("CONFIG_PATH", path)
}

func TestMustLoad(t *testing.T) {
	writeConfig(t, `
env: "dev"
storage_path: "storage/test.db"
http_server:
  address: "localhost:9090"
`)

	cfg := MustLoad()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "storage/test.db", cfg.StoragePath)
	assert.Equal(t, "localhost:9090", cfg.HTTPServer.Addr)
}

func TestMustLoad_EnvOverridesFile(t *testing.T) {
	writeConfig(t, `
env: "dev"
storage_path: "storage/test.db"
http_server:
  address: "localhost:9090"
`)
	t.Setenv("HTTP_SERVER_ADDR", "0.0.0.0:8082")
	t.Setenv("ENV", "prod")

	cfg := MustLoad()

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "0.0.0.0:8082", cfg.HTTPServer.Addr)
}
