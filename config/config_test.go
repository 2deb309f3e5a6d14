package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegraph/routegraph/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routegraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv(config.TokenEnv, "")
	path := writeFile(t, `
log:
  level: debug
dijkstra:
  strategy: heap
mapbox:
  token: from-file
  profile: cycling
  timeout: 5s
export:
  dir: artifacts
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "heap", cfg.Dijkstra.Strategy)
	assert.Equal(t, "from-file", cfg.Mapbox.Token)
	assert.Equal(t, "cycling", cfg.Mapbox.Profile)
	assert.Equal(t, "duration", cfg.Mapbox.Annotation, "unset keys keep defaults")
	assert.Equal(t, 5*time.Second, cfg.Mapbox.Timeout)
	assert.Equal(t, "artifacts", cfg.Export.Dir)
	assert.Equal(t, "from-file", cfg.MapToken())
}

func TestLoad_EnvOverridesToken(t *testing.T) {
	t.Setenv(config.TokenEnv, "from-env")
	path := writeFile(t, "mapbox:\n  token: from-file\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Mapbox.Token)

	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Mapbox.Token)
}

func TestLoad_ReportsAllProblems(t *testing.T) {
	path := writeFile(t, `
log:
  level: chatty
dijkstra:
  strategy: astar
mapbox:
  profile: flying
  annotation: speed
  timeout: 0s
export:
  dir: ""
`)

	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalid)
	for _, key := range []string{"log.level", "dijkstra.strategy", "mapbox.profile", "mapbox.annotation", "mapbox.timeout", "export.dir"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestLoad_FileErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = config.Load(writeFile(t, "log: [unclosed"))
	require.Error(t, err)
}

func TestMapToken(t *testing.T) {
	cfg := config.Default()
	cfg.Mapbox.Token = "secret"
	cfg.Export.MapToken = "pk.public"
	assert.Equal(t, "pk.public", cfg.MapToken())
}
