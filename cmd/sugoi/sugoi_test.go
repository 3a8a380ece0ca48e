package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/germanamz/sugoi/pkg/router"
	"github.com/germanamz/sugoi/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestLoadDotEnv_SetsVars(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SUGOI_TEST_DOTENV=yes\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("SUGOI_TEST_DOTENV") })

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "yes", os.Getenv("SUGOI_TEST_DOTENV"))
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sugoi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: fr\n"), 0o600))

	_, err := loadConfig(path)
	assert.ErrorContains(t, err, "language")
}

func TestLoadConfig_ExpandsEnv(t *testing.T) {
	t.Setenv("SUGOI_START", "#/wc")
	path := filepath.Join(t.TempDir(), "sugoi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start_route: ${SUGOI_START}\n"), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "#/wc", cfg.StartRoute)
}

func TestLoadConfig_UnknownStartRoute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sugoi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start_route: digets\n"), 0o600))

	_, err := loadConfig(path)
	assert.ErrorContains(t, err, "start_route")
}

func TestNewLogger(t *testing.T) {
	log, closer, err := newLogger(config.LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, closer)
	log.Info("discarded")
	require.NoError(t, closer.Close())

	path := filepath.Join(t.TempDir(), "sugoi.log")
	log, closer, err = newLogger(config.LogConfig{File: path, Level: "debug"})
	require.NoError(t, err)
	log.Debug("route changed", "to", "digest")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "route changed")
	assert.Contains(t, string(data), "to=digest")

	_, _, err = newLogger(config.LogConfig{File: path, Level: "loud"})
	assert.Error(t, err)
}

func TestStartRoute(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, router.Index, startRoute("", cfg))

	cfg.StartRoute = "#/regex"
	assert.Equal(t, router.Regex, startRoute("", cfg))

	cfg.StartRoute = "wc"
	assert.Equal(t, router.CharCounter, startRoute("", cfg))
	assert.Equal(t, router.Digest, startRoute("#/digest", cfg))
}

func TestDarkBackground(t *testing.T) {
	assert.True(t, darkBackground("dark"))
	assert.False(t, darkBackground("light"))
}
