package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Theme)
	assert.Equal(t, 200*time.Millisecond, cfg.StepDelay)
	assert.Equal(t, 2*time.Second, cfg.ProxyDelay)
	assert.False(t, cfg.TestMode)
	assert.False(t, cfg.Plain)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: dark\njson: true\nmin-version: 0.2.0\nfacade:\n  step_delay: 5ms\nproxy:\n  delay: 1s\n"), 0600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	assert.True(t, cfg.JSON)
	assert.Equal(t, "0.2.0", cfg.MinVersion)
	assert.Equal(t, 5*time.Millisecond, cfg.StepDelay)
	assert.Equal(t, time.Second, cfg.ProxyDelay)
}

func TestLoad_WorkingDirectoryConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "patterns.yaml"), []byte("theme: light\n"), 0600))
	chdir(t, dir)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
}

func TestLoad_MissingExplicitConfigFails(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PATTERNS_PROXY_DELAY", "10ms")
	t.Setenv("PATTERNS_THEME", "plain")
	t.Setenv("PATTERNS_JSON", "true")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.True(t, cfg.JSON)
	assert.Equal(t, 10*time.Millisecond, cfg.ProxyDelay)
	assert.Equal(t, "plain", cfg.Theme)
}

func TestLoad_TestModeZeroesDelays(t *testing.T) {
	chdir(t, t.TempDir())
	v := viper.New()
	v.Set(KeyTestMode, true)

	cfg, err := Load(v, "")
	require.NoError(t, err)

	assert.True(t, cfg.Plain)
	assert.Zero(t, cfg.StepDelay)
	assert.Zero(t, cfg.ProxyDelay)
}

func TestLoad_NegativeDelayRejected(t *testing.T) {
	chdir(t, t.TempDir())
	v := viper.New()
	v.Set(KeyStepDelay, "-1s")

	_, err := Load(v, "")
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PATTERNS_DOTENV_PROBE=from-dotenv\n"), 0600))
	t.Cleanup(func() { _ = os.Unsetenv("PATTERNS_DOTENV_PROBE") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-dotenv", os.Getenv("PATTERNS_DOTENV_PROBE"))
}

func TestLoadDotEnv_MissingIsFine(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}
