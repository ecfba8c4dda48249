package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoader_DefaultsWithoutFile(t *testing.T) {
	chdir(t, t.TempDir()) // no rxscan.yaml in sight

	l := NewLoaderWith(viper.New())
	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoader_LoadWithFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rxscan.yaml")
	content := `
log_level: debug
decode:
  try_harder: false
  max_symbols: 2
server:
  port: 9090
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	l := NewLoaderWith(viper.New())
	cfg, err := l.LoadWithFile(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Decode.TryHarder)
	assert.Equal(t, 2, cfg.Decode.MaxSymbols)
	assert.Equal(t, 9090, cfg.Server.Port)
	// Untouched keys keep defaults.
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "localhost", cfg.Server.Host)
}

func TestLoader_LoadWithFile_Missing(t *testing.T) {
	l := NewLoaderWith(viper.New())
	_, err := l.LoadWithFile("/nonexistent/rxscan.yaml")
	require.Error(t, err)
}

func TestLoader_InvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rxscan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: shouty\n"), 0o600))

	l := NewLoaderWith(viper.New())
	_, err := l.LoadWithFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestLoader_EnvironmentOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RXSCAN_LOG_LEVEL", "warn")
	t.Setenv("RXSCAN_SERVER_PORT", "3000")

	l := NewLoaderWith(viper.New())
	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 3000, cfg.Server.Port)
}
