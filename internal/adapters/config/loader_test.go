package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/evalrs/internal/adapters/config"
	"go.trai.ch/evalrs/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	settings, err := config.NewLoader().Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestLoader_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
cache:
  dir: /var/cache/evalrs
  max_entries: 4
cargo:
  bin: /opt/rust/bin/cargo
`)

	settings, err := config.NewLoader().Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "/var/cache/evalrs", settings.CacheDir)
	assert.Equal(t, 4, settings.MaxCacheEntries)
	assert.Equal(t, "/opt/rust/bin/cargo", settings.CargoBin)
}

func TestLoader_PartialConfigKeepsRemainingDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "cargo:\n  bin: cargo-nightly\n")

	settings, err := config.NewLoader().Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "cargo-nightly", settings.CargoBin)
	assert.Equal(t, domain.DefaultSettings().CacheDir, settings.CacheDir)
	assert.Equal(t, domain.DefaultMaxCacheEntries, settings.MaxCacheEntries)
}

func TestLoader_RejectsNonPositiveMaxEntries(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "cache:\n  max_entries: 0\n")

	_, err := config.NewLoader().Load(dir)

	assert.ErrorContains(t, err, "max_entries")
}

func TestLoader_RejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "cache: [\n")

	_, err := config.NewLoader().Load(dir)

	assert.ErrorContains(t, err, "failed to parse config file")
}
