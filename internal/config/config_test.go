package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, 14, cfg.BackupKeep)
	assert.False(t, cfg.Debug)
	assert.NotEmpty(t, cfg.Storage)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Language)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "storage: /tmp/custom.json\nlanguage: de\ndebug: true\nbackupKeep: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.json", cfg.Storage)
	assert.Equal(t, "de", cfg.Language)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 3, cfg.BackupKeep)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: de\n"), 0600))

	t.Setenv("VITALOG_LANGUAGE", "fr")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.Language)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- nope"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}
