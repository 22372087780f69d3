package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, uint32(0x0400), cfg.Locale)
	require.True(t, cfg.IncludeOptional)
	require.False(t, cfg.AssumeYes)
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("assume_yes = true\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.True(t, cfg.AssumeYes)
	require.Equal(t, uint32(0x0400), cfg.Locale)
	require.True(t, cfg.IncludeOptional)
}

func TestLoadFileAllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	data := []byte(`
locale = 1033
setup_path = 'C:\custom\setup.exe'
assume_yes = true
include_optional = false
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, uint32(1033), cfg.Locale)
	require.Equal(t, `C:\custom\setup.exe`, cfg.SetupPath)
	require.True(t, cfg.AssumeYes)
	require.False(t, cfg.IncludeOptional)
}

func TestLoadFileUnknownKeysIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("future_knob = 3\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("locale = [not toml"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
}
