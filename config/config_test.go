package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pathpad.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")
	_, err := Load(path)
	require.ErrorIs(t, err, os.ErrNotExist, "a named file must exist")
	assert.Contains(t, err.Error(), path)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
[graph]
node_radius = 12.5

[log]
level = "debug"
format = "json"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12.5, cfg.Graph.NodeRadius)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	// untouched keys keep defaults
	assert.Equal(t, 10.0, cfg.View.CellWidth)
	assert.Equal(t, 20.0, cfg.View.CellHeight)
	assert.Equal(t, "pathpad.log", cfg.Log.File)
}

func TestLoad_InvalidTOML(t *testing.T) {
	_, err := Load(writeConfig(t, "not valid {{{"))
	require.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, "[graph]\nnode_radius = -1\n"))
	require.ErrorIs(t, err, ErrBadRadius)

	_, err = Load(writeConfig(t, "[view]\ncell_height = 0.0\n"))
	require.ErrorIs(t, err, ErrBadCell)

	_, err = Load(writeConfig(t, "[log]\nformat = \"xml\"\n"))
	require.ErrorIs(t, err, ErrBadLogFormat)

	_, err = Load(writeConfig(t, "[log]\nlevel = \"verbose\"\n"))
	require.ErrorIs(t, err, ErrBadLogLevel)
}

func TestValidate_LogLevel(t *testing.T) {
	for _, level := range []string{"", "debug", "INFO", "warn", "error"} {
		cfg := Default()
		cfg.Log.Level = level
		require.NoError(t, cfg.Validate(), "level %q", level)
	}

	cfg := Default()
	cfg.Log.Level = "debgu"
	require.ErrorIs(t, cfg.Validate(), ErrBadLogLevel)
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}
