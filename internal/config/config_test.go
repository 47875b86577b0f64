package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := []byte(`placeholder: "Pick a fruit"
keep_query: true
textfield_movable: true
menu_height: 12
dataset: /tmp/fruits.yaml
`)
	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "Pick a fruit", cfg.Placeholder)
	assert.True(t, cfg.KeepQuery)
	assert.True(t, cfg.TextfieldMovable)
	assert.Equal(t, 12, cfg.MenuHeight)
	assert.Equal(t, "/tmp/fruits.yaml", cfg.Dataset)
}

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("keep_query: true\n"))
	require.NoError(t, err)
	assert.Equal(t, Default().Placeholder, cfg.Placeholder)
	assert.Equal(t, Default().MenuHeight, cfg.MenuHeight)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("menu_height: [nope"))
	assert.Error(t, err)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.KeepQuery = true
	cfg.Placeholder = "Search tags"
	require.NoError(t, Save(cfg, path))

	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
