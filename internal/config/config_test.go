package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setXDG(t *testing.T) (configHome, dataHome string) {
	t.Helper()
	configHome = t.TempDir()
	dataHome = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", dataHome)
	return configHome, dataHome
}

func TestLoadConfig_CreatesDefault(t *testing.T) {
	configHome, _ := setXDG(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(configHome, "mushikago", "config.toml")
	assert.Equal(t, path, GetConfigFilePath())
	assert.FileExists(t, path)

	again, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	configHome, _ := setXDG(t)
	dir := filepath.Join(configHome, "mushikago")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("catalog_path = \"/tmp/cards.yaml\"\nconfirm = false\n"), 0o644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cards.yaml", cfg.CatalogPath)
	assert.False(t, cfg.Confirm)
	assert.Equal(t, DefaultPageURL, cfg.PageURL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	configHome, _ := setXDG(t)
	dir := filepath.Join(configHome, "mushikago")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("page_url = ["), 0o644))

	_, err := LoadConfig()
	assert.Equal(t, ErrCodeInvalid, Code(err))
}

func TestState_RoundTrip(t *testing.T) {
	_, dataHome := setXDG(t)

	state, err := LoadState()
	require.NoError(t, err)
	assert.Empty(t, state.URL)

	const u = "https://mushikago.example/deck?c01=MK1-001&lang=ja"
	require.NoError(t, SaveState(&State{URL: u}))
	assert.FileExists(t, filepath.Join(dataHome, "mushikago", "state.toml"))

	state, err = LoadState()
	require.NoError(t, err)
	assert.Equal(t, u, state.URL)
}

func TestLoadState_Invalid(t *testing.T) {
	_, dataHome := setXDG(t)
	dir := filepath.Join(dataHome, "mushikago")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "state.toml"), []byte("url = "), 0o644))

	_, err := LoadState()
	assert.Equal(t, ErrCodeStateInvalid, Code(err))
	assert.Equal(t, "", Code(os.ErrNotExist))
}
