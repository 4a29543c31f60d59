package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(filepath.Join(dir, "tableau", "config.toml"))
	assert.NoError(t, err, "default config file should be written")

	again, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadConfigPartialFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "tableau", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	data := `
show_axes = false

[generator]
extra_probability = 50
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.ShowAxes)
	assert.Equal(t, 50, cfg.Generator.ExtraProbability)
	assert.Equal(t, 25, cfg.Generator.EmptyStackProbability, "missing keys keep defaults")
	assert.Equal(t, 10, cfg.Params().MaxCards)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "broken toml", data: "show_axes = = true"},
		{name: "bad probability", data: "[generator]\nextra_probability = 140\n"},
		{name: "too many cards", data: "[generator]\nmax_cards = 11\n"},
		{name: "zero card size", data: "card_size = 0.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv("XDG_CONFIG_HOME", dir)
			path := filepath.Join(dir, "tableau", "config.toml")
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0644))

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestGetGamePath(t *testing.T) {
	data := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)

	library := filepath.Join(data, "tableau", "games")
	require.NoError(t, os.MkdirAll(library, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(library, "typical.toml"), nil, 0644))

	path, err := GetGamePath("typical")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(library, "typical.toml"), path)

	local := filepath.Join(t.TempDir(), "local.toml")
	require.NoError(t, os.WriteFile(local, nil, 0644))
	path, err = GetGamePath(local)
	require.NoError(t, err)
	assert.Equal(t, local, path)

	_, err = GetGamePath("missing")
	assert.Error(t, err)
}

func TestXDGFallbacks(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/dealer")

	assert.Equal(t, "/home/dealer/.local/share/tableau/games", GetGameLibraryPath())
	assert.Equal(t, "/home/dealer/.config/tableau/config.toml", GetConfigFilePath())
}
