package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/pseudocode/errors"
)

func readTOML(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, toml.Unmarshal(data, &out))
	return out
}

func TestSetValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".pseudocode", ConfigFileName)

	require.NoError(t, SetValue(path, "server.port", "9000"))
	require.NoError(t, SetValue(path, "render.no_end", "true"))
	require.NoError(t, SetValue(path, "render.comment_delimiter", "#"))
	require.NoError(t, SetValue(path, "server.allowed_origins", "http://localhost, https://example.org"))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.GetServerPort())
	assert.True(t, cfg.Render.NoEnd)
	assert.Equal(t, "#", cfg.Render.CommentDelimiter)
	assert.Equal(t, []string{"http://localhost", "https://example.org"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "1.2em", cfg.Render.IndentSize, "unset keys stay at their default")

	raw := readTOML(t, path)
	assert.NotContains(t, raw["render"], "indent_size", "only explicitly set keys are written")
}

func TestSetValueRejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	err := SetValue(path, "port", "1")
	assert.True(t, errors.IsInvalidRequestError(err))

	err = SetValue(path, "server.colour", "red")
	assert.True(t, errors.IsNotFoundError(err))

	assert.Error(t, SetValue(path, "server.port", "high"))
	assert.Error(t, SetValue(path, "render.line_number", "maybe"))
	assert.Error(t, SetValue(path, "server.port", "0"), "result must validate")
	assert.Error(t, SetValue(path, "render.indent_size", "10px"))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "rejected values are never written")
}

func TestBackupRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	for _, port := range []string{"9001", "9002", "9003", "9004", "9005"} {
		require.NoError(t, SetValue(path, "server.port", port))
	}

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 9005, cfg.GetServerPort())

	for n, want := range map[int]int{1: 9004, 2: 9003, 3: 9002} {
		backup, err := LoadFromFile(backupPath(path, n))
		require.NoError(t, err)
		assert.Equal(t, want, backup.GetServerPort(), "back%d", n)
	}
	_, err = os.Stat(backupPath(path, 4))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigFileName)

	require.NoError(t, WriteDefaults(path))
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())

	raw := readTOML(t, path)
	render, ok := raw["render"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "1.2em", render["indent_size"])

	err = WriteDefaults(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestUserConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, ".pseudocode", "am.toml"), UserConfigPath())
}
