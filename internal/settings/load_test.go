package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/credo-bridge/internal/model"
)

func writeSettings(t *testing.T, root, name, content string) string {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_NoFileYieldsDefaults(t *testing.T) {
	root := t.TempDir()

	loaded, err := Load(root)
	require.NoError(t, err)
	assert.Empty(t, loaded.Source)
	assert.Equal(t, model.DefaultConfigFile, loaded.Settings.ConfigFile)
	assert.False(t, loaded.Settings.Strict)
}

func TestLoad_JSONWithComments(t *testing.T) {
	root := t.TempDir()
	path := writeSettings(t, root, JSONFileName, `{
  // lint against the shared CI profile
  "configName": "ci",
  "checksWithTag": ["controversial", "experimental"],
  "strict": true,
  "diffMode": {
    "enabled": true,
    "mergeBase": "develop", // trailing comma tolerated below
  },
}`)

	loaded, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, path, loaded.Source)
	assert.Equal(t, "ci", loaded.Settings.ConfigName)
	assert.Equal(t, []string{"controversial", "experimental"}, loaded.Settings.ChecksWithTag)
	assert.True(t, loaded.Settings.Strict)
	assert.True(t, loaded.Settings.DiffMode.Enabled)
	assert.Equal(t, "develop", loaded.Settings.DiffMode.MergeBase)
	assert.Equal(t, model.DefaultConfigFile, loaded.Settings.ConfigFile, "unset fields keep their defaults")
}

func TestLoad_YAMLFallback(t *testing.T) {
	root := t.TempDir()
	path := writeSettings(t, root, YAMLFileName, `configFile: .strict-credo.exs
checksWithoutTag:
  - controversial
executePath: /opt/elixir/bin
ignoreWarnings: true
`)

	loaded, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, path, loaded.Source)
	assert.Equal(t, ".strict-credo.exs", loaded.Settings.ConfigFile)
	assert.Equal(t, []string{"controversial"}, loaded.Settings.ChecksWithoutTag)
	assert.Equal(t, "/opt/elixir/bin", loaded.Settings.ExecutePath)
	assert.True(t, loaded.Settings.IgnoreWarnings)
}

func TestLoad_JSONWinsOverYAML(t *testing.T) {
	root := t.TempDir()
	jsonPath := writeSettings(t, root, JSONFileName, `{"configName": "from-json"}`)
	writeSettings(t, root, YAMLFileName, `configName: from-yaml`)

	loaded, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, jsonPath, loaded.Source)
	assert.Equal(t, "from-json", loaded.Settings.ConfigName)
}

func TestLoad_UnknownFieldsIgnored(t *testing.T) {
	root := t.TempDir()
	writeSettings(t, root, JSONFileName, `{"configName": "ci", "somethingElse": {"nested": true}}`)

	loaded, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "ci", loaded.Settings.ConfigName)
}

func TestLoad_MalformedJSONIsSettingsError(t *testing.T) {
	root := t.TempDir()
	writeSettings(t, root, JSONFileName, `{"configName": `)

	_, err := Load(root)
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitSettingsError, cliErr.Code)
}

func TestLoad_MalformedYAMLIsSettingsError(t *testing.T) {
	root := t.TempDir()
	writeSettings(t, root, YAMLFileName, "configName: [unclosed\n")

	_, err := Load(root)
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitSettingsError, cliErr.Code)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	root := t.TempDir()
	writeSettings(t, root, JSONFileName, `{"configName": "has spaces"}`)

	_, err := Load(root)
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitSettingsError, cliErr.Code)
}
