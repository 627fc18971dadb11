package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plugin-analyzer/internal/config"
	"plugin-analyzer/internal/plugin"
	"plugin-analyzer/internal/snapshot"
)

var sampleSnapshot = filepath.Join("..", "..", "internal", "snapshot", "testdata", "sample_plugin.yaml")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(t.Context())

	return stdout.String(), err
}

func TestRootCmd_FlagDefaults(t *testing.T) {
	defaults := config.DefaultConfig()
	flags := newRootCmd().PersistentFlags()

	for key, want := range map[string]string{
		"provider":   defaults.Provider,
		"dependency": defaults.Dependency,
		"interface":  defaults.Interface,
		"impls":      defaults.Impls,
		"format":     defaults.Format,
	} {
		flag := flags.Lookup(key)
		require.NotNil(t, flag, key)
		assert.Equal(t, want, flag.DefValue, key)
	}
}

func TestAnalyze_JSON(t *testing.T) {
	out, err := run(t, "analyze", "--dependency", "ecs", "--format", "json", "sample_plugin", sampleSnapshot)
	require.NoError(t, err)

	var crate plugin.PluginCrate
	require.NoError(t, json.Unmarshal([]byte(out), &crate))

	assert.Equal(t, "sample_plugin", crate.Name)
	require.Len(t, crate.Components, 2)
	assert.Equal(t, plugin.PluginComponent{
		Name:   "Point",
		Path:   "sample_plugin::Point",
		Fields: []string{"x", "y"},
	}, crate.Components[0])
}

func TestAnalyze_Debug(t *testing.T) {
	out, err := run(t, "analyze", "--dependency", "ecs", "sample_plugin", sampleSnapshot)
	require.NoError(t, err)

	assert.Contains(t, out, "PluginCrate")
	assert.Contains(t, out, `"sample_plugin::physics::forces::Gravity"`)
}

func TestAnalyze_YAML(t *testing.T) {
	out, err := run(t, "analyze", "--dependency", "ecs", "--format", "yaml", "sample_plugin", sampleSnapshot)
	require.NoError(t, err)

	assert.Contains(t, out, "name: sample_plugin")
	assert.Contains(t, out, "path: sample_plugin::Point")
}

func TestAnalyze_UnknownUnit(t *testing.T) {
	_, err := run(t, "analyze", "--dependency", "ecs", "nope", sampleSnapshot)
	require.ErrorIs(t, err, plugin.ErrTargetUnitNotFound)
}

func TestAnalyze_DefaultDependencyMissing(t *testing.T) {
	_, err := run(t, "analyze", "sample_plugin", sampleSnapshot)
	require.ErrorIs(t, err, plugin.ErrDependencyUnitNotFound)
}

func TestAnalyze_InvalidFormat(t *testing.T) {
	_, err := run(t, "analyze", "--format", "xml", "sample_plugin", sampleSnapshot)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestUnits(t *testing.T) {
	out, err := run(t, "units", sampleSnapshot)
	require.NoError(t, err)

	assert.Equal(t, []string{"ecs", "sample_plugin"}, strings.Fields(out))
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.toml")

	_, err := run(t, "export", "-o", path, sampleSnapshot)
	require.NoError(t, err)

	f, err := snapshot.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, f.Units, 2)
	assert.Equal(t, "sample_plugin", f.Units[1].Name)

	// The exported snapshot analyzes like the original.
	out, err := run(t, "analyze", "--dependency", "ecs", "--format", "json", "sample_plugin", path)
	require.NoError(t, err)
	assert.Contains(t, out, "sample_plugin::physics::forces::Gravity")
}

func TestAnalyze_BundledExample(t *testing.T) {
	example := filepath.Join("..", "..", "examples", "sample_plugin", "workspace.yaml")

	out, err := run(t, "analyze", "--format", "json", "sample_plugin", example)
	require.NoError(t, err)

	var crate plugin.PluginCrate
	require.NoError(t, json.Unmarshal([]byte(out), &crate))

	assert.Equal(t, plugin.PluginCrate{
		Name: "sample_plugin",
		Components: []plugin.PluginComponent{
			{Name: "Point", Path: "sample_plugin::Point", Fields: []string{"x", "y"}},
		},
	}, crate)
}
