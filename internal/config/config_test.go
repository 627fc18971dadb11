package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plugin-analyzer/internal/analyze"
	"plugin-analyzer/internal/plugin"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestDefaultConfig_SharedDefaults(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, plugin.DefaultDependency, cfg.Dependency)
	assert.Equal(t, plugin.DefaultInterface, cfg.Interface)

	mode, ok := analyze.ParseImplMode(cfg.Impls)
	require.True(t, ok)
	assert.Equal(t, analyze.ImplDeclared, mode)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PLUGIN_ANALYZER_DEPENDENCY", "ecs")
	t.Setenv("PLUGIN_ANALYZER_LOG_LEVEL", "debug")

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "ecs", cfg.Dependency)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "Component", cfg.Interface)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugin-analyzer.yaml")
	content := `
dependency: my_ecs
interface: Marker
impls: implicit
format: json
log:
  level: warn
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Dependency: "my_ecs",
		Interface:  "Marker",
		Provider:   ProviderAuto,
		Impls:      "implicit",
		Format:     FormatJSON,
		Log:        LogConfig{Level: "warn"},
	}, *cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Provider = "cargo"
	cfg.Format = "xml"
	cfg.Interface = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown provider "cargo"`)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
	assert.Contains(t, err.Error(), "interface must not be empty")
}

func TestResolveProvider(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "model.yaml")
	require.NoError(t, os.WriteFile(file, []byte("units: []\n"), 0o644))

	cfg := DefaultConfig()
	assert.Equal(t, ProviderGo, cfg.ResolveProvider(dir))
	assert.Equal(t, ProviderSnapshot, cfg.ResolveProvider(file))

	cfg.Provider = ProviderGo
	assert.Equal(t, ProviderGo, cfg.ResolveProvider(file))
}
