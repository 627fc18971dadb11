package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"plugin-analyzer/internal/analyze"
	"plugin-analyzer/internal/plugin"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PLUGIN_ANALYZER"

// Provider names.
const (
	ProviderAuto     = "auto"
	ProviderGo       = "go"
	ProviderSnapshot = "snapshot"
)

// Output formats.
const (
	FormatDebug = "debug"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config holds the resolved settings of one run.
type Config struct {
	// Dependency is the unit declaring the component interface.
	Dependency string `mapstructure:"dependency"`
	// Interface is the name of the component interface.
	Interface string `mapstructure:"interface"`
	// Provider selects the model provider: auto, go or snapshot.
	Provider string `mapstructure:"provider"`
	// Impls selects how the Go provider derives implementation records.
	Impls string `mapstructure:"impls"`
	// Format selects the output encoding.
	Format string    `mapstructure:"format"`
	Log    LogConfig `mapstructure:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Dependency: plugin.DefaultDependency,
		Interface:  plugin.DefaultInterface,
		Provider:   ProviderAuto,
		Impls:      analyze.ImplDeclared.String(),
		Format:     FormatDebug,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// NewViper returns a viper instance with defaults and environment binding
// set up. Callers may bind flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("dependency", defaults.Dependency)
	v.SetDefault("interface", defaults.Interface)
	v.SetDefault("provider", defaults.Provider)
	v.SetDefault("impls", defaults.Impls)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("log.level", defaults.Log.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// Load resolves the configuration from v. A non-empty path names a config
// file that must exist. A missing .env file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}

		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	var errs []error

	if c.Dependency == "" {
		errs = append(errs, errors.New("dependency must not be empty"))
	}

	if c.Interface == "" {
		errs = append(errs, errors.New("interface must not be empty"))
	}

	if !slices.Contains([]string{ProviderAuto, ProviderGo, ProviderSnapshot}, c.Provider) {
		errs = append(errs, fmt.Errorf("unknown provider %q (want auto, go or snapshot)", c.Provider))
	}

	if !slices.Contains([]string{analyze.ImplDeclared.String(), analyze.ImplImplicit.String()}, c.Impls) {
		errs = append(errs, fmt.Errorf("unknown impls mode %q (want declared or implicit)", c.Impls))
	}

	if !slices.Contains([]string{FormatDebug, FormatJSON, FormatYAML}, c.Format) {
		errs = append(errs, fmt.Errorf("unknown format %q (want debug, json or yaml)", c.Format))
	}

	return errors.Join(errs...)
}

// ResolveProvider returns the concrete provider for root: with "auto", a
// regular file is a snapshot and anything else a Go workspace.
func (c *Config) ResolveProvider(root string) string {
	if c.Provider != ProviderAuto {
		return c.Provider
	}

	if info, err := os.Stat(root); err == nil && info.Mode().IsRegular() {
		return ProviderSnapshot
	}

	return ProviderGo
}
