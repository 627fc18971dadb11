// Package config loads plugin-analyzer settings.
//
// Sources, lowest precedence first: built-in defaults, an optional config
// file (any format viper reads), a .env file in the working directory,
// PLUGIN_ANALYZER_* environment variables, and command-line flags bound by
// the caller.
package config
