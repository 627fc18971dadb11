package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"plugin-analyzer/internal/logging"
	"plugin-analyzer/internal/semantic"
)

// Format is a snapshot encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the encoding from a file extension, defaulting to YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// LoadFile reads and decodes a snapshot file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	return Decode(data, FormatFromPath(path))
}

// Decode parses snapshot data.
func Decode(data []byte, format Format) (*File, error) {
	var f File

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse snapshot TOML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse snapshot JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse snapshot YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q", format)
	}

	if f.Version == "" {
		f.Version = CurrentVersion
	}

	return &f, nil
}

// Encode serializes a snapshot.
func Encode(w io.Writer, f *File, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(f)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(f)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(f); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("unsupported snapshot format %q", format)
	}
}

// WriteFile writes a snapshot to path, encoded according to its extension.
func WriteFile(f *File, path string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, f, FormatFromPath(path)); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}

	return nil
}

// Loader is a semantic.Provider reading snapshot files.
type Loader struct {
	logger *log.Logger
}

var _ semantic.Provider = (*Loader)(nil)

// NewLoader creates a Loader. A nil logger discards output.
func NewLoader(logger *log.Logger) *Loader {
	if logger == nil {
		logger = logging.Discard()
	}

	return &Loader{logger: logger}
}

// Load reads the snapshot at path and builds its model. Validation warnings
// are logged; validation errors fail the load.
func (l *Loader) Load(ctx context.Context, path string) (semantic.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	arena, diags := Build(f)
	diags.Log(l.logger)

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid snapshot %s: %w", path, err)
	}

	units, modules, decls, impls := arena.Len()
	l.logger.Debug("loaded snapshot", "path", path,
		"units", units, "modules", modules, "declarations", decls, "impls", impls)

	return arena, nil
}
