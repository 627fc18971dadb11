package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"plugin-analyzer/internal/config"
	"plugin-analyzer/internal/plugin"
)

// writeCrate prints crate in the requested format.
func writeCrate(w io.Writer, crate *plugin.PluginCrate, format string) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(crate)

	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(crate); err != nil {
			return err
		}

		return enc.Close()

	case config.FormatDebug:
		cfg := spew.ConfigState{Indent: "    ", DisablePointerAddresses: true, DisableCapacities: true}
		cfg.Fdump(w, crate)

		return nil

	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
