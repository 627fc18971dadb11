// Package snapshot reads and writes serialized semantic models.
//
// A snapshot is produced by an external semantic engine (for example a
// rust-analyzer based exporter, or this tool's own export command) and lists
// units, their modules by path, module-level declarations and implementation
// records. References between entities are declaration paths of the form
// "unit::module::...::Name".
//
// Supported encodings: YAML and JSON (gopkg.in/yaml.v3), TOML
// (github.com/pelletier/go-toml/v2).
package snapshot
