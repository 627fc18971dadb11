package snapshot

// CurrentVersion is the only snapshot schema version understood.
const CurrentVersion = "1"

// File is the root of a snapshot document.
type File struct {
	Version string `yaml:"version" toml:"version" json:"version"`
	Units   []Unit `yaml:"units" toml:"units" json:"units"`
}

// Unit is one compilation unit. An empty name marks a unit without a
// display name.
type Unit struct {
	Name    string   `yaml:"name" toml:"name" json:"name"`
	Modules []Module `yaml:"modules,omitempty" toml:"modules,omitempty" json:"modules,omitempty"`
}

// Module is a node of the unit's module tree, addressed by its path from the
// root ("" for the root, "a::b" for a nested module).
type Module struct {
	Path         string        `yaml:"path" toml:"path" json:"path"`
	Declarations []Declaration `yaml:"declarations,omitempty" toml:"declarations,omitempty" json:"declarations,omitempty"`
	Impls        []Impl        `yaml:"impls,omitempty" toml:"impls,omitempty" json:"impls,omitempty"`
}

// Declaration is a module-level declaration.
type Declaration struct {
	// Kind is one of interface (or trait), struct, enum, func, value, other.
	Kind   string   `yaml:"kind" toml:"kind" json:"kind"`
	Name   string   `yaml:"name" toml:"name" json:"name"`
	Fields []string `yaml:"fields,omitempty" toml:"fields,omitempty" json:"fields,omitempty"`
}

// Impl is an implementation record.
type Impl struct {
	// Trait is the declaration path of the implemented interface; empty for
	// an inherent implementation.
	Trait string `yaml:"trait,omitempty" toml:"trait,omitempty" json:"trait,omitempty"`
	// Self is the declaration path of the self type, or the spelling of a
	// type that has no declaration (e.g. "u32").
	Self string `yaml:"self" toml:"self" json:"self"`
	// SelfKind classifies Self when it is not a declaration in the snapshot.
	SelfKind string `yaml:"self_kind,omitempty" toml:"self_kind,omitempty" json:"self_kind,omitempty"`
}
