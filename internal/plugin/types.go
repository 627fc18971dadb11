package plugin

// PluginComponent describes one struct implementing the component interface.
type PluginComponent struct {
	// Name is the simple name of the struct.
	Name string `json:"name" yaml:"name"`
	// Path is the declaration path, e.g. "sample_plugin::shapes::Circle".
	Path string `json:"path" yaml:"path"`
	// Fields are the field names in declaration order.
	Fields []string `json:"fields" yaml:"fields"`
}

// PluginCrate is the result of analyzing one compilation unit.
type PluginCrate struct {
	Name       string            `json:"name" yaml:"name"`
	Components []PluginComponent `json:"components" yaml:"components"`
}
