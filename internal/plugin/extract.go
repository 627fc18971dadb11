package plugin

import (
	"github.com/charmbracelet/log"

	"plugin-analyzer/internal/logging"
	"plugin-analyzer/internal/semantic"
)

// Extract returns a PluginComponent for every implementation record in unit
// whose trait is iface and whose self type is a struct, in module order then
// record order. Records for enums, primitives, generic or unresolved types
// are skipped. The only error is ErrProviderInvariant from BuildPath.
func Extract(m semantic.Model, unit semantic.UnitID, iface semantic.DeclID) ([]PluginComponent, error) {
	return extract(m, unit, iface, logging.Discard())
}

func extract(m semantic.Model, unit semantic.UnitID, iface semantic.DeclID, logger *log.Logger) ([]PluginComponent, error) {
	components := []PluginComponent{}

	for _, mod := range m.UnitModules(unit) {
		for _, impl := range m.Impls(mod) {
			trait, ok := m.ImplTrait(impl)
			if !ok || trait != iface {
				continue
			}

			self := m.ImplSelf(impl)
			if !self.IsStruct() || m.DeclKind(self.Decl) != semantic.DeclStruct {
				logger.Debug("skipping non-struct implementation", "self", self.Name, "kind", self.Kind)
				continue
			}

			component, err := newComponent(m, self.Decl)
			if err != nil {
				return nil, err
			}

			logger.Debug("found component", "path", component.Path, "fields", len(component.Fields))
			components = append(components, component)
		}
	}

	return components, nil
}

// newComponent describes struct declaration d.
func newComponent(m semantic.Model, d semantic.DeclID) (PluginComponent, error) {
	path, err := BuildPath(m, d)
	if err != nil {
		return PluginComponent{}, err
	}

	// BuildPath already checked the name.
	name, _ := m.DeclName(d)

	fields, _ := m.StructFields(d)
	if fields == nil {
		fields = []string{}
	}

	return PluginComponent{
		Name:   name,
		Path:   path,
		Fields: fields,
	}, nil
}
