package snapshot

import (
	"slices"
	"strings"

	"plugin-analyzer/internal/semantic"
)

// Export captures a model as a snapshot. Every module is written, including
// empty ones, so Build(Export(m)) reproduces the unit and module order of m.
func Export(m semantic.Model) *File {
	f := &File{Version: CurrentVersion}

	for _, u := range m.Units() {
		unitName, _ := m.UnitName(u)
		unit := Unit{Name: unitName}

		for _, mod := range m.UnitModules(u) {
			unit.Modules = append(unit.Modules, exportModule(m, mod))
		}

		f.Units = append(f.Units, unit)
	}

	return f
}

func exportModule(m semantic.Model, mod semantic.ModuleID) Module {
	out := Module{Path: modulePath(m, mod)}

	for _, d := range m.Declarations(mod) {
		name, _ := m.DeclName(d)
		decl := Declaration{
			Kind: m.DeclKind(d).String(),
			Name: name,
		}

		if fields, ok := m.StructFields(d); ok {
			decl.Fields = fields
		}

		out.Declarations = append(out.Declarations, decl)
	}

	for _, i := range m.Impls(mod) {
		var impl Impl

		if trait, ok := m.ImplTrait(i); ok {
			impl.Trait = declPath(m, trait)
		}

		self := m.ImplSelf(i)
		if self.Decl != semantic.NoDecl {
			impl.Self = declPath(m, self.Decl)
		} else {
			impl.Self = self.Name
			impl.SelfKind = self.Kind.String()
		}

		out.Impls = append(out.Impls, impl)
	}

	return out
}

// modulePath returns the names of mod and its named ancestors, root first.
func modulePath(m semantic.Model, mod semantic.ModuleID) string {
	var segments []string

	for {
		if name, ok := m.ModuleName(mod); ok {
			segments = append(segments, name)
		}

		parent, ok := m.ModuleParent(mod)
		if !ok {
			break
		}

		mod = parent
	}

	slices.Reverse(segments)

	return strings.Join(segments, Separator)
}

func declPath(m semantic.Model, d semantic.DeclID) string {
	mod := m.DeclModule(d)
	unitName, _ := m.UnitName(m.ModuleUnit(mod))
	name, _ := m.DeclName(d)

	return joinPath(unitName, modulePath(m, mod), name)
}
