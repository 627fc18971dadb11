package plugin

import "plugin-analyzer/internal/semantic"

// FindUnit returns the first unit whose display name equals name exactly.
// Units without a display name never match.
func FindUnit(m semantic.Model, name string) (semantic.UnitID, bool) {
	if idx, ok := m.(semantic.UnitIndex); ok {
		return idx.LookupUnit(name)
	}

	for _, u := range m.Units() {
		if unitName, ok := m.UnitName(u); ok && unitName == name {
			return u, true
		}
	}

	return 0, false
}

// FindInterface returns the first interface declaration named name among the
// module-level declarations of unit. Nested declarations are not searched.
func FindInterface(m semantic.Model, unit semantic.UnitID, name string) (semantic.DeclID, bool) {
	for _, mod := range m.UnitModules(unit) {
		for _, d := range m.Declarations(mod) {
			if m.DeclKind(d) != semantic.DeclInterface {
				continue
			}

			if declName, ok := m.DeclName(d); ok && declName == name {
				return d, true
			}
		}
	}

	return semantic.NoDecl, false
}
