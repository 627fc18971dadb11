package plugin

import (
	"fmt"
	"slices"
	"strings"

	"plugin-analyzer/internal/semantic"
)

// PathSeparator joins the segments of a declaration path.
const PathSeparator = "::"

// BuildPath returns the declaration path of d: the owning unit's name, the
// names of the enclosing modules from the root down, then d's own name.
// Unnamed modules (the root) contribute no segment. Re-exports and aliases
// are ignored.
func BuildPath(m semantic.Model, d semantic.DeclID) (string, error) {
	name, ok := m.DeclName(d)
	if !ok {
		return "", fmt.Errorf("%w: declaration %d has no name", ErrProviderInvariant, d)
	}

	// Collected leaf-first, reversed below.
	segments := []string{name}

	mod := m.DeclModule(d)
	for {
		if modName, named := m.ModuleName(mod); named {
			segments = append(segments, modName)
		}

		parent, hasParent := m.ModuleParent(mod)
		if !hasParent {
			break
		}

		mod = parent
	}

	unitName, ok := m.UnitName(m.ModuleUnit(mod))
	if !ok {
		return "", fmt.Errorf("%w: unit owning %s has no display name", ErrProviderInvariant, name)
	}

	segments = append(segments, unitName)
	slices.Reverse(segments)

	return strings.Join(segments, PathSeparator), nil
}
