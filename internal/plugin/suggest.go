package plugin

import (
	"strings"

	"plugin-analyzer/internal/match"
	"plugin-analyzer/internal/semantic"
)

const maxSuggestions = 3

// unitNames lists the display names of every named unit in provider order.
func unitNames(m semantic.Model) []string {
	var names []string

	for _, u := range m.Units() {
		if name, ok := m.UnitName(u); ok {
			names = append(names, name)
		}
	}

	return names
}

// interfaceNames lists the names of the module-level interfaces of unit.
func interfaceNames(m semantic.Model, unit semantic.UnitID) []string {
	var names []string

	for _, mod := range m.UnitModules(unit) {
		for _, d := range m.Declarations(mod) {
			if m.DeclKind(d) != semantic.DeclInterface {
				continue
			}

			if name, ok := m.DeclName(d); ok {
				names = append(names, name)
			}
		}
	}

	return names
}

// didYouMean formats close matches for name as an error suffix, or returns
// an empty string when nothing is close enough.
func didYouMean(name string, candidates []string) string {
	hints := match.Suggest(name, candidates, maxSuggestions)
	if len(hints) == 0 {
		return ""
	}

	return " (did you mean " + strings.Join(hints, ", ") + "?)"
}
