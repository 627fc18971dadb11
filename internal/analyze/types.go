package analyze

import (
	"golang.org/x/tools/go/packages"

	"plugin-analyzer/internal/common"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports |
	packages.NeedDeps |
	packages.NeedModule

// ImplMode selects how implementation records are derived.
type ImplMode int

const (
	// ImplDeclared records package-level interface assertions
	// (`var _ I = T{}`), the Go counterpart of an explicit impl block.
	ImplDeclared ImplMode = iota
	// ImplImplicit records every non-empty interface in the workspace that a
	// named type or its pointer satisfies.
	ImplImplicit
)

// String returns a human-readable representation of the ImplMode.
func (m ImplMode) String() string {
	switch m {
	case ImplDeclared:
		return "declared"
	case ImplImplicit:
		return "implicit"
	default:
		return common.UnknownStr
	}
}

// ParseImplMode converts a mode name back to an ImplMode.
func ParseImplMode(s string) (ImplMode, bool) {
	switch s {
	case "declared", "":
		return ImplDeclared, true
	case "implicit":
		return ImplImplicit, true
	default:
		return ImplDeclared, false
	}
}
