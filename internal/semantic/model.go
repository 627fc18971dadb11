package semantic

import "context"

// Model is the query surface of a semantic workspace model.
//
// Handles passed to a Model must have been issued by that same Model.
// Enumeration methods return entities in a stable, provider-defined order;
// "first match" lookups built on top of a Model depend on that order.
type Model interface {
	// Units enumerates every compilation unit in the workspace graph.
	Units() []UnitID
	// UnitName returns the canonical display name of a unit, if it has one.
	UnitName(u UnitID) (string, bool)
	// UnitModules enumerates every module of a unit, root first.
	UnitModules(u UnitID) []ModuleID

	// ModuleName returns the simple name of a module; root modules have none.
	ModuleName(m ModuleID) (string, bool)
	// ModuleParent returns the enclosing module; root modules have none.
	ModuleParent(m ModuleID) (ModuleID, bool)
	// ModuleUnit returns the unit owning a module.
	ModuleUnit(m ModuleID) UnitID
	// Declarations enumerates the module-level declarations (not nested ones).
	Declarations(m ModuleID) []DeclID
	// Impls enumerates the implementation records declared in a module.
	Impls(m ModuleID) []ImplID

	DeclKind(d DeclID) DeclKind
	DeclName(d DeclID) (string, bool)
	DeclModule(d DeclID) ModuleID
	// StructFields returns field names in declaration order; ok is false for
	// declarations that are not structural types.
	StructFields(d DeclID) ([]string, bool)

	// ImplTrait returns the interface an implementation targets; ok is false
	// for inherent implementations.
	ImplTrait(i ImplID) (DeclID, bool)
	ImplSelf(i ImplID) TypeRef
}

// UnitIndex is implemented by models that can look units up by name
// without a linear scan. LookupUnit must return the same unit a scan of
// Units() in order would find first.
type UnitIndex interface {
	LookupUnit(name string) (UnitID, bool)
}

// Provider builds a Model for the workspace rooted at root.
type Provider interface {
	Load(ctx context.Context, root string) (Model, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, root string) (Model, error)

// Load calls f(ctx, root).
func (f ProviderFunc) Load(ctx context.Context, root string) (Model, error) {
	return f(ctx, root)
}
