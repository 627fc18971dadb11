// Package semantic defines the read-only semantic model that the component
// analysis queries, and the in-memory Arena that providers build.
//
// A model exposes:
//   - compilation units (crates, Go modules) with a canonical display name
//   - a module tree per unit (the root module is unnamed)
//   - flat per-module declarations (interfaces, structs, enums, ...)
//   - per-module implementation records linking a self type to an interface
//
// Entities are addressed by integer handles (UnitID, ModuleID, DeclID, ImplID)
// owned by the Model that issued them.
package semantic
