// Package analyze loads a Go workspace into a semantic model.
//
// It uses golang.org/x/tools/go/packages with AST and go/types and maps Go
// onto the unit/module/declaration model:
//   - Unit: a Go module, named by its module path (standard library
//     packages belong to no unit and are left out)
//   - Module: a directory below the module root; the root is unnamed
//   - Interface: a named interface type
//   - Structural type: a named struct type with all of its fields
//   - Implementation record: a compile-time assertion such as
//     `var _ ecs.Component = (*Point)(nil)`, or, in ImplImplicit mode,
//     every interface a named type satisfies
package analyze
