// Package plugin discovers ECS components in a compilation unit.
//
// Given a semantic.Model it:
//  1. Locates the interface-providing dependency unit and the marker
//     interface declared in it (default: bevy_ecs::Component)
//  2. Locates the target unit by name
//  3. Collects every implementation record in the target unit whose trait is
//     that exact interface declaration and whose self type is a struct
//  4. Reports each struct's name, declaration path and field names
//
// Lookups are "first match in provider order"; nothing is sorted or
// deduplicated. Every failure is fatal and reported through one of the
// sentinel errors in errors.go.
package plugin
