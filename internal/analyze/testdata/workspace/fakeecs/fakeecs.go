// Package fakeecs declares an interface with the same name and method set as
// ecs.Component.
package fakeecs

type Component interface {
	ComponentName() string
}
