// Package ecs is a minimal entity-component-system used as a fixture.
package ecs

// Component marks data that can be attached to an entity.
type Component interface {
	ComponentName() string
}

// Resource marks world-global data.
type Resource interface {
	ResourceName() string
}

// Entity is an entity handle.
type Entity uint32

// World stores components by entity.
type World struct {
	next       Entity
	components map[Entity][]Component
}

// Spawn creates an entity with the given components.
func (w *World) Spawn(components ...Component) Entity {
	if w.components == nil {
		w.components = make(map[Entity][]Component)
	}

	w.next++
	w.components[w.next] = components

	return w.next
}
