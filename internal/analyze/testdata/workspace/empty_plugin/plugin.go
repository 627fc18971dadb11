package empty_plugin

import "example.com/ecs"

type Point struct {
	x, y float64
}

// Spawn keeps the ecs import in use without asserting Component.
func Spawn(w *ecs.World) ecs.Entity {
	return w.Spawn()
}
