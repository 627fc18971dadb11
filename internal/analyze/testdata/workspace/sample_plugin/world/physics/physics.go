package physics

import "example.com/ecs"

type Vec2 struct{ X, Y float64 }

type Body struct {
	Position Vec2
	Velocity Vec2
}

func (*Body) ComponentName() string { return "Body" }

var _ ecs.Component = &Body{}
