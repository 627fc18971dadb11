package shapes

import "example.com/ecs"

type Circle struct {
	Radius float64
	center [2]float64
}

func (Circle) ComponentName() string { return "Circle" }

type Tagged[T any] struct {
	Value T
}

func (Tagged[T]) ComponentName() string { return "Tagged" }

var (
	_ ecs.Component = Circle{}
	_ ecs.Component = Tagged[int]{}
)
