package sample_plugin

import (
	"example.com/ecs"
	"example.com/fakeecs"
)

type Point struct {
	x float64
	y float64
}

func (*Point) ComponentName() string { return "Point" }

var _ ecs.Component = (*Point)(nil)

type Team int

func (Team) ComponentName() string { return "Team" }

var _ ecs.Component = Team(0)

type Decoy struct {
	tag string
}

func (Decoy) ComponentName() string { return "Decoy" }

var _ fakeecs.Component = Decoy{}

type Untracked struct {
	id int
}

func (Untracked) ComponentName() string { return "Untracked" }
