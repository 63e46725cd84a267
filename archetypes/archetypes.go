package archetypes

import (
	"github.com/automoto/kinematic/components"
	cfg "github.com/automoto/kinematic/config"
	"github.com/automoto/kinematic/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Controller = newArchetype(
		components.Controller,
		components.Body,
		components.Contact,
		components.Probe,
		components.Intents,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Body,
	)
	Ramp = newArchetype(
		tags.Ramp,
		components.Body,
	)
	Climbable = newArchetype(
		tags.Climbable,
		components.Body,
	)
	MovingPlatform = newArchetype(
		tags.MovingPlatform,
		components.Body,
		components.Platform,
		components.Tween,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
