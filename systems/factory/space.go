package factory

import (
	"github.com/automoto/kinematic/archetypes"
	"github.com/automoto/kinematic/components"
	"github.com/automoto/kinematic/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := physics.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addBody registers b in the world's space.
func addBody(ecs *ecs.ECS, b *physics.Body) error {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return ErrNoSpace
	}
	return components.Space.Get(spaceEntry).Add(b)
}
