package systems

import (
	"github.com/automoto/kinematic/components"
	cfg "github.com/automoto/kinematic/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics steps the space, resolving controller penetration after
// every sub-step.
func UpdatePhysics(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	space.Step(cfg.Physics.DeltaTime(), cfg.Physics.Substeps, ResolveKinematicCollisions)
}
