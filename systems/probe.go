package systems

import (
	"github.com/automoto/kinematic/components"
	"github.com/automoto/kinematic/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProbes runs the ground cast and the climbable overlap for every
// controller. It runs after UpdatePhysics; the results feed the next
// tick's UpdateContacts.
func UpdateProbes(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	components.Probe.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) {
			return
		}
		probe := components.Probe.Get(e)
		body := components.Body.Get(e)

		probe.Hits = castGround(space, &probe.Caster, body.Position)
		probe.Climbable = OverlapsClimbable(space, body.Shape, body.Position, probe.Caster.ClimbMask)
	})
}

// GroundHit casts the caster from position and returns the closest hit.
func GroundHit(space *physics.Space, caster *components.CasterData, position mgl64.Vec2) (physics.Hit, bool) {
	hits := castGround(space, caster, position)
	if len(hits) == 0 {
		return physics.Hit{}, false
	}
	return hits[0], true
}

func castGround(space *physics.Space, caster *components.CasterData, position mgl64.Vec2) []physics.Hit {
	return space.Cast(caster.Shape, position, caster.Direction, caster.MaxDistance, caster.Mask, caster.MaxHits)
}

// OverlapsClimbable reports whether shape at position touches anything on
// the climbable layers.
func OverlapsClimbable(space *physics.Space, shape physics.Shape, position mgl64.Vec2, mask physics.Layer) bool {
	return len(space.Overlaps(shape, position, mask)) > 0
}
