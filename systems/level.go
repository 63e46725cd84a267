package systems

import (
	"log"

	"github.com/automoto/kinematic/components"
	"github.com/automoto/kinematic/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRespawn puts players that left the space back at the level spawn
// with no velocity and a fresh contact state.
func UpdateRespawn(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	spawn := components.Level.Get(levelEntry).Spawn
	space := components.Space.Get(spaceEntry)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) {
			return
		}
		body := components.Body.Get(e)
		lo, hi := body.Bounds()
		if hi.Y() >= 0 && lo.X() <= space.Width() && hi.X() >= 0 {
			return
		}

		space.SetPosition(body.Body, spawn)
		body.Velocity = mgl64.Vec2{}
		if e.HasComponent(components.Contact) {
			*components.Contact.Get(e) = components.ContactData{}
		}
		if e.HasComponent(components.Probe) {
			probe := components.Probe.Get(e)
			probe.Hits = nil
			probe.Climbable = false
		}
		log.Printf("player fell out of the level, respawning at %.0f,%.0f", spawn.X(), spawn.Y())
	})
}
