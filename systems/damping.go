package systems

import (
	"github.com/automoto/kinematic/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDamping decays the axis the controller is currently driving.
func UpdateDamping(ecs *ecs.ECS) {
	components.Movement.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) || !e.HasComponent(components.Contact) {
			return
		}
		body := components.Body.Get(e)
		climbing := components.Contact.Get(e).Climbing
		body.Velocity = damp(body.Velocity, components.Movement.Get(e).Damping, climbing)
	})
}

func damp(vel mgl64.Vec2, factor float64, climbing bool) mgl64.Vec2 {
	if climbing {
		vel[1] *= factor
	} else {
		vel[0] *= factor
	}
	return vel
}
