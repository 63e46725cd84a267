package systems

import (
	"github.com/automoto/kinematic/components"
	cfg "github.com/automoto/kinematic/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement applies queued intents, in order, to the velocity of
// every movement-capable controller.
func UpdateMovement(ecs *ecs.ECS) {
	dt := cfg.Physics.DeltaTime()
	components.Movement.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Controller) || !e.HasComponent(components.Body) ||
			!e.HasComponent(components.Contact) || !e.HasComponent(components.Intents) {
			return
		}
		move := components.Movement.Get(e)
		ctrl := components.Controller.Get(e)
		contact := components.Contact.Get(e)
		body := components.Body.Get(e)

		for _, in := range components.Intents.Get(e).Queue {
			body.Velocity = applyIntent(in, move, ctrl, contact, body.Velocity, dt)
		}
	})
}

// applyIntent returns vel after one intent. Horizontal input accumulates
// into momentum that UpdateDamping bleeds off.
func applyIntent(in components.Intent, move *components.MovementData, ctrl *components.ControllerData,
	contact *components.ContactData, vel mgl64.Vec2, dt float64) mgl64.Vec2 {
	switch in.Kind {
	case components.IntentMove:
		if !contact.Climbing {
			vel[0] += in.Value * move.Acceleration * dt
		}
	case components.IntentJump:
		if contact.Grounded || contact.Climbing || ctrl.Jumps.Current < ctrl.Jumps.Max {
			vel[1] = move.JumpImpulse
			ctrl.Jumps.Current++
		}
	case components.IntentClimb:
		if contact.Climbing {
			vel[0] = 0
			vel[1] += in.Value * move.Acceleration * dt
		}
	}
	return vel
}
