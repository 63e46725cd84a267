package systems

import (
	"github.com/automoto/kinematic/components"
	cfg "github.com/automoto/kinematic/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGravity switches each controller between its base gravity and
// none while climbing, then integrates it into the body velocity. The
// physics space never applies gravity to kinematic bodies.
func UpdateGravity(ecs *ecs.ECS) {
	dt := cfg.Physics.DeltaTime()
	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) {
			return
		}
		ctrl := components.Controller.Get(e)
		body := components.Body.Get(e)

		climbing := false
		if e.HasComponent(components.Contact) {
			climbing = components.Contact.Get(e).Climbing
		}
		ctrl.Gravity = gravityFor(climbing, ctrl.BaseGravity)
		body.Velocity = body.Velocity.Add(ctrl.Gravity.Mul(dt))
	})
}

func gravityFor(climbing bool, base mgl64.Vec2) mgl64.Vec2 {
	if climbing {
		return mgl64.Vec2{}
	}
	return base
}
