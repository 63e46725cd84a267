package systems

import (
	"github.com/automoto/kinematic/components"
	"github.com/automoto/kinematic/mathutil"
	"github.com/automoto/kinematic/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts classifies every controller from the probe results of
// the previous physics update and this tick's intents.
func UpdateContacts(ecs *ecs.ECS) {
	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Contact) || !e.HasComponent(components.Probe) {
			return
		}
		ctrl := components.Controller.Get(e)
		contact := components.Contact.Get(e)
		probe := components.Probe.Get(e)

		var intents []components.Intent
		if e.HasComponent(components.Intents) {
			intents = components.Intents.Get(e).Queue
		}

		hit, ok := probe.GroundHit()
		grounded := classifyGrounded(hit, ok, ctrl.MaxSlopeAngle)
		if grounded && !contact.Grounded {
			ctrl.Jumps.Current = 0
		}
		contact.Grounded = grounded
		contact.CanClimb = probe.Climbable
		contact.Climbing = nextClimbing(contact.Climbing, contact.CanClimb, intents)
	})
}

// classifyGrounded accepts a ground hit whose surface is no steeper than
// maxSlope.
func classifyGrounded(hit physics.Hit, ok bool, maxSlope *float64) bool {
	if !ok {
		return false
	}
	if maxSlope == nil {
		return true
	}
	return mathutil.AngleBetween(hit.Normal, mathutil.Up) <= *maxSlope
}

// nextClimbing folds the intents over the previous climbing state and
// clamps the result to what the overlap allows.
func nextClimbing(prev, canClimb bool, intents []components.Intent) bool {
	want := prev
	for _, in := range intents {
		switch in.Kind {
		case components.IntentClimb:
			want = true
		case components.IntentJump:
			want = false
		}
	}
	return want && canClimb
}
