package systems

import (
	"math"

	"github.com/automoto/kinematic/components"
	"github.com/automoto/kinematic/mathutil"
	"github.com/automoto/kinematic/physics"
	"github.com/yohamta/donburi"
)

// ResolveKinematicCollisions is the sub-step hook of the physics space.
// Kinematic controllers are not pushed by the solver, so each fresh
// manifold involving exactly one controller is resolved here.
func ResolveKinematicCollisions(manifolds []physics.Manifold) {
	for _, m := range manifolds {
		if !m.Fresh {
			continue
		}
		resolveManifold(m)
	}
}

func resolveManifold(m physics.Manifold) {
	if m.BodyA == nil || m.BodyB == nil || m.BodyA.Sensor || m.BodyB.Sensor {
		return
	}
	entryA, isA := controllerOf(m.BodyA)
	entryB, isB := controllerOf(m.BodyB)
	if isA == isB {
		return
	}

	// Push the controller away from the other body
	body, entry, n := m.BodyB, entryB, m.Normal
	if isA {
		body, entry, n = m.BodyA, entryA, m.Normal.Mul(-1)
	}

	for _, c := range m.Contacts {
		if c.Penetration > 0 {
			body.Position = body.Position.Add(n.Mul(c.Penetration))
		}
	}

	ctrl := components.Controller.Get(entry)
	if ctrl.MaxSlopeAngle == nil || body.Velocity.Y() >= 0 {
		return
	}
	if mathutil.AngleBetween(n, mathutil.Up) <= *ctrl.MaxSlopeAngle {
		body.Velocity[1] = math.Max(body.Velocity.Y(), 0)
	}
}

// controllerOf returns the entry owning b when b is a live kinematic
// controller body.
func controllerOf(b *physics.Body) (*donburi.Entry, bool) {
	if b.Kind != physics.Kinematic {
		return nil, false
	}
	e, ok := b.Data.(*donburi.Entry)
	if !ok || e == nil || !e.Valid() || !e.HasComponent(components.Controller) {
		return nil, false
	}
	return e, true
}
