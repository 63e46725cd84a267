package factory

import (
	"fmt"

	"github.com/automoto/kinematic/archetypes"
	"github.com/automoto/kinematic/components"
	"github.com/automoto/kinematic/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround adds a static walkable box centered on x, y.
func CreateGround(ecs *ecs.ECS, x, y, w, h float64) (*donburi.Entry, error) {
	body := newGroundBody(physics.Static, physics.Box(w, h), x, y)
	if err := addBody(ecs, body); err != nil {
		return nil, fmt.Errorf("create ground: %w", err)
	}

	ground := archetypes.Ground.Spawn(ecs)
	body.Data = ground
	components.Body.SetValue(ground, components.BodyData{Body: body})
	return ground, nil
}

// CreateRamp adds a static 45 degree style ramp filling the w x h box
// centered on x, y.
func CreateRamp(ecs *ecs.ECS, x, y, w, h float64, dir physics.RampDirection) (*donburi.Entry, error) {
	body := newGroundBody(physics.Static, physics.Ramp(w, h, dir), x, y)
	if err := addBody(ecs, body); err != nil {
		return nil, fmt.Errorf("create ramp: %w", err)
	}

	ramp := archetypes.Ramp.Spawn(ecs)
	body.Data = ramp
	components.Body.SetValue(ramp, components.BodyData{Body: body})
	return ramp, nil
}

// CreateClimbable adds a sensor that lets controllers climb while they
// overlap it.
func CreateClimbable(ecs *ecs.ECS, x, y, w, h float64) (*donburi.Entry, error) {
	body := physics.NewBody(physics.Static, physics.Box(w, h), mgl64.Vec2{x, y})
	body.Layers = physics.LayerClimbable
	body.Mask = physics.LayerNone
	body.Sensor = true
	if err := addBody(ecs, body); err != nil {
		return nil, fmt.Errorf("create climbable: %w", err)
	}

	climbable := archetypes.Climbable.Spawn(ecs)
	body.Data = climbable
	components.Body.SetValue(climbable, components.BodyData{Body: body})
	return climbable, nil
}

func newGroundBody(kind physics.BodyKind, shape physics.Shape, x, y float64) *physics.Body {
	body := physics.NewBody(kind, shape, mgl64.Vec2{x, y})
	body.Layers = physics.LayerGround
	body.Mask = physics.LayerPlayer | physics.LayerEnemy
	return body
}
