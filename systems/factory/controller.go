package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/kinematic/archetypes"
	"github.com/automoto/kinematic/components"
	cfg "github.com/automoto/kinematic/config"
	"github.com/automoto/kinematic/mathutil"
	"github.com/automoto/kinematic/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoSpace = errors.New("factory: world has no physics space")

// ControllerOptions describes a controller to spawn. Build one with
// NewControllerOptions and refine it with the With methods.
type ControllerOptions struct {
	Shape    physics.Shape
	Position mgl64.Vec2
	Gravity  mgl64.Vec2
	// nil spawns a controller that ignores intents
	Movement *cfg.MovementConfig
	// Preset records where Movement came from for tuning reloads
	Preset components.MovementPreset
	Layers physics.Layer
	Mask   physics.Layer
}

// NewControllerOptions starts from the default movement bundle.
func NewControllerOptions(shape physics.Shape, gravity mgl64.Vec2) ControllerOptions {
	movement := cfg.Controller.Movement
	return ControllerOptions{
		Shape:    shape,
		Gravity:  gravity,
		Movement: &movement,
		Preset:   components.PresetDefault,
		Layers:   physics.LayerPlayer,
		Mask:     physics.LayerGround,
	}
}

func (o ControllerOptions) At(x, y float64) ControllerOptions {
	o.Position = mgl64.Vec2{x, y}
	return o
}

func (o ControllerOptions) WithMovement(acceleration, damping, jumpImpulse float64, maxJumps uint32, maxSlopeAngle float64) ControllerOptions {
	o.Movement = &cfg.MovementConfig{
		Acceleration:  acceleration,
		Damping:       damping,
		JumpImpulse:   jumpImpulse,
		MaxJumps:      maxJumps,
		MaxSlopeAngle: maxSlopeAngle,
	}
	o.Preset = components.PresetCustom
	return o
}

func (o ControllerOptions) WithoutMovement() ControllerOptions {
	o.Movement = nil
	return o
}

// CreateController spawns a kinematic controller with its ground probe.
func CreateController(ecs *ecs.ECS, opts ControllerOptions, extra ...donburi.IComponentType) (*donburi.Entry, error) {
	body := physics.NewBody(physics.Kinematic, opts.Shape, opts.Position)
	body.Layers = opts.Layers
	body.Mask = opts.Mask
	if err := addBody(ecs, body); err != nil {
		return nil, fmt.Errorf("create controller: %w", err)
	}

	cs := extra
	if opts.Movement != nil {
		cs = append(cs, components.Movement)
	}
	controller := archetypes.Controller.Spawn(ecs, cs...)
	body.Data = controller // Link for O(1) lookup
	components.Body.SetValue(controller, components.BodyData{Body: body})

	ctrl := components.ControllerData{BaseGravity: opts.Gravity, Gravity: opts.Gravity}
	if m := opts.Movement; m != nil {
		slope := m.MaxSlopeAngle
		ctrl.MaxSlopeAngle = &slope
		ctrl.Jumps.Max = m.MaxJumps
		components.Movement.SetValue(controller, components.MovementData{
			Acceleration: m.Acceleration,
			Damping:      m.Damping,
			JumpImpulse:  m.JumpImpulse,
			Preset:       opts.Preset,
		})
	}
	components.Controller.SetValue(controller, ctrl)

	components.Probe.SetValue(controller, components.ProbeData{
		Caster: components.CasterData{
			Shape:       opts.Shape.Scaled(cfg.Physics.ProbeScale),
			Direction:   mathutil.Up.Mul(-1),
			MaxDistance: cfg.Physics.ProbeMaxDistance,
			MaxHits:     cfg.Physics.ProbeMaxHits,
			Mask:        physics.LayerGround,
			ClimbMask:   physics.LayerClimbable,
		},
	})

	return controller, nil
}
