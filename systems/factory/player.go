package factory

import (
	"github.com/automoto/kinematic/components"
	cfg "github.com/automoto/kinematic/config"
	"github.com/automoto/kinematic/physics"
	"github.com/automoto/kinematic/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerOptions is the player preset at x, y.
func PlayerOptions(x, y float64) ControllerOptions {
	m := cfg.Player.Movement
	opts := NewControllerOptions(
		physics.Box(cfg.Player.CollisionWidth, cfg.Player.CollisionHeight),
		PlayerGravity(),
	).At(x, y).WithMovement(m.Acceleration, m.Damping, m.JumpImpulse, m.MaxJumps, m.MaxSlopeAngle)
	opts.Preset = components.PresetPlayer
	return opts
}

// PlayerGravity is the free-fall gravity of player controllers.
func PlayerGravity() mgl64.Vec2 {
	return mgl64.Vec2{0, -cfg.Physics.Gravity}
}

func CreatePlayer(ecs *ecs.ECS, x, y float64) (*donburi.Entry, error) {
	return CreateController(ecs, PlayerOptions(x, y), tags.Player)
}
