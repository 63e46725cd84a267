package factory

import (
	"fmt"
	"log"

	"github.com/automoto/kinematic/archetypes"
	"github.com/automoto/kinematic/components"
	cfg "github.com/automoto/kinematic/config"
	"github.com/automoto/kinematic/physics"
	"github.com/automoto/kinematic/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel records the running level and where players (re)spawn.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level, spawn mgl64.Vec2) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: level,
		Spawn:        spawn,
	})
	return entry
}

// BuildLevel spawns the static geometry of a parsed level. The world must
// already have a space covering the level.
func BuildLevel(ecs *ecs.ECS, level *leveldata.Level) error {
	for _, r := range level.Ground {
		x, y := r.Center()
		if _, err := CreateGround(ecs, x, y, r.W, r.H); err != nil {
			return fmt.Errorf("level %s: %w", level.Name, err)
		}
	}
	for _, r := range level.Ramps {
		x, y := r.Center()
		dir := physics.RampUpRight
		if r.Slope == leveldata.SlopeUpLeft {
			dir = physics.RampUpLeft
		}
		if _, err := CreateRamp(ecs, x, y, r.W, r.H, dir); err != nil {
			return fmt.Errorf("level %s: %w", level.Name, err)
		}
	}
	for _, r := range level.Climbables {
		x, y := r.Center()
		if _, err := CreateClimbable(ecs, x, y, r.W, r.H); err != nil {
			return fmt.Errorf("level %s: %w", level.Name, err)
		}
	}
	log.Printf("factory: built level %s", level.Name)
	return nil
}

// CreateDemoLevel spawns the built-in scene from cfg.Level.
func CreateDemoLevel(ecs *ecs.ECS) error {
	l := cfg.Level
	for _, f := range l.Floors {
		if _, err := CreateGround(ecs, f[0], f[1], f[2], f[3]); err != nil {
			return err
		}
	}
	if _, err := CreateClimbable(ecs, l.Rope[0], l.Rope[1], l.Rope[2], l.Rope[3]); err != nil {
		return err
	}
	if _, err := CreateRamp(ecs, l.Ramp[0], l.Ramp[1], l.Ramp[2], l.Ramp[3], physics.RampUpRight); err != nil {
		return err
	}
	p := l.Platform
	if _, err := CreateMovingPlatform(ecs, p[0], p[1], p[2], p[3], l.PlatformTravel, l.PlatformDuration); err != nil {
		return err
	}
	return nil
}
