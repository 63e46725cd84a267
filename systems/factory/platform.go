package factory

import (
	"fmt"

	"github.com/automoto/kinematic/archetypes"
	"github.com/automoto/kinematic/components"
	"github.com/automoto/kinematic/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMovingPlatform adds kinematic ground that rises by travel and
// comes back, each leg taking duration seconds.
func CreateMovingPlatform(ecs *ecs.ECS, x, y, w, h, travel float64, duration float32) (*donburi.Entry, error) {
	body := newGroundBody(physics.Kinematic, physics.Box(w, h), x, y)
	if err := addBody(ecs, body); err != nil {
		return nil, fmt.Errorf("create moving platform: %w", err)
	}

	platform := archetypes.MovingPlatform.Spawn(ecs)
	body.Data = platform
	components.Body.SetValue(platform, components.BodyData{Body: body})
	components.Platform.SetValue(platform, components.PlatformData{
		Origin: mgl64.Vec2{x, y},
		Axis:   mgl64.Vec2{0, 1},
	})

	// The platform moves using a *gween.Sequence of tweens, moving it back and forth.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, float32(travel), duration, ease.Linear),
		gween.New(float32(travel), 0, duration, ease.Linear),
	)
	components.Tween.Set(platform, tw)

	return platform, nil
}
