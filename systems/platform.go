package systems

import (
	"github.com/automoto/kinematic/components"
	cfg "github.com/automoto/kinematic/config"
	"github.com/automoto/kinematic/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances each platform tween and sets the body velocity
// that reaches the tweened position over the coming tick.
func UpdatePlatforms(ecs *ecs.ECS) {
	dt := cfg.Physics.DeltaTime()
	if dt == 0 {
		return
	}
	tags.MovingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Tween) || !e.HasComponent(components.Body) {
			return
		}
		seq := components.Tween.Get(e)
		platform := components.Platform.Get(e)
		body := components.Body.Get(e)

		offset, _, complete := seq.Update(float32(dt))
		if complete {
			seq.Reset()
		}
		target := platform.Origin.Add(platform.Axis.Mul(float64(offset)))
		body.Velocity = target.Sub(body.Position).Mul(1 / dt)
	})
}
