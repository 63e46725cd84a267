package systems

import (
	"github.com/automoto/kinematic/components"
	cfg "github.com/automoto/kinematic/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MapIntents turns one frame of input into movement intents: digital
// bindings first, then the analog stick.
func MapIntents(input *components.InputData) []components.Intent {
	var out []components.Intent

	if h := held(input, cfg.ActionMoveRight) - held(input, cfg.ActionMoveLeft); h != 0 {
		out = append(out, components.MoveIntent(h))
	}
	if input.StickX != 0 {
		out = append(out, components.MoveIntent(input.StickX))
	}

	if GetAction(input, cfg.ActionJump).JustPressed {
		out = append(out, components.JumpIntent())
	}

	if v := held(input, cfg.ActionClimbUp) - held(input, cfg.ActionClimbDown); v != 0 {
		out = append(out, components.ClimbIntent(v))
	}
	if input.StickY != 0 {
		out = append(out, components.ClimbIntent(input.StickY))
	}
	return out
}

func held(input *components.InputData, id cfg.ActionID) float64 {
	if input.Current[id] {
		return 1
	}
	return 0
}

// UpdateIntents queues this frame's intents on every controller able to
// move.
func UpdateIntents(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	intents := MapIntents(components.Input.Get(entry))
	if len(intents) == 0 {
		return
	}

	components.Movement.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Intents) {
			return
		}
		components.Intents.Get(e).Push(intents...)
	})
}

// ClearIntents empties every queue. Runs last in the tick.
func ClearIntents(ecs *ecs.ECS) {
	components.Intents.Each(ecs.World, func(e *donburi.Entry) {
		components.Intents.Get(e).Clear()
	})
}
