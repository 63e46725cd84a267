package systems

import (
	"log"

	"github.com/automoto/kinematic/components"
	cfg "github.com/automoto/kinematic/config"
	"github.com/automoto/kinematic/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TuningReloader applies tuning file changes at the start of a tick.
type TuningReloader struct {
	watcher *cfg.TuningWatcher
	// setTPS keeps the game loop rate in step with Physics.TickRate
	setTPS func(int)
}

func NewTuningReloader(w *cfg.TuningWatcher) *TuningReloader {
	return &TuningReloader{watcher: w, setTPS: ebiten.SetTPS}
}

// Update drains pending file events without blocking.
func (r *TuningReloader) Update(ecs *ecs.ECS) {
	if r == nil || r.watcher == nil {
		return
	}
	changed := false
drain:
	for {
		select {
		case _, ok := <-r.watcher.Events:
			if !ok {
				r.watcher = nil
				return
			}
			changed = true
		case err, ok := <-r.watcher.Errors:
			if !ok {
				r.watcher = nil
				return
			}
			log.Printf("Warning: tuning watcher: %v", err)
		default:
			break drain
		}
	}
	if !changed {
		return
	}
	r.reload(ecs, r.watcher.Path())
}

// reload applies the tuning file at path. A changed tick rate is pushed to
// the game loop so DeltaTime keeps matching real time.
func (r *TuningReloader) reload(ecs *ecs.ECS, path string) {
	tuning, err := cfg.LoadTuning(path)
	if err != nil {
		log.Printf("Warning: Could not reload tuning: %v", err)
		return
	}
	prevRate := cfg.Physics.TickRate
	tuning.Apply()
	ApplyTuning(ecs)
	if cfg.Physics.TickRate != prevRate && r.setTPS != nil {
		r.setTPS(cfg.Physics.TickRate)
	}
	log.Printf("tuning reloaded from %s", path)
}

// ApplyTuning pushes the active movement and probe settings onto every
// controller. Movement follows the preset the controller was spawned
// with; custom movement is left alone.
func ApplyTuning(ecs *ecs.ECS) {
	components.Movement.Each(ecs.World, func(e *donburi.Entry) {
		move := components.Movement.Get(e)
		applyProbeTuning(e)

		var preset cfg.MovementConfig
		switch move.Preset {
		case components.PresetPlayer:
			preset = cfg.Player.Movement
		case components.PresetDefault:
			preset = cfg.Controller.Movement
		default:
			return
		}
		move.Acceleration = preset.Acceleration
		move.Damping = preset.Damping
		move.JumpImpulse = preset.JumpImpulse

		if !e.HasComponent(components.Controller) {
			return
		}
		ctrl := components.Controller.Get(e)
		ctrl.Jumps.Max = preset.MaxJumps
		slope := preset.MaxSlopeAngle
		ctrl.MaxSlopeAngle = &slope
		if move.Preset == components.PresetPlayer {
			ctrl.BaseGravity = factory.PlayerGravity()
		}
	})
}

func applyProbeTuning(e *donburi.Entry) {
	if !e.HasComponent(components.Probe) || !e.HasComponent(components.Body) {
		return
	}
	caster := &components.Probe.Get(e).Caster
	caster.Shape = components.Body.Get(e).Shape.Scaled(cfg.Physics.ProbeScale)
	caster.MaxDistance = cfg.Physics.ProbeMaxDistance
	caster.MaxHits = cfg.Physics.ProbeMaxHits
}
