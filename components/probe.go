package components

import (
	"github.com/automoto/kinematic/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CasterData configures the downward ground probe of a controller.
type CasterData struct {
	Shape       physics.Shape
	Direction   mgl64.Vec2
	MaxDistance float64
	MaxHits     int
	Mask        physics.Layer
	// Layers that make a controller able to climb when overlapped
	ClimbMask physics.Layer
}

// ProbeData is what the probes saw after the last physics update.
type ProbeData struct {
	Caster    CasterData
	Hits      []physics.Hit
	Climbable bool
}

// GroundHit returns the closest ground hit, if any.
func (p *ProbeData) GroundHit() (physics.Hit, bool) {
	if len(p.Hits) == 0 {
		return physics.Hit{}, false
	}
	return p.Hits[0], true
}

var Probe = donburi.NewComponentType[ProbeData]()
