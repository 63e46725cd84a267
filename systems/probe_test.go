package systems

import (
	"testing"

	"github.com/automoto/kinematic/components"
	"github.com/automoto/kinematic/physics"
	"github.com/automoto/kinematic/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProbes_GroundBelow(t *testing.T) {
	w, _ := createTestWorld(t)
	e := createTestPlayer(t, w, 100)

	UpdateProbes(w)

	probe := components.Probe.Get(e)
	hit, ok := probe.GroundHit()
	require.True(t, ok)
	assert.InDelta(t, 0, hit.Normal.Sub(mgl64.Vec2{0, 1}).Len(), 1e-9)
	assert.False(t, probe.Climbable)
}

func TestUpdateProbes_AirborneMissesGround(t *testing.T) {
	w, s := createTestWorld(t)
	e := createTestPlayer(t, w, 100)
	s.SetPosition(components.Body.Get(e).Body, mgl64.Vec2{100, 61})

	UpdateProbes(w)

	_, ok := components.Probe.Get(e).GroundHit()
	assert.False(t, ok, "a half unit gap is past the probe distance")
}

func TestUpdateProbes_Climbable(t *testing.T) {
	w, _ := createTestWorld(t)
	_, err := factory.CreateClimbable(w, 100, 80, 2, 40)
	require.NoError(t, err)
	e := createTestPlayer(t, w, 100)

	UpdateProbes(w)

	probe := components.Probe.Get(e)
	assert.True(t, probe.Climbable)
	_, ok := probe.GroundHit()
	assert.True(t, ok, "ground probe ignores the climbable layer")
}

func TestGroundHit_Ramp(t *testing.T) {
	w, s := createTestWorld(t)
	_, err := factory.CreateRamp(w, 160, 75, 40, 40, physics.RampUpRight)
	require.NoError(t, err)

	caster := &components.CasterData{
		Shape:       physics.Box(2, 2),
		Direction:   mgl64.Vec2{0, -1},
		MaxDistance: 5,
		MaxHits:     1,
		Mask:        physics.LayerGround,
	}
	// Over the middle of the slope, where its surface is at y=75
	hit, ok := GroundHit(s, caster, mgl64.Vec2{160, 80})
	require.True(t, ok)
	assert.InDelta(t, 0, hit.Normal.Sub(mgl64.Vec2{-1, 1}.Normalize()).Len(), 1e-9)
}
