package systems

import (
	"testing"

	"github.com/automoto/kinematic/components"
	cfg "github.com/automoto/kinematic/config"
	"github.com/automoto/kinematic/physics"
	"github.com/automoto/kinematic/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGravityFor(t *testing.T) {
	assert.Equal(t, mgl64.Vec2{0, -1000}, gravityFor(false, mgl64.Vec2{0, -1000}))
	assert.Equal(t, mgl64.Vec2{}, gravityFor(true, mgl64.Vec2{0, -1000}))
}

func TestUpdateGravity(t *testing.T) {
	w, _ := createTestWorld(t)
	e := createTestPlayer(t, w, 100)
	body := components.Body.Get(e)
	dt := cfg.Physics.DeltaTime()

	UpdateGravity(w)
	assert.Equal(t, mgl64.Vec2{0, -cfg.Physics.Gravity}, components.Controller.Get(e).Gravity)
	assert.InDelta(t, -cfg.Physics.Gravity*dt, body.Velocity.Y(), 1e-9)

	body.Velocity = mgl64.Vec2{}
	components.Contact.Get(e).Climbing = true
	UpdateGravity(w)
	assert.Equal(t, mgl64.Vec2{}, components.Controller.Get(e).Gravity)
	assert.Equal(t, mgl64.Vec2{}, body.Velocity)
}

func TestUpdateGravity_UsesSpawnGravity(t *testing.T) {
	w, _ := createTestWorld(t)
	opts := factory.NewControllerOptions(physics.Box(4, 4), mgl64.Vec2{0, -10}).At(60, 120)
	e, err := factory.CreateController(w, opts)
	require.NoError(t, err)

	UpdateGravity(w)

	assert.Equal(t, mgl64.Vec2{0, -10}, components.Controller.Get(e).Gravity)
	assert.InDelta(t, -10*cfg.Physics.DeltaTime(), components.Body.Get(e).Velocity.Y(), 1e-9)
}
