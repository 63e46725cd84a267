package systems

import (
	"math"
	"testing"

	"github.com/automoto/kinematic/components"
	"github.com/automoto/kinematic/physics"
	"github.com/automoto/kinematic/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func floorBody(t *testing.T, s *physics.Space) *physics.Body {
	t.Helper()
	for _, b := range s.Bodies() {
		if b.Kind == physics.Static {
			return b
		}
	}
	t.Fatal("no floor in space")
	return nil
}

func manifold(a, b *physics.Body, normal mgl64.Vec2, depth float64) physics.Manifold {
	return physics.Manifold{
		BodyA:    a,
		BodyB:    b,
		Normal:   normal,
		Contacts: []physics.Contact{{Penetration: depth}},
		Fresh:    true,
	}
}

func TestResolveKinematicCollisions_ControllerEitherSide(t *testing.T) {
	w, s := createTestWorld(t)
	floor := floorBody(t, s)
	body := components.Body.Get(createTestPlayer(t, w, 100)).Body

	// Controller as B: the normal already points at it
	ResolveKinematicCollisions([]physics.Manifold{manifold(floor, body, mgl64.Vec2{0, 1}, 2)})
	assert.InDelta(t, 62.5, body.Position.Y(), 1e-9)

	// Controller as A: pushed against the normal
	ResolveKinematicCollisions([]physics.Manifold{manifold(body, floor, mgl64.Vec2{0, -1}, 2)})
	assert.InDelta(t, 64.5, body.Position.Y(), 1e-9)
	assert.Equal(t, mgl64.Vec2{100, 50}, floor.Position, "static bodies never move")
}

func TestResolveKinematicCollisions_Skips(t *testing.T) {
	w, s := createTestWorld(t)
	floor := floorBody(t, s)
	body := components.Body.Get(createTestPlayer(t, w, 100)).Body
	other := components.Body.Get(createTestPlayer(t, w, 140)).Body

	stale := manifold(floor, body, mgl64.Vec2{0, 1}, 2)
	stale.Fresh = false

	sensor := physics.NewBody(physics.Static, physics.Box(4, 4), mgl64.Vec2{100, 70})
	sensor.Sensor = true

	ResolveKinematicCollisions([]physics.Manifold{
		stale,
		manifold(body, other, mgl64.Vec2{1, 0}, 3),
		manifold(sensor, body, mgl64.Vec2{0, 1}, 3),
		manifold(floor, body, mgl64.Vec2{0, 1}, -1),
	})

	assert.Equal(t, mgl64.Vec2{100, 60.5}, body.Position)
	assert.Equal(t, mgl64.Vec2{140, 60.5}, other.Position)
}

func TestResolveKinematicCollisions_WalkableClampsFall(t *testing.T) {
	w, s := createTestWorld(t)
	floor := floorBody(t, s)
	body := components.Body.Get(createTestPlayer(t, w, 100)).Body

	body.Velocity = mgl64.Vec2{3, -40}
	ResolveKinematicCollisions([]physics.Manifold{manifold(floor, body, mgl64.Vec2{0, 1}, 1)})
	assert.Equal(t, mgl64.Vec2{3, 0}, body.Velocity)

	body.Velocity = mgl64.Vec2{3, 40}
	ResolveKinematicCollisions([]physics.Manifold{manifold(floor, body, mgl64.Vec2{0, 1}, 1)})
	assert.Equal(t, mgl64.Vec2{3, 40}, body.Velocity, "rising bodies keep their speed")

	body.Velocity = mgl64.Vec2{3, -40}
	ResolveKinematicCollisions([]physics.Manifold{manifold(floor, body, mgl64.Vec2{1, 0}, 1)})
	assert.Equal(t, mgl64.Vec2{3, -40}, body.Velocity, "walls do not stop a fall")
}

func TestResolveKinematicCollisions_NoSlopeLimitKeepsVelocity(t *testing.T) {
	w, s := createTestWorld(t)
	floor := floorBody(t, s)
	opts := factory.NewControllerOptions(physics.Box(6, 11), mgl64.Vec2{0, -10}).At(60, 60.5).WithoutMovement()
	e, err := factory.CreateController(w, opts)
	require.NoError(t, err)
	body := components.Body.Get(e).Body

	body.Velocity = mgl64.Vec2{0, -40}
	ResolveKinematicCollisions([]physics.Manifold{manifold(floor, body, mgl64.Vec2{0, 1}, 1)})

	assert.InDelta(t, 61.5, body.Position.Y(), 1e-9)
	assert.Equal(t, -40.0, body.Velocity.Y())
}

func TestPhysicsStep_PlayerRestsOnFloor(t *testing.T) {
	w, _ := createTestWorld(t)
	e := createTestPlayer(t, w, 100)
	body := components.Body.Get(e)

	for i := 0; i < 30; i++ {
		UpdateGravity(w)
		UpdatePhysics(w)
	}

	assert.InDelta(t, 60.5, body.Position.Y(), 0.1)
	assert.LessOrEqual(t, body.Velocity.Y(), 0.0)
	assert.GreaterOrEqual(t, body.Velocity.Y(), -50.0, "velocity is clamped every sub-step")
}

func TestResolveKinematicCollisions_SumsContacts(t *testing.T) {
	w, s := createTestWorld(t)
	floor := floorBody(t, s)
	body := components.Body.Get(createTestPlayer(t, w, 100)).Body

	m := manifold(floor, body, mgl64.Vec2{0, 1}, 0.5)
	m.Contacts = append(m.Contacts, physics.Contact{Penetration: 0.25}, physics.Contact{Penetration: 0})
	ResolveKinematicCollisions([]physics.Manifold{m})

	assert.InDelta(t, 61.25, body.Position.Y(), 1e-9)
}

func TestResolveKinematicCollisions_SlopeLimitBoundary(t *testing.T) {
	w, s := createTestWorld(t)
	floor := floorBody(t, s)
	body := components.Body.Get(createTestPlayer(t, w, 100)).Body
	require.InDelta(t, 30*math.Pi/180, *components.Controller.Get(body.Data.(*donburi.Entry)).MaxSlopeAngle, 1e-12)

	tests := []struct {
		name    string
		degrees float64
		wantVY  float64
	}{
		{"gentle slope clamps", 20, 0},
		{"steep slope keeps falling", 45, -40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rad := tt.degrees * math.Pi / 180
			normal := mgl64.Vec2{-math.Sin(rad), math.Cos(rad)}
			body.Velocity = mgl64.Vec2{3, -40}

			ResolveKinematicCollisions([]physics.Manifold{manifold(floor, body, normal, 0.1)})

			assert.Equal(t, 3.0, body.Velocity.X())
			assert.Equal(t, tt.wantVY, body.Velocity.Y())
		})
	}
}
