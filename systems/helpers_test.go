package systems

import (
	"testing"

	"github.com/automoto/kinematic/components"
	"github.com/automoto/kinematic/physics"
	"github.com/automoto/kinematic/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// createTestWorld returns a world with a 200x200 space and a floor whose
// top face is at y=55.
func createTestWorld(t *testing.T) (*ecs.ECS, *physics.Space) {
	t.Helper()
	w := ecs.NewECS(donburi.NewWorld())
	spaceEntry := factory.CreateSpace(w, 200, 200, 16, 16)
	_, err := factory.CreateGround(w, 100, 50, 100, 10)
	require.NoError(t, err)
	return w, components.Space.Get(spaceEntry)
}

// createTestPlayer spawns a player resting on the test floor.
func createTestPlayer(t *testing.T, w *ecs.ECS, x float64) *donburi.Entry {
	t.Helper()
	e, err := factory.CreatePlayer(w, x, 60.5)
	require.NoError(t, err)
	return e
}

// fakeInput is an InputSource with one optional standard gamepad (id 0).
type fakeInput struct {
	keys    map[ebiten.Key]bool
	buttons map[ebiten.StandardGamepadButton]bool
	axes    map[ebiten.StandardGamepadAxis]float64
	gamepad bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		keys:    map[ebiten.Key]bool{},
		buttons: map[ebiten.StandardGamepadButton]bool{},
		axes:    map[ebiten.StandardGamepadAxis]float64{},
	}
}

func (f *fakeInput) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	if f.gamepad {
		ids = append(ids, 0)
	}
	return ids
}

func (f *fakeInput) IsKeyPressed(key ebiten.Key) bool { return f.keys[key] }

func (f *fakeInput) IsStandardGamepadLayoutAvailable(ebiten.GamepadID) bool { return f.gamepad }

func (f *fakeInput) IsStandardGamepadButtonPressed(_ ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return f.buttons[b]
}

func (f *fakeInput) StandardGamepadAxisValue(_ ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64 {
	return f.axes[a]
}
