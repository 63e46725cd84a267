package systems

import (
	"testing"

	"github.com/automoto/kinematic/components"
	cfg "github.com/automoto/kinematic/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestMapIntents(t *testing.T) {
	tests := []struct {
		name  string
		setup func(in *components.InputData)
		want  []components.Intent
	}{
		{"nothing held", func(*components.InputData) {}, nil},
		{"right", func(in *components.InputData) { in.Current[cfg.ActionMoveRight] = true },
			[]components.Intent{components.MoveIntent(1)}},
		{"left and right cancel", func(in *components.InputData) {
			in.Current[cfg.ActionMoveRight] = true
			in.Current[cfg.ActionMoveLeft] = true
		}, nil},
		{"jump on press only", func(in *components.InputData) {
			in.Current[cfg.ActionJump] = true
			in.Previous[cfg.ActionJump] = true
		}, nil},
		{"jump pressed", func(in *components.InputData) { in.Current[cfg.ActionJump] = true },
			[]components.Intent{components.JumpIntent()}},
		{"climb down", func(in *components.InputData) { in.Current[cfg.ActionClimbDown] = true },
			[]components.Intent{components.ClimbIntent(-1)}},
		{"stick", func(in *components.InputData) {
			in.StickX = -0.5
			in.StickY = 0.75
		}, []components.Intent{components.MoveIntent(-0.5), components.ClimbIntent(0.75)}},
		{"order is move, jump, climb", func(in *components.InputData) {
			in.Current[cfg.ActionClimbUp] = true
			in.Current[cfg.ActionJump] = true
			in.Current[cfg.ActionMoveLeft] = true
		}, []components.Intent{components.MoveIntent(-1), components.JumpIntent(), components.ClimbIntent(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &components.InputData{}
			tt.setup(in)
			assert.Equal(t, tt.want, MapIntents(in))
		})
	}
}

func TestPollInput_KeyboardAndGamepad(t *testing.T) {
	src := newFakeInput()
	in := &components.InputData{}

	src.keys[ebiten.KeyD] = true
	pollInput(in, src)
	assert.True(t, GetAction(in, cfg.ActionMoveRight).JustPressed)
	assert.Equal(t, components.InputKeyboard, in.LastInputMethod)

	pollInput(in, src)
	state := GetAction(in, cfg.ActionMoveRight)
	assert.True(t, state.Pressed)
	assert.False(t, state.JustPressed)

	src.keys[ebiten.KeyD] = false
	src.gamepad = true
	src.buttons[ebiten.StandardGamepadButtonRightBottom] = true
	pollInput(in, src)
	assert.True(t, GetAction(in, cfg.ActionMoveRight).JustReleased)
	assert.True(t, GetAction(in, cfg.ActionJump).JustPressed)
	assert.Equal(t, components.InputGamepad, in.LastInputMethod)
}

func TestPollInput_StickDeadzoneAndFlip(t *testing.T) {
	src := newFakeInput()
	src.gamepad = true
	in := &components.InputData{}

	src.axes[ebiten.StandardGamepadAxisLeftStickHorizontal] = 0.1
	src.axes[ebiten.StandardGamepadAxisLeftStickVertical] = -0.8
	pollInput(in, src)

	assert.Equal(t, 0.0, in.StickX, "inside the deadzone")
	assert.Equal(t, 0.8, in.StickY, "pushing up reads positive")
}

func TestUpdateIntents_BroadcastAndClear(t *testing.T) {
	w, _ := createTestWorld(t)
	a := createTestPlayer(t, w, 60)
	b := createTestPlayer(t, w, 140)

	src := newFakeInput()
	src.keys[ebiten.KeySpace] = true
	restore := SetInputSource(src)
	t.Cleanup(restore)

	UpdateInput(w)
	UpdateIntents(w)
	assert.Equal(t, []components.Intent{components.JumpIntent()}, components.Intents.Get(a).Queue)
	assert.Equal(t, []components.Intent{components.JumpIntent()}, components.Intents.Get(b).Queue)

	ClearIntents(w)
	assert.Empty(t, components.Intents.Get(a).Queue)
	assert.Empty(t, components.Intents.Get(b).Queue)
}
