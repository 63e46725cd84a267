package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// JumpCount tracks spent jumps against the allowance. Current only goes
// back to 0 when the controller lands.
type JumpCount struct {
	Current uint32
	Max     uint32
}

// ControllerData marks an entity as a kinematic character controller.
// The body itself (position, velocity, shape) lives in BodyData.
type ControllerData struct {
	// BaseGravity applies whenever the controller is not climbing
	BaseGravity mgl64.Vec2
	// Gravity is rewritten every tick from the contact state
	Gravity mgl64.Vec2
	// Radians; nil means every surface is walkable
	MaxSlopeAngle *float64
	Jumps         JumpCount
}

var Controller = donburi.NewComponentType[ControllerData]()

// MovementPreset names the config bundle a controller's movement came
// from, so tuning reloads know what to reapply.
type MovementPreset int

const (
	PresetDefault MovementPreset = iota
	PresetPlayer
	// Custom values are never overwritten by a reload
	PresetCustom
)

// MovementData gives a controller the ability to act on intents.
type MovementData struct {
	Acceleration float64
	Damping      float64
	JumpImpulse  float64
	Preset       MovementPreset
}

var Movement = donburi.NewComponentType[MovementData]()

// ContactData is the per-tick contact classification. Only Climbing is
// carried from one tick to the next; Climbing implies CanClimb.
type ContactData struct {
	Grounded bool
	CanClimb bool
	Climbing bool
}

var Contact = donburi.NewComponentType[ContactData]()
