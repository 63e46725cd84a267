package config

import (
	"math"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer entities and renderers live on.
const Default ecs.LayerID = 0

// Config holds window and world settings.
type Config struct {
	Width    int
	Height   int
	CellSize int
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	// Gravity magnitude along -Y for player controllers
	Gravity float64 `yaml:"gravity" json:"gravity"`
	// Sub-steps per tick; the collision resolver runs once per sub-step
	Substeps int `yaml:"substeps" json:"substeps"`
	TickRate int `yaml:"tickRate" json:"tickRate"`

	// Ground probe
	ProbeScale       float64 `yaml:"probeScale" json:"probeScale"`
	ProbeMaxDistance float64 `yaml:"probeMaxDistance" json:"probeMaxDistance"`
	ProbeMaxHits     int     `yaml:"probeMaxHits" json:"probeMaxHits"`
}

// DeltaTime is the fixed tick length in seconds.
func (p PhysicsConfig) DeltaTime() float64 {
	if p.TickRate <= 0 {
		return 0
	}
	return 1 / float64(p.TickRate)
}

// MovementConfig is the tuning bundle of a movement-capable controller.
type MovementConfig struct {
	Acceleration float64 `yaml:"acceleration" json:"acceleration"`
	Damping      float64 `yaml:"damping" json:"damping"`
	JumpImpulse  float64 `yaml:"jumpImpulse" json:"jumpImpulse"`
	MaxJumps     uint32  `yaml:"maxJumps" json:"maxJumps"`
	// Radians; steepest surface that still counts as ground
	MaxSlopeAngle float64 `yaml:"maxSlopeAngle" json:"maxSlopeAngle"`
}

// ControllerConfig holds defaults for controllers spawned without a preset.
type ControllerConfig struct {
	Movement MovementConfig
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Movement MovementConfig

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// LevelConfig describes the built-in demo level.
type LevelConfig struct {
	Width, Height    float64
	Spawn            [2]float64
	Floors           [][4]float64 // x, y, w, h (center, extents)
	Rope             [4]float64
	Ramp             [4]float64
	Platform         [4]float64
	PlatformTravel   float64
	PlatformDuration float32
	TuningFile       string
}

// DebugConfig toggles the diagnostic overlay.
type DebugConfig struct {
	ShowText bool
	ShowBody bool
}

var (
	C          *Config
	Physics    PhysicsConfig
	Controller ControllerConfig
	Player     PlayerConfig
	Level      LevelConfig
	Debug      DebugConfig
)

func init() {
	C = &Config{
		Width:    640,
		Height:   360,
		CellSize: 16,
	}

	Physics = PhysicsConfig{
		Gravity:          1000,
		Substeps:         12,
		TickRate:         60,
		ProbeScale:       0.99,
		ProbeMaxDistance: 0.2,
		ProbeMaxHits:     1,
	}

	Controller = ControllerConfig{
		Movement: MovementConfig{
			Acceleration:  30,
			Damping:       0.9,
			JumpImpulse:   7,
			MaxJumps:      1,
			MaxSlopeAngle: math.Pi * 0.45,
		},
	}

	Player = PlayerConfig{
		Movement: MovementConfig{
			Acceleration:  220,
			Damping:       0.85,
			JumpImpulse:   220,
			MaxJumps:      1,
			MaxSlopeAngle: 30 * math.Pi / 180,
		},
		CollisionWidth:  6,
		CollisionHeight: 11,
	}

	// Two floors meeting at x=286, a rope over the left one and a ramp on
	// the right one.
	Level = LevelConfig{
		Width:            640,
		Height:           360,
		Spawn:            [2]float64{160, 260},
		Floors:           [][4]float64{{160, 28, 252, 14}, {412, 28, 252, 14}},
		Rope:             [4]float64{140, 55, 2, 40},
		Ramp:             [4]float64{500, 55, 40, 40},
		Platform:         [4]float64{300, 90, 48, 6},
		PlatformTravel:   60,
		PlatformDuration: 2,
		TuningFile:       "tuning.yaml",
	}

	Debug = DebugConfig{
		ShowText: true,
		ShowBody: true,
	}
}
