package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidTuning = errors.New("config: invalid tuning")

// Tuning is the hot-reloadable subset of the configuration. Fields absent
// from a tuning file keep their current values.
type Tuning struct {
	Physics    PhysicsConfig  `yaml:"physics" json:"physics"`
	Controller MovementConfig `yaml:"controller" json:"controller"`
	Player     MovementConfig `yaml:"player" json:"player"`
}

// CurrentTuning snapshots the active globals.
func CurrentTuning() Tuning {
	return Tuning{
		Physics:    Physics,
		Controller: Controller.Movement,
		Player:     Player.Movement,
	}
}

// ParseTuning decodes YAML on top of base and validates the result.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// LoadTuning reads a YAML tuning file layered over the active globals.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CurrentTuning(), fmt.Errorf("read tuning %s: %w", path, err)
	}
	return ParseTuning(data, CurrentTuning())
}

// Apply installs t as the active globals.
func (t Tuning) Apply() {
	Physics = t.Physics
	Controller.Movement = t.Controller
	Player.Movement = t.Player
}

func (t Tuning) Validate() error {
	if err := t.Physics.Validate(); err != nil {
		return err
	}
	if err := t.Controller.Validate(); err != nil {
		return fmt.Errorf("controller: %w", err)
	}
	if err := t.Player.Validate(); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	return nil
}

func (p PhysicsConfig) Validate() error {
	switch {
	case p.Gravity < 0:
		return fmt.Errorf("gravity %v: %w", p.Gravity, ErrInvalidTuning)
	case p.Substeps < 1:
		return fmt.Errorf("substeps %d: %w", p.Substeps, ErrInvalidTuning)
	case p.TickRate < 1:
		return fmt.Errorf("tick rate %d: %w", p.TickRate, ErrInvalidTuning)
	case p.ProbeScale <= 0 || p.ProbeScale > 1:
		return fmt.Errorf("probe scale %v: %w", p.ProbeScale, ErrInvalidTuning)
	case p.ProbeMaxDistance <= 0:
		return fmt.Errorf("probe distance %v: %w", p.ProbeMaxDistance, ErrInvalidTuning)
	}
	return nil
}

func (m MovementConfig) Validate() error {
	switch {
	case m.Acceleration < 0:
		return fmt.Errorf("acceleration %v: %w", m.Acceleration, ErrInvalidTuning)
	case m.Damping <= 0 || m.Damping >= 1:
		return fmt.Errorf("damping %v outside (0, 1): %w", m.Damping, ErrInvalidTuning)
	case m.JumpImpulse < 0:
		return fmt.Errorf("jump impulse %v: %w", m.JumpImpulse, ErrInvalidTuning)
	case m.MaxSlopeAngle < 0 || m.MaxSlopeAngle > math.Pi:
		return fmt.Errorf("max slope %v: %w", m.MaxSlopeAngle, ErrInvalidTuning)
	}
	return nil
}
