package mapping

import (
	"errors"
	"fmt"

	"github.com/Alia5/padshape/shaping"
)

// ErrInvalidConfig is returned (wrapped) by the Validate methods.
var ErrInvalidConfig = errors.New("invalid mapping config")

// Stick shape corrections.
const (
	ShapeNone   = "none"
	ShapeCircle = "circle"
	ShapeSquare = "square"
)

// StickConfig shapes one analog stick. Percentages are of full deflection.
type StickConfig struct {
	AntiDeadzone   float64 `help:"Anti-deadzone in percent" default:"0"`
	InnerDeadzone  float64 `help:"Radial inner deadzone in percent" default:"0"`
	OuterDeadzone  float64 `help:"Radial outer deadzone in percent" default:"0"`
	CrossDeadzoneX float64 `help:"Axial deadzone on X in percent" default:"0"`
	CrossDeadzoneY float64 `help:"Axial deadzone on Y in percent" default:"0"`
	Shape          string  `help:"Gate shape correction" enum:"none,circle,square" default:"none"`
	InvertY        bool    `help:"Invert the Y axis"`
}

// TriggerConfig shapes one analog trigger.
type TriggerConfig struct {
	InnerDeadzone float64 `help:"Inner deadzone in percent" default:"0"`
	OuterDeadzone float64 `help:"Outer deadzone in percent" default:"0"`
	AntiDeadzone  float64 `help:"Anti-deadzone in percent" default:"0"`
}

// GyroConfig shapes the angular velocity.
type GyroConfig struct {
	Curve           shaping.Curve `help:"Sensitivity curve as key=value pairs, 0.5 is neutral"`
	MaxDps          float64       `help:"Angular velocity (°/s) the curve keys are relative to" default:"2000"`
	AutoRollYawSwap bool          `help:"Blend yaw and roll depending on how the device is held"`
}

// SteeringConfig turns device roll into left stick X.
type SteeringConfig struct {
	Enabled       bool    `help:"Steer the left stick X axis by tilting the device"`
	MaxAngle      float64 `help:"Tilt in degrees for full deflection" default:"45"`
	DeadzoneAngle float64 `help:"Tilt in degrees ignored around the centre" default:"2"`
	Power         float64 `help:"Response exponent, 1 is linear" default:"1"`
}

// PadConfig makes the right trackpad act as a d-pad.
type PadConfig struct {
	DPad         bool    `help:"Use the right trackpad as a d-pad"`
	Radius       float64 `help:"Distance from the pad centre a touch needs to register" default:"8000"`
	RadialShift  float64 `help:"Rotate the d-pad sectors by this many degrees" default:"0"`
	RequireClick bool    `help:"Only register while the pad is clicked" default:"true" negatable:""`
}

// Config is a full input profile.
type Config struct {
	Left     StickConfig    `embed:"" prefix:"left."`
	Right    StickConfig    `embed:"" prefix:"right."`
	LT       TriggerConfig  `embed:"" prefix:"lt."`
	RT       TriggerConfig  `embed:"" prefix:"rt."`
	Gyro     GyroConfig     `embed:"" prefix:"gyro."`
	Steering SteeringConfig `embed:"" prefix:"steering."`
	Pad      PadConfig      `embed:"" prefix:"pad."`
}

// DefaultConfig returns the profile the kong defaults describe.
func DefaultConfig() Config {
	return Config{
		Left:     StickConfig{Shape: ShapeNone},
		Right:    StickConfig{Shape: ShapeNone},
		Gyro:     GyroConfig{MaxDps: 2000},
		Steering: SteeringConfig{MaxAngle: 45, DeadzoneAngle: 2, Power: 1},
		Pad:      PadConfig{Radius: 8000, RequireClick: true},
	}
}

func checkPercent(name string, v float64) error {
	if v < 0 || v > 100 {
		return fmt.Errorf("%w: %s must be within [0, 100], got %v", ErrInvalidConfig, name, v)
	}
	return nil
}

func checkInnerOuter(inner, outer float64) error {
	if inner+outer >= 100 {
		return fmt.Errorf("%w: inner and outer deadzone leave no travel (%v + %v)", ErrInvalidConfig, inner, outer)
	}
	return nil
}

func (c StickConfig) Validate() error {
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"anti-deadzone", c.AntiDeadzone},
		{"inner-deadzone", c.InnerDeadzone},
		{"outer-deadzone", c.OuterDeadzone},
		{"cross-deadzone-x", c.CrossDeadzoneX},
		{"cross-deadzone-y", c.CrossDeadzoneY},
	} {
		if err := checkPercent(p.name, p.v); err != nil {
			return err
		}
	}
	if err := checkInnerOuter(c.InnerDeadzone, c.OuterDeadzone); err != nil {
		return err
	}
	switch c.Shape {
	case "", ShapeNone, ShapeCircle, ShapeSquare:
	default:
		return fmt.Errorf("%w: unknown shape %q", ErrInvalidConfig, c.Shape)
	}
	return nil
}

func (c TriggerConfig) Validate() error {
	if err := checkPercent("inner-deadzone", c.InnerDeadzone); err != nil {
		return err
	}
	if err := checkPercent("outer-deadzone", c.OuterDeadzone); err != nil {
		return err
	}
	if err := checkPercent("anti-deadzone", c.AntiDeadzone); err != nil {
		return err
	}
	return checkInnerOuter(c.InnerDeadzone, c.OuterDeadzone)
}

func (c GyroConfig) Validate() error {
	if c.MaxDps <= 0 {
		return fmt.Errorf("%w: max-dps must be positive, got %v", ErrInvalidConfig, c.MaxDps)
	}
	if err := c.Curve.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c SteeringConfig) Validate() error {
	if c.MaxAngle <= 0 {
		return fmt.Errorf("%w: max-angle must be positive, got %v", ErrInvalidConfig, c.MaxAngle)
	}
	if c.DeadzoneAngle < 0 {
		return fmt.Errorf("%w: deadzone-angle must not be negative, got %v", ErrInvalidConfig, c.DeadzoneAngle)
	}
	if c.Power <= 0 {
		return fmt.Errorf("%w: power must be positive, got %v", ErrInvalidConfig, c.Power)
	}
	return nil
}

func (c PadConfig) Validate() error {
	if c.Radius < 0 {
		return fmt.Errorf("%w: pad radius must not be negative, got %v", ErrInvalidConfig, c.Radius)
	}
	return nil
}

// Validate checks every section and names the first one that fails.
func (c Config) Validate() error {
	sections := []struct {
		name string
		v    interface{ Validate() error }
	}{
		{"left", c.Left},
		{"right", c.Right},
		{"lt", c.LT},
		{"rt", c.RT},
		{"gyro", c.Gyro},
		{"steering", c.Steering},
		{"pad", c.Pad},
	}
	for _, s := range sections {
		if err := s.v.Validate(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}
