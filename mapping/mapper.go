// Package mapping runs a Steam Deck input state through the shaping
// pipeline of a profile and renders the result for a virtual controller.
package mapping

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"go.uber.org/atomic"

	"github.com/Alia5/padshape/device/steamdeck"
	"github.com/Alia5/padshape/shaping"
)

// Output is one shaped input state.
type Output struct {
	// Sticks in ±ShortMaxF, Y up-positive.
	LeftStick, RightStick r2.Point
	// Pads as reported, ±ShortMaxF.
	LeftPad, RightPad r2.Point
	// Triggers in [0, 1].
	LeftTrigger, RightTrigger float64
	// Gyro is the shaped angular velocity in °/s.
	Gyro r3.Vector
	// Accel in g.
	Accel r3.Vector
	// DPad merges the d-pad buttons with the trackpad d-pad.
	DPad shaping.Direction
	// Buttons is the source button mask (steamdeck.Button*).
	Buttons uint64
}

// Mapper applies a Config to input states. The config can be swapped while
// Map runs on other goroutines.
type Mapper struct {
	cfg *atomic.Pointer[Config]
}

// NewMapper validates cfg and returns a Mapper using a copy of it.
func NewMapper(cfg Config) (*Mapper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Mapper{cfg: atomic.NewPointer(snapshot(cfg))}, nil
}

func snapshot(cfg Config) *Config {
	cfg.Gyro.Curve = cfg.Gyro.Curve.Clone()
	return &cfg
}

// Config returns a copy of the active config.
func (m *Mapper) Config() Config {
	return *snapshot(*m.cfg.Load())
}

// SetConfig validates cfg and makes it the active config. On error the
// previous config stays active.
func (m *Mapper) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.cfg.Store(snapshot(cfg))
	return nil
}

// Map shapes one input state with the active config.
func (m *Mapper) Map(in steamdeck.InputState) Output {
	return Apply(m.cfg.Load(), in)
}

// Apply shapes one input state with cfg.
func Apply(cfg *Config, in steamdeck.InputState) Output {
	smp := in.Samples()

	out := Output{
		LeftStick:    ShapeStick(cfg.Left, smp.LeftStick),
		RightStick:   ShapeStick(cfg.Right, smp.RightStick),
		LeftPad:      smp.LeftPad,
		RightPad:     smp.RightPad,
		LeftTrigger:  ShapeTrigger(cfg.LT, smp.LeftTrigger, steamdeck.TriggerRawMax) / steamdeck.TriggerRawMax,
		RightTrigger: ShapeTrigger(cfg.RT, smp.RightTrigger, steamdeck.TriggerRawMax) / steamdeck.TriggerRawMax,
		Gyro:         ShapeGyro(cfg.Gyro, smp.Gyro, smp.Accel),
		Accel:        smp.Accel,
		DPad:         buttonDirection(in.Buttons),
		Buttons:      in.Buttons,
	}

	if cfg.Steering.Enabled {
		out.LeftStick.X = SteeringAxis(cfg.Steering, smp.Orientation)
	}

	if cfg.Pad.DPad && (!cfg.Pad.RequireClick || in.Pressed(steamdeck.ButtonRightPadClick)) {
		flags := shaping.TouchToDirections(smp.RightPad.X, smp.RightPad.Y, cfg.Pad.Radius, cfg.Pad.RadialShift)
		out.DPad |= shaping.TouchDirection(flags)
	}

	return out
}

// ShapeStick runs anti-deadzone, gate shape correction, cross deadzone and
// radial deadzone, in that order. Radial deadzone only runs when configured.
func ShapeStick(cfg StickConfig, stick r2.Point) r2.Point {
	v := shaping.ApplyAntiDeadzone(stick, cfg.AntiDeadzone)

	switch cfg.Shape {
	case ShapeCircle:
		v = shaping.ImproveCircularity(v)
	case ShapeSquare:
		v = shaping.ImproveSquare(v)
	}

	v = shaping.CrossDeadzoneMappingPercent(v, cfg.CrossDeadzoneX, cfg.CrossDeadzoneY)

	if cfg.InnerDeadzone > 0 || cfg.OuterDeadzone > 0 {
		v = shaping.ThumbScaledRadialInnerOuterDeadzone(v, cfg.InnerDeadzone, cfg.OuterDeadzone)
	}

	if cfg.InvertY {
		v.Y = -v.Y
	}
	return v
}

// ShapeTrigger applies the inner/outer deadzone and then the anti-deadzone
// to a trigger value in [0, maxValue].
func ShapeTrigger(cfg TriggerConfig, value, maxValue float64) float64 {
	v := shaping.InnerOuterDeadzone(value, cfg.InnerDeadzone, cfg.OuterDeadzone, maxValue)
	v = shaping.ApplyAntiDeadzoneScalar(v, cfg.AntiDeadzone, maxValue)
	return shaping.Clamp(v, 0, maxValue)
}

// ShapeGyro optionally swaps roll into yaw and scales the angular velocity
// by the sensitivity curve evaluated at its magnitude.
func ShapeGyro(cfg GyroConfig, dps, gravity r3.Vector) r3.Vector {
	v := dps
	if cfg.AutoRollYawSwap {
		v = shaping.AutoRollYawSwap(gravity, v)
	}
	if len(cfg.Curve) == 0 {
		return v
	}
	return v.Mul(shaping.ApplyCustomSensitivity(v.Norm(), cfg.MaxDps, cfg.Curve))
}

// SteeringAxis converts the device roll of q into a stick X value.
func SteeringAxis(cfg SteeringConfig, q shaping.Quaternion) float64 {
	roll := shaping.ToEulerAngles(q).Z * 180 / math.Pi
	return shaping.Steering(roll, cfg.MaxAngle, cfg.Power, cfg.DeadzoneAngle)
}
