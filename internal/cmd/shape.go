package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/golang/geo/r2"

	"github.com/Alia5/padshape/mapping"
	"github.com/Alia5/padshape/shaping"
)

// Stick shapes a single stick sample and prints the result.
type Stick struct {
	X         float64             `help:"Stick X in native range (±32767)" default:"0"`
	Y         float64             `help:"Stick Y in native range (±32767), up is positive" default:"0"`
	Threshold float64             `help:"Deflection needed to report a direction" default:"8000"`
	Stick     mapping.StickConfig `embed:""`
}

// Run is called by Kong when the stick command is executed.
func (c *Stick) Run(logger *slog.Logger, out io.Writer) error {
	if err := c.Stick.Validate(); err != nil {
		return err
	}
	in := r2.Point{X: c.X, Y: c.Y}
	v := mapping.ShapeStick(c.Stick, in)
	logger.Debug("stick shaped", "in", in, "out", v)

	_, err := fmt.Fprintf(out, "x=%.2f y=%.2f magnitude=%.4f direction=%s\n",
		v.X, v.Y, v.Norm()/shaping.ShortMaxF, shaping.GetDeflectionDirection(v, c.Threshold))
	return err
}

// Trigger shapes a single trigger sample and prints the result.
type Trigger struct {
	Value   float64               `help:"Trigger value in [0, max]" default:"0"`
	Max     float64               `help:"Full pull value" default:"255"`
	Trigger mapping.TriggerConfig `embed:""`
}

// Run is called by Kong when the trigger command is executed.
func (c *Trigger) Run(logger *slog.Logger, out io.Writer) error {
	if c.Max <= 0 {
		return fmt.Errorf("%w: max must be positive, got %v", mapping.ErrInvalidConfig, c.Max)
	}
	if err := c.Trigger.Validate(); err != nil {
		return err
	}
	v := mapping.ShapeTrigger(c.Trigger, c.Value, c.Max)
	logger.Debug("trigger shaped", "in", c.Value, "out", v)

	_, err := fmt.Fprintf(out, "value=%.3f fraction=%.4f\n", v, v/c.Max)
	return err
}

// Steer converts a tilt angle into a steering axis value.
type Steer struct {
	Angle    float64                `help:"Tilt in degrees, positive is clockwise" default:"0"`
	Steering mapping.SteeringConfig `embed:""`
}

// Run is called by Kong when the steer command is executed.
func (c *Steer) Run(logger *slog.Logger, out io.Writer) error {
	if err := c.Steering.Validate(); err != nil {
		return err
	}
	s := c.Steering
	pos := shaping.AngleToJoystickPos(c.Angle, s.MaxAngle, s.DeadzoneAngle)
	pos = shaping.DirectionRespectingPowerOf(pos, s.Power)
	axis := shaping.Steering(c.Angle, s.MaxAngle, s.Power, s.DeadzoneAngle)
	logger.Debug("steering", "angle", c.Angle, "position", pos, "axis", axis)

	_, err := fmt.Fprintf(out, "axis=%d position=%.4f\n", shaping.ClampI16(axis), pos)
	return err
}
