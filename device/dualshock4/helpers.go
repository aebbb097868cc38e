package dualshock4

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/Alia5/padshape/shaping"
)

// GyroDpsToRaw converts a gyro angular velocity value in degrees/second (°/s)
// into the fixed-point raw int16 representation.
func GyroDpsToRaw(dps float64) int16 {
	return shaping.ClampI16(dps * GyroCountsPerDps)
}

// GyroRawToDps converts a fixed-point raw gyro value into degrees/second (°/s).
func GyroRawToDps(raw int16) float64 {
	return float64(raw) / GyroCountsPerDps
}

// AccelMS2ToRaw converts an acceleration value in meters/second^2 (m/s²)
// into the fixed-point raw int16 representation.
func AccelMS2ToRaw(ms2 float64) int16 {
	return shaping.ClampI16(ms2 * AccelCountsPerMS2)
}

// AccelRawToMS2 converts a fixed-point raw accelerometer value into m/s².
func AccelRawToMS2(raw int16) float64 {
	return float64(raw) / AccelCountsPerMS2
}

// DefaultAccelRaw returns the default ("neutral") accelerometer vector for a
// controller lying flat on a table.
func DefaultAccelRaw() (x, y, z int16) {
	return DefaultAccelXRaw, DefaultAccelYRaw, DefaultAccelZRaw
}

// SetGyro stores an angular velocity in °/s.
func (s *InputState) SetGyro(dps r3.Vector) {
	s.GyroX = GyroDpsToRaw(dps.X)
	s.GyroY = GyroDpsToRaw(dps.Y)
	s.GyroZ = GyroDpsToRaw(dps.Z)
}

// SetAccel stores an acceleration given in g.
func (s *InputState) SetAccel(g r3.Vector) {
	s.AccelX = AccelMS2ToRaw(g.X * StandardGravityMS2)
	s.AccelY = AccelMS2ToRaw(g.Y * StandardGravityMS2)
	s.AccelZ = AccelMS2ToRaw(g.Z * StandardGravityMS2)
}

// AxisToRaw converts a normalized axis value in [-1, 1] to the signed stick range.
func AxisToRaw(v float64) int8 {
	r := math.Round(v * math.MaxInt8)
	switch {
	case math.IsNaN(r):
		return 0
	case r > math.MaxInt8:
		return math.MaxInt8
	case r < math.MinInt8:
		return math.MinInt8
	}
	return int8(r)
}

// DirectionToDPad converts direction flags to the InputState DPad flags.
func DirectionToDPad(dir shaping.Direction) uint8 {
	var d uint8
	if dir.Has(shaping.Up) {
		d |= DPadUp
	}
	if dir.Has(shaping.Down) {
		d |= DPadDown
	}
	if dir.Has(shaping.Left) {
		d |= DPadLeft
	}
	if dir.Has(shaping.Right) {
		d |= DPadRight
	}
	return d
}

// dpadToHat converts DPad flags to the report's hat switch value.
// Diagonals win over single directions; opposing flags fall back to the
// first of up, down, left, right that is held.
func dpadToHat(d uint8) uint8 {
	up, down := d&DPadUp != 0, d&DPadDown != 0
	left, right := d&DPadLeft != 0, d&DPadRight != 0
	switch {
	case up && right:
		return DPadUSBUpRight
	case up && left:
		return DPadUSBUpLeft
	case down && right:
		return DPadUSBDownRight
	case down && left:
		return DPadUSBDownLeft
	case up:
		return DPadUSBUp
	case down:
		return DPadUSBDown
	case left:
		return DPadUSBLeft
	case right:
		return DPadUSBRight
	}
	return DPadUSBNeutral
}

func encodeTouchCoords(b []byte, x, y uint16) {
	x = min(x, TouchpadMaxX)
	y = min(y, TouchpadMaxY)

	b[0] = uint8(x & 0xFF)
	b[1] = uint8((x>>8)&0x0F) | uint8((y&0x0F)<<4)
	b[2] = uint8(y >> 4)
}
