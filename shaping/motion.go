package shaping

import (
	"math"

	"github.com/golang/geo/r3"
)

// gimbalThreshold is slightly below 0.5 so roundoff near ±90° pitch is still
// caught before asin leaves its domain.
const gimbalThreshold = 0.4999

// Quaternion is an orientation as produced by a sensor fusion filter.
type Quaternion struct {
	W, X, Y, Z float64
}

// IdentityQuaternion is the "no rotation" orientation.
var IdentityQuaternion = Quaternion{W: 1}

// Norm returns the length of q.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// ToEulerAngles decomposes q into pitch (X), yaw (Y) and roll (Z) in radians.
// q does not have to be normalised.
func ToEulerAngles(q Quaternion) r3.Vector {
	sqw := q.W * q.W
	sqx := q.X * q.X
	sqy := q.Y * q.Y
	sqz := q.Z * q.Z

	unit := sqx + sqy + sqz + sqw
	test := q.X*q.Y + q.Z*q.W

	// north pole
	if test > gimbalThreshold*unit {
		return r3.Vector{
			X: math.Pi / 2,
			Y: 2 * math.Atan2(q.X, q.W),
			Z: 0,
		}
	}
	// south pole
	if test < -gimbalThreshold*unit {
		return r3.Vector{
			X: -math.Pi / 2,
			Y: -2 * math.Atan2(q.X, q.W),
			Z: 0,
		}
	}

	return r3.Vector{
		X: math.Asin(2 * test / unit),
		Y: math.Atan2(2*q.Y*q.W-2*q.X*q.Z, sqx-sqy-sqz+sqw),
		Z: math.Atan2(2*q.X*q.W-2*q.Y*q.Z, -sqx+sqy-sqz+sqw),
	}
}

// FromEulerAngles builds the unit quaternion that ToEulerAngles decomposes
// into the given pitch, yaw and roll (radians).
func FromEulerAngles(pitch, yaw, roll float64) Quaternion {
	c1, s1 := math.Cos(yaw/2), math.Sin(yaw/2)
	c2, s2 := math.Cos(pitch/2), math.Sin(pitch/2)
	c3, s3 := math.Cos(roll/2), math.Sin(roll/2)

	return Quaternion{
		W: c1*c2*c3 - s1*s2*s3,
		X: s1*s2*c3 + c1*c2*s3,
		Y: s1*c2*c3 + c1*s2*s3,
		Z: c1*s2*c3 - s1*c2*s3,
	}
}

// AutoRollYawSwap blends yaw and roll angular velocity according to how the
// device is held, so turning the device feels like yaw regardless of tilt.
//
// angularVelocityDeg is in degrees per second. X passes through as pitch, Y is
// the gravity weighted yaw and Z passes through unchanged. A zero gravity
// vector has no usable reference and yields the zero vector.
func AutoRollYawSwap(gravity, angularVelocityDeg r3.Vector) r3.Vector {
	if gravity.Norm2() == 0 {
		return r3.Vector{}
	}

	g := gravity.Normalize()

	return r3.Vector{
		X: angularVelocityDeg.X,
		Y: angularVelocityDeg.Y*g.Y + angularVelocityDeg.Z*g.Z,
		Z: angularVelocityDeg.Z,
	}
}
