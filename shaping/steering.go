package shaping

import "math"

// AngleToJoystickPos converts an absolute tilt angle into a signed stick
// position in [-1, 1]. The deadzone angle is cut from the centre and the
// remaining travel is stretched to cover maxAngle.
func AngleToJoystickPos(angle, maxAngle, deadzoneAngle float64) float64 {
	if maxAngle <= 0 {
		return 0
	}

	abs := math.Abs(angle)
	if maxAngle <= deadzoneAngle {
		if abs > deadzoneAngle {
			return sign(angle)
		}
		return 0
	}

	pos := (abs - deadzoneAngle) * maxAngle / (maxAngle - deadzoneAngle)
	pos = Clamp(pos, 0, maxAngle) / maxAngle

	return sign(angle) * pos
}

// DirectionRespectingPowerOf raises |pos| to power and restores the sign of pos.
func DirectionRespectingPowerOf(pos, power float64) float64 {
	return sign(pos) * math.Pow(math.Abs(pos), power)
}

// Steering turns a device tilt angle into a native range stick axis.
// The result is inverted: a positive tilt gives a negative axis value.
func Steering(angle, maxAngle, power, deadzoneAngle float64) float64 {
	pos := AngleToJoystickPos(angle, maxAngle, deadzoneAngle)
	pos = DirectionRespectingPowerOf(pos, power)

	return -(pos * ShortMaxF)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
