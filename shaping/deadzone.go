package shaping

import (
	"math"

	"github.com/golang/geo/r2"
)

// squareEpsilon is the normalised magnitude below which ImproveSquare
// reports a centred stick.
const squareEpsilon = 1e-5

// ApplyAntiDeadzone pushes a non-zero stick sample outward so that its smallest
// reachable magnitude corresponds to percent of full deflection.
//
// The sample is in native range. A zero percentage or an exactly centred stick
// is returned unchanged.
func ApplyAntiDeadzone(stick r2.Point, percent float64) r2.Point {
	if percent == 0 || (stick.X == 0 && stick.Y == 0) {
		return stick
	}

	dz := percent / 100
	length := toUnit(stick).Norm()
	mul := ((1-dz)*length + dz) / length

	return stick.Mul(mul)
}

// ApplyAntiDeadzoneScalar is ApplyAntiDeadzone for a single analog value in
// [-maxValue, maxValue], e.g. a trigger.
func ApplyAntiDeadzoneScalar(value, percent, maxValue float64) float64 {
	if percent == 0 || value == 0 || maxValue <= 0 {
		return value
	}

	dz := percent / 100
	n := math.Abs(value) / maxValue
	out := ((1-dz)*n + dz) * maxValue

	return math.Copysign(out, value)
}

// ImproveCircularity scales a stick whose normalised magnitude exceeds 1 back
// onto the unit circle. Samples already inside the circle pass through.
func ImproveCircularity(stick r2.Point) r2.Point {
	v := toUnit(stick)
	length := v.Norm()
	if length <= 1 {
		return stick
	}

	return v.Mul(1 / length).Mul(ShortMaxF)
}

// ImproveSquare maps a circular stick domain onto a square so that diagonal
// input reaches full extension on both axes.
func ImproveSquare(stick r2.Point) r2.Point {
	v := toUnit(stick)
	length := v.Norm()
	if length < squareEpsilon {
		return r2.Point{}
	}

	if length > 1 {
		v = v.Mul(1 / length)
		length = 1
	}

	scale := length / math.Max(math.Abs(v.X), math.Abs(v.Y))

	return v.Mul(scale).Mul(ShortMaxF)
}

// ApplyAxisDeadzone zeroes a normalised axis value whose magnitude is below
// deadzone and rescales the remainder to fill [0, 1] from the deadzone edge,
// keeping the sign of the input.
func ApplyAxisDeadzone(value, deadzone float64) float64 {
	if deadzone <= 0 {
		return value
	}
	if deadzone >= 1 {
		return 0
	}

	abs := math.Abs(value)
	if abs < deadzone {
		return 0
	}

	return math.Copysign((abs-deadzone)/(1-deadzone), value)
}

// CrossDeadzoneMapping applies ApplyAxisDeadzone to each axis independently,
// which gives a plus shaped dead region instead of a circular one.
// Deadzones are fractions in [0, 1].
func CrossDeadzoneMapping(stick r2.Point, xDeadzone, yDeadzone float64) r2.Point {
	v := toUnit(stick)

	return r2.Point{
		X: ApplyAxisDeadzone(v.X, xDeadzone) * ShortMaxF,
		Y: ApplyAxisDeadzone(v.Y, yDeadzone) * ShortMaxF,
	}
}

// CrossDeadzoneMappingPercent is CrossDeadzoneMapping with deadzones given in
// percent [0, 100].
func CrossDeadzoneMappingPercent(stick r2.Point, xPercent, yPercent float64) r2.Point {
	return CrossDeadzoneMapping(stick, xPercent/100, yPercent/100)
}

// InnerOuterDeadzone shapes a trigger value in [0, maxValue]. Values at or
// below the inner zone become 0, values at or above 1-outer saturate to
// maxValue and everything in between is remapped linearly.
//
// NaN is returned as is so callers can keep using it as a disconnected-axis
// marker.
func InnerOuterDeadzone(value, innerPercent, outerPercent, maxValue float64) float64 {
	if (innerPercent == 0 && outerPercent == 0) || math.IsNaN(value) || value == 0 {
		return value
	}

	inner := innerPercent / 100
	outer := outerPercent / 100
	v := value / maxValue

	if v <= inner {
		return 0
	}
	if v >= 1-outer {
		return maxValue
	}

	return ((v - inner) / (1 - inner - outer)) * maxValue
}

// ThumbScaledRadialInnerOuterDeadzone is the radial counterpart of
// InnerOuterDeadzone for sticks. The magnitude is shaped, the direction kept.
func ThumbScaledRadialInnerOuterDeadzone(stick r2.Point, innerPercent, outerPercent float64) r2.Point {
	inner := innerPercent / 100
	outer := outerPercent / 100

	v := toUnit(stick)
	length := v.Norm()

	if length <= inner {
		return r2.Point{}
	}

	dir := v.Mul(1 / length)
	if length >= 1-outer {
		return dir.Mul(ShortMaxF)
	}

	scaled := (length - inner) / (1 - inner - outer)

	return dir.Mul(scaled * ShortMaxF)
}

// toUnit scales a native range stick into the [-1, 1] working range.
func toUnit(stick r2.Point) r2.Point {
	return r2.Point{X: stick.X / ShortMaxF, Y: stick.Y / ShortMaxF}
}
