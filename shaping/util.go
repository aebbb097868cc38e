package shaping

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidRange is returned by MapRange for a zero width source range.
	ErrInvalidRange = errors.New("invalid range")
	// ErrBitPosition is returned for bit positions outside a byte.
	ErrBitPosition = errors.New("bit position out of range")
)

// MapRange maps value linearly from [oldMin, oldMax] to [newMin, newMax].
// The result is not clamped.
func MapRange(value, oldMin, oldMax, newMin, newMax float64) (float64, error) {
	if oldMin == oldMax {
		return 0, fmt.Errorf("%w: oldMin == oldMax (%v)", ErrInvalidRange, oldMin)
	}
	return newMin + (value-oldMin)*(newMax-newMin)/(oldMax-oldMin), nil
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClampI16 rounds v and clamps it to the int16 range. NaN becomes 0.
func ClampI16(v float64) int16 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// ClampU8 rounds v and clamps it to the uint8 range. NaN becomes 0.
func ClampU8(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)
	if v > math.MaxUint8 {
		return math.MaxUint8
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// Bit reports whether bit pos (0 = least significant) of b is set.
func Bit(b byte, pos int) (bool, error) {
	if pos < 0 || pos > 7 {
		return false, fmt.Errorf("%w: %d", ErrBitPosition, pos)
	}
	return b&(1<<pos) != 0, nil
}

// SetBit returns b with bit pos set to on.
func SetBit(b byte, pos int, on bool) (byte, error) {
	if pos < 0 || pos > 7 {
		return b, fmt.Errorf("%w: %d", ErrBitPosition, pos)
	}
	if on {
		return b | 1<<pos, nil
	}
	return b &^ (1 << pos), nil
}
