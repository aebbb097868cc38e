// Package shaping converts raw controller samples into shaped output signals.
//
// Sticks are handled in the signed 16-bit controller range and normalised with
// ShortMaxF (32767) on both halves of the range. Triggers take a caller supplied
// maximum. Every function is a pure transform: nothing here keeps state, locks,
// logs or allocates beyond its return value, so calls are safe from any number
// of polling goroutines.
package shaping

// ShortMaxF is the divisor used to normalise stick axes to [-1, 1].
// It is 32767 rather than 32768 so both halves of the range scale symmetrically.
const ShortMaxF = 32767.0

// TriggerMax is the conventional maximum of an 8-bit analog trigger.
const TriggerMax = 255.0
