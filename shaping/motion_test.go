package shaping_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"

	"github.com/Alia5/padshape/shaping"
)

func deg(d float64) float64 { return d * math.Pi / 180 }

func assertVector(t *testing.T, want, got r3.Vector, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x")
	assert.InDelta(t, want.Y, got.Y, delta, "y")
	assert.InDelta(t, want.Z, got.Z, delta, "z")
}

func TestToEulerAnglesIdentity(t *testing.T) {
	assert.Equal(t, shaping.IdentityQuaternion, shaping.FromEulerAngles(0, 0, 0))
	assertVector(t, r3.Vector{}, shaping.ToEulerAngles(shaping.IdentityQuaternion), 0)
}

func TestToEulerAnglesRoundTrip(t *testing.T) {
	tests := []struct {
		name             string
		pitch, yaw, roll float64
	}{
		{"pitch only", deg(30), 0, 0},
		{"yaw only", 0, deg(-120), 0},
		{"roll only", 0, 0, deg(45)},
		{"mixed", deg(-60), deg(10), deg(170)},
		{"near limit", deg(85), deg(-45), deg(-30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := shaping.FromEulerAngles(tt.pitch, tt.yaw, tt.roll)
			assert.InDelta(t, 1, q.Norm(), 1e-12)
			assertVector(t, r3.Vector{X: tt.pitch, Y: tt.yaw, Z: tt.roll}, shaping.ToEulerAngles(q), 1e-9)

			// scale does not matter
			scaled := shaping.Quaternion{W: q.W * 3, X: q.X * 3, Y: q.Y * 3, Z: q.Z * 3}
			assertVector(t, r3.Vector{X: tt.pitch, Y: tt.yaw, Z: tt.roll}, shaping.ToEulerAngles(scaled), 1e-9)
		})
	}
}

func TestToEulerAnglesGimbalLock(t *testing.T) {
	for _, pitch := range []float64{90, -90, 89.5, -89.5} {
		e := shaping.ToEulerAngles(shaping.FromEulerAngles(deg(pitch), 0, 0))
		assert.False(t, math.IsNaN(e.X) || math.IsNaN(e.Y) || math.IsNaN(e.Z), "pitch %v", pitch)
		// 89.5° is past the 0.4999 threshold and snaps to the pole
		assert.InDelta(t, math.Copysign(math.Pi/2, pitch), e.X, 1e-12, "pitch %v", pitch)
		assert.Equal(t, 0.0, e.Z)
	}

	// 88° is still decomposed normally
	e := shaping.ToEulerAngles(shaping.FromEulerAngles(deg(88), 0, 0))
	assert.InDelta(t, deg(88), e.X, 1e-9)
}

func TestAutoRollYawSwap(t *testing.T) {
	av := r3.Vector{X: 10, Y: 20, Z: 30}

	tests := []struct {
		name    string
		gravity r3.Vector
		want    r3.Vector
	}{
		{"no gravity", r3.Vector{}, r3.Vector{}},
		{"upright", r3.Vector{Y: 1}, r3.Vector{X: 10, Y: 20, Z: 30}},
		{"flat", r3.Vector{Z: -9.81}, r3.Vector{X: 10, Y: -30, Z: 30}},
		{"tilted", r3.Vector{Y: 3, Z: 4}, r3.Vector{X: 10, Y: 36, Z: 30}},
		{"tilted magnitude independent", r3.Vector{Y: 0.6, Z: 0.8}, r3.Vector{X: 10, Y: 36, Z: 30}},
		{"sideways", r3.Vector{X: 1}, r3.Vector{X: 10, Y: 0, Z: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVector(t, tt.want, shaping.AutoRollYawSwap(tt.gravity, av), 1e-9)
		})
	}
}
