package steamdeck

import (
	"encoding/binary"
	"io"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"

	"github.com/Alia5/padshape/shaping"
)

// InputState is one Steam Deck (Jupiter/LCD) controller state.
//
// This struct mirrors SDL's `SteamDeckStatePacket_t` fields (minus unPacketNum).
// Stick, pad and quaternion Y axes are up-positive.
//
// Wire format: fixed 52 bytes, little-endian, fields in declaration order.
type InputState struct {
	Buttons uint64

	LeftPadX  int16
	LeftPadY  int16
	RightPadX int16
	RightPadY int16

	AccelX int16
	AccelY int16
	AccelZ int16

	GyroX int16
	GyroY int16
	GyroZ int16

	GyroQuatW int16
	GyroQuatX int16
	GyroQuatY int16
	GyroQuatZ int16

	TriggerRawL uint16
	TriggerRawR uint16

	LeftStickX int16
	LeftStickY int16

	RightStickX int16
	RightStickY int16

	PressurePadLeft  uint16
	PressurePadRight uint16
}

// i16Head and i16Tail return the signed fields in wire order, split around
// the two unsigned trigger words.
func (s *InputState) i16Head() []*int16 {
	return []*int16{
		&s.LeftPadX, &s.LeftPadY, &s.RightPadX, &s.RightPadY,
		&s.AccelX, &s.AccelY, &s.AccelZ,
		&s.GyroX, &s.GyroY, &s.GyroZ,
		&s.GyroQuatW, &s.GyroQuatX, &s.GyroQuatY, &s.GyroQuatZ,
	}
}

func (s *InputState) i16Tail() []*int16 {
	return []*int16{&s.LeftStickX, &s.LeftStickY, &s.RightStickX, &s.RightStickY}
}

// MarshalBinary encodes the state into its 52-byte wire frame.
func (s InputState) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, InputStateSize)
	b = binary.LittleEndian.AppendUint64(b, s.Buttons)
	for _, v := range s.i16Head() {
		b = binary.LittleEndian.AppendUint16(b, uint16(*v))
	}
	b = binary.LittleEndian.AppendUint16(b, s.TriggerRawL)
	b = binary.LittleEndian.AppendUint16(b, s.TriggerRawR)
	for _, v := range s.i16Tail() {
		b = binary.LittleEndian.AppendUint16(b, uint16(*v))
	}
	b = binary.LittleEndian.AppendUint16(b, s.PressurePadLeft)
	b = binary.LittleEndian.AppendUint16(b, s.PressurePadRight)
	return b, nil
}

// UnmarshalBinary decodes a 52-byte wire frame.
func (s *InputState) UnmarshalBinary(data []byte) error {
	if len(data) < InputStateSize {
		return io.ErrUnexpectedEOF
	}

	s.Buttons = binary.LittleEndian.Uint64(data[0:8])
	o := 8
	next := func() uint16 {
		v := binary.LittleEndian.Uint16(data[o : o+2])
		o += 2
		return v
	}

	for _, v := range s.i16Head() {
		*v = int16(next())
	}
	s.TriggerRawL = next()
	s.TriggerRawR = next()
	for _, v := range s.i16Tail() {
		*v = int16(next())
	}
	s.PressurePadLeft = next()
	s.PressurePadRight = next()
	return nil
}

// Samples is an InputState converted to the units the shaping functions take.
type Samples struct {
	LeftStick, RightStick r2.Point
	LeftPad, RightPad     r2.Point

	// Triggers in [0, TriggerRawMax].
	LeftTrigger, RightTrigger float64

	// Gyro is the angular velocity in °/s.
	Gyro r3.Vector
	// Accel is the acceleration (gravity at rest) in g.
	Accel r3.Vector

	Orientation shaping.Quaternion
}

// Samples extracts the analog inputs of the state.
func (s *InputState) Samples() Samples {
	return Samples{
		LeftStick:    r2.Point{X: float64(s.LeftStickX), Y: float64(s.LeftStickY)},
		RightStick:   r2.Point{X: float64(s.RightStickX), Y: float64(s.RightStickY)},
		LeftPad:      r2.Point{X: float64(s.LeftPadX), Y: float64(s.LeftPadY)},
		RightPad:     r2.Point{X: float64(s.RightPadX), Y: float64(s.RightPadY)},
		LeftTrigger:  float64(s.TriggerRawL),
		RightTrigger: float64(s.TriggerRawR),
		Gyro: r3.Vector{
			X: float64(s.GyroX) * GyroDpsPerCount,
			Y: float64(s.GyroY) * GyroDpsPerCount,
			Z: float64(s.GyroZ) * GyroDpsPerCount,
		},
		Accel: r3.Vector{
			X: float64(s.AccelX) * AccelGPerCount,
			Y: float64(s.AccelY) * AccelGPerCount,
			Z: float64(s.AccelZ) * AccelGPerCount,
		},
		Orientation: shaping.Quaternion{
			W: float64(s.GyroQuatW) / QuatUnit,
			X: float64(s.GyroQuatX) / QuatUnit,
			Y: float64(s.GyroQuatY) / QuatUnit,
			Z: float64(s.GyroQuatZ) / QuatUnit,
		},
	}
}

// Pressed reports whether every button in mask is held.
func (s *InputState) Pressed(mask uint64) bool {
	return s.Buttons&mask == mask
}
