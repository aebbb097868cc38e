package xbox360

import (
	"encoding/binary"
	"io"

	"github.com/Alia5/padshape/shaping"
)

// InputState represents the controller state used to build a report.
// Values are more or less XInput's C API.
type InputState struct {
	// Button bitfield (lower 16 bits used typically), higher bits reserved
	Buttons uint32
	// Triggers: 0-255
	LT, RT uint8
	// Sticks: signed 16-bit, Y up-positive
	LX, LY   int16
	RX, RY   int16
	Reserved [6]byte
}

// SetDPad replaces the d-pad buttons with the flags of dir.
func (x *InputState) SetDPad(dir shaping.Direction) {
	x.Buttons &^= dpadMask
	for _, m := range dpadButtons {
		if dir.Has(m.dir) {
			x.Buttons |= m.button
		}
	}
}

// DPad returns the held d-pad buttons as a direction.
func (x *InputState) DPad() shaping.Direction {
	dir := shaping.None
	for _, m := range dpadButtons {
		if x.Buttons&m.button != 0 {
			dir |= m.dir
		}
	}
	return dir
}

// BuildReport encodes an InputState into the 20-byte Xbox 360 wired USB input report.
// Layout (indices in the returned slice):
//
//	 0: 0x00              - Report ID
//	 1: 0x14              - Payload size (20 bytes)
//	 2: Buttons (low byte)
//	 3: Buttons (high byte)
//	 4: LT (0-255)
//	 5: RT (0-255)
//	 6-7: LX (little-endian int16)
//	 8-9: LY (little-endian int16)
//	10-11: RX (little-endian int16)
//	12-13: RY (little-endian int16)
//	14-19: Reserved / zero
func (x *InputState) BuildReport() []byte {
	b := make([]byte, ReportSize)
	b[0] = 0x00
	b[1] = ReportSize
	binary.LittleEndian.PutUint16(b[2:4], uint16(x.Buttons&0xffff))
	b[4] = x.LT
	b[5] = x.RT
	x.putSticks(b[6:14])
	return b
}

func (x *InputState) putSticks(b []byte) {
	binary.LittleEndian.PutUint16(b[0:2], uint16(x.LX))
	binary.LittleEndian.PutUint16(b[2:4], uint16(x.LY))
	binary.LittleEndian.PutUint16(b[4:6], uint16(x.RX))
	binary.LittleEndian.PutUint16(b[6:8], uint16(x.RY))
}

// MarshalBinary encodes InputState to 20 bytes.
func (x *InputState) MarshalBinary() ([]byte, error) {
	b := make([]byte, ReportSize)
	binary.LittleEndian.PutUint32(b[0:4], x.Buttons)
	b[4] = x.LT
	b[5] = x.RT
	x.putSticks(b[6:14])
	copy(b[14:20], x.Reserved[:])
	return b, nil
}

// UnmarshalBinary decodes 20 bytes into InputState.
func (x *InputState) UnmarshalBinary(data []byte) error {
	if len(data) < ReportSize {
		return io.ErrUnexpectedEOF
	}
	x.Buttons = binary.LittleEndian.Uint32(data[0:4])
	x.LT = data[4]
	x.RT = data[5]
	x.LX = int16(binary.LittleEndian.Uint16(data[6:8]))
	x.LY = int16(binary.LittleEndian.Uint16(data[8:10]))
	x.RX = int16(binary.LittleEndian.Uint16(data[10:12]))
	x.RY = int16(binary.LittleEndian.Uint16(data[12:14]))
	copy(x.Reserved[:], data[14:20])
	return nil
}
