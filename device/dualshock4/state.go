package dualshock4

import (
	"encoding/binary"
	"io"
)

// InputState is a DualShock 4 controller state.
//
// Sticks are signed and centered on 0, Y is down-positive like the hardware.
// Gyro and accel use the fixed-point scales GyroCountsPerDps and AccelCountsPerMS2.
type InputState struct {
	LX, LY  int8
	RX, RY  int8
	Buttons uint16
	DPad    uint8
	L2, R2  uint8

	Touch1X, Touch1Y uint16
	Touch1Active     bool
	Touch2X, Touch2Y uint16
	Touch2Active     bool

	GyroX, GyroY, GyroZ    int16
	AccelX, AccelY, AccelZ int16
}

func putBool(b []byte, v bool) {
	b[0] = 0
	if v {
		b[0] = 1
	}
}

func putI16s(b []byte, vs ...int16) {
	for i, v := range vs {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(v))
	}
}

// MarshalBinary encodes the state into InputStateSize bytes.
func (s *InputState) MarshalBinary() ([]byte, error) {
	b := make([]byte, InputStateSize)
	b[0] = uint8(s.LX)
	b[1] = uint8(s.LY)
	b[2] = uint8(s.RX)
	b[3] = uint8(s.RY)
	binary.LittleEndian.PutUint16(b[4:6], s.Buttons)
	b[6] = s.DPad
	b[7] = s.L2
	b[8] = s.R2
	binary.LittleEndian.PutUint16(b[9:11], s.Touch1X)
	binary.LittleEndian.PutUint16(b[11:13], s.Touch1Y)
	putBool(b[13:], s.Touch1Active)
	binary.LittleEndian.PutUint16(b[14:16], s.Touch2X)
	binary.LittleEndian.PutUint16(b[16:18], s.Touch2Y)
	putBool(b[18:], s.Touch2Active)
	putI16s(b[19:31], s.GyroX, s.GyroY, s.GyroZ, s.AccelX, s.AccelY, s.AccelZ)
	return b, nil
}

// UnmarshalBinary decodes InputStateSize bytes.
func (s *InputState) UnmarshalBinary(data []byte) error {
	if len(data) < InputStateSize {
		return io.ErrUnexpectedEOF
	}
	i16 := func(off int) int16 {
		return int16(binary.LittleEndian.Uint16(data[off : off+2]))
	}
	s.LX = int8(data[0])
	s.LY = int8(data[1])
	s.RX = int8(data[2])
	s.RY = int8(data[3])
	s.Buttons = binary.LittleEndian.Uint16(data[4:6])
	s.DPad = data[6]
	s.L2 = data[7]
	s.R2 = data[8]
	s.Touch1X = binary.LittleEndian.Uint16(data[9:11])
	s.Touch1Y = binary.LittleEndian.Uint16(data[11:13])
	s.Touch1Active = data[13] != 0
	s.Touch2X = binary.LittleEndian.Uint16(data[14:16])
	s.Touch2Y = binary.LittleEndian.Uint16(data[16:18])
	s.Touch2Active = data[18] != 0
	s.GyroX, s.GyroY, s.GyroZ = i16(19), i16(21), i16(23)
	s.AccelX, s.AccelY, s.AccelZ = i16(25), i16(27), i16(29)
	return nil
}

// Report is an InputState plus the per-report sequencing the USB input report carries.
type Report struct {
	State InputState
	// Counter is the 6-bit frame counter; higher bits are dropped.
	Counter uint8
	// Timestamp in device ticks.
	Timestamp uint16
}

// BuildReport encodes the 64-byte USB input report.
func (r *Report) BuildReport() []byte {
	s := &r.State
	b := make([]byte, InputReportSize)

	b[0] = ReportIDInput

	b[1] = uint8(int16(s.LX) + 128)
	b[2] = uint8(int16(s.LY) + 128)
	b[3] = uint8(int16(s.RX) + 128)
	b[4] = uint8(int16(s.RY) + 128)

	b[5] = (dpadToHat(s.DPad) & DPadMask) | (uint8(s.Buttons) & 0xF0)
	b[6] = uint8(s.Buttons >> 8)

	psTouch := uint8(0)
	if s.Buttons&ButtonPS != 0 {
		psTouch |= ButtonPSUSB
	}
	if s.Buttons&ButtonTouchpadClick != 0 {
		psTouch |= ButtonTouchpadClickUSB
	}
	b[7] = psTouch | (r.Counter<<CounterShift)&CounterMask

	b[8] = s.L2
	b[9] = s.R2

	binary.LittleEndian.PutUint16(b[10:12], r.Timestamp)

	putI16s(b[13:25], s.GyroX, s.GyroY, s.GyroZ, s.AccelX, s.AccelY, s.AccelZ)

	b[30] = BatteryFullyCharged

	if !s.Touch1Active {
		b[35] = TouchInactiveMask
	}
	encodeTouchCoords(b[36:39], s.Touch1X, s.Touch1Y)

	if !s.Touch2Active {
		b[39] = TouchInactiveMask
	}
	encodeTouchCoords(b[40:43], s.Touch2X, s.Touch2Y)

	return b
}
