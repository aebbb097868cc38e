// Package xbox360 encodes XInput style controller states and the wired
// Xbox 360 USB input report.
package xbox360

import "github.com/Alia5/padshape/shaping"

// ReportSize is the length of the wired input report and of an encoded InputState.
const ReportSize = 20

// Button bitmasks for Xbox 360 controller (XInput compatible)
const (
	ButtonDPadUp    = 0x0001
	ButtonDPadDown  = 0x0002
	ButtonDPadLeft  = 0x0004
	ButtonDPadRight = 0x0008
	ButtonStart     = 0x0010
	ButtonBack      = 0x0020
	ButtonLThumb    = 0x0040 // Left stick button
	ButtonRThumb    = 0x0080 // Right stick button
	ButtonLShoulder = 0x0100 // Left bumper (LB)
	ButtonRShoulder = 0x0200 // Right bumper (RB)
	ButtonGuide     = 0x0400 // Xbox/Guide button (center logo)
	ButtonA         = 0x1000
	ButtonB         = 0x2000
	ButtonX         = 0x4000
	ButtonY         = 0x8000
)

const dpadMask = ButtonDPadUp | ButtonDPadDown | ButtonDPadLeft | ButtonDPadRight

var dpadButtons = [...]struct {
	dir    shaping.Direction
	button uint32
}{
	{shaping.Up, ButtonDPadUp},
	{shaping.Down, ButtonDPadDown},
	{shaping.Left, ButtonDPadLeft},
	{shaping.Right, ButtonDPadRight},
}
