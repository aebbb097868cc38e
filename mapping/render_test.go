package mapping_test

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"

	"github.com/Alia5/padshape/device/dualshock4"
	"github.com/Alia5/padshape/device/steamdeck"
	"github.com/Alia5/padshape/device/xbox360"
	"github.com/Alia5/padshape/mapping"
	"github.com/Alia5/padshape/shaping"
)

func sampleOutput() mapping.Output {
	return mapping.Output{
		LeftStick:    r2.Point{X: 40000, Y: -32768},
		RightStick:   r2.Point{X: -16384, Y: 16384},
		LeftPad:      r2.Point{X: -32767, Y: -32767},
		RightPad:     r2.Point{X: 32767, Y: 32767},
		LeftTrigger:  1,
		RightTrigger: 0.5,
		Gyro:         r3.Vector{X: 1000, Y: -10},
		Accel:        r3.Vector{Z: -1},
		DPad:         shaping.Down | shaping.Right,
		Buttons: steamdeck.ButtonA | steamdeck.ButtonSteam | steamdeck.ButtonMenu |
			steamdeck.ButtonR3 | steamdeck.ButtonRightPadClick | steamdeck.ButtonL4,
	}
}

func TestToXbox360(t *testing.T) {
	s := sampleOutput().ToXbox360()

	assert.Equal(t, uint32(xbox360.ButtonA|xbox360.ButtonGuide|xbox360.ButtonStart|xbox360.ButtonRThumb|
		xbox360.ButtonDPadDown|xbox360.ButtonDPadRight), s.Buttons)
	assert.Equal(t, uint8(255), s.LT)
	assert.Equal(t, uint8(128), s.RT)
	assert.Equal(t, int16(32767), s.LX)
	assert.Equal(t, int16(-32768), s.LY)
	assert.Equal(t, int16(-16384), s.RX)
	assert.Equal(t, int16(16384), s.RY)
	assert.Len(t, s.BuildReport(), xbox360.ReportSize)
}

func TestToDualShock4(t *testing.T) {
	s := sampleOutput().ToDualShock4()

	assert.Equal(t, dualshock4.ButtonCross|dualshock4.ButtonPS|dualshock4.ButtonOptions|
		dualshock4.ButtonR3|dualshock4.ButtonTouchpadClick, s.Buttons)
	assert.Equal(t, uint8(dualshock4.DPadDown|dualshock4.DPadRight), s.DPad)
	assert.Equal(t, int8(127), s.LX)
	assert.Equal(t, int8(127), s.LY, "y is flipped")
	assert.Equal(t, int8(-64), s.RX)
	assert.Equal(t, int8(-64), s.RY)
	assert.Equal(t, uint8(255), s.L2)
	assert.Equal(t, uint8(128), s.R2)

	assert.Equal(t, int16(16000), s.GyroX)
	assert.Equal(t, int16(-160), s.GyroY)
	assert.Equal(t, dualshock4.DefaultAccelZRaw, s.AccelZ)

	assert.True(t, s.Touch1Active)
	assert.Equal(t, [2]uint16{0, dualshock4.TouchpadMaxY}, [2]uint16{s.Touch1X, s.Touch1Y})
	assert.True(t, s.Touch2Active)
	assert.Equal(t, [2]uint16{dualshock4.TouchpadMaxX, 0}, [2]uint16{s.Touch2X, s.Touch2Y})

	idle := mapping.Output{}.ToDualShock4()
	assert.False(t, idle.Touch1Active)
	assert.False(t, idle.Touch2Active)
	assert.Equal(t, uint8(0x08), (&dualshock4.Report{State: idle}).BuildReport()[5])
}
