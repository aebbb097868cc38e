package mapping

import (
	"github.com/golang/geo/r2"

	"github.com/Alia5/padshape/device/dualshock4"
	"github.com/Alia5/padshape/device/steamdeck"
	"github.com/Alia5/padshape/device/xbox360"
	"github.com/Alia5/padshape/shaping"
)

var deckDPad = [...]struct {
	button uint64
	dir    shaping.Direction
}{
	{steamdeck.ButtonDPadUp, shaping.Up},
	{steamdeck.ButtonDPadDown, shaping.Down},
	{steamdeck.ButtonDPadLeft, shaping.Left},
	{steamdeck.ButtonDPadRight, shaping.Right},
}

func buttonDirection(buttons uint64) shaping.Direction {
	dir := shaping.None
	for _, m := range deckDPad {
		if buttons&m.button != 0 {
			dir |= m.dir
		}
	}
	return dir
}

var xbox360Buttons = map[uint64]uint32{
	steamdeck.ButtonA:     xbox360.ButtonA,
	steamdeck.ButtonB:     xbox360.ButtonB,
	steamdeck.ButtonX:     xbox360.ButtonX,
	steamdeck.ButtonY:     xbox360.ButtonY,
	steamdeck.ButtonLB:    xbox360.ButtonLShoulder,
	steamdeck.ButtonRB:    xbox360.ButtonRShoulder,
	steamdeck.ButtonView:  xbox360.ButtonBack,
	steamdeck.ButtonMenu:  xbox360.ButtonStart,
	steamdeck.ButtonSteam: xbox360.ButtonGuide,
	steamdeck.ButtonL3:    xbox360.ButtonLThumb,
	steamdeck.ButtonR3:    xbox360.ButtonRThumb,
}

var dualshock4Buttons = map[uint64]uint16{
	steamdeck.ButtonA:             dualshock4.ButtonCross,
	steamdeck.ButtonB:             dualshock4.ButtonCircle,
	steamdeck.ButtonX:             dualshock4.ButtonSquare,
	steamdeck.ButtonY:             dualshock4.ButtonTriangle,
	steamdeck.ButtonLB:            dualshock4.ButtonL1,
	steamdeck.ButtonRB:            dualshock4.ButtonR1,
	steamdeck.ButtonL2:            dualshock4.ButtonL2,
	steamdeck.ButtonR2:            dualshock4.ButtonR2,
	steamdeck.ButtonView:          dualshock4.ButtonShare,
	steamdeck.ButtonMenu:          dualshock4.ButtonOptions,
	steamdeck.ButtonSteam:         dualshock4.ButtonPS,
	steamdeck.ButtonL3:            dualshock4.ButtonL3,
	steamdeck.ButtonR3:            dualshock4.ButtonR3,
	steamdeck.ButtonLeftPadClick:  dualshock4.ButtonTouchpadClick,
	steamdeck.ButtonRightPadClick: dualshock4.ButtonTouchpadClick,
}

func translate[T uint16 | uint32](buttons uint64, table map[uint64]T) T {
	var out T
	for from, to := range table {
		if buttons&from != 0 {
			out |= to
		}
	}
	return out
}

// ToXbox360 renders the output as an Xbox 360 controller state.
func (o Output) ToXbox360() xbox360.InputState {
	s := xbox360.InputState{
		Buttons: translate(o.Buttons, xbox360Buttons),
		LT:      shaping.ClampU8(o.LeftTrigger * shaping.TriggerMax),
		RT:      shaping.ClampU8(o.RightTrigger * shaping.TriggerMax),
		LX:      shaping.ClampI16(o.LeftStick.X),
		LY:      shaping.ClampI16(o.LeftStick.Y),
		RX:      shaping.ClampI16(o.RightStick.X),
		RY:      shaping.ClampI16(o.RightStick.Y),
	}
	s.SetDPad(o.DPad)
	return s
}

// ToDualShock4 renders the output as a DualShock 4 state. The left pad maps
// to the left half of the touchpad, the right pad to the right half.
func (o Output) ToDualShock4() dualshock4.InputState {
	s := dualshock4.InputState{
		LX:      dualshock4.AxisToRaw(o.LeftStick.X / shaping.ShortMaxF),
		LY:      dualshock4.AxisToRaw(-o.LeftStick.Y / shaping.ShortMaxF),
		RX:      dualshock4.AxisToRaw(o.RightStick.X / shaping.ShortMaxF),
		RY:      dualshock4.AxisToRaw(-o.RightStick.Y / shaping.ShortMaxF),
		Buttons: translate(o.Buttons, dualshock4Buttons),
		DPad:    dualshock4.DirectionToDPad(o.DPad),
		L2:      shaping.ClampU8(o.LeftTrigger * shaping.TriggerMax),
		R2:      shaping.ClampU8(o.RightTrigger * shaping.TriggerMax),
	}
	s.SetGyro(o.Gyro)
	s.SetAccel(o.Accel)

	half := float64(dualshock4.TouchpadMaxX) / 2
	s.Touch1X, s.Touch1Y, s.Touch1Active = padToTouch(o.LeftPad, 0, half)
	s.Touch2X, s.Touch2Y, s.Touch2Active = padToTouch(o.RightPad, half, float64(dualshock4.TouchpadMaxX))
	return s
}

// padToTouch maps a pad position onto [minX, maxX] of the touchpad. An
// untouched pad reports the origin.
func padToTouch(pad r2.Point, minX, maxX float64) (x, y uint16, active bool) {
	if pad == (r2.Point{}) {
		return 0, 0, false
	}
	// ranges are non-degenerate, so the errors cannot trigger
	fx, _ := shaping.MapRange(shaping.Clamp(pad.X, -shaping.ShortMaxF, shaping.ShortMaxF), -shaping.ShortMaxF, shaping.ShortMaxF, minX, maxX)
	fy, _ := shaping.MapRange(shaping.Clamp(pad.Y, -shaping.ShortMaxF, shaping.ShortMaxF), shaping.ShortMaxF, -shaping.ShortMaxF, 0, float64(dualshock4.TouchpadMaxY))
	return uint16(fx + 0.5), uint16(fy + 0.5), true
}
