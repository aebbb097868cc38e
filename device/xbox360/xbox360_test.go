package xbox360_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/padshape/device"
	"github.com/Alia5/padshape/device/xbox360"
	"github.com/Alia5/padshape/shaping"
)

var _ device.ReportBuilder = (*xbox360.InputState)(nil)

func TestInputReports(t *testing.T) {
	type testCase struct {
		name           string
		inputState     xbox360.InputState
		expectedReport []byte
	}

	cases := []testCase{
		{
			name:       "no inputs",
			inputState: xbox360.InputState{},
			expectedReport: []byte{
				0x00, 0x14, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
		},
		{
			name: "buttons and triggers",
			inputState: xbox360.InputState{
				Buttons: xbox360.ButtonA | xbox360.ButtonStart | 0x10000,
				LT:      0x7F,
				RT:      0xFF,
			},
			expectedReport: []byte{
				0x00, 0x14, 0x10, 0x10, 0x7F, 0xFF, 0x00, 0x00, 0x00, 0x00,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
		},
		{
			name: "sticks",
			inputState: xbox360.InputState{
				LX: 32767, LY: -32768, RX: 1234, RY: -2345,
				Reserved: [6]byte{1, 2, 3, 4, 5, 6},
			},
			expectedReport: []byte{
				0x00, 0x14, 0x00, 0x00, 0x00, 0x00, 0xFF, 0x7F, 0x00, 0x80,
				0xD2, 0x04, 0xD7, 0xF6, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedReport, tc.inputState.BuildReport())
		})
	}
}

func TestInputStateBinary(t *testing.T) {
	in := xbox360.InputState{
		Buttons: xbox360.ButtonY | 0x00AB0000,
		LT:      1, RT: 2,
		LX: -1, LY: 2, RX: -3, RY: 4,
		Reserved: [6]byte{9, 8, 7, 6, 5, 4},
	}
	b, err := in.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, xbox360.ReportSize)

	var out xbox360.InputState
	require.NoError(t, out.UnmarshalBinary(b))
	assert.Equal(t, in, out)

	assert.ErrorIs(t, out.UnmarshalBinary(b[:19]), io.ErrUnexpectedEOF)
}

func TestSetDPad(t *testing.T) {
	s := xbox360.InputState{Buttons: xbox360.ButtonA | xbox360.ButtonDPadLeft}

	s.SetDPad(shaping.Up | shaping.Right)
	assert.Equal(t, uint32(xbox360.ButtonA|xbox360.ButtonDPadUp|xbox360.ButtonDPadRight), s.Buttons)
	assert.Equal(t, shaping.Up|shaping.Right, s.DPad())

	s.SetDPad(shaping.None)
	assert.Equal(t, uint32(xbox360.ButtonA), s.Buttons)
	assert.Equal(t, shaping.None, s.DPad())
}
