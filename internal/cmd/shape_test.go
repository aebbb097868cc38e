package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/padshape/mapping"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStickRun(t *testing.T) {
	tests := []struct {
		name string
		cmd  Stick
		want string
	}{
		{
			name: "full right",
			cmd:  Stick{X: 32767, Threshold: 8000},
			want: "x=32767.00 y=0.00 magnitude=1.0000 direction=right\n",
		},
		{
			name: "below threshold",
			cmd:  Stick{X: 100, Y: 100, Threshold: 8000},
			want: "x=100.00 y=100.00 magnitude=0.0043 direction=none\n",
		},
		{
			name: "inner deadzone",
			cmd:  Stick{X: -3000, Y: 3000, Threshold: 8000, Stick: mapping.StickConfig{InnerDeadzone: 20}},
			want: "x=0.00 y=0.00 magnitude=0.0000 direction=none\n",
		},
		{
			name: "inverted diagonal",
			cmd:  Stick{X: -20000, Y: 20000, Threshold: 8000, Stick: mapping.StickConfig{InvertY: true}},
			want: "x=-20000.00 y=-20000.00 magnitude=0.8632 direction=down|left\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, tt.cmd.Run(discardLogger(), &out))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestStickRunInvalid(t *testing.T) {
	c := Stick{Stick: mapping.StickConfig{AntiDeadzone: 150}}
	assert.ErrorIs(t, c.Run(discardLogger(), io.Discard), mapping.ErrInvalidConfig)
}

func TestTriggerRun(t *testing.T) {
	var out bytes.Buffer
	c := Trigger{Value: 128, Max: 255, Trigger: mapping.TriggerConfig{InnerDeadzone: 10, OuterDeadzone: 10}}
	require.NoError(t, c.Run(discardLogger(), &out))
	assert.Equal(t, "value=128.125 fraction=0.5025\n", out.String())

	c.Max = 0
	assert.ErrorIs(t, c.Run(discardLogger(), io.Discard), mapping.ErrInvalidConfig)
}

func TestSteerRun(t *testing.T) {
	cfg := mapping.DefaultConfig().Steering

	var out bytes.Buffer
	c := Steer{Angle: 20, Steering: cfg}
	require.NoError(t, c.Run(discardLogger(), &out))
	assert.Equal(t, "axis=-13716 position=0.4186\n", out.String())

	out.Reset()
	c.Angle = -90
	require.NoError(t, c.Run(discardLogger(), &out))
	assert.Equal(t, "axis=32767 position=-1.0000\n", out.String())

	out.Reset()
	c.Angle = 1
	require.NoError(t, c.Run(discardLogger(), &out))
	assert.Equal(t, "axis=0 position=0.0000\n", out.String())

	c.Steering.Power = 0
	assert.ErrorIs(t, c.Run(discardLogger(), io.Discard), mapping.ErrInvalidConfig)
}
