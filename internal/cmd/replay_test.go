package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/padshape/device/dualshock4"
	"github.com/Alia5/padshape/device/steamdeck"
	"github.com/Alia5/padshape/device/xbox360"
	"github.com/Alia5/padshape/internal/log"
	"github.com/Alia5/padshape/mapping"
)

func recording(t *testing.T, states ...steamdeck.InputState) []byte {
	t.Helper()
	var buf bytes.Buffer
	for _, s := range states {
		b, err := s.MarshalBinary()
		require.NoError(t, err)
		buf.Write(b)
	}
	return buf.Bytes()
}

func newReplay(target string, report bool) *Replay {
	return &Replay{In: "-", Out: "-", Target: target, Report: report, Buffer: 2, Profile: mapping.DefaultConfig()}
}

func TestReplayXbox360States(t *testing.T) {
	in := recording(t,
		steamdeck.InputState{LeftStickX: 1000, Buttons: steamdeck.ButtonA},
		steamdeck.InputState{TriggerRawR: 32767, Buttons: steamdeck.ButtonDPadUp},
		steamdeck.InputState{RightStickY: -32768},
	)

	var out, raw bytes.Buffer
	r := newReplay("xbox360", false)
	require.NoError(t, r.Stream(context.Background(), bytes.NewReader(in), &out, discardLogger(), log.NewRaw(&raw)))
	require.Equal(t, 3*xbox360.ReportSize, out.Len())

	var states [3]xbox360.InputState
	for i := range states {
		require.NoError(t, states[i].UnmarshalBinary(out.Bytes()[i*xbox360.ReportSize:]))
	}
	assert.Equal(t, int16(1000), states[0].LX)
	assert.Equal(t, uint32(xbox360.ButtonA), states[0].Buttons)
	assert.Equal(t, uint8(255), states[1].RT)
	assert.Equal(t, uint32(xbox360.ButtonDPadUp), states[1].Buttons)
	assert.Equal(t, int16(-32768), states[2].RY)

	assert.Equal(t, 3, strings.Count(raw.String(), " IN  frame: 52 bytes"))
	assert.Equal(t, 3, strings.Count(raw.String(), " OUT frame: 20 bytes"))
}

func TestReplayDualShock4Reports(t *testing.T) {
	frames := make([]steamdeck.InputState, 70)
	for i := range frames {
		frames[i].LeftStickY = 32767
	}
	in := recording(t, frames...)

	var out bytes.Buffer
	r := newReplay("dualshock4", true)
	require.NoError(t, r.Stream(context.Background(), bytes.NewReader(in), &out, discardLogger(), log.NewRaw(nil)))
	require.Equal(t, len(frames)*dualshock4.InputReportSize, out.Len())

	for i := range frames {
		b := out.Bytes()[i*dualshock4.InputReportSize:]
		assert.Equal(t, byte(dualshock4.ReportIDInput), b[0])
		assert.Equal(t, byte(0x01), b[2], "full up on the deck is raw 1 on the ds4")
		assert.Equal(t, byte(i%64), b[7]>>2, "frame %d counter", i)
		assert.Equal(t, byte(i), b[10], "frame %d timestamp", i)
	}
}

func TestReplayDualShock4States(t *testing.T) {
	in := recording(t, steamdeck.InputState{GyroX: 16384})

	var out bytes.Buffer
	r := newReplay("dualshock4", false)
	require.NoError(t, r.Stream(context.Background(), bytes.NewReader(in), &out, discardLogger(), log.NewRaw(nil)))

	var s dualshock4.InputState
	require.NoError(t, s.UnmarshalBinary(out.Bytes()))
	assert.Equal(t, out.Len(), dualshock4.InputStateSize)
	assert.Equal(t, dualshock4.GyroDpsToRaw(1000), s.GyroX)
}

func TestReplayPartialFrame(t *testing.T) {
	in := recording(t, steamdeck.InputState{}, steamdeck.InputState{})
	in = append(in, 1, 2, 3)

	var out bytes.Buffer
	err := newReplay("xbox360", true).Stream(context.Background(), bytes.NewReader(in), &out, discardLogger(), log.NewRaw(nil))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), "frame 2")
}

func TestReplayEmptyInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, newReplay("xbox360", false).Stream(context.Background(), bytes.NewReader(nil), &out, discardLogger(), log.NewRaw(nil)))
	assert.Zero(t, out.Len())
}

func TestReplayInvalidProfile(t *testing.T) {
	r := newReplay("xbox360", false)
	r.Profile.Steering.Power = -1
	err := r.Stream(context.Background(), bytes.NewReader(nil), io.Discard, discardLogger(), log.NewRaw(nil))
	assert.ErrorIs(t, err, mapping.ErrInvalidConfig)

	r = newReplay("gamecube", false)
	assert.Error(t, r.Stream(context.Background(), bytes.NewReader(nil), io.Discard, discardLogger(), log.NewRaw(nil)))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestReplayWriteError(t *testing.T) {
	frames := make([]steamdeck.InputState, 50)
	err := newReplay("xbox360", false).Stream(context.Background(), bytes.NewReader(recording(t, frames...)), failingWriter{}, discardLogger(), log.NewRaw(nil))
	assert.ErrorContains(t, err, "disk full")
}

func TestReplayWriteErrorUnblocksReader(t *testing.T) {
	frame := recording(t, steamdeck.InputState{})
	pr, pw := io.Pipe()
	defer pw.Close()
	go func() {
		// one frame, then the source stays open without data
		_, _ = pw.Write(frame)
	}()

	done := make(chan error, 1)
	go func() {
		done <- newReplay("xbox360", false).Stream(context.Background(), pr, failingWriter{}, discardLogger(), log.NewRaw(nil))
	}()

	select {
	case err := <-done:
		assert.ErrorContains(t, err, "disk full")
	case <-time.After(2 * time.Second):
		t.Fatal("Stream did not return after the write failed")
	}
}

func TestReplayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frames := make([]steamdeck.InputState, 50)
	err := newReplay("xbox360", false).Stream(ctx, bytes.NewReader(recording(t, frames...)), io.Discard, discardLogger(), log.NewRaw(nil))
	assert.NoError(t, err)
}

func TestReplayRunFiles(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "deck.bin")
	outPath := filepath.Join(dir, "pad.bin")
	require.NoError(t, os.WriteFile(inPath, recording(t, steamdeck.InputState{}, steamdeck.InputState{}), 0o644))

	r := newReplay("dualshock4", true)
	r.In, r.Out = inPath, outPath
	require.NoError(t, r.Run(discardLogger(), log.NewRaw(nil)))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Len(t, data, 2*dualshock4.InputReportSize)

	r.In = filepath.Join(dir, "missing.bin")
	assert.Error(t, r.Run(discardLogger(), log.NewRaw(nil)))
}
