package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/Alia5/padshape/device"
	"github.com/Alia5/padshape/device/dualshock4"
	"github.com/Alia5/padshape/device/steamdeck"
	"github.com/Alia5/padshape/internal/log"
	"github.com/Alia5/padshape/mapping"
)

// Replay reads recorded Steam Deck frames, shapes them with a profile and
// writes the rendered controller frames.
type Replay struct {
	In      string         `help:"File with 52-byte Steam Deck frames, - for stdin" default:"-"`
	Out     string         `help:"Destination file, - for stdout" default:"-"`
	Target  string         `help:"Controller to render" enum:"xbox360,dualshock4" default:"xbox360"`
	Report  bool           `help:"Write USB input reports instead of state frames"`
	Buffer  int            `help:"Frames buffered between pipeline stages" default:"64"`
	Profile mapping.Config `embed:""`
}

// Run is called by Kong when the replay command is executed.
func (c *Replay) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in, closeIn, err := openInput(c.In)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(c.Out)
	if err != nil {
		return err
	}
	defer closeOut()

	// a blocked read on a file ends once the file is closed
	stopClose := context.AfterFunc(ctx, closeIn)
	defer stopClose()

	return c.Stream(ctx, in, out, logger, rawLogger)
}

func openInput(name string) (io.Reader, func(), error) {
	if name == "-" || name == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(name string) (io.Writer, func(), error) {
	if name == "-" || name == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open output: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// Stream runs the read, map and write stages until in is exhausted, a stage
// fails or ctx is cancelled. A trailing partial frame is an error.
func (c *Replay) Stream(ctx context.Context, in io.Reader, out io.Writer, logger *slog.Logger, rawLogger log.RawLogger) error {
	mapper, err := mapping.NewMapper(c.Profile)
	if err != nil {
		return err
	}
	encode, err := c.encoder()
	if err != nil {
		return err
	}

	logger.Info("Starting replay", "in", c.In, "out", c.Out, "target", c.Target, "report", c.Report)

	buf := max(c.Buffer, 1)
	states := make(chan steamdeck.InputState, buf)
	frames := make(chan []byte, buf)
	g, ctx := errgroup.WithContext(ctx)

	// unblock a pending read once a stage fails
	if c, ok := in.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() { _ = c.Close() })
		defer stop()
	}

	g.Go(func() error {
		defer close(states)
		raw := make([]byte, steamdeck.InputStateSize)
		for n := 0; ; n++ {
			if _, err := io.ReadFull(in, raw); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("frame %d: %w", n, err)
			}
			rawLogger.Log(true, raw)

			var s steamdeck.InputState
			if err := s.UnmarshalBinary(raw); err != nil {
				return fmt.Errorf("frame %d: %w", n, err)
			}
			select {
			case states <- s:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	g.Go(func() error {
		defer close(frames)
		var n uint64
		for s := range states {
			b, err := encode(mapper.Map(s), n)
			if err != nil {
				return fmt.Errorf("frame %d: %w", n, err)
			}
			n++
			select {
			case frames <- b:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	var written int
	g.Go(func() error {
		for b := range frames {
			if _, err := out.Write(b); err != nil {
				return fmt.Errorf("write frame %d: %w", written, err)
			}
			rawLogger.Log(false, b)
			logger.Log(ctx, log.LevelTrace, "frame written", "frame", written, "bytes", len(b))
			written++
		}
		return nil
	})

	err = g.Wait()
	logger.Info("Replay finished", "frames", written)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

type frameEncoder func(o mapping.Output, n uint64) ([]byte, error)

func (c *Replay) encoder() (frameEncoder, error) {
	switch c.Target {
	case "xbox360", "":
		return func(o mapping.Output, _ uint64) ([]byte, error) {
			s := o.ToXbox360()
			if c.Report {
				return buildReport(&s), nil
			}
			return s.MarshalBinary()
		}, nil
	case "dualshock4":
		return func(o mapping.Output, n uint64) ([]byte, error) {
			r := dualshock4.Report{
				State:     o.ToDualShock4(),
				Counter:   uint8(n),
				Timestamp: uint16(n),
			}
			if c.Report {
				return buildReport(&r), nil
			}
			return r.State.MarshalBinary()
		}, nil
	default:
		return nil, fmt.Errorf("unknown target %q", c.Target)
	}
}

func buildReport(b device.ReportBuilder) []byte {
	return b.BuildReport()
}
