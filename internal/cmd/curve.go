package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/padshape/mapping"
	"github.com/Alia5/padshape/shaping"
)

const barWidth = 40

// Curve samples the gyro sensitivity curve over [0, max-dps].
type Curve struct {
	Steps  int                `help:"Number of intervals to sample" default:"10"`
	Format string             `help:"Output format" enum:"table,csv,yaml" default:"table"`
	Gyro   mapping.GyroConfig `embed:"" prefix:"gyro."`
}

// CurvePoint is one sample of a sensitivity curve.
type CurvePoint struct {
	Position   float64 `yaml:"position"`
	Velocity   float64 `yaml:"velocity"`
	Multiplier float64 `yaml:"multiplier"`
}

// Sample evaluates the curve at Steps+1 evenly spaced positions.
func (c *Curve) Sample() []CurvePoint {
	points := make([]CurvePoint, 0, c.Steps+1)
	for i := 0; i <= c.Steps; i++ {
		p := float64(i) / float64(c.Steps)
		v := p * c.Gyro.MaxDps
		m := p
		if len(c.Gyro.Curve) > 0 {
			m = shaping.ApplyCustomSensitivity(v, c.Gyro.MaxDps, c.Gyro.Curve)
		}
		points = append(points, CurvePoint{Position: p, Velocity: v, Multiplier: m})
	}
	return points
}

var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run is called by Kong when the curve command is executed.
func (c *Curve) Run(logger *slog.Logger, out io.Writer) error {
	if c.Steps <= 0 {
		return fmt.Errorf("%w: steps must be positive, got %d", mapping.ErrInvalidConfig, c.Steps)
	}
	if err := c.Gyro.Validate(); err != nil {
		return err
	}
	if len(c.Gyro.Curve) == 0 {
		logger.Info("no curve configured, showing the linear response")
	}

	points := c.Sample()
	switch c.Format {
	case "csv":
		return writeCurveCSV(out, points)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(points); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeCurveTable(out, points, isTerminal(out))
	}
}

func writeCurveCSV(out io.Writer, points []CurvePoint) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"position", "velocity", "multiplier"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.Position, 'f', -1, 64),
			strconv.FormatFloat(p.Velocity, 'f', -1, 64),
			strconv.FormatFloat(p.Multiplier, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeCurveTable(out io.Writer, points []CurvePoint, bars bool) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	header := "POSITION\tVELOCITY\tMULTIPLIER"
	if bars {
		header += "\t"
	}
	fmt.Fprintln(tw, header)
	for _, p := range points {
		line := fmt.Sprintf("%.2f\t%.1f\t%.4f", p.Position, p.Velocity, p.Multiplier)
		if bars {
			// multiplier range is [0, 2]
			n := int(shaping.Clamp(p.Multiplier/2, 0, 1)*barWidth + 0.5)
			line += "\t" + strings.Repeat("#", n)
		}
		fmt.Fprintln(tw, line)
	}
	return tw.Flush()
}
