package shaping

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidCurve is returned when a sensitivity curve holds nodes outside [0, 1].
var ErrInvalidCurve = errors.New("invalid sensitivity curve")

// sensitivityScale makes a node value of 1.0 mean +100% sensitivity.
const sensitivityScale = 2.0

// Node is one point of a sensitivity curve.
type Node struct {
	Key   float64 `json:"key" yaml:"key" toml:"key"`
	Value float64 `json:"value" yaml:"value" toml:"value"`
}

// Curve is a key-ordered sensitivity node table.
//
// A Curve is read-only while it is being evaluated. Code that edits curves
// while another goroutine evaluates them must publish a fresh Clone instead of
// mutating the shared slice.
type Curve []Node

// NewCurve builds a key-ordered curve from a key/value table.
func NewCurve(nodes map[float64]float64) Curve {
	c := make(Curve, 0, len(nodes))
	for k, v := range nodes {
		c = append(c, Node{Key: k, Value: v})
	}
	sort.Slice(c, func(i, j int) bool { return c[i].Key < c[j].Key })
	return c
}

// Clone returns an independent copy of the curve.
func (c Curve) Clone() Curve {
	if c == nil {
		return nil
	}
	out := make(Curve, len(c))
	copy(out, c)
	return out
}

// Validate checks that keys are unique, ordered and that every key and value
// lies in [0, 1].
func (c Curve) Validate() error {
	for i, n := range c {
		if n.Key < 0 || n.Key > 1 || math.IsNaN(n.Key) {
			return fmt.Errorf("%w: key %v out of range [0,1]", ErrInvalidCurve, n.Key)
		}
		if n.Value < 0 || n.Value > 1 || math.IsNaN(n.Value) {
			return fmt.Errorf("%w: value %v at key %v out of range [0,1]", ErrInvalidCurve, n.Value, n.Key)
		}
		if i > 0 && c[i-1].Key >= n.Key {
			return fmt.Errorf("%w: keys not strictly ascending at %v", ErrInvalidCurve, n.Key)
		}
	}
	return nil
}

// String renders the curve as comma separated key=value pairs.
func (c Curve) String() string {
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = strconv.FormatFloat(n.Key, 'f', -1, 64) + "=" + strconv.FormatFloat(n.Value, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

// MarshalText implements encoding.TextMarshaler.
func (c Curve) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses "key=value,key=value" into a key-ordered curve.
// Later duplicates of a key replace earlier ones.
func (c *Curve) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		*c = nil
		return nil
	}

	nodes := map[float64]float64{}
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return fmt.Errorf("%w: node %q is not key=value", ErrInvalidCurve, pair)
		}
		key, err := strconv.ParseFloat(strings.TrimSpace(k), 64)
		if err != nil {
			return fmt.Errorf("%w: key %q: %v", ErrInvalidCurve, k, err)
		}
		val, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%w: value %q: %v", ErrInvalidCurve, v, err)
		}
		nodes[key] = val
	}

	*c = NewCurve(nodes)
	return nil
}

// ApplyCustomSensitivity returns the sensitivity factor for value on a scale
// of maxValue.
//
// The two nodes whose keys are nearest to |value|/maxValue (by distance, so
// both may sit on the same side) are weighted by 1/(1+distance), averaged and
// doubled. This is a nearest-neighbour blend, not interpolation between the
// bracketing nodes. A centred value returns 0, a saturated one 1, and an empty
// curve returns the normalised position itself. A non-positive maxValue
// returns 0.
func ApplyCustomSensitivity(value, maxValue float64, curve Curve) float64 {
	if maxValue <= 0 {
		return 0
	}
	p := Clamp(math.Abs(value)/maxValue, 0, 1)
	if p == 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	if len(curve) == 0 {
		return p
	}

	first, second := -1, -1
	for i, n := range curve {
		d := math.Abs(n.Key - p)
		switch {
		case first < 0 || d < math.Abs(curve[first].Key-p):
			second = first
			first = i
		case second < 0 || d < math.Abs(curve[second].Key-p):
			second = i
		}
	}

	var sum float64
	count := 0
	for _, i := range [2]int{first, second} {
		if i < 0 {
			continue
		}
		d := math.Abs(curve[i].Key - p)
		sum += curve[i].Value * (1 / (1 + d))
		count++
	}

	return sum / float64(count) * sensitivityScale
}
