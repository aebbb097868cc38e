package shaping

import (
	"fmt"
	"math"
	"strings"

	"github.com/golang/geo/r2"
)

// Direction is a set of combinable deflection flags.
type Direction uint8

const (
	None  Direction = 0
	Left  Direction = 1 << 0
	Right Direction = 1 << 1
	Up    Direction = 1 << 2
	Down  Direction = 1 << 3
)

// Octant sector width and the offset that centres sector 0 on the 0° axis.
const (
	octantWidth = 45.0
	octantShift = 22.5
)

// deflectionOctants maps an atan2(y, x) octant to its direction.
var deflectionOctants = [8]Direction{
	Right,
	Up | Right,
	Up,
	Up | Left,
	Left,
	Down | Left,
	Down,
	Down | Right,
}

// Touch direction slots returned by TouchToDirections.
const (
	TouchUp = iota
	TouchRight
	TouchDown
	TouchLeft
)

// touchOctants maps an atan2(x, y) octant to {up, right, down, left}.
var touchOctants = [8][4]bool{
	{true, false, false, false},
	{true, true, false, false},
	{false, true, false, false},
	{false, true, true, false},
	{false, false, true, false},
	{false, false, true, true},
	{false, false, false, true},
	{true, false, false, true},
}

var directionNames = []struct {
	dir  Direction
	name string
}{
	{Up, "up"},
	{Down, "down"},
	{Left, "left"},
	{Right, "right"},
}

// String renders d as "up|left" style flag names, or "none".
func (d Direction) String() string {
	if d == None {
		return "none"
	}
	var parts []string
	for _, n := range directionNames {
		if d&n.dir != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Has reports whether every flag of other is set in d.
func (d Direction) Has(other Direction) bool {
	return d&other == other
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "none" {
		return None, nil
	}

	var d Direction
	for _, part := range strings.Split(s, "|") {
		found := false
		for _, n := range directionNames {
			if strings.TrimSpace(part) == n.name {
				d |= n.dir
				found = true
				break
			}
		}
		if !found {
			return None, fmt.Errorf("unknown direction %q", part)
		}
	}
	return d, nil
}

// GetDeflectionDirection classifies v into one of eight directions.
// Vectors shorter than threshold are None.
func GetDeflectionDirection(v r2.Point, threshold float64) Direction {
	if v.Dot(v) < threshold*threshold {
		return None
	}

	angle := math.Atan2(v.Y, v.X) * 180 / math.Pi
	angle = normalizeDegrees(angle + octantShift)

	return deflectionOctants[octantIndex(angle)]
}

// TouchToDirections classifies a touch point into {up, right, down, left}
// flags. Diagonal octants set both neighbouring flags. Points inside radius
// report nothing.
//
// The angle is atan2(x, y), measured from the +Y axis toward +X, which is the
// touch surface convention and differs from GetDeflectionDirection.
// radialShift rotates the sectors, in degrees.
func TouchToDirections(x, y, radius, radialShift float64) [4]bool {
	if math.Hypot(x, y) < radius {
		return [4]bool{}
	}

	angle := math.Atan2(x, y) * 180 / math.Pi
	angle = normalizeDegrees(angle + radialShift + octantShift)

	return touchOctants[octantIndex(angle)]
}

// TouchDirection folds TouchToDirections flags into a Direction.
func TouchDirection(flags [4]bool) Direction {
	var d Direction
	if flags[TouchUp] {
		d |= Up
	}
	if flags[TouchRight] {
		d |= Right
	}
	if flags[TouchDown] {
		d |= Down
	}
	if flags[TouchLeft] {
		d |= Left
	}
	return d
}

func normalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

func octantIndex(angle float64) int {
	// Mod guards against 360 after float roundoff in normalizeDegrees.
	return int(angle/octantWidth) % 8
}
