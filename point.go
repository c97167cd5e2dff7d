package scalarstar

import (
	"math"
	"strconv"
)

// Point is a state of the search: a single coordinate on the real line.
//
// Two points are the same state only when their bit patterns are identical,
// so +0 and -0 are different states. Use Key, not ==, for identity.
type Point struct {
	X float64
}

// NewPoint returns the point at coordinate x.
func NewPoint(x float64) Point { return Point{X: x} }

// Key returns the exact bit pattern used to identify the state in maps and sets.
func (point Point) Key() uint64 { return math.Float64bits(point.X) }

// Same reports whether both points are the same state.
func (point Point) Same(other Point) bool { return point.Key() == other.Key() }

// String formats the point in plain decimal notation, never with an exponent.
func (point Point) String() string {
	return "P(" + FormatCoordinate(point.X) + ")"
}

// FormatCoordinate formats x in plain decimal notation with the fewest digits
// that round-trip, e.g. 0.0000001 rather than 1e-07.
func FormatCoordinate(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// Distance is the metric of the space. It is both the heuristic and the goal test.
func Distance(from Point, to Point) float64 {
	return math.Abs(from.X - to.X)
}
