// Package geometry defines the Segment value type and the orientation
// classification shared by all predicates.
package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// Orient is the turn direction of an ordered point triple.
type Orient int

const (
	// Collinear means the three points lie on one line (exact zero cross product).
	Collinear Orient = iota
	// Clockwise means the triple turns clockwise in canvas coordinates
	// (y axis pointing down).
	Clockwise
	// CounterClockwise means the triple turns counterclockwise.
	CounterClockwise
)

// String returns a human-readable name for the orientation.
func (o Orient) String() string {
	switch o {
	case Collinear:
		return "collinear"
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	default:
		return "unknown"
	}
}

// Segment is an immutable line segment in canvas space.
// Segments are compared and stored by value; identity within a simulation
// is the insertion index, never the coordinates.
type Segment struct {
	A, B geom.Coord
}

// NewSegment builds a Segment from raw endpoint coordinates.
func NewSegment(x1, y1, x2, y2 float64) Segment {
	return Segment{
		A: geom.Coord{X: x1, Y: y1},
		B: geom.Coord{X: x2, Y: y2},
	}
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.B.X-s.A.X, s.B.Y-s.A.Y)
}

// Bounds returns the axis-aligned bounding box of the segment,
// satisfying geom.Bounded.
func (s Segment) Bounds() geom.Rect {
	r := geom.Rect{Min: s.A, Max: s.A}
	r.ExpandToContainCoord(s.B)

	return r
}
