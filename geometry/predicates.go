package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// Orientation classifies the turn made by the ordered triple (p, q, r)
// from the sign of the cross product
//
//	(q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
//
// A positive value is Clockwise, a negative value CounterClockwise, and an
// exact zero Collinear. No tolerance is applied: floating-point collinearity
// is exact by definition of this formula.
// Complexity: O(1).
func Orientation(p, q, r geom.Coord) Orient {
	v := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case v > 0:
		return Clockwise
	case v < 0:
		return CounterClockwise
	default:
		return Collinear
	}
}

// onSegment reports whether q lies within the axis-aligned bounding box of
// p and r, inclusive at both ends. It assumes p, q, r are already known to
// be collinear and is only used to resolve degenerate touching cases.
func onSegment(p, q, r geom.Coord) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

// Intersects reports whether segments a and b share at least one point.
//
// The general case uses the standard orientation test: a and b cross
// properly iff the endpoints of b lie on opposite sides of a and vice
// versa. The four degenerate cases (an endpoint of one segment collinear
// with the other segment) are each resolved via onSegment, which makes the
// predicate return true for endpoint touches and partial or full collinear
// overlaps, and false for collinear but disjoint segments.
//
// The predicate is symmetric: Intersects(a, b) == Intersects(b, a).
// Complexity: O(1).
func Intersects(a, b Segment) bool {
	// Orientations of each endpoint of one segment against the other.
	o1 := Orientation(a.A, a.B, b.A)
	o2 := Orientation(a.A, a.B, b.B)
	o3 := Orientation(b.A, b.B, a.A)
	o4 := Orientation(b.A, b.B, a.B)

	// General case: proper crossing.
	if o1 != o2 && o3 != o4 {
		return true
	}

	// Degenerate cases: an endpoint collinear with the other segment
	// intersects iff it falls inside that segment's bounding box.
	if o1 == Collinear && onSegment(a.A, b.A, a.B) {
		return true
	}
	if o2 == Collinear && onSegment(a.A, b.B, a.B) {
		return true
	}
	if o3 == Collinear && onSegment(b.A, a.A, b.B) {
		return true
	}
	if o4 == Collinear && onSegment(b.A, a.B, b.B) {
		return true
	}

	return false
}
