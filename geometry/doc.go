// Package geometry provides the exact planar predicates the simulation is
// defined by: an orientation test, a collinear containment test, and a
// segment-on-segment intersection test.
//
// What:
//
//   - Segment wraps two geom.Coord endpoints as an immutable value.
//   - Orientation classifies an ordered point triple as Collinear,
//     Clockwise or CounterClockwise from the exact sign of a cross product.
//   - Intersects decides whether two segments share at least one point,
//     covering proper crossings, endpoint touches and collinear overlaps.
//
// Why:
//
//   - Every connectivity decision downstream (cluster unions, bridge
//     detection, path reconstruction) reduces to Intersects; its behavior
//     must be a pure function of coordinates with no hidden tolerance.
//
// Exactness:
//
// Orientation applies no epsilon: only an exact floating-point zero of the
// cross product counts as collinear. Callers that need tolerance bands
// (e.g. boundary classification) apply them on their own side.
//
// Complexity: all predicates are O(1) time, O(1) memory.
package geometry
