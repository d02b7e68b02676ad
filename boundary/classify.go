package boundary

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/elbeejay/line-bridge-simulator/geometry"
)

// Classifier decides starter/finisher membership for segments against a
// region. The zero value is not useful; use NewClassifier for the default
// tolerances and override fields only when tuning.
type Classifier struct {
	// EdgeTolerance widens the axis-aligned edge tests.
	EdgeTolerance float64
	// CornerRadius is the Euclidean capture radius for corner modes.
	CornerRadius float64
}

// NewClassifier returns a Classifier with the default tolerances.
func NewClassifier() Classifier {
	return Classifier{
		EdgeTolerance: DefaultEdgeTolerance,
		CornerRadius:  DefaultCornerRadius,
	}
}

// Classify reports whether either endpoint of seg touches the start and/or
// finish boundary of region under the given mode.
//
// Membership is decided once, at segment insertion time, and never
// revisited: the verdict is a pure function of the segment, region, mode
// and tolerances.
//
// Classify panics on an invalid mode; the engine validates the mode at
// configuration time, so reaching this with an unknown mode is a bug.
// Complexity: O(1).
func (c Classifier) Classify(seg geometry.Segment, region geom.Rect, mode Mode) Touch {
	switch mode {
	case LeftToRight:
		return Touch{
			Start:  c.nearMin(seg.A.X, seg.B.X, region.Min.X),
			Finish: c.nearMax(seg.A.X, seg.B.X, region.Max.X),
		}
	case TopToBottom:
		return Touch{
			Start:  c.nearMin(seg.A.Y, seg.B.Y, region.Min.Y),
			Finish: c.nearMax(seg.A.Y, seg.B.Y, region.Max.Y),
		}
	case CornerToCorner:
		return Touch{
			Start:  c.nearCorner(seg, region.Min),
			Finish: c.nearCorner(seg, region.Max),
		}
	default:
		panic("boundary: Classify called with invalid mode")
	}
}

// nearMin reports whether either coordinate sits at or below the low edge,
// within the tolerance band.
func (c Classifier) nearMin(v1, v2, edge float64) bool {
	return v1 <= edge+c.EdgeTolerance || v2 <= edge+c.EdgeTolerance
}

// nearMax reports whether either coordinate sits at or above the high edge,
// within the tolerance band.
func (c Classifier) nearMax(v1, v2, edge float64) bool {
	return v1 >= edge-c.EdgeTolerance || v2 >= edge-c.EdgeTolerance
}

// nearCorner reports whether either endpoint lies within CornerRadius of
// the corner point.
func (c Classifier) nearCorner(seg geometry.Segment, corner geom.Coord) bool {
	return dist(seg.A, corner) <= c.CornerRadius || dist(seg.B, corner) <= c.CornerRadius
}

// dist is the Euclidean distance between two points.
func dist(a, b geom.Coord) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
