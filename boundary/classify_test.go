package boundary_test

import (
	"errors"
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"

	"github.com/elbeejay/line-bridge-simulator/boundary"
	"github.com/elbeejay/line-bridge-simulator/geometry"
)

// region is a 500×300 rectangle at the origin, the typical canvas shape.
var region = geom.Rect{
	Min: geom.Coord{X: 0, Y: 0},
	Max: geom.Coord{X: 500, Y: 300},
}

// TestClassify_LeftToRight covers start, finish, both and neither verdicts
// on the x axis.
func TestClassify_LeftToRight(t *testing.T) {
	c := boundary.NewClassifier()

	cases := []struct {
		name string
		seg  geometry.Segment
		want boundary.Touch
	}{
		{"touches left edge", geometry.NewSegment(0, 50, 100, 50), boundary.Touch{Start: true}},
		{"touches right edge", geometry.NewSegment(400, 10, 500, 20), boundary.Touch{Finish: true}},
		{"spans both", geometry.NewSegment(0, 150, 500, 150), boundary.Touch{Start: true, Finish: true}},
		{"interior only", geometry.NewSegment(50, 50, 450, 250), boundary.Touch{}},
		{"within tolerance", geometry.NewSegment(1e-12, 10, 90, 10), boundary.Touch{Start: true}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, c.Classify(tc.seg, region, boundary.LeftToRight), tc.name)
	}
}

// TestClassify_TopToBottom is the y-axis mirror of the left-right mode.
func TestClassify_TopToBottom(t *testing.T) {
	c := boundary.NewClassifier()

	top := geometry.NewSegment(100, 0, 150, 80)
	bottom := geometry.NewSegment(100, 250, 150, 300)
	interior := geometry.NewSegment(100, 50, 150, 250)

	assert.Equal(t, boundary.Touch{Start: true}, c.Classify(top, region, boundary.TopToBottom))
	assert.Equal(t, boundary.Touch{Finish: true}, c.Classify(bottom, region, boundary.TopToBottom))
	assert.Equal(t, boundary.Touch{}, c.Classify(interior, region, boundary.TopToBottom))
}

// TestClassify_CornerToCorner checks the radius capture at both corners:
// an endpoint within DefaultCornerRadius of a corner counts, one just
// outside does not.
func TestClassify_CornerToCorner(t *testing.T) {
	c := boundary.NewClassifier()

	// Endpoint at distance 10 from the top-left corner: inside the radius.
	nearStart := geometry.NewSegment(6, 8, 200, 100)
	assert.Equal(t, boundary.Touch{Start: true}, c.Classify(nearStart, region, boundary.CornerToCorner))

	// Endpoint at distance 10 from the bottom-right corner.
	nearFinish := geometry.NewSegment(200, 100, 494, 292)
	assert.Equal(t, boundary.Touch{Finish: true}, c.Classify(nearFinish, region, boundary.CornerToCorner))

	// Distance 20 from the top-left corner: outside the default radius, and
	// nowhere near any other corner.
	outside := geometry.NewSegment(12, 16, 200, 100)
	assert.Equal(t, boundary.Touch{}, c.Classify(outside, region, boundary.CornerToCorner))

	// A widened radius admits the same segment; the constant is a tuning
	// parameter, not a hard-coded behavior.
	wide := boundary.Classifier{EdgeTolerance: boundary.DefaultEdgeTolerance, CornerRadius: 25}
	assert.Equal(t, boundary.Touch{Start: true}, wide.Classify(outside, region, boundary.CornerToCorner))
}

// TestParseMode maps configuration strings to modes and rejects the rest.
func TestParseMode(t *testing.T) {
	for _, m := range []boundary.Mode{boundary.LeftToRight, boundary.TopToBottom, boundary.CornerToCorner} {
		got, err := boundary.ParseMode(m.String())
		assert.NoError(t, err)
		assert.Equal(t, m, got)
		assert.True(t, m.Valid())
	}

	_, err := boundary.ParseMode("diagonal")
	assert.True(t, errors.Is(err, boundary.ErrUnknownMode))
	assert.False(t, boundary.Mode(42).Valid())
}
