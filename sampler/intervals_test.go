package sampler

import (
	"math"
	"testing"
)

// almost compares angles with a small absolute tolerance.
func almost(t *testing.T, want, got float64, msg string) {
	t.Helper()
	if math.Abs(want-got) > 1e-12 {
		t.Errorf("%s: got %v; want %v", msg, got, want)
	}
}

// TestArcSet_Normalization covers the plain, wrapping, negative-start and
// full-circle arcs.
func TestArcSet_Normalization(t *testing.T) {
	// Plain arc inside [0, 2π): one span.
	s := arcSet(1, 2)
	if len(s) != 1 {
		t.Fatalf("plain arc: got %d spans; want 1", len(s))
	}
	almost(t, 1, s[0].lo, "plain lo")
	almost(t, 3, s[0].hi, "plain hi")

	// Wrapping arc splits at the seam.
	s = arcSet(twoPi-0.5, 1)
	if len(s) != 2 {
		t.Fatalf("wrapping arc: got %d spans; want 2", len(s))
	}
	almost(t, 0, s[0].lo, "wrap head lo")
	almost(t, 0.5, s[0].hi, "wrap head hi")
	almost(t, twoPi-0.5, s[1].lo, "wrap tail lo")
	almost(t, twoPi, s[1].hi, "wrap tail hi")

	// Negative start normalizes, as produced by cosAtLeast.
	s = arcSet(-0.25, 0.5)
	if len(s) != 2 {
		t.Fatalf("negative start: got %d spans; want 2", len(s))
	}

	// Width ≥ 2π is the full circle.
	s = arcSet(3, 10)
	if len(s) != 1 || s[0].lo != 0 || s[0].hi != twoPi {
		t.Errorf("full circle: got %v", s)
	}
}

// TestSpanSet_IntersectAndMeasure checks overlap arithmetic, empty results
// and the additive measure.
func TestSpanSet_IntersectAndMeasure(t *testing.T) {
	a := spanSet{{lo: 0, hi: 2}, {lo: 4, hi: 6}}
	b := spanSet{{lo: 1, hi: 5}}

	got := a.intersect(b)
	if len(got) != 2 {
		t.Fatalf("intersect: got %d spans; want 2", len(got))
	}
	almost(t, 1, got[0].lo, "first lo")
	almost(t, 2, got[0].hi, "first hi")
	almost(t, 4, got[1].lo, "second lo")
	almost(t, 5, got[1].hi, "second hi")
	almost(t, 2, got.measure(), "measure")

	// Disjoint sets intersect to nothing.
	if r := a.intersect(spanSet{{lo: 2.5, hi: 3.5}}); len(r) != 0 {
		t.Errorf("disjoint intersect: got %v; want empty", r)
	}

	// Intersecting with nil (an impossible wall constraint) empties the set.
	if r := a.intersect(nil); len(r) != 0 {
		t.Errorf("nil intersect: got %v; want empty", r)
	}
}

// TestSpanSet_Pick verifies span-weighted placement across a gap and the
// measure-zero point target.
func TestSpanSet_Pick(t *testing.T) {
	s := spanSet{{lo: 0, hi: 1}, {lo: 5, hi: 7}}

	almost(t, 0.5, s.pick(0.5), "inside first span")
	almost(t, 5, s.pick(1), "start of second span")
	almost(t, 6.5, s.pick(2.5), "inside second span")

	point := spanSet{{lo: 2, hi: 2}}
	almost(t, 2, point.pick(0), "point target")
}

// TestWallArcs spot-checks the four closed-form wall constraints at easy
// angles.
func TestWallArcs(t *testing.T) {
	// cos θ ≤ 0 is the left half-plane: [π/2, 3π/2].
	s := cosAtMost(0)
	almost(t, math.Pi/2, s[0].lo, "cosAtMost lo")
	almost(t, 3*math.Pi/2, s[0].hi, "cosAtMost hi")

	// sin θ ≥ 0 is the lower canvas half: [0, π].
	s = sinAtLeast(0)
	almost(t, 0, s[0].lo, "sinAtLeast lo")
	almost(t, math.Pi, s[0].hi, "sinAtLeast hi")

	// sin θ ≤ 0: [π, 2π].
	s = sinAtMost(0)
	almost(t, math.Pi, s[0].lo, "sinAtMost lo")
	almost(t, twoPi, s[0].hi, "sinAtMost hi")

	// Unconstrained and impossible branches.
	if s := cosAtLeast(-1.5); s.measure() != twoPi {
		t.Errorf("cosAtLeast(-1.5): want full circle")
	}
	if s := sinAtLeast(1.5); s != nil {
		t.Errorf("sinAtLeast(1.5): want nil, got %v", s)
	}
}
