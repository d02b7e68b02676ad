package sampler

import "math"

const twoPi = 2 * math.Pi

// span is a closed angle interval [lo, hi] with 0 ≤ lo ≤ hi ≤ 2π.
// A zero-width span (lo == hi) is a single exact direction and is kept:
// it carries no measure but remains samplable as a point target.
type span struct {
	lo, hi float64
}

// spanSet is a union of disjoint spans in ascending order.
type spanSet []span

// fullCircle is the unconstrained angle set.
func fullCircle() spanSet {
	return spanSet{{lo: 0, hi: twoPi}}
}

// arcSet normalizes the arc starting at `start` radians spanning `width`
// radians into a spanSet, splitting at the 0/2π seam when the arc wraps.
// width is clamped to [0, 2π].
func arcSet(start, width float64) spanSet {
	if width >= twoPi {
		return fullCircle()
	}
	if width < 0 {
		width = 0
	}
	// Normalize start into [0, 2π).
	start = math.Mod(start, twoPi)
	if start < 0 {
		start += twoPi
	}
	end := start + width
	if end <= twoPi {
		return spanSet{{lo: start, hi: end}}
	}
	// Wraps past the seam: split into the tail and head pieces.
	return spanSet{{lo: 0, hi: end - twoPi}, {lo: start, hi: twoPi}}
}

// intersect returns the overlap of two span sets. Both inputs hold
// disjoint ascending spans, and so does the result.
// Complexity: O(len(s)·len(t)); the operand sizes here are at most 2.
func (s spanSet) intersect(t spanSet) spanSet {
	var out spanSet
	for _, a := range s {
		for _, b := range t {
			lo := math.Max(a.lo, b.lo)
			hi := math.Min(a.hi, b.hi)
			if lo <= hi {
				out = append(out, span{lo: lo, hi: hi})
			}
		}
	}

	return out
}

// measure returns the total angular width of the set.
func (s spanSet) measure() float64 {
	var m float64
	for _, sp := range s {
		m += sp.hi - sp.lo
	}

	return m
}

// pick maps u ∈ [0, measure()) onto the set, weighting each span by its
// width so the draw is uniform over the valid measure. For a measure-zero
// set it returns the first point target.
func (s spanSet) pick(u float64) float64 {
	for _, sp := range s {
		w := sp.hi - sp.lo
		if u < w {
			return sp.lo + u
		}
		u -= w
	}
	// Degenerate (measure zero) or floating residue past the last span.
	return s[0].lo
}
