// Package sampler implements the angle-interval segment sampler used by
// the simulation engine.
package sampler

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/elbeejay/line-bridge-simulator/geometry"
)

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180

// Sampler draws random segments that fit inside a fixed canvas.
// A Sampler is not safe for concurrent use: it owns a single *rand.Rand,
// matching the one-insertion-at-a-time engine contract.
type Sampler struct {
	params  Params
	width   float64
	height  float64
	userArc spanSet // requested angle range, normalized to [0, 2π)

	rng         *rand.Rand
	maxAttempts int
}

// New validates the parameters and canvas and returns a ready Sampler.
//
// Validation (ErrBadParams, wrapped with the offending field):
//   - width and height must be finite and positive,
//   - 0 < MinLength ≤ MaxLength, both finite,
//   - MinAngleDeg ≤ MaxAngleDeg, both finite (the range may wrap past
//     360; spans of 360° or more cover the full circle).
//
// Nothing is silently clamped: values New cannot interpret are rejected.
// Without WithRand the Sampler seeds itself from the wall clock; pass a
// seeded source for reproducible runs.
func New(params Params, width, height float64, opts ...Option) (*Sampler, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !finitePositive(width) || !finitePositive(height) {
		return nil, fmt.Errorf("%w: canvas %gx%g must be finite and positive", ErrBadParams, width, height)
	}
	if !finitePositive(params.MinLength) || !isFinite(params.MaxLength) {
		return nil, fmt.Errorf("%w: lengths [%g,%g] must be finite and positive", ErrBadParams, params.MinLength, params.MaxLength)
	}
	if params.MinLength > params.MaxLength {
		return nil, fmt.Errorf("%w: MinLength %g exceeds MaxLength %g", ErrBadParams, params.MinLength, params.MaxLength)
	}
	if !isFinite(params.MinAngleDeg) || !isFinite(params.MaxAngleDeg) {
		return nil, fmt.Errorf("%w: angles [%g,%g] must be finite", ErrBadParams, params.MinAngleDeg, params.MaxAngleDeg)
	}
	if params.MinAngleDeg > params.MaxAngleDeg {
		return nil, fmt.Errorf("%w: MinAngleDeg %g exceeds MaxAngleDeg %g", ErrBadParams, params.MinAngleDeg, params.MaxAngleDeg)
	}

	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Sampler{
		params:      params,
		width:       width,
		height:      height,
		userArc:     arcSet(params.MinAngleDeg*degToRad, (params.MaxAngleDeg-params.MinAngleDeg)*degToRad),
		rng:         o.rng,
		maxAttempts: o.maxAttempts,
	}, nil
}

// Sample draws one segment with both endpoints inside
// [0,width]×[0,height] and length within the configured range.
//
// Each attempt draws a length and a start point uniformly, computes the
// allowed angle set analytically, and succeeds unless that set is empty
// for the drawn start point. When every attempt yields an empty set,
// Sample returns ErrNoValidPlacement; callers must treat this as a
// terminal condition, not retry indefinitely.
func (s *Sampler) Sample() (geometry.Segment, error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		length := s.params.MinLength + s.rng.Float64()*(s.params.MaxLength-s.params.MinLength)
		x := s.rng.Float64() * s.width
		y := s.rng.Float64() * s.height

		allowed := s.allowedAngles(x, y, length)
		if len(allowed) == 0 {
			continue
		}

		// Uniform over the valid angle measure; a measure-zero set is a
		// single exact direction (e.g. MinAngleDeg == MaxAngleDeg).
		var theta float64
		if m := allowed.measure(); m > 0 {
			theta = allowed.pick(s.rng.Float64() * m)
		} else {
			theta = allowed.pick(0)
		}

		// The arcs guarantee containment in exact arithmetic; clamp only
		// trims floating-point residue at the walls.
		ex := clamp(x+length*math.Cos(theta), 0, s.width)
		ey := clamp(y+length*math.Sin(theta), 0, s.height)

		return geometry.NewSegment(x, y, ex, ey), nil
	}

	return geometry.Segment{}, fmt.Errorf("%w: %d attempts exhausted", ErrNoValidPlacement, s.maxAttempts)
}

// allowedAngles intersects the requested angle range with the four arcs
// keeping the endpoint inside each canvas wall, for a fixed start point
// and length. An empty result means the length cannot fit from (x, y) at
// any permitted direction.
func (s *Sampler) allowedAngles(x, y, length float64) spanSet {
	set := s.userArc
	set = set.intersect(cosAtMost((s.width - x) / length))  // right wall
	set = set.intersect(cosAtLeast(-x / length))            // left wall
	set = set.intersect(sinAtMost((s.height - y) / length)) // bottom wall
	set = set.intersect(sinAtLeast(-y / length))            // top wall

	return set
}

// cosAtMost returns the directions with cos θ ≤ c: the arc
// [acos(c), 2π−acos(c)]. c ≥ 1 is unconstrained; c < −1 admits nothing.
func cosAtMost(c float64) spanSet {
	if c >= 1 {
		return fullCircle()
	}
	if c < -1 {
		return nil
	}
	a := math.Acos(c)

	return arcSet(a, twoPi-2*a)
}

// cosAtLeast returns the directions with cos θ ≥ c: the arc
// [−acos(c), acos(c)] wrapped at the seam.
func cosAtLeast(c float64) spanSet {
	if c <= -1 {
		return fullCircle()
	}
	if c > 1 {
		return nil
	}
	a := math.Acos(c)

	return arcSet(-a, 2*a)
}

// sinAtMost returns the directions with sin θ ≤ v: the arc starting at
// π−asin(v) of width π+2·asin(v).
func sinAtMost(v float64) spanSet {
	if v >= 1 {
		return fullCircle()
	}
	if v < -1 {
		return nil
	}
	b := math.Asin(v)

	return arcSet(math.Pi-b, math.Pi+2*b)
}

// sinAtLeast returns the directions with sin θ ≥ v: the arc
// [asin(v), π−asin(v)].
func sinAtLeast(v float64) spanSet {
	if v <= -1 {
		return fullCircle()
	}
	if v > 1 {
		return nil
	}
	b := math.Asin(v)

	return arcSet(b, math.Pi-2*b)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finitePositive(v float64) bool {
	return isFinite(v) && v > 0
}
