// Package sampler defines parameters, options and sentinel errors for
// random segment generation.
package sampler

import (
	"errors"
	"math/rand"
)

// Sentinel errors for sampling.
var (
	// ErrBadParams is returned by New for malformed parameters: reversed
	// or negative length bounds, a reversed angle range, or a canvas with
	// non-finite or non-positive dimensions.
	ErrBadParams = errors.New("sampler: invalid parameters")

	// ErrNoValidPlacement is returned by Sample when the attempt budget is
	// exhausted without finding a start point from which the drawn length
	// fits inside the canvas at any permitted angle.
	ErrNoValidPlacement = errors.New("sampler: no valid segment placement found")
)

// DefaultMaxAttempts is the default start-point attempt budget per Sample
// call. It is a tunable, not a guarantee: raising it trades latency for a
// lower false-failure rate on tightly constrained parameters.
const DefaultMaxAttempts = 50

// Params bounds the generated segments.
//
// Angles are in degrees, measured from the positive x axis with y growing
// downward (canvas convention). The range may wrap past 360, e.g.
// MinAngleDeg=350, MaxAngleDeg=380 covers the 20° arc through zero.
// MinAngleDeg == MaxAngleDeg requests a single exact direction.
type Params struct {
	MinLength   float64
	MaxLength   float64
	MinAngleDeg float64
	MaxAngleDeg float64
}

// Option tunes a Sampler at construction.
type Option func(*options)

type options struct {
	rng         *rand.Rand
	maxAttempts int
}

// defaultOptions: deterministic attempt budget, no RNG (resolved in New).
func defaultOptions() options {
	return options{
		rng:         nil,
		maxAttempts: DefaultMaxAttempts,
	}
}

// WithRand sets the random source. Pass a seeded *rand.Rand for
// reproducible sequences; nil is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithMaxAttempts overrides the start-point attempt budget.
// Non-positive values are ignored and the default kept.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}
