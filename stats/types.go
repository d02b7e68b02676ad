// Package stats defines batch options, per-trial results and the
// aggregate summary.
package stats

import (
	"errors"

	"github.com/elbeejay/line-bridge-simulator/engine"
)

// Sentinel errors for batch execution.
var (
	// ErrBadTrialCount is returned for a non-positive number of trials.
	ErrBadTrialCount = errors.New("stats: trial count must be positive")
)

// Defaults, named so call sites carry no magic numbers.
const (
	// DefaultStepCap bounds a single trial. A trial still unterminated at
	// the cap is counted as failed; the cap exists because a run with
	// pathological parameters may otherwise never terminate.
	DefaultStepCap = 10000

	// DefaultWorkers runs trials serially. Engines share nothing, so any
	// worker count is safe; serial is the deterministic default.
	DefaultWorkers = 1
)

// Option tunes a batch run.
type Option func(*options)

type options struct {
	stepCap int
	workers int
	seed    int64
	seeded  bool
}

func defaultOptions() options {
	return options{
		stepCap: DefaultStepCap,
		workers: DefaultWorkers,
	}
}

// WithStepCap overrides the per-trial step cap. Non-positive values are
// ignored and the default kept.
func WithStepCap(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.stepCap = n
		}
	}
}

// WithWorkers sets how many trials run concurrently. Non-positive values
// are ignored.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithSeed makes the whole batch reproducible: trial i derives its random
// source from seed and i, independent of worker scheduling.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// Trial is the outcome of one independent simulation.
type Trial struct {
	// ID tags the trial for logs and result listings.
	ID string
	// Outcome is the terminal engine state, or the state at the step cap.
	Outcome engine.State
	// Inserted is the number of segments placed when the trial ended.
	Inserted int
	// Bridged reports whether the trial ended in BridgeFound.
	Bridged bool
}

// Summary aggregates a batch over the bridged trials' inserted counts.
type Summary struct {
	// Trials is the number of simulations executed.
	Trials int
	// Bridged / Failed partition the trials by outcome. Failed includes
	// sampling failures and step-cap hits.
	Bridged int
	Failed  int

	// Mean, Median, Min and Max describe the inserted-count distribution
	// over bridged trials; all zero when no trial bridged.
	Mean   float64
	Median float64
	Min    int
	Max    int

	// Results lists every trial in index order.
	Results []Trial
}
