// Package engine defines the simulation states, configuration and
// observable snapshot.
package engine

import (
	"errors"

	"github.com/jbeda/geom"

	"github.com/elbeejay/line-bridge-simulator/boundary"
	"github.com/elbeejay/line-bridge-simulator/geometry"
	"github.com/elbeejay/line-bridge-simulator/sampler"
)

// Sentinel errors for engine configuration and use.
var (
	// ErrInvalidConfig is returned by Reset for a configuration the engine
	// cannot interpret: a degenerate or non-finite region, an unknown
	// boundary mode, or sampling parameters rejected by the sampler.
	ErrInvalidConfig = errors.New("engine: invalid configuration")

	// ErrNotConfigured is returned by Step and Insert before the first
	// successful Reset.
	ErrNotConfigured = errors.New("engine: not configured, call Reset first")
)

// State is the simulation lifecycle state.
type State int

const (
	// StateIdle: configured, no stepping yet or fully reset.
	StateIdle State = iota
	// StateRunning: Step calls insert segments.
	StateRunning
	// StatePaused: suspended by SetRunning(false); resumable without loss.
	StatePaused
	// StateBridgeFound: terminal success; the bridge path is fixed.
	StateBridgeFound
	// StateSamplingFailed: terminal failure; the sampler exhausted its
	// attempt budget under the current parameters.
	StateSamplingFailed
)

// Terminal reports whether the state can only be left through Reset.
func (s State) Terminal() bool {
	return s == StateBridgeFound || s == StateSamplingFailed
}

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateBridgeFound:
		return "bridge-found"
	case StateSamplingFailed:
		return "sampling-failed"
	default:
		return "unknown"
	}
}

// Config is everything a run needs, fixed at Reset time.
type Config struct {
	// Width and Height bound the sampling canvas [0,W]×[0,H].
	Width, Height float64
	// Region is the rectangle within which bridging is evaluated,
	// typically the canvas inset by a margin.
	Region geom.Rect
	// Mode selects the boundary pair being bridged.
	Mode boundary.Mode
	// Params bounds the sampled segment lengths and angles.
	Params sampler.Params
}

// Option tunes an Engine at Reset.
type Option func(*resetOptions)

type resetOptions struct {
	classifier  boundary.Classifier
	samplerOpts []sampler.Option
}

func defaultResetOptions() resetOptions {
	return resetOptions{classifier: boundary.NewClassifier()}
}

// WithClassifier overrides the boundary classifier tolerances.
func WithClassifier(c boundary.Classifier) Option {
	return func(o *resetOptions) { o.classifier = c }
}

// WithSamplerOptions forwards options (random source, attempt budget) to
// the sampler constructed during Reset.
func WithSamplerOptions(opts ...sampler.Option) Option {
	return func(o *resetOptions) { o.samplerOpts = append(o.samplerOpts, opts...) }
}

// Snapshot is a read-only copy of the observable run state, safe to hand
// to renderers and statistics collectors.
type Snapshot struct {
	// Segments in insertion order; index = identity.
	Segments []geometry.Segment
	// InsertedCount == len(Segments), kept explicit for display surfaces.
	InsertedCount int
	// Running mirrors State == StateRunning.
	Running bool
	// State is the full lifecycle state.
	State State
	// BridgePath is empty until a bridge is found, then fixed until Reset.
	BridgePath []geometry.Segment
	// Clusters groups segment indices by connectivity, ordered by each
	// cluster's smallest member.
	Clusters [][]int
}
