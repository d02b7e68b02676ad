// Package engine implements the incremental simulation orchestrator.
package engine

import (
	"fmt"
	"math"

	"github.com/elbeejay/line-bridge-simulator/boundary"
	"github.com/elbeejay/line-bridge-simulator/dsu"
	"github.com/elbeejay/line-bridge-simulator/geometry"
	"github.com/elbeejay/line-bridge-simulator/sampler"
)

// Engine runs one simulation. The zero value is unconfigured; call Reset
// before use. Not safe for concurrent use.
type Engine struct {
	cfg        Config
	classifier boundary.Classifier
	smp        *sampler.Sampler

	state     State
	segments  []geometry.Segment
	sets      *dsu.DisjointSet
	starters  []int
	finishers []int
	// finisherSet mirrors finishers for O(1) membership during BFS.
	finisherSet map[int]bool
	// bridge holds the path as segment indices once found.
	bridge []int
}

// New returns an unconfigured Engine in the Idle state.
func New() *Engine {
	return &Engine{sets: dsu.New(), finisherSet: map[int]bool{}}
}

// Reset validates cfg, discards all accumulated run data and returns the
// engine to Idle with the new configuration.
//
// Returns ErrInvalidConfig (wrapped with the reason) for a degenerate or
// non-finite region, an unknown boundary mode, or sampling parameters the
// sampler rejects. On error the previous configuration is left untouched.
func (e *Engine) Reset(cfg Config, opts ...Option) error {
	o := defaultResetOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !cfg.Mode.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, boundary.ErrUnknownMode)
	}
	if err := validRegion(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	smp, err := sampler.New(cfg.Params, cfg.Width, cfg.Height, o.samplerOpts...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	e.cfg = cfg
	e.classifier = o.classifier
	e.smp = smp
	e.state = StateIdle
	e.segments = nil
	e.sets = dsu.New()
	e.starters = nil
	e.finishers = nil
	e.finisherSet = map[int]bool{}
	e.bridge = nil

	return nil
}

// validRegion rejects non-finite or inverted region rectangles.
func validRegion(cfg Config) error {
	r := cfg.Region
	for _, v := range []float64{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("region coordinates must be finite, got %+v", r)
		}
	}
	if r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y {
		return fmt.Errorf("region must have positive extent, got %+v", r)
	}

	return nil
}

// SetRunning toggles between Running and Paused. It is ignored in
// terminal states; cancellation is cooperative and takes effect at the
// next Step boundary, never mid-step.
func (e *Engine) SetRunning(run bool) {
	if e.state.Terminal() {
		return
	}
	if run {
		e.state = StateRunning
	} else if e.state == StateRunning {
		e.state = StatePaused
	}
}

// Step advances the simulation by exactly one sampled segment.
//
// It is a no-op (nil error) unless the engine is Running. On sampler
// exhaustion the engine transitions to the terminal SamplingFailed state
// and the wrapped sampler error is returned so callers can distinguish
// the outcome immediately rather than polling State.
func (e *Engine) Step() error {
	if e.smp == nil {
		return ErrNotConfigured
	}
	if e.state != StateRunning {
		return nil
	}

	seg, err := e.smp.Sample()
	if err != nil {
		e.state = StateSamplingFailed

		return fmt.Errorf("engine: step %d: %w", len(e.segments), err)
	}
	e.insert(seg)

	return nil
}

// Insert feeds a caller-supplied segment through the insertion pipeline,
// bypassing the sampler. It exists for deterministic replays and tests;
// unlike Step it does not require the Running state, but it is still a
// no-op once a terminal state is reached.
func (e *Engine) Insert(seg geometry.Segment) error {
	if e.smp == nil {
		return ErrNotConfigured
	}
	if e.state.Terminal() {
		return nil
	}
	e.insert(seg)

	return nil
}

// insert is the pipeline shared by Step and Insert:
// append → register → classify → union intersecting pairs → bridge test.
func (e *Engine) insert(seg geometry.Segment) {
	// 1. Append to the arena; the dsu index must equal the slice index.
	idx := e.sets.Add()
	e.segments = append(e.segments, seg)

	// 2. Classify once, at insertion time; membership is never revisited.
	touch := e.classifier.Classify(seg, e.cfg.Region, e.cfg.Mode)
	if touch.Start {
		e.starters = append(e.starters, idx)
	}
	if touch.Finish {
		e.finishers = append(e.finishers, idx)
		e.finisherSet[idx] = true
	}

	// 3. Union with every strictly earlier intersecting segment.
	// O(idx) predicate calls; the accepted O(n²) total cost of a run.
	for j := 0; j < idx; j++ {
		if geometry.Intersects(e.segments[j], seg) {
			e.sets.Union(j, idx)
		}
	}

	// 4. Bridge test; on a match, reconstruct the path and stop.
	if start, ok := e.bridgedStarter(); ok {
		e.bridge = e.reconstructPath(start)
		e.state = StateBridgeFound
	}
}

// bridgedStarter returns the first starter (in insertion order) whose
// cluster also contains a finisher. The scan order is an implementation
// detail: any starter/finisher pair in a shared cluster ends the run.
func (e *Engine) bridgedStarter() (int, bool) {
	if len(e.starters) == 0 || len(e.finishers) == 0 {
		return 0, false
	}
	finisherRoots := make(map[int]bool, len(e.finishers))
	for _, f := range e.finishers {
		finisherRoots[e.sets.Find(f)] = true
	}
	for _, s := range e.starters {
		if finisherRoots[e.sets.Find(s)] {
			return s, true
		}
	}

	return 0, false
}

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Running reports whether Step currently inserts segments.
func (e *Engine) Running() bool { return e.state == StateRunning }

// InsertedCount returns the number of segments inserted this run.
func (e *Engine) InsertedCount() int { return len(e.segments) }

// Segments returns a copy of the segment arena in insertion order.
func (e *Engine) Segments() []geometry.Segment {
	out := make([]geometry.Segment, len(e.segments))
	copy(out, e.segments)

	return out
}

// BridgeIndices returns a copy of the bridge path as segment indices, or
// nil while no bridge has been found.
func (e *Engine) BridgeIndices() []int {
	if e.bridge == nil {
		return nil
	}
	out := make([]int, len(e.bridge))
	copy(out, e.bridge)

	return out
}

// BridgePath returns a copy of the bridge path as segments, or nil.
func (e *Engine) BridgePath() []geometry.Segment {
	if e.bridge == nil {
		return nil
	}
	out := make([]geometry.Segment, len(e.bridge))
	for i, idx := range e.bridge {
		out[i] = e.segments[idx]
	}

	return out
}

// Snapshot returns a read-only copy of the observable run state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Segments:      e.Segments(),
		InsertedCount: len(e.segments),
		Running:       e.Running(),
		State:         e.state,
		BridgePath:    e.BridgePath(),
		Clusters:      e.Clusters(),
	}
}
