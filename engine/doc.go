// Package engine drives the line-bridge percolation simulation: segments
// are inserted one at a time until a chain of mutually intersecting
// segments bridges the configured boundary pair of the region.
//
// What:
//
//   - Engine owns the ordered segment arena (insertion index = segment
//     identity), the disjoint-set cluster structure, and the starter and
//     finisher index sets.
//   - Step samples one segment and feeds it through the insertion
//     pipeline: append → classify → intersect against all earlier
//     segments with a union per hit → bridge test.
//   - Insert runs the same pipeline on a caller-supplied segment, for
//     deterministic replays and tests.
//   - On a bridge, the connecting path is reconstructed by an unweighted
//     BFS restricted to the matched cluster and the engine enters its
//     terminal BridgeFound state.
//
// State machine:
//
//	Idle ──SetRunning(true)──▶ Running ──SetRunning(false)──▶ Paused
//	Running ──bridge──▶ BridgeFound        (terminal)
//	Running ──sampler exhausted──▶ SamplingFailed (terminal)
//	any ──Reset──▶ Idle
//
// SetRunning is ignored in terminal states; Reset always returns to Idle,
// discarding all accumulated data.
//
// Concurrency: an Engine is single-threaded by contract. Callers
// serialize Step/Insert/Reset on one logical thread; independent Engine
// instances share nothing and may run in parallel.
//
// Errors:
//
//   - ErrInvalidConfig: malformed Reset configuration (region, mode, or
//     sampling parameters); nothing is silently clamped.
//   - ErrNotConfigured: Step/Insert before a successful Reset.
//   - Sampling exhaustion surfaces through the SamplingFailed state and a
//     wrapped sampler.ErrNoValidPlacement from the failing Step.
//   - A bridge reported by the disjoint set that path reconstruction
//     cannot trace indicates the two structures disagree; that is a
//     correctness bug and panics.
//
// Complexity: Step k performs O(k) intersection tests (O(n²) over a run;
// no spatial index, deliberately). Path reconstruction runs once per run,
// over the matched cluster only.
package engine
