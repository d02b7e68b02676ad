// Package sampler generates random line segments that fit entirely inside
// a rectangular canvas, without unbounded rejection loops.
//
// What:
//
//   - Params bounds the segment length and angle ranges (degrees, the
//     angle range may wrap past 360).
//   - Sampler draws a segment with both endpoints inside
//     [0,width]×[0,height], or reports failure after a bounded number of
//     start-point attempts.
//
// How (angle-interval method):
//
// For a fixed start point and length, each canvas wall excludes one
// contiguous arc of directions, computable in closed form from the ratio
// (wall − coordinate)/length via acos/asin. The sampler intersects the
// four allowed arcs with the requested angle range using interval
// arithmetic over angles normalized to [0, 2π), then draws an angle
// uniformly weighted by each surviving interval's span. Weighting by span
// keeps the draw uniform over the valid angle measure rather than over
// attempts, so constraining the canvas does not bias the emitted
// directions. Only the start point is retried; a start point whose
// interval set is empty (the length cannot fit anywhere from there) is
// discarded and the attempt budget decremented.
//
// A plain reject-and-retry sampler can spin forever when the parameters
// admit no placement at all; this method reaches ErrNoValidPlacement
// within MaxAttempts draws, which the engine treats as a terminal state.
//
// Errors:
//
//   - ErrBadParams: malformed parameters or canvas, rejected at
//     construction before any sampling.
//   - ErrNoValidPlacement: the attempt budget was exhausted without a
//     non-empty angle interval set (e.g. MinLength exceeds the canvas
//     diagonal).
//
// Complexity: one Sample call is O(MaxAttempts) with O(1) work per
// attempt; memory is O(1).
package sampler
