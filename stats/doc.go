// Package stats runs batches of independent simulations to completion and
// aggregates how many segments each needed to bridge.
//
// What:
//
//   - Run executes N trials, each on its own Engine (instances share
//     nothing, so trials may run on parallel workers).
//   - Every trial carries a hard step cap: a run that neither bridges nor
//     fails sampling within the cap is counted as failed, never left
//     spinning.
//   - Summary reports count, mean, median, min and max of the inserted
//     segment counts over the trials that bridged.
//
// Why:
//
//   - The bridging threshold of a parameter set is a distribution, not a
//     number; the batch driver is how that distribution is observed.
//
// Cancellation is cooperative: the context is checked between steps, so a
// canceled batch stops at the next insertion boundary and returns
// ctx.Err().
//
// Errors:
//
//   - ErrBadTrialCount: a non-positive trial count.
//   - Engine configuration errors propagate from the first trial's Reset.
//
// Complexity: one trial costs O(k²) intersection tests for k insertions;
// a batch is the sum over its trials, divided across Workers goroutines.
package stats
