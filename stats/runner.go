// Package stats implements the batch simulation driver.
package stats

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/elbeejay/line-bridge-simulator/engine"
	"github.com/elbeejay/line-bridge-simulator/sampler"
)

// trialSeedStride separates per-trial seeds so neighboring trials do not
// walk correlated random streams.
const trialSeedStride int64 = 0x5DEECE66D

// Run executes trials independent simulations of cfg to completion and
// aggregates their bridging counts.
//
// Each trial gets a fresh Engine and its own random source; nothing is
// shared across trials, so they are distributed over the configured
// worker count without locking inside the simulation. Cancellation is
// checked between insertions: a canceled context aborts the batch and
// returns ctx.Err().
//
// Returns ErrBadTrialCount for trials < 1 and propagates
// engine.ErrInvalidConfig from the trial Reset.
func Run(ctx context.Context, cfg engine.Config, trials int, opts ...Option) (Summary, error) {
	if trials < 1 {
		return Summary{}, ErrBadTrialCount
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = time.Now().UnixNano()
	}

	// Validate the configuration once, up front, on a throwaway engine:
	// a bad config should fail the batch before any worker spins up.
	if err := engine.New().Reset(cfg); err != nil {
		return Summary{}, err
	}

	var (
		results  = make([]Trial, trials)
		firstErr error
		errOnce  sync.Once
		wg       sync.WaitGroup
		next     = make(chan int)
	)

	workers := o.workers
	if workers > trials {
		workers = trials
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				trial, err := runTrial(ctx, cfg, o.stepCap, o.seed+int64(i)*trialSeedStride)
				if err != nil {
					errOnce.Do(func() { firstErr = err })
					return
				}
				results[i] = trial
			}
		}()
	}

feed:
	for i := 0; i < trials; i++ {
		select {
		case next <- i:
		case <-ctx.Done():
			errOnce.Do(func() { firstErr = ctx.Err() })
			break feed
		}
	}
	close(next)
	wg.Wait()

	if firstErr != nil {
		return Summary{}, firstErr
	}

	return summarize(results), nil
}

// runTrial drives one simulation until terminal state or the step cap,
// yielding control between insertions for cancellation.
func runTrial(ctx context.Context, cfg engine.Config, stepCap int, seed int64) (Trial, error) {
	e := engine.New()
	err := e.Reset(cfg, engine.WithSamplerOptions(
		sampler.WithRand(rand.New(rand.NewSource(seed)))))
	if err != nil {
		return Trial{}, err
	}

	e.SetRunning(true)
	for steps := 0; steps < stepCap && !e.State().Terminal(); steps++ {
		select {
		case <-ctx.Done():
			return Trial{}, ctx.Err()
		default:
		}
		// Sampling failure lands the engine in a terminal state; the
		// returned error is already captured there.
		_ = e.Step()
	}

	state := e.State()

	return Trial{
		ID:       uuid.NewString(),
		Outcome:  state,
		Inserted: e.InsertedCount(),
		Bridged:  state == engine.StateBridgeFound,
	}, nil
}

// summarize folds the trial list into the aggregate distribution.
func summarize(results []Trial) Summary {
	s := Summary{Trials: len(results), Results: results}

	var counts []int
	for _, t := range results {
		if t.Bridged {
			counts = append(counts, t.Inserted)
		}
	}
	s.Bridged = len(counts)
	s.Failed = s.Trials - s.Bridged
	if len(counts) == 0 {
		return s
	}

	sort.Ints(counts)
	s.Min = counts[0]
	s.Max = counts[len(counts)-1]

	var sum int
	for _, c := range counts {
		sum += c
	}
	s.Mean = float64(sum) / float64(len(counts))

	// Median: middle element, or the mean of the two middles for even n.
	mid := len(counts) / 2
	if len(counts)%2 == 1 {
		s.Median = float64(counts[mid])
	} else {
		s.Median = float64(counts[mid-1]+counts[mid]) / 2
	}

	return s
}
