package stats_test

import (
	"context"
	"testing"
	"time"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elbeejay/line-bridge-simulator/boundary"
	"github.com/elbeejay/line-bridge-simulator/engine"
	"github.com/elbeejay/line-bridge-simulator/sampler"
	"github.com/elbeejay/line-bridge-simulator/stats"
)

// smallConfig bridges quickly: a 200×150 canvas with generous lengths.
func smallConfig() engine.Config {
	return engine.Config{
		Width:  200,
		Height: 150,
		Region: geom.Rect{
			Min: geom.Coord{X: 10, Y: 10},
			Max: geom.Coord{X: 190, Y: 140},
		},
		Mode: boundary.LeftToRight,
		Params: sampler.Params{
			MinLength:   20,
			MaxLength:   80,
			MinAngleDeg: 0,
			MaxAngleDeg: 360,
		},
	}
}

// TestRun_AggregatesBridgedTrials checks the batch shape on a seeded,
// serial run: every trial of an easy configuration bridges, and the
// aggregate respects Min ≤ Median ≤ Max with Mean inside the same range.
func TestRun_AggregatesBridgedTrials(t *testing.T) {
	sum, err := stats.Run(context.Background(), smallConfig(), 20, stats.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, 20, sum.Trials)
	assert.Equal(t, 20, sum.Bridged)
	assert.Zero(t, sum.Failed)
	assert.Len(t, sum.Results, 20)

	assert.GreaterOrEqual(t, sum.Median, float64(sum.Min))
	assert.LessOrEqual(t, sum.Median, float64(sum.Max))
	assert.GreaterOrEqual(t, sum.Mean, float64(sum.Min))
	assert.LessOrEqual(t, sum.Mean, float64(sum.Max))
	assert.Greater(t, sum.Min, 0, "a bridge needs at least one segment")

	for _, trial := range sum.Results {
		assert.True(t, trial.Bridged)
		assert.Equal(t, engine.StateBridgeFound, trial.Outcome)
		assert.NotEmpty(t, trial.ID)
	}
}

// TestRun_SeedReproducible runs the same seeded batch twice and expects
// identical inserted counts regardless of trial IDs.
func TestRun_SeedReproducible(t *testing.T) {
	a, err := stats.Run(context.Background(), smallConfig(), 10, stats.WithSeed(7))
	require.NoError(t, err)
	b, err := stats.Run(context.Background(), smallConfig(), 10, stats.WithSeed(7))
	require.NoError(t, err)

	for i := range a.Results {
		assert.Equal(t, a.Results[i].Inserted, b.Results[i].Inserted, "trial %d", i)
	}
	assert.Equal(t, a.Mean, b.Mean)
	assert.Equal(t, a.Median, b.Median)
}

// TestRun_ParallelMatchesSerial verifies worker count does not change the
// distribution: per-trial seeding is positional, not scheduling-ordered.
func TestRun_ParallelMatchesSerial(t *testing.T) {
	serial, err := stats.Run(context.Background(), smallConfig(), 12, stats.WithSeed(3))
	require.NoError(t, err)
	parallel, err := stats.Run(context.Background(), smallConfig(), 12,
		stats.WithSeed(3), stats.WithWorkers(4))
	require.NoError(t, err)

	for i := range serial.Results {
		assert.Equal(t, serial.Results[i].Inserted, parallel.Results[i].Inserted, "trial %d", i)
	}
}

// TestRun_StepCapCountsAsFailed gives trials a cap far below any bridging
// count: all must come back failed with zeroed distribution fields.
func TestRun_StepCapCountsAsFailed(t *testing.T) {
	sum, err := stats.Run(context.Background(), smallConfig(), 5,
		stats.WithSeed(1), stats.WithStepCap(1))
	require.NoError(t, err)

	assert.Equal(t, 5, sum.Failed)
	assert.Zero(t, sum.Bridged)
	assert.Zero(t, sum.Mean)
	assert.Zero(t, sum.Median)
	assert.Zero(t, sum.Min)
	assert.Zero(t, sum.Max)
}

// TestRun_SamplingFailureCountsAsFailed uses impossible lengths: every
// trial terminates via SamplingFailed, not by spinning to the cap.
func TestRun_SamplingFailureCountsAsFailed(t *testing.T) {
	cfg := smallConfig()
	cfg.Params.MinLength = 5000
	cfg.Params.MaxLength = 9000

	sum, err := stats.Run(context.Background(), cfg, 3, stats.WithSeed(1))
	require.NoError(t, err)

	assert.Equal(t, 3, sum.Failed)
	for _, trial := range sum.Results {
		assert.Equal(t, engine.StateSamplingFailed, trial.Outcome)
	}
}

// TestRun_Validation covers the error surface: bad trial counts and bad
// configurations fail before any trial runs.
func TestRun_Validation(t *testing.T) {
	_, err := stats.Run(context.Background(), smallConfig(), 0)
	assert.ErrorIs(t, err, stats.ErrBadTrialCount)

	bad := smallConfig()
	bad.Mode = boundary.Mode(42)
	_, err = stats.Run(context.Background(), bad, 3)
	assert.ErrorIs(t, err, engine.ErrInvalidConfig)
}

// TestRun_Cancellation cancels mid-batch and expects ctx.Err() promptly.
func TestRun_Cancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := stats.Run(ctx, smallConfig(), 100000, stats.WithSeed(9))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
