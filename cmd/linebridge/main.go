// Command linebridge runs the simulation headless: a single animated-free
// run rendered to SVG, and optionally a statistics batch when TRIALS is set.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/elbeejay/line-bridge-simulator/engine"
	"github.com/elbeejay/line-bridge-simulator/internal/config"
	"github.com/elbeejay/line-bridge-simulator/internal/web"
	"github.com/elbeejay/line-bridge-simulator/render"
	"github.com/elbeejay/line-bridge-simulator/stats"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	setup := web.SimSetup{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Margin:    cfg.Margin,
		MinLength: cfg.MinLength,
		MaxLength: cfg.MaxLength,
		MinAngle:  cfg.MinAngle,
		MaxAngle:  cfg.MaxAngle,
		Mode:      cfg.Mode,
	}
	engCfg, err := setup.Config()
	if err != nil {
		slog.Error("invalid simulation setup", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runOnce(engCfg, cfg.StepCap, cfg.SVGOut); err != nil {
		slog.Error("single run", "error", err)
		os.Exit(1)
	}

	if cfg.Trials > 0 {
		if err := runBatch(ctx, engCfg, cfg); err != nil {
			slog.Error("batch run", "error", err)
			os.Exit(1)
		}
	}
}

// runOnce drives one simulation to a terminal state (or the step cap) and
// writes the final frame to an SVG file.
func runOnce(cfg engine.Config, stepCap int, out string) error {
	e := engine.New()
	if err := e.Reset(cfg); err != nil {
		return err
	}
	e.SetRunning(true)

	for i := 0; i < stepCap && !e.State().Terminal(); i++ {
		if err := e.Step(); err != nil {
			slog.Warn("sampling failed", "error", err, "inserted", e.InsertedCount())
			break
		}
	}

	slog.Info("run finished",
		"state", e.State().String(),
		"inserted", e.InsertedCount(),
		"bridge", len(e.BridgeIndices()),
	)

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := render.New(f).WriteSnapshot(e.Snapshot(), cfg.Width, cfg.Height, cfg.Region); err != nil {
		return err
	}
	slog.Info("wrote svg", "path", out)

	return nil
}

// runBatch estimates the bridging-count distribution over many trials.
func runBatch(ctx context.Context, engCfg engine.Config, cfg *config.Config) error {
	opts := []stats.Option{
		stats.WithStepCap(cfg.StepCap),
		stats.WithWorkers(cfg.Workers),
	}
	if cfg.Seed != 0 {
		opts = append(opts, stats.WithSeed(cfg.Seed))
	}

	summary, err := stats.Run(ctx, engCfg, cfg.Trials, opts...)
	if err != nil {
		return err
	}

	slog.Info("batch finished",
		"trials", summary.Trials,
		"bridged", summary.Bridged,
		"failed", summary.Failed,
		"mean", summary.Mean,
		"median", summary.Median,
		"min", summary.Min,
		"max", summary.Max,
	)

	return nil
}
