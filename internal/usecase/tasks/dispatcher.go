package tasks

import (
	"context"
	"log/slog"
	"time"

	"group-deal-engine/internal/pkg/clock"
	"group-deal-engine/internal/usecase/shared"
)

type DispatcherOptions struct {
	BatchSize   int32
	MaxAttempts int32
	// StaleAfter reclaims running tasks whose worker died mid-run.
	StaleAfter time.Duration
}

// Dispatcher re-runs tasks the post-commit path did not finish.
type Dispatcher struct {
	store  shared.TaskStore
	runner *Runner
	clock  clock.Clock
	opts   DispatcherOptions
}

const defaultStaleAfter = 5 * time.Minute

func NewDispatcher(store shared.TaskStore, runner *Runner, clk clock.Clock, opts DispatcherOptions) *Dispatcher {
	if opts.StaleAfter <= 0 {
		opts.StaleAfter = defaultStaleAfter
	}
	return &Dispatcher{store: store, runner: runner, clock: clk, opts: opts}
}

// Tick claims one batch of due tasks and runs them. It returns the number of tasks run.
func (d *Dispatcher) Tick(ctx context.Context) (int, error) {
	now := d.clock.Now()
	claimed, err := d.store.ClaimDue(ctx, now, now.Add(-d.opts.StaleAfter), d.opts.MaxAttempts, d.opts.BatchSize)
	if err != nil {
		return 0, err
	}
	if len(claimed) == 0 {
		return 0, nil
	}

	results := d.runner.Run(ctx, claimed)
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	slog.Info("deal task batch dispatched", "claimed", len(claimed), "failed", failed)
	return len(results), nil
}
