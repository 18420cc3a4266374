package bootstrap

import (
	"context"

	"group-deal-engine/internal/pkg/config"
	"group-deal-engine/internal/usecase/commands"
	"group-deal-engine/internal/usecase/tasks"
	"group-deal-engine/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewWorker,
	),
	fx.Invoke(startWorker),
)

func NewWorker(cfg config.Config, dispatcher *tasks.Dispatcher, sweeper *commands.CompletionSweeper) *worker.Worker {
	return worker.New(cfg.Worker,
		worker.Job{
			Name:     "deal-tasks",
			Interval: cfg.Worker.TaskInterval,
			Run: func(ctx context.Context) error {
				_, err := dispatcher.Tick(ctx)
				return err
			},
		},
		worker.Job{
			Name:     "completion-sweep",
			Interval: cfg.Worker.SweepInterval,
			Run: func(ctx context.Context) error {
				_, err := sweeper.Sweep(ctx)
				return err
			},
		},
	)
}

func startWorker(lc fx.Lifecycle, w *worker.Worker) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			w.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return w.Stop(ctx)
		},
	})
}
