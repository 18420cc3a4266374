package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"group-deal-engine/internal/pkg/config"
)

// Job is one periodic unit of background work.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Worker runs each job on its own ticker until stopped. A failing run is logged and
// the job keeps its schedule.
type Worker struct {
	jobs    []Job
	enabled bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(cfg config.WorkerConfig, jobs ...Job) *Worker {
	return &Worker{jobs: jobs, enabled: cfg.Enabled}
}

func (w *Worker) Start() {
	if !w.enabled {
		slog.Info("background worker disabled")
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	for _, job := range w.jobs {
		if job.Interval <= 0 {
			slog.Error("background job skipped: non-positive interval", "job", job.Name, "interval", job.Interval.String())
			continue
		}
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			w.loop(ctx, job)
		}()
	}
	slog.Info("background worker started", "jobs", len(w.jobs))
}

// Stop cancels running jobs and waits for them or for ctx, whichever ends first.
func (w *Worker) Stop(ctx context.Context) error {
	if w.cancel == nil {
		return nil
	}
	w.cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Worker) loop(ctx context.Context, job Job) {
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := job.Run(ctx); err != nil && ctx.Err() == nil {
				slog.Error("background job failed", "job", job.Name, "error", err.Error())
			}
		}
	}
}
