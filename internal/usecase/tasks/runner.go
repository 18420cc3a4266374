package tasks

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"group-deal-engine/internal/domain/notification"
	"group-deal-engine/internal/pkg/clock"
	"group-deal-engine/internal/pkg/errs"
	"group-deal-engine/internal/pkg/metrics"
	"group-deal-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUnknownTaskKind = errs.New("unknown deal task kind")
	ErrInvalidPayload  = errs.New("invalid deal task payload")
)

// CompletionPayload is stored with notify_completed tasks.
type CompletionPayload struct {
	DealName string `json:"deal_name"`
}

// NewCompletionTasks builds the task list written alongside a won completion claim.
func NewCompletionTasks(dealID uuid.UUID, dealName string, now time.Time) ([]shared.DealTask, error) {
	payload, err := json.Marshal(CompletionPayload{DealName: dealName})
	if err != nil {
		return nil, errs.Wrap(err, "marshal completion payload")
	}
	return []shared.DealTask{
		{ID: uuid.New(), DealID: dealID, Kind: shared.TaskFinalizeReservations, Payload: []byte("{}"), Status: shared.TaskQueued, RunAt: now},
		{ID: uuid.New(), DealID: dealID, Kind: shared.TaskNotifyCompleted, Payload: payload, Status: shared.TaskQueued, RunAt: now},
	}, nil
}

type Result struct {
	TaskID uuid.UUID
	Kind   shared.TaskKind
	Err    error
}

type Runner struct {
	store   shared.TaskStore
	ledger  shared.OrderLedger
	fanout  shared.Broadcaster
	clock   clock.Clock
	backoff time.Duration
	metrics *metrics.Metrics
}

func NewRunner(store shared.TaskStore, ledger shared.OrderLedger, fanout shared.Broadcaster, clk clock.Clock, backoff time.Duration, m *metrics.Metrics) *Runner {
	return &Runner{
		store:   store,
		ledger:  ledger,
		fanout:  fanout,
		clock:   clk,
		backoff: backoff,
		metrics: m,
	}
}

// RunNow claims and runs the given tasks. Tasks already claimed elsewhere are skipped.
func (r *Runner) RunNow(ctx context.Context, ids []uuid.UUID) []Result {
	results := make([]Result, 0, len(ids))
	for _, id := range ids {
		task, ok, err := r.store.Claim(ctx, id, r.clock.Now())
		if err != nil {
			slog.Error("failed to claim deal task", "task_id", id.String(), "error", err.Error())
			results = append(results, Result{TaskID: id, Err: err})
			continue
		}
		if !ok {
			continue
		}
		results = append(results, r.runClaimed(ctx, *task))
	}
	return results
}

// Run executes already claimed tasks one by one; a failure never stops the rest.
func (r *Runner) Run(ctx context.Context, claimed []shared.DealTask) []Result {
	results := make([]Result, 0, len(claimed))
	for _, task := range claimed {
		results = append(results, r.runClaimed(ctx, task))
	}
	return results
}

func (r *Runner) runClaimed(ctx context.Context, task shared.DealTask) Result {
	err := r.execute(ctx, task)
	r.metrics.TaskRunObserved(string(task.Kind), err == nil)

	now := r.clock.Now()
	if err != nil {
		retryAt := now.Add(r.retryDelay(task.Attempts))
		slog.Warn("deal task failed",
			"task_id", task.ID.String(),
			"deal_id", task.DealID.String(),
			"kind", string(task.Kind),
			"attempts", task.Attempts,
			"retry_at", retryAt,
			"error", err.Error())
		if markErr := r.store.MarkFailed(ctx, task.ID, err.Error(), retryAt, now); markErr != nil {
			slog.Error("failed to record task failure", "task_id", task.ID.String(), "error", markErr.Error())
		}
		return Result{TaskID: task.ID, Kind: task.Kind, Err: err}
	}

	if markErr := r.store.MarkDone(ctx, task.ID, now); markErr != nil {
		slog.Error("failed to mark task done", "task_id", task.ID.String(), "error", markErr.Error())
	}
	return Result{TaskID: task.ID, Kind: task.Kind}
}

func (r *Runner) execute(ctx context.Context, task shared.DealTask) error {
	switch task.Kind {
	case shared.TaskFinalizeReservations:
		n, err := r.ledger.FinalizeReservations(ctx, task.DealID)
		if err != nil {
			return errs.Wrap(err, "finalize reservations")
		}
		slog.Info("reservations finalized", "deal_id", task.DealID.String(), "count", n)
		return nil

	case shared.TaskNotifyCompleted:
		var payload CompletionPayload
		if err := json.Unmarshal(task.Payload, &payload); err != nil {
			return errs.Mark(errs.Wrap(err, "decode completion payload"), ErrInvalidPayload)
		}
		report, err := r.fanout.Deliver(ctx, task.DealID, notification.KindCompleted, notification.CompletedMessage(payload.DealName))
		if err != nil {
			return err
		}
		slog.Info("completion notifications sent",
			"deal_id", task.DealID.String(),
			"recipients", report.Recipients,
			"delivered", report.Delivered,
			"failed", len(report.Failures))
		return nil

	default:
		return errs.Wrap(ErrUnknownTaskKind, string(task.Kind))
	}
}

// retryDelay grows linearly with attempts.
func (r *Runner) retryDelay(attempts int32) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	return time.Duration(attempts) * r.backoff
}
