package commands

import (
	"context"
	"log/slog"

	"group-deal-engine/internal/infra"
	"group-deal-engine/internal/pkg/clock"
	"group-deal-engine/internal/pkg/errs"
	"group-deal-engine/internal/pkg/metrics"
	"group-deal-engine/internal/usecase/shared"
	"group-deal-engine/internal/usecase/tasks"

	"github.com/google/uuid"
)

type CompletionOutcome struct {
	DealID       uuid.UUID
	Participants int
	// Completed is true when the deal is completed after this attempt, whoever claimed it.
	Completed bool
	// Claimed is true only for the single caller that flipped the flag.
	Claimed     bool
	TaskResults []tasks.Result
}

type Completer interface {
	TryComplete(ctx context.Context, dealID uuid.UUID) (*CompletionOutcome, error)
}

type TaskRunner interface {
	RunNow(ctx context.Context, ids []uuid.UUID) []tasks.Result
}

type completerImpl struct {
	uow     shared.UnitOfWork
	runner  TaskRunner
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewCompleter(uow shared.UnitOfWork, runner TaskRunner, clk clock.Clock, m *metrics.Metrics) Completer {
	return &completerImpl{uow: uow, runner: runner, clock: clk, metrics: m}
}

// TryComplete re-checks the threshold under an exclusive deal lock and flips the
// completion flag with a conditional update. The completion task list commits with the flag,
// so exactly one caller ever enqueues it.
func (c *completerImpl) TryComplete(ctx context.Context, dealID uuid.UUID) (*CompletionOutcome, error) {
	now := c.clock.Now()
	var (
		outcome *CompletionOutcome
		taskIDs []uuid.UUID
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		outcome = &CompletionOutcome{DealID: dealID}
		taskIDs = nil

		d, err := tx.Deals().FindByID(ctx, dealID, shared.LockUpdate)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrDealNotFound
			}
			return err
		}
		if d.IsCompleted() {
			outcome.Completed = true
			return nil
		}

		count, err := tx.Memberships().Count(ctx, dealID)
		if err != nil {
			return err
		}
		outcome.Participants = count
		if !d.ThresholdReached(count) {
			return nil
		}

		claimed, err := tx.Deals().ClaimCompletion(ctx, dealID, now)
		if err != nil {
			return err
		}
		outcome.Completed = true
		if !claimed {
			return nil
		}
		outcome.Claimed = true
		if err := d.MarkCompleted(now); err != nil {
			return err
		}

		list, err := tasks.NewCompletionTasks(dealID, d.Name(), now)
		if err != nil {
			return err
		}
		for _, t := range list {
			if err := tx.Tasks().Enqueue(ctx, t); err != nil {
				return err
			}
			taskIDs = append(taskIDs, t.ID)
		}
		return nil
	})
	if err != nil {
		c.metrics.CompletionObserved("error")
		if errs.Is(err, ErrDealNotFound) {
			return nil, err
		}
		return nil, errs.Mark(errs.Wrap(err, "try complete"), ErrCompletionFailed)
	}

	switch {
	case outcome.Claimed:
		c.metrics.CompletionObserved("claimed")
		slog.Info("deal completed",
			"deal_id", dealID.String(),
			"participants", outcome.Participants)
		// the claim is committed; its tasks must not die with the caller
		outcome.TaskResults = c.runner.RunNow(context.WithoutCancel(ctx), taskIDs)
	case outcome.Completed:
		c.metrics.CompletionObserved("lost")
	default:
		c.metrics.CompletionObserved("below_threshold")
	}

	return outcome, nil
}
