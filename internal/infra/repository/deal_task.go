package repository

//go:generate mockgen -source=deal_task.go -destination=../../../tests/mock/repository/deal_task.go -package=repositorymock

import (
	"context"
	"time"

	"group-deal-engine/internal/infra"
	"group-deal-engine/internal/infra/repository/converter"
	sqlc "group-deal-engine/internal/infra/sqlc/generated"
	"group-deal-engine/internal/pkg/pgconv"
	"group-deal-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type DealTaskQueries interface {
	EnqueueDealTask(ctx context.Context, db sqlc.DBTX, arg sqlc.EnqueueDealTaskParams) error
	ClaimDealTask(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDealTaskParams) (sqlc.DealTasks, error)
	ClaimDueDealTasks(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueDealTasksParams) ([]sqlc.DealTasks, error)
	MarkDealTaskDone(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkDealTaskDoneParams) error
	MarkDealTaskFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkDealTaskFailedParams) error
}

// DealTaskRepository is the durable completion outbox. Inside a UoW it only enqueues;
// bound to the pool it claims and settles tasks.
type DealTaskRepository struct {
	queries DealTaskQueries
	db      sqlc.DBTX
}

func NewDealTaskRepository(queries DealTaskQueries, db sqlc.DBTX) *DealTaskRepository {
	return &DealTaskRepository{
		queries: queries,
		db:      db,
	}
}

func (r *DealTaskRepository) Enqueue(ctx context.Context, task shared.DealTask) error {
	err := r.queries.EnqueueDealTask(ctx, r.db, sqlc.EnqueueDealTaskParams{
		ID:      task.ID,
		DealID:  task.DealID,
		Kind:    string(task.Kind),
		Payload: task.Payload,
		RunAt:   pgconv.TimeToPgtype(task.RunAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue deal task", err)
	}
	return nil
}

func (r *DealTaskRepository) Claim(ctx context.Context, id uuid.UUID, now time.Time) (*shared.DealTask, bool, error) {
	row, err := r.queries.ClaimDealTask(ctx, r.db, sqlc.ClaimDealTaskParams{
		Now: pgconv.TimeToPgtype(now),
		ID:  id,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr("failed to claim deal task", err)
	}
	task := converter.DealTaskFromRow(row)
	return &task, true, nil
}

func (r *DealTaskRepository) ClaimDue(ctx context.Context, now, staleBefore time.Time, maxAttempts, limit int32) ([]shared.DealTask, error) {
	rows, err := r.queries.ClaimDueDealTasks(ctx, r.db, sqlc.ClaimDueDealTasksParams{
		Now:         pgconv.TimeToPgtype(now),
		StaleBefore: pgconv.TimeToPgtype(staleBefore),
		MaxAttempts: maxAttempts,
		MaxRows:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim due deal tasks", err)
	}
	tasks := make([]shared.DealTask, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, converter.DealTaskFromRow(row))
	}
	return tasks, nil
}

func (r *DealTaskRepository) MarkDone(ctx context.Context, id uuid.UUID, now time.Time) error {
	err := r.queries.MarkDealTaskDone(ctx, r.db, sqlc.MarkDealTaskDoneParams{
		Now: pgconv.TimeToPgtype(now),
		ID:  id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark deal task done", err)
	}
	return nil
}

func (r *DealTaskRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastErr string, retryAt, now time.Time) error {
	err := r.queries.MarkDealTaskFailed(ctx, r.db, sqlc.MarkDealTaskFailedParams{
		LastError: pgconv.StringToPgtype(lastErr),
		RetryAt:   pgconv.TimeToPgtype(retryAt),
		Now:       pgconv.TimeToPgtype(now),
		ID:        id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark deal task failed", err)
	}
	return nil
}
