package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"group-deal-engine/internal/infra/repository"
	sqlc "group-deal-engine/internal/infra/sqlc/generated"
	"group-deal-engine/internal/pkg/errs"
	"group-deal-engine/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxTxRetries = 3
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted is enough: membership and completion writes serialize on the deal row lock.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	attempt := 0
	op := func() error {
		attempt++
		err := u.runOnce(ctx, fn)
		if err != nil && !isRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		slog.Warn("retrying transaction",
			"attempt", attempt,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())
	}

	err := backoff.RetryNotify(op, backoff.WithContext(backoff.WithMaxRetries(txBackOff(), maxTxRetries), ctx), notify)
	if err != nil && isRetryable(err) {
		slog.Error("transaction failed after retries", "attempts", attempt, "error", err.Error())
	}
	return err
}

func txBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.RandomizationFactor = 0.2
	b.Multiplier = 2
	b.MaxElapsedTime = 0
	return b
}

func (u *PostgresUoW) runOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", rbErr.Error())
	}
	return err
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

// pgTx hands out repositories bound to one transaction, built on first use.
type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	deals       shared.DealRepository
	memberships shared.MembershipRepository
	tasks       shared.TaskRepository
}

func (t *pgTx) Deals() shared.DealRepository {
	if t.deals == nil {
		t.deals = repository.NewDealRepository(t.uow.q, t.dbtx)
	}
	return t.deals
}

func (t *pgTx) Memberships() shared.MembershipRepository {
	if t.memberships == nil {
		t.memberships = repository.NewMembershipRepository(t.uow.q, t.dbtx)
	}
	return t.memberships
}

func (t *pgTx) Tasks() shared.TaskRepository {
	if t.tasks == nil {
		t.tasks = repository.NewDealTaskRepository(t.uow.q, t.dbtx)
	}
	return t.tasks
}
