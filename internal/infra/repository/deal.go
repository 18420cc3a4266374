package repository

//go:generate mockgen -source=deal.go -destination=../../../tests/mock/repository/deal.go -package=repositorymock

import (
	"context"
	"time"

	"group-deal-engine/internal/domain/deal"
	"group-deal-engine/internal/infra"
	"group-deal-engine/internal/infra/repository/converter"
	sqlc "group-deal-engine/internal/infra/sqlc/generated"
	"group-deal-engine/internal/pkg/pgconv"
	"group-deal-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type DealWriteQueries interface {
	GetDeal(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Deals, error)
	GetDealForShare(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Deals, error)
	GetDealForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Deals, error)
	ClaimDealCompletion(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDealCompletionParams) (int64, error)
}

type DealRepository struct {
	queries DealWriteQueries
	db      sqlc.DBTX
}

func NewDealRepository(queries DealWriteQueries, db sqlc.DBTX) *DealRepository {
	return &DealRepository{
		queries: queries,
		db:      db,
	}
}

func (r *DealRepository) FindByID(ctx context.Context, id uuid.UUID, lock shared.LockMode) (*deal.Deal, error) {
	var (
		row sqlc.Deals
		err error
	)
	switch lock {
	case shared.LockShare:
		row, err = r.queries.GetDealForShare(ctx, r.db, id)
	case shared.LockUpdate:
		row, err = r.queries.GetDealForUpdate(ctx, r.db, id)
	default:
		row, err = r.queries.GetDeal(ctx, r.db, id)
	}
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load deal", err)
	}

	d, err := converter.DealFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert deal", err)
	}
	return d, nil
}

func (r *DealRepository) ClaimCompletion(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	affected, err := r.queries.ClaimDealCompletion(ctx, r.db, sqlc.ClaimDealCompletionParams{
		CompletedAt: pgconv.TimeToPgtype(at),
		ID:          id,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim deal completion", err)
	}
	return affected == 1, nil
}
