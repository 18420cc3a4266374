package readstore

//go:generate mockgen -source=deal.go -destination=../../../tests/mock/readstore/deal.go -package=readstoremock

import (
	"context"
	"time"

	"group-deal-engine/internal/infra"
	sqlc "group-deal-engine/internal/infra/sqlc/generated"
	"group-deal-engine/internal/pkg/pgconv"
	"group-deal-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type DealViewQueries interface {
	ListOpenDealViews(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListOpenDealViewsRow, error)
	ListUserDealViews(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListUserDealViewsRow, error)
	GetDealView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetDealViewRow, error)
	GetActiveDealViewByProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.GetActiveDealViewByProductParams) (sqlc.GetActiveDealViewByProductRow, error)
	ListCompletionCandidates(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCompletionCandidatesParams) ([]uuid.UUID, error)
}

type DealReadStore struct {
	queries DealViewQueries
	db      sqlc.DBTX
}

func NewDealReadStore(queries DealViewQueries, db sqlc.DBTX) *DealReadStore {
	return &DealReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DealReadStore) ListOpen(ctx context.Context) ([]*queries.DealRecord, error) {
	rows, err := r.queries.ListOpenDealViews(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open deals", err)
	}
	records := make([]*queries.DealRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, toDealRecord(dealViewRow(row)))
	}
	return records, nil
}

func (r *DealReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.UserDealRecord, error) {
	rows, err := r.queries.ListUserDealViews(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user deals", err)
	}
	records := make([]*queries.UserDealRecord, 0, len(rows))
	for _, row := range rows {
		base := toDealRecord(dealViewRow{
			ID:               row.ID,
			ProductID:        row.ProductID,
			ProductName:      row.ProductName,
			Name:             row.Name,
			MinParticipants:  row.MinParticipants,
			Deadline:         row.Deadline,
			IsActive:         row.IsActive,
			IsCompleted:      row.IsCompleted,
			CompletedAt:      row.CompletedAt,
			CreatedAt:        row.CreatedAt,
			ParticipantCount: row.ParticipantCount,
		})
		records = append(records, &queries.UserDealRecord{
			DealRecord: *base,
			JoinedAt:   pgconv.TimeFromPgtype(row.JoinedAt),
		})
	}
	return records, nil
}

func (r *DealReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DealRecord, error) {
	row, err := r.queries.GetDealView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get deal view", err)
	}
	return toDealRecord(dealViewRow(row)), nil
}

func (r *DealReadStore) FindActiveByProduct(ctx context.Context, productID uuid.UUID, now time.Time) (*queries.DealRecord, error) {
	row, err := r.queries.GetActiveDealViewByProduct(ctx, r.db, sqlc.GetActiveDealViewByProductParams{
		ProductID: productID,
		Now:       pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no active deal for product", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get active deal by product", err)
	}
	return toDealRecord(dealViewRow(row)), nil
}

func (r *DealReadStore) ListCompletionCandidates(ctx context.Context, now time.Time, limit int32) ([]uuid.UUID, error) {
	ids, err := r.queries.ListCompletionCandidates(ctx, r.db, sqlc.ListCompletionCandidatesParams{
		Now:     pgconv.TimeToPgtype(now),
		MaxRows: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list completion candidates", err)
	}
	return ids, nil
}

// dealViewRow shares the column set of the deal view queries.
type dealViewRow sqlc.GetDealViewRow

func toDealRecord(row dealViewRow) *queries.DealRecord {
	return &queries.DealRecord{
		ID:               row.ID,
		ProductID:        row.ProductID,
		ProductName:      row.ProductName,
		Name:             row.Name,
		MinParticipants:  int(row.MinParticipants),
		Deadline:         pgconv.TimePtrFromPgtype(row.Deadline),
		IsActive:         row.IsActive,
		IsCompleted:      row.IsCompleted,
		CompletedAt:      pgconv.TimePtrFromPgtype(row.CompletedAt),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		ParticipantCount: int(row.ParticipantCount),
	}
}
