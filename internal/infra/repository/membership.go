package repository

//go:generate mockgen -source=membership.go -destination=../../../tests/mock/repository/membership.go -package=repositorymock

import (
	"context"
	"time"

	"group-deal-engine/internal/domain/deal"
	"group-deal-engine/internal/infra"
	sqlc "group-deal-engine/internal/infra/sqlc/generated"
	"group-deal-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MembershipWriteQueries interface {
	CountDealMembers(ctx context.Context, db sqlc.DBTX, dealID uuid.UUID) (int64, error)
	DealMemberExists(ctx context.Context, db sqlc.DBTX, arg sqlc.DealMemberExistsParams) (bool, error)
	InsertDealMember(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertDealMemberParams) (int64, error)
	DeleteDealMember(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteDealMemberParams) (int64, error)
}

// MembershipRepository is the membership ledger. It knows nothing about reservations or notifications.
type MembershipRepository struct {
	queries MembershipWriteQueries
	db      sqlc.DBTX
}

func NewMembershipRepository(queries MembershipWriteQueries, db sqlc.DBTX) *MembershipRepository {
	return &MembershipRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MembershipRepository) Count(ctx context.Context, dealID uuid.UUID) (int, error) {
	n, err := r.queries.CountDealMembers(ctx, r.db, dealID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count deal members", err)
	}
	return int(n), nil
}

func (r *MembershipRepository) Exists(ctx context.Context, dealID, userID uuid.UUID) (bool, error) {
	ok, err := r.queries.DealMemberExists(ctx, r.db, sqlc.DealMemberExistsParams{DealID: dealID, UserID: userID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check deal membership", err)
	}
	return ok, nil
}

func (r *MembershipRepository) Insert(ctx context.Context, dealID, userID uuid.UUID, joinedAt time.Time) error {
	affected, err := r.queries.InsertDealMember(ctx, r.db, sqlc.InsertDealMemberParams{
		DealID:   dealID,
		UserID:   userID,
		JoinedAt: pgconv.TimeToPgtype(joinedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to insert deal member", err)
	}
	if affected == 0 {
		return deal.ErrAlreadyMember
	}
	return nil
}

func (r *MembershipRepository) Remove(ctx context.Context, dealID, userID uuid.UUID) error {
	affected, err := r.queries.DeleteDealMember(ctx, r.db, sqlc.DeleteDealMemberParams{DealID: dealID, UserID: userID})
	if err != nil {
		return infra.WrapRepoErr("failed to delete deal member", err)
	}
	if affected == 0 {
		return deal.ErrNotMember
	}
	return nil
}
