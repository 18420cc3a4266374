package readstore

import (
	"context"

	"group-deal-engine/internal/infra"
	sqlc "group-deal-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type MembershipViewQueries interface {
	CountDealMembers(ctx context.Context, db sqlc.DBTX, dealID uuid.UUID) (int64, error)
	ListDealMemberIDs(ctx context.Context, db sqlc.DBTX, dealID uuid.UUID) ([]uuid.UUID, error)
}

// MembershipReadStore serves post-commit recounts and fan-out recipient lists.
type MembershipReadStore struct {
	queries MembershipViewQueries
	db      sqlc.DBTX
}

func NewMembershipReadStore(queries MembershipViewQueries, db sqlc.DBTX) *MembershipReadStore {
	return &MembershipReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MembershipReadStore) Count(ctx context.Context, dealID uuid.UUID) (int, error) {
	n, err := r.queries.CountDealMembers(ctx, r.db, dealID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count deal members", err)
	}
	return int(n), nil
}

func (r *MembershipReadStore) ListMemberIDs(ctx context.Context, dealID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.ListDealMemberIDs(ctx, r.db, dealID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deal members", err)
	}
	return ids, nil
}
