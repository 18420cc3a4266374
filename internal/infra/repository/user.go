package repository

import (
	"context"

	"group-deal-engine/internal/infra"
	sqlc "group-deal-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UserQueries interface {
	ActiveUserExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
}

// UserDirectory answers existence checks against the identity store.
type UserDirectory struct {
	queries UserQueries
	db      sqlc.DBTX
}

func NewUserDirectory(queries UserQueries, db sqlc.DBTX) *UserDirectory {
	return &UserDirectory{
		queries: queries,
		db:      db,
	}
}

func (r *UserDirectory) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	ok, err := r.queries.ActiveUserExists(ctx, r.db, userID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return ok, nil
}
