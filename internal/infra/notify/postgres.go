package notify

import (
	"context"

	"group-deal-engine/internal/domain/notification"
	"group-deal-engine/internal/infra"
	sqlc "group-deal-engine/internal/infra/sqlc/generated"
	"group-deal-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationParams) error
}

// PostgresSink stores notifications in the user inbox table.
type PostgresSink struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewPostgresSink(queries NotificationWriteQueries, db sqlc.DBTX) *PostgresSink {
	return &PostgresSink{
		queries: queries,
		db:      db,
	}
}

func (s *PostgresSink) Notify(ctx context.Context, dealID uuid.UUID, msg notification.Message) error {
	err := s.queries.CreateNotification(ctx, s.db, sqlc.CreateNotificationParams{
		UserID:  msg.UserID,
		DealID:  pgconv.UUIDToPgtype(dealID),
		Kind:    msg.Kind.String(),
		Message: msg.Body,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to store notification", err)
	}
	return nil
}
