package repository

//go:generate mockgen -source=order.go -destination=../../../tests/mock/repository/order.go -package=repositorymock

import (
	"context"

	"group-deal-engine/internal/infra"
	sqlc "group-deal-engine/internal/infra/sqlc/generated"
	"group-deal-engine/internal/pkg/clock"
	"group-deal-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderQueries interface {
	UpsertPendingOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPendingOrderParams) (uuid.UUID, error)
	FinalizeDealOrders(ctx context.Context, db sqlc.DBTX, arg sqlc.FinalizeDealOrdersParams) (int64, error)
	DeletePendingOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.DeletePendingOrderParams) (int64, error)
}

// OrderLedger keeps one pending order per membership until the deal completes.
// Orders whose membership is gone are never written or finalized.
type OrderLedger struct {
	queries OrderQueries
	db      sqlc.DBTX
	clock   clock.Clock
}

func NewOrderLedger(queries OrderQueries, db sqlc.DBTX, clk clock.Clock) *OrderLedger {
	return &OrderLedger{
		queries: queries,
		db:      db,
		clock:   clk,
	}
}

// CreatePendingReservation is idempotent per (user, deal): a retry returns the existing pending order.
// A reservation for an already completed deal is stored finalized. It fails once the order
// is finalized or the user is no longer a member.
func (l *OrderLedger) CreatePendingReservation(ctx context.Context, userID, dealID, productID uuid.UUID, quantity int) (uuid.UUID, error) {
	id, err := l.queries.UpsertPendingOrder(ctx, l.db, sqlc.UpsertPendingOrderParams{
		UserID:    userID,
		DealID:    dealID,
		ProductID: productID,
		// #nosec G115 -- quantity comes from config and is small
		Quantity: int32(quantity),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("order finalized or membership gone", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create pending order", err)
	}
	return id, nil
}

func (l *OrderLedger) FinalizeReservations(ctx context.Context, dealID uuid.UUID) (int64, error) {
	n, err := l.queries.FinalizeDealOrders(ctx, l.db, sqlc.FinalizeDealOrdersParams{
		FinalizedAt: pgconv.TimeToPgtype(l.clock.Now()),
		DealID:      dealID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to finalize deal orders", err)
	}
	return n, nil
}

func (l *OrderLedger) CancelPendingReservation(ctx context.Context, userID, dealID uuid.UUID) (bool, error) {
	n, err := l.queries.DeletePendingOrder(ctx, l.db, sqlc.DeletePendingOrderParams{UserID: userID, DealID: dealID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel pending order", err)
	}
	return n > 0, nil
}
