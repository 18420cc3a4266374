package queries

//go:generate mockgen -source=deal.go -destination=../../../tests/mock/queries/deal.go -package=queriesmock

import (
	"context"
	"time"

	"group-deal-engine/internal/domain/deal"
	"group-deal-engine/internal/infra"
	"group-deal-engine/internal/pkg/clock"
	"group-deal-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDealNotFound = errs.Mark(errs.New("deal not found"), errs.ErrNotFound)

// DealRecord is the raw read-store row; derived fields are computed against the clock.
type DealRecord struct {
	ID               uuid.UUID
	ProductID        uuid.UUID
	ProductName      string
	Name             string
	MinParticipants  int
	Deadline         *time.Time
	IsActive         bool
	IsCompleted      bool
	CompletedAt      *time.Time
	CreatedAt        time.Time
	ParticipantCount int
}

type UserDealRecord struct {
	DealRecord
	JoinedAt time.Time
}

type DealView struct {
	ID                  uuid.UUID  `json:"id"`
	ProductID           uuid.UUID  `json:"product_id"`
	ProductName         string     `json:"product_name"`
	Name                string     `json:"name"`
	MinParticipants     int        `json:"min_participants"`
	CurrentParticipants int        `json:"current_participants"`
	Remaining           int        `json:"remaining"`
	Progress            int        `json:"progress"`
	Deadline            *time.Time `json:"deadline,omitempty"`
	IsActive            bool       `json:"is_active"`
	IsCompleted         bool       `json:"is_completed"`
	IsExpired           bool       `json:"is_expired"`
	Status              string     `json:"status"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

type UserDealView struct {
	DealView
	JoinedAt time.Time `json:"joined_at"`
}

type DealReadStore interface {
	ListOpen(ctx context.Context) ([]*DealRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*UserDealRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*DealRecord, error)
	// FindActiveByProduct returns a NOT_FOUND repository error when no joinable deal exists.
	FindActiveByProduct(ctx context.Context, productID uuid.UUID, now time.Time) (*DealRecord, error)
}

type DealQueries interface {
	ListOpenDeals(ctx context.Context) ([]*DealView, error)
	ListUserDeals(ctx context.Context, userID uuid.UUID) ([]*UserDealView, error)
	GetDeal(ctx context.Context, dealID uuid.UUID) (*DealView, error)
	// GetActiveDealByProduct returns nil, nil when the product has no joinable deal.
	GetActiveDealByProduct(ctx context.Context, productID uuid.UUID) (*DealView, error)
}

type dealQueriesImpl struct {
	store DealReadStore
	clock clock.Clock
}

func NewDealQueries(store DealReadStore, clk clock.Clock) DealQueries {
	return &dealQueriesImpl{store: store, clock: clk}
}

func (q *dealQueriesImpl) ListOpenDeals(ctx context.Context) ([]*DealView, error) {
	records, err := q.store.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	views := make([]*DealView, 0, len(records))
	for _, r := range records {
		v, err := toDealView(r, now)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (q *dealQueriesImpl) ListUserDeals(ctx context.Context, userID uuid.UUID) ([]*UserDealView, error) {
	records, err := q.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	views := make([]*UserDealView, 0, len(records))
	for _, r := range records {
		v, err := toDealView(&r.DealRecord, now)
		if err != nil {
			return nil, err
		}
		views = append(views, &UserDealView{DealView: *v, JoinedAt: r.JoinedAt})
	}
	return views, nil
}

func (q *dealQueriesImpl) GetDeal(ctx context.Context, dealID uuid.UUID) (*DealView, error) {
	r, err := q.store.FindByID(ctx, dealID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, err
	}
	return toDealView(r, q.clock.Now())
}

func (q *dealQueriesImpl) GetActiveDealByProduct(ctx context.Context, productID uuid.UUID) (*DealView, error) {
	now := q.clock.Now()
	r, err := q.store.FindActiveByProduct(ctx, productID, now)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDealView(r, now)
}

func toDealView(r *DealRecord, now time.Time) (*DealView, error) {
	minParticipants, err := deal.NewMinParticipants(r.MinParticipants)
	if err != nil {
		return nil, errs.Wrap(err, "deal "+r.ID.String())
	}
	d := deal.ReconstructDeal(r.ID, r.ProductID, r.Name, minParticipants, r.Deadline,
		r.IsActive, r.IsCompleted, r.CompletedAt, r.CreatedAt, r.CreatedAt)

	return &DealView{
		ID:                  r.ID,
		ProductID:           r.ProductID,
		ProductName:         r.ProductName,
		Name:                r.Name,
		MinParticipants:     r.MinParticipants,
		CurrentParticipants: r.ParticipantCount,
		Remaining:           d.Remaining(r.ParticipantCount),
		Progress:            d.Progress(r.ParticipantCount),
		Deadline:            r.Deadline,
		IsActive:            r.IsActive,
		IsCompleted:         r.IsCompleted,
		IsExpired:           d.IsExpiredAt(now),
		Status:              d.StatusAt(now).String(),
		CompletedAt:         r.CompletedAt,
		CreatedAt:           r.CreatedAt,
	}, nil
}
