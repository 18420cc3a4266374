//go:build unit || e2e

package builder

import (
	"time"

	domdeal "group-deal-engine/internal/domain/deal"
	sqlc "group-deal-engine/internal/infra/sqlc/generated"
	"group-deal-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DealBuilder struct {
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
	UpdatedAt        time.Time
	ParticipantCount int
}

func NewDealBuilder() *DealBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(7 * 24 * time.Hour)
	return &DealBuilder{
		ID:              uuid.New(),
		ProductID:       uuid.New(),
		ProductName:     "Organic Coffee Beans 1kg",
		Name:            "Coffee Beans Group Buy",
		MinParticipants: 5,
		Deadline:        &deadline,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *DealBuilder) With(mutate func(*DealBuilder)) *DealBuilder {
	mutate(b)
	return b
}

func (b *DealBuilder) WithMinParticipants(v int) *DealBuilder {
	b.MinParticipants = v
	return b
}

func (b *DealBuilder) WithDeadline(t *time.Time) *DealBuilder {
	b.Deadline = t
	return b
}

func (b *DealBuilder) WithInactive() *DealBuilder {
	b.IsActive = false
	return b
}

func (b *DealBuilder) WithCompleted(at time.Time) *DealBuilder {
	b.IsCompleted = true
	b.CompletedAt = &at
	return b
}

func (b *DealBuilder) WithParticipants(n int) *DealBuilder {
	b.ParticipantCount = n
	return b
}

// Build methods
func (b *DealBuilder) BuildDomain() (*domdeal.Deal, error) {
	minParticipants, err := domdeal.NewMinParticipants(b.MinParticipants)
	if err != nil {
		return nil, err
	}
	return domdeal.ReconstructDeal(b.ID, b.ProductID, b.Name, minParticipants, b.Deadline,
		b.IsActive, b.IsCompleted, b.CompletedAt, b.CreatedAt, b.UpdatedAt), nil
}

func (b *DealBuilder) BuildInfra() sqlc.Deals {
	return sqlc.Deals{
		ID:              b.ID,
		ProductID:       b.ProductID,
		Name:            b.Name,
		MinParticipants: int32(b.MinParticipants),
		Deadline:        timestamptz(b.Deadline),
		IsActive:        b.IsActive,
		IsCompleted:     b.IsCompleted,
		CompletedAt:     timestamptz(b.CompletedAt),
		CreatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *DealBuilder) BuildViewRow() sqlc.GetDealViewRow {
	return sqlc.GetDealViewRow{
		ID:               b.ID,
		ProductID:        b.ProductID,
		ProductName:      b.ProductName,
		Name:             b.Name,
		MinParticipants:  int32(b.MinParticipants),
		Deadline:         timestamptz(b.Deadline),
		IsActive:         b.IsActive,
		IsCompleted:      b.IsCompleted,
		CompletedAt:      timestamptz(b.CompletedAt),
		CreatedAt:        pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		ParticipantCount: int64(b.ParticipantCount),
	}
}

func (b *DealBuilder) BuildRecord() *queries.DealRecord {
	return &queries.DealRecord{
		ID:               b.ID,
		ProductID:        b.ProductID,
		ProductName:      b.ProductName,
		Name:             b.Name,
		MinParticipants:  b.MinParticipants,
		Deadline:         b.Deadline,
		IsActive:         b.IsActive,
		IsCompleted:      b.IsCompleted,
		CompletedAt:      b.CompletedAt,
		CreatedAt:        b.CreatedAt,
		ParticipantCount: b.ParticipantCount,
	}
}

func (b *DealBuilder) BuildView(now time.Time) *queries.DealView {
	d, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return &queries.DealView{
		ID:                  b.ID,
		ProductID:           b.ProductID,
		ProductName:         b.ProductName,
		Name:                b.Name,
		MinParticipants:     b.MinParticipants,
		CurrentParticipants: b.ParticipantCount,
		Remaining:           d.Remaining(b.ParticipantCount),
		Progress:            d.Progress(b.ParticipantCount),
		Deadline:            b.Deadline,
		IsActive:            b.IsActive,
		IsCompleted:         b.IsCompleted,
		IsExpired:           d.IsExpiredAt(now),
		Status:              d.StatusAt(now).String(),
		CompletedAt:         b.CompletedAt,
		CreatedAt:           b.CreatedAt,
	}
}

func timestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}
