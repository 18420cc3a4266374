package shared

import (
	"context"
	"time"

	"group-deal-engine/internal/domain/deal"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: ReadCommitted transaction with retry on serialization failure and deadlock.
	// fn may run more than once and must not perform side effects outside tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Deals() DealRepository
	Memberships() MembershipRepository
	Tasks() TaskRepository
}

type LockMode int

const (
	LockNone LockMode = iota
	// LockShare blocks completion claims while memberships change.
	LockShare
	// LockUpdate is held by the completion claim.
	LockUpdate
)

type DealRepository interface {
	FindByID(ctx context.Context, id uuid.UUID, lock LockMode) (*deal.Deal, error)
	// ClaimCompletion flips is_completed false→true. false means another caller already won.
	ClaimCompletion(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}

type MembershipRepository interface {
	Count(ctx context.Context, dealID uuid.UUID) (int, error)
	Exists(ctx context.Context, dealID, userID uuid.UUID) (bool, error)
	// Insert returns deal.ErrAlreadyMember when the pair exists.
	Insert(ctx context.Context, dealID, userID uuid.UUID, joinedAt time.Time) error
	// Remove returns deal.ErrNotMember when the pair is absent.
	Remove(ctx context.Context, dealID, userID uuid.UUID) error
}

type TaskRepository interface {
	Enqueue(ctx context.Context, task DealTask) error
}
