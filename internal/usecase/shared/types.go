package shared

import (
	"context"
	"time"

	"group-deal-engine/internal/domain/notification"

	"github.com/google/uuid"
)

type TaskKind string

const (
	TaskFinalizeReservations TaskKind = "finalize_reservations"
	TaskNotifyCompleted      TaskKind = "notify_completed"
)

type TaskStatus string

const (
	TaskQueued  TaskStatus = "queued"
	TaskRunning TaskStatus = "running"
	TaskDone    TaskStatus = "done"
	TaskFailed  TaskStatus = "failed"
)

// DealTask is one durable post-commit side effect of a completion claim.
type DealTask struct {
	ID        uuid.UUID
	DealID    uuid.UUID
	Kind      TaskKind
	Payload   []byte
	Status    TaskStatus
	Attempts  int32
	LastError *string
	RunAt     time.Time
}

// TaskStore claims and settles tasks outside the claiming transaction.
type TaskStore interface {
	// Claim moves a queued or failed task to running. ok is false when another worker holds it.
	Claim(ctx context.Context, id uuid.UUID, now time.Time) (task *DealTask, ok bool, err error)
	// ClaimDue claims due tasks plus running tasks not touched since staleBefore.
	ClaimDue(ctx context.Context, now, staleBefore time.Time, maxAttempts, limit int32) ([]DealTask, error)
	MarkDone(ctx context.Context, id uuid.UUID, now time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastErr string, retryAt, now time.Time) error
}

// MembershipReader serves post-commit reads outside any transaction.
type MembershipReader interface {
	Count(ctx context.Context, dealID uuid.UUID) (int, error)
	ListMemberIDs(ctx context.Context, dealID uuid.UUID) ([]uuid.UUID, error)
}

type CompletionCandidateReader interface {
	ListCompletionCandidates(ctx context.Context, now time.Time, limit int32) ([]uuid.UUID, error)
}

type OrderLedger interface {
	CreatePendingReservation(ctx context.Context, userID, dealID, productID uuid.UUID, quantity int) (uuid.UUID, error)
	FinalizeReservations(ctx context.Context, dealID uuid.UUID) (int64, error)
	// CancelPendingReservation reports false when no pending reservation existed.
	CancelPendingReservation(ctx context.Context, userID, dealID uuid.UUID) (bool, error)
}

type NotificationSink interface {
	Notify(ctx context.Context, dealID uuid.UUID, msg notification.Message) error
}

type UserDirectory interface {
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
}

// DeliveryFailure records one member whose notification could not be delivered.
type DeliveryFailure struct {
	UserID uuid.UUID
	Err    error
}

type FanoutReport struct {
	Recipients int
	Delivered  int
	Failures   []DeliveryFailure
}

// Broadcaster delivers one notification to every current member of a deal.
type Broadcaster interface {
	Deliver(ctx context.Context, dealID uuid.UUID, kind notification.Kind, body string) (FanoutReport, error)
}
