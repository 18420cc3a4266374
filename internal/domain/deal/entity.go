package deal

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDealInactive    = errors.New("deal is not active")
	ErrDealCompleted   = errors.New("deal already completed")
	ErrDeadlineExpired = errors.New("deal deadline has passed")
	ErrAlreadyClaimed  = errors.New("deal completion already claimed")
)

// Deal is a group-buy campaign. Completion is monotonic: once completed it never reverts.
type Deal struct {
	id              uuid.UUID
	productID       uuid.UUID
	name            string
	minParticipants MinParticipants
	deadline        *time.Time
	isActive        bool
	isCompleted     bool
	completedAt     *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewDeal(productID uuid.UUID, name string, minParticipants MinParticipants, deadline *time.Time, now time.Time) *Deal {
	return &Deal{
		id:              uuid.New(),
		productID:       productID,
		name:            name,
		minParticipants: minParticipants,
		deadline:        deadline,
		isActive:        true,
		createdAt:       now,
		updatedAt:       now,
	}
}

func ReconstructDeal(
	id, productID uuid.UUID,
	name string,
	minParticipants MinParticipants,
	deadline *time.Time,
	isActive, isCompleted bool,
	completedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Deal {
	return &Deal{
		id:              id,
		productID:       productID,
		name:            name,
		minParticipants: minParticipants,
		deadline:        deadline,
		isActive:        isActive,
		isCompleted:     isCompleted,
		completedAt:     completedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// StatusAt derives the lifecycle state. Precedence: COMPLETED > INACTIVE > EXPIRED > OPEN.
func (d *Deal) StatusAt(now time.Time) Status {
	switch {
	case d.isCompleted:
		return StatusCompleted
	case !d.isActive:
		return StatusInactive
	case d.IsExpiredAt(now):
		return StatusExpired
	default:
		return StatusOpen
	}
}

// IsExpiredAt is true once the deadline is reached without completion.
func (d *Deal) IsExpiredAt(now time.Time) bool {
	if d.isCompleted || d.deadline == nil {
		return false
	}
	return !now.Before(*d.deadline)
}

// CanAcceptJoin checks, in order: active, not completed, deadline not passed.
func (d *Deal) CanAcceptJoin(now time.Time) error {
	if !d.isActive {
		return ErrDealInactive
	}
	if d.isCompleted {
		return ErrDealCompleted
	}
	if d.deadline != nil && !now.Before(*d.deadline) {
		return ErrDeadlineExpired
	}
	return nil
}

// CanAcceptLeave only rejects completed deals; expired or inactive deals still allow withdrawal.
func (d *Deal) CanAcceptLeave() error {
	if d.isCompleted {
		return ErrDealCompleted
	}
	return nil
}

// MarkCompleted mirrors a won completion claim onto the in-memory aggregate.
func (d *Deal) MarkCompleted(at time.Time) error {
	if d.isCompleted {
		return ErrAlreadyClaimed
	}
	d.isCompleted = true
	d.completedAt = &at
	d.updatedAt = at
	return nil
}

func (d *Deal) Progress(count int) int {
	return d.minParticipants.Progress(count)
}

func (d *Deal) Remaining(count int) int {
	return d.minParticipants.Remaining(count)
}

func (d *Deal) ThresholdReached(count int) bool {
	return d.minParticipants.Reached(count)
}

func (d *Deal) IsNearThreshold(count, window int) bool {
	return d.minParticipants.NearThreshold(count, window)
}

func (d *Deal) ID() uuid.UUID                    { return d.id }
func (d *Deal) ProductID() uuid.UUID             { return d.productID }
func (d *Deal) Name() string                     { return d.name }
func (d *Deal) MinParticipants() MinParticipants { return d.minParticipants }
func (d *Deal) Deadline() *time.Time             { return d.deadline }
func (d *Deal) IsActive() bool                   { return d.isActive }
func (d *Deal) IsCompleted() bool                { return d.isCompleted }
func (d *Deal) CompletedAt() *time.Time          { return d.completedAt }
func (d *Deal) CreatedAt() time.Time             { return d.createdAt }
func (d *Deal) UpdatedAt() time.Time             { return d.updatedAt }
