package commands

//go:generate mockgen -source=deal.go -destination=../../../tests/mock/commands/deal.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"

	"group-deal-engine/internal/domain/deal"
	"group-deal-engine/internal/domain/notification"
	"group-deal-engine/internal/infra"
	"group-deal-engine/internal/pkg/clock"
	"group-deal-engine/internal/pkg/errs"
	"group-deal-engine/internal/pkg/metrics"
	"group-deal-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// Side effect names reported in SideEffectError.Effect.
const (
	EffectReservation        = "reservation"
	EffectCancelReservation  = "cancel_reservation"
	EffectNotifyJoin         = "notify_join"
	EffectNotifyLeft         = "notify_left"
	EffectNearThreshold      = "near_threshold"
	EffectCompletion         = "completion"
	EffectParticipantRecount = "recount"
)

type SideEffectError struct {
	Effect string
	Err    error
}

type JoinResult struct {
	DealID              uuid.UUID
	Joined              bool
	AlreadyMember       bool
	CurrentParticipants int
	MinParticipants     int
	Progress            int
	Completed           bool
	CompletionClaimed   bool
	SideEffectErrors    []SideEffectError
}

type LeaveResult struct {
	DealID              uuid.UUID
	CurrentParticipants int
	MinParticipants     int
	Progress            int
	SideEffectErrors    []SideEffectError
}

type DealCommands interface {
	// Join may return a non-nil result together with an error marked errs.ErrSideEffectFailure:
	// the membership is committed and the result describes it.
	Join(ctx context.Context, dealID, userID uuid.UUID) (*JoinResult, error)
	Leave(ctx context.Context, dealID, userID uuid.UUID) (*LeaveResult, error)
}

type DealOptions struct {
	NearThresholdWindow int
	ReservationQuantity int
}

type dealUseCaseImpl struct {
	uow       shared.UnitOfWork
	members   shared.MembershipReader
	users     shared.UserDirectory
	ledger    shared.OrderLedger
	sink      shared.NotificationSink
	fanout    shared.Broadcaster
	completer Completer
	clock     clock.Clock
	opts      DealOptions
	metrics   *metrics.Metrics
}

func NewDealUseCase(
	uow shared.UnitOfWork,
	members shared.MembershipReader,
	users shared.UserDirectory,
	ledger shared.OrderLedger,
	sink shared.NotificationSink,
	fanout shared.Broadcaster,
	completer Completer,
	clk clock.Clock,
	opts DealOptions,
	m *metrics.Metrics,
) DealCommands {
	if opts.NearThresholdWindow <= 0 {
		opts.NearThresholdWindow = deal.DefaultNearThresholdWindow
	}
	if opts.ReservationQuantity <= 0 {
		opts.ReservationQuantity = 1
	}
	return &dealUseCaseImpl{
		uow:       uow,
		members:   members,
		users:     users,
		ledger:    ledger,
		sink:      sink,
		fanout:    fanout,
		completer: completer,
		clock:     clk,
		opts:      opts,
		metrics:   m,
	}
}

func (uc *dealUseCaseImpl) Join(ctx context.Context, dealID, userID uuid.UUID) (*JoinResult, error) {
	now := uc.clock.Now()

	var (
		d             *deal.Deal
		countAtCommit int
		alreadyMember bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		alreadyMember = false

		found, err := loadDeal(ctx, tx, dealID)
		if err != nil {
			return err
		}
		if err := found.CanAcceptJoin(now); err != nil {
			return preconditionFailed(err)
		}

		exists, err := uc.users.Exists(ctx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrUserNotFound
		}

		if err := tx.Memberships().Insert(ctx, dealID, userID, now); err != nil {
			if !errors.Is(err, deal.ErrAlreadyMember) {
				return err
			}
			alreadyMember = true
		}

		count, err := tx.Memberships().Count(ctx, dealID)
		if err != nil {
			return err
		}
		d, countAtCommit = found, count
		return nil
	})
	if err != nil {
		uc.metrics.JoinObserved(joinFailureOutcome(err))
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)

	result := &JoinResult{
		DealID:          dealID,
		AlreadyMember:   alreadyMember,
		MinParticipants: d.MinParticipants().Value(),
	}
	if alreadyMember {
		uc.metrics.JoinObserved("already_member")
		result.CurrentParticipants = countAtCommit
		result.Progress = d.Progress(countAtCommit)
		return result, nil
	}
	result.Joined = true
	uc.metrics.JoinObserved("joined")

	var sideErr error
	if _, err := uc.ledger.CreatePendingReservation(ctx, userID, dealID, d.ProductID(), uc.opts.ReservationQuantity); err != nil {
		uc.recordSideEffect(result, EffectReservation, dealID, userID, err)
		sideErr = sideEffectFailure(errs.Wrap(err, "create pending reservation"), ErrReservationFailed)
	}

	err = uc.sink.Notify(ctx, dealID, notification.Message{
		UserID: userID,
		Kind:   notification.KindJoin,
		Body:   notification.JoinMessage(d.Name()),
	})
	uc.metrics.NotificationObserved(notification.KindJoin.String(), err == nil)
	if err != nil {
		uc.recordSideEffect(result, EffectNotifyJoin, dealID, userID, err)
	}

	count, err := uc.members.Count(ctx, dealID)
	if err != nil {
		uc.recordSideEffect(result, EffectParticipantRecount, dealID, userID, err)
		count = countAtCommit
	}
	result.CurrentParticipants = count
	result.Progress = d.Progress(count)

	if d.IsNearThreshold(count, uc.opts.NearThresholdWindow) {
		body := notification.NearThresholdMessage(d.Name(), d.Remaining(count))
		report, err := uc.fanout.Deliver(ctx, dealID, notification.KindNearThreshold, body)
		if err != nil {
			uc.recordSideEffect(result, EffectNearThreshold, dealID, userID, err)
		} else if len(report.Failures) > 0 {
			slog.Warn("near-threshold alert partially delivered",
				"deal_id", dealID.String(),
				"recipients", report.Recipients,
				"failed", len(report.Failures))
		}
	}

	if d.ThresholdReached(count) {
		outcome, err := uc.completer.TryComplete(ctx, dealID)
		if err != nil {
			uc.recordSideEffect(result, EffectCompletion, dealID, userID, err)
		} else {
			result.Completed = outcome.Completed
			result.CompletionClaimed = outcome.Claimed
		}
	}

	return result, sideErr
}

func (uc *dealUseCaseImpl) Leave(ctx context.Context, dealID, userID uuid.UUID) (*LeaveResult, error) {
	var (
		d             *deal.Deal
		countAtCommit int
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := loadDeal(ctx, tx, dealID)
		if err != nil {
			return err
		}
		if err := found.CanAcceptLeave(); err != nil {
			return preconditionFailed(err)
		}

		member, err := tx.Memberships().Exists(ctx, dealID, userID)
		if err != nil {
			return err
		}
		if !member {
			return deal.ErrNotMember
		}
		if err := tx.Memberships().Remove(ctx, dealID, userID); err != nil {
			return err
		}

		count, err := tx.Memberships().Count(ctx, dealID)
		if err != nil {
			return err
		}
		d, countAtCommit = found, count
		return nil
	})
	if err != nil {
		uc.metrics.LeaveObserved(leaveFailureOutcome(err))
		return nil, err
	}
	uc.metrics.LeaveObserved("left")
	ctx = context.WithoutCancel(ctx)

	result := &LeaveResult{
		DealID:          dealID,
		MinParticipants: d.MinParticipants().Value(),
	}

	cancelled, err := uc.ledger.CancelPendingReservation(ctx, userID, dealID)
	switch {
	case err != nil:
		uc.recordLeaveSideEffect(result, EffectCancelReservation, dealID, userID, err)
	case !cancelled:
		slog.Info("no pending reservation to cancel",
			"deal_id", dealID.String(),
			"user_id", userID.String())
	}

	err = uc.sink.Notify(ctx, dealID, notification.Message{
		UserID: userID,
		Kind:   notification.KindLeft,
		Body:   notification.LeftMessage(d.Name()),
	})
	uc.metrics.NotificationObserved(notification.KindLeft.String(), err == nil)
	if err != nil {
		uc.recordLeaveSideEffect(result, EffectNotifyLeft, dealID, userID, err)
	}

	count, err := uc.members.Count(ctx, dealID)
	if err != nil {
		uc.recordLeaveSideEffect(result, EffectParticipantRecount, dealID, userID, err)
		count = countAtCommit
	}
	result.CurrentParticipants = count
	result.Progress = d.Progress(count)

	return result, nil
}

// loadDeal locks the deal row in share mode so no completion claim interleaves.
func loadDeal(ctx context.Context, tx shared.Tx, dealID uuid.UUID) (*deal.Deal, error) {
	d, err := tx.Deals().FindByID(ctx, dealID, shared.LockShare)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, err
	}
	return d, nil
}

func (uc *dealUseCaseImpl) recordSideEffect(result *JoinResult, effect string, dealID, userID uuid.UUID, err error) {
	logSideEffect("join", effect, dealID, userID, err)
	uc.metrics.SideEffectFailed(effect)
	result.SideEffectErrors = append(result.SideEffectErrors, SideEffectError{Effect: effect, Err: err})
}

func (uc *dealUseCaseImpl) recordLeaveSideEffect(result *LeaveResult, effect string, dealID, userID uuid.UUID, err error) {
	logSideEffect("leave", effect, dealID, userID, err)
	uc.metrics.SideEffectFailed(effect)
	result.SideEffectErrors = append(result.SideEffectErrors, SideEffectError{Effect: effect, Err: err})
}

func logSideEffect(op, effect string, dealID, userID uuid.UUID, err error) {
	slog.Error("side effect failed after commit",
		"op", op,
		"effect", effect,
		"deal_id", dealID.String(),
		"user_id", userID.String(),
		"error", err.Error())
}

func joinFailureOutcome(err error) string {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		return "not_found"
	case errs.Is(err, errs.ErrPreconditionFailed):
		return "rejected"
	default:
		return "error"
	}
}

func leaveFailureOutcome(err error) string {
	if errors.Is(err, deal.ErrNotMember) {
		return "not_member"
	}
	return joinFailureOutcome(err)
}
