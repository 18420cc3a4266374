package commands

import "group-deal-engine/internal/pkg/errs"

var (
	ErrDealNotFound = errs.Mark(errs.New("deal not found"), errs.ErrNotFound)
	ErrUserNotFound = errs.Mark(errs.New("user not found"), errs.ErrNotFound)

	// Post-commit failures. Returned errors carry the concrete mark plus errs.ErrSideEffectFailure.
	ErrReservationFailed = errs.New("pending reservation could not be created")
	ErrCompletionFailed  = errs.New("completion claim failed")
)

func sideEffectFailure(err error, mark error) error {
	return errs.Mark(errs.Mark(err, mark), errs.ErrSideEffectFailure)
}

func preconditionFailed(err error) error {
	return errs.Mark(err, errs.ErrPreconditionFailed)
}
