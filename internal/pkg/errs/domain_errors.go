package errs

import "errors"

// Error categories shared by the usecase and handler layers.
// Concrete usecase errors are marked with one of these via Mark.
var (
	// NotFound: deal or user missing. Surfaced, never retried.
	ErrNotFound = errors.New("category: not found")

	// PreconditionFailed: deal inactive, completed, or past its deadline.
	ErrPreconditionFailed = errors.New("category: precondition failed")

	// SideEffectFailure: reservation or notification failure after the membership change committed.
	ErrSideEffectFailure = errors.New("category: side effect failure")
)
