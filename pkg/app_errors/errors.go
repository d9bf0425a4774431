package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrUnauthorized     = errors.New("unauthorized")

	// ErrConditionNotMet is returned by guarded store updates whose precondition did not hold.
	ErrConditionNotMet = errors.New("condition not met")

	ErrSoldOut = errors.New("item sold out")
	// ErrSoldOutConcurrent means the last unit was taken by another purchase
	// between the stock check and the guarded decrement.
	ErrSoldOutConcurrent   = fmt.Errorf("%w: another purchase took the last unit first", ErrSoldOut)
	ErrInsufficientTickets = errors.New("insufficient tickets")
	ErrExceedsStock        = errors.New("cart exceeds available stock")

	ErrRecordCreationFailed = errors.New("purchase record creation failed")
	ErrCompensationFailed   = errors.New("compensation failed")

	ErrAlreadyDelivered = errors.New("purchase already delivered")
	ErrNotDelivered     = errors.New("purchase not delivered")
	ErrReversalFailed   = errors.New("purchase reversal failed")

	ErrEmptyCart            = errors.New("cart is empty")
	ErrInternalServerError  = errors.New("internal server error")
	ErrReconcileUnsupported = errors.New("unsupported reconcile task")
)

// CompensationError reports a compensating write that failed after an
// earlier step of a purchase had already been applied. It matches both
// ErrCompensationFailed and the failure that triggered the compensation.
type CompensationError struct {
	Cause  error
	Failed []error
}

func (e *CompensationError) Error() string {
	msgs := make([]string, 0, len(e.Failed))
	for _, f := range e.Failed {
		msgs = append(msgs, f.Error())
	}
	return fmt.Sprintf("%s after %v: %s", ErrCompensationFailed, e.Cause, strings.Join(msgs, "; "))
}

func (e *CompensationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed)+2)
	errs = append(errs, ErrCompensationFailed, e.Cause)
	return append(errs, e.Failed...)
}
