package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that no valid caller identity was supplied.
var ErrUnauthorized = errors.New("authentication required")

// ErrForbidden indicates that the caller lacks the permission for the requested action.
var ErrForbidden = errors.New("permission denied")

// ErrConflict indicates that the resource is in a state that does not admit the
// requested transition (e.g. approving a non-draft entry).
var ErrConflict = errors.New("conflicting resource state")

// ErrInternal indicates an unexpected persistence or infrastructure failure.
var ErrInternal = errors.New("internal error")

// Ledger specific failure kinds.
var (
	// ErrNoOpenPeriod is returned when a posting omits a period and the company
	// has no open period to fall back to.
	ErrNoOpenPeriod = errors.New("no open accounting period")

	// ErrPeriodClosed is returned when a posting targets a period whose status is
	// not OPEN.
	ErrPeriodClosed = errors.New("accounting period is closed")

	// ErrPeriodUnbalanced is returned when closing a period whose approved
	// entries do not sum to equal debit and credit totals.
	ErrPeriodUnbalanced = errors.New("period has unbalanced entries")

	// ErrNextPeriodOpen is returned when reopening a period whose chronologically
	// next period is currently open.
	ErrNextPeriodOpen = errors.New("next period is open")

	// ErrReasonRequired is returned when annulment is requested without a reason.
	ErrReasonRequired = errors.New("annulment reason is required")

	// ErrUnbalanced is the sentinel matched by errors.Is for UnbalancedError.
	ErrUnbalanced = errors.New("entry debits and credits do not balance")
)

// UnbalancedError reports a rejected journal entry whose line totals differ by
// more than the accepted rounding tolerance. It carries both computed totals so
// callers can render the discrepancy.
type UnbalancedError struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("entry is unbalanced: total debit %s, total credit %s",
		e.TotalDebit.StringFixed(2), e.TotalCredit.StringFixed(2))
}

// Is lets errors.Is(err, ErrUnbalanced) match an UnbalancedError.
func (e *UnbalancedError) Is(target error) bool {
	return target == ErrUnbalanced
}

// NewUnbalancedError builds an UnbalancedError from the computed totals.
func NewUnbalancedError(totalDebit, totalCredit decimal.Decimal) *UnbalancedError {
	return &UnbalancedError{TotalDebit: totalDebit, TotalCredit: totalCredit}
}

// AppError wraps a lower level failure with an HTTP-ish code and a message that
// is safe to log. Repositories use it to annotate persistence failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches apperrors.ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
