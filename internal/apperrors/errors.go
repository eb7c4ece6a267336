package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates the operation is illegal for the voucher's current status,
// e.g. updating or deleting a POSTED voucher.
var ErrInvalidState = errors.New("operation not allowed in current voucher state")

// ErrUnresolvedTemplate indicates no entry template matches the requested
// voucher type / sub-type pair, or a required payment account is missing.
var ErrUnresolvedTemplate = errors.New("no entry template for voucher intent")

// ErrImbalancedTemplate indicates a resolved template produced entries whose
// debit and credit totals differ. The template engine should make this
// impossible; it is re-checked before anything is persisted.
var ErrImbalancedTemplate = errors.New("template entries do not balance")

// ErrUnbalancedVoucher indicates a voucher's persisted entries do not balance
// debit against credit at posting time.
var ErrUnbalancedVoucher = errors.New("voucher debit and credit totals do not match")

// ErrIncompleteVoucher indicates a voucher has fewer than two entries.
var ErrIncompleteVoucher = errors.New("voucher must have at least two entries")

// ErrInvalidAmount indicates an entry amount is zero or negative.
var ErrInvalidAmount = errors.New("entry amount must be positive")

// ErrSerializationConflict indicates the posting transaction lost a
// serialization race. Transient: the caller may safely retry.
var ErrSerializationConflict = errors.New("posting conflicted with a concurrent transaction")

// ErrReportIntegrity indicates report aggregation found totals that violate
// the double-entry invariant. Non-retryable; signals corrupted ledger data.
var ErrReportIntegrity = errors.New("report integrity violation")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError wraps a lower-level error with a status code and context message.
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

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that satisfies errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
