// Package error defines domain-specific errors for the receipt matching application.
package error

import "errors"

// Matching domain errors.
var (
	// ErrReceiptNotFound is returned when a receipt is not found in the system.
	ErrReceiptNotFound = errors.New("receipt not found")

	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrGroupNotFound is returned when a transaction group is not found.
	ErrGroupNotFound = errors.New("transaction group not found")

	// ErrMatchNotFound is returned when a match record is not found.
	ErrMatchNotFound = errors.New("match not found")

	// ErrAmbiguousMatchTarget is returned when both a transaction and a group are referenced.
	ErrAmbiguousMatchTarget = errors.New("match target references both a transaction and a group")

	// ErrMissingMatchTarget is returned when neither a transaction nor a group is referenced.
	ErrMissingMatchTarget = errors.New("match target references neither a transaction nor a group")

	// ErrMatchAlreadyConfirmed is returned when confirming a match that is not in the proposed state.
	ErrMatchAlreadyConfirmed = errors.New("match is not in a confirmable state")

	// ErrTransactionGrouped is returned when a manual match targets a transaction owned by a group.
	ErrTransactionGrouped = errors.New("transaction belongs to a group and cannot be matched individually")

	// ErrNotAuthorizedToModifyMatch is returned when the user does not own the match.
	ErrNotAuthorizedToModifyMatch = errors.New("not authorized to modify match")

	// ErrEmptyGroup is returned when creating a transaction group with no members.
	ErrEmptyGroup = errors.New("transaction group needs at least one transaction")
)

// MatchErrorCode defines error codes for matching errors.
// Format: MCH-XXYYYY where XX is category and YYYY is specific error.
type MatchErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAmbiguousMatchTarget MatchErrorCode = "MCH-010001"
	ErrCodeMissingMatchTarget   MatchErrorCode = "MCH-010002"
	ErrCodeTransactionGrouped   MatchErrorCode = "MCH-010003"
	ErrCodeMatchNotConfirmable  MatchErrorCode = "MCH-010004"
	ErrCodeEmptyGroup           MatchErrorCode = "MCH-010005"

	// Lookup errors (02XXXX)
	ErrCodeReceiptNotFound     MatchErrorCode = "MCH-020001"
	ErrCodeTransactionNotFound MatchErrorCode = "MCH-020002"
	ErrCodeGroupNotFound       MatchErrorCode = "MCH-020003"
	ErrCodeMatchNotFound       MatchErrorCode = "MCH-020004"
	ErrCodeNotAuthorizedMatch  MatchErrorCode = "MCH-020005"
)

// MatchError represents a matching error with code and message.
type MatchError struct {
	Code    MatchErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MatchError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MatchError) Unwrap() error {
	return e.Err
}

// NewMatchError creates a new MatchError with the given code and message.
func NewMatchError(code MatchErrorCode, message string, err error) *MatchError {
	return &MatchError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
