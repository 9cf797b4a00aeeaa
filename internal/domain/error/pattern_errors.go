// Package error defines domain-specific errors for the receipt matching application.
package error

import "errors"

// Pattern and prediction domain errors.
var (
	// ErrPatternNotFound is returned when an expense pattern is not found.
	ErrPatternNotFound = errors.New("expense pattern not found")

	// ErrPredictionNotFound is returned when a transaction prediction is not found.
	ErrPredictionNotFound = errors.New("prediction not found")

	// ErrPredictionExists is returned when a prediction already exists for the transaction.
	ErrPredictionExists = errors.New("prediction already exists for transaction")

	// ErrNegativePatternCounter is returned when classification input counters are negative.
	ErrNegativePatternCounter = errors.New("pattern counters cannot be negative")

	// ErrNotAuthorizedToModifyPattern is returned when the user does not own the pattern.
	ErrNotAuthorizedToModifyPattern = errors.New("not authorized to modify pattern")
)

// PatternErrorCode defines error codes for pattern/prediction errors.
// Format: PRD-XXYYYY where XX is category and YYYY is specific error.
type PatternErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativePatternCounter PatternErrorCode = "PRD-010001"
	ErrCodePredictionExists       PatternErrorCode = "PRD-010002"

	// Lookup errors (02XXXX)
	ErrCodePatternNotFound      PatternErrorCode = "PRD-020001"
	ErrCodePredictionNotFound   PatternErrorCode = "PRD-020002"
	ErrCodeNotAuthorizedPattern PatternErrorCode = "PRD-020003"
)

// PatternError represents a pattern/prediction error with code and message.
type PatternError struct {
	Code    PatternErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PatternError) Unwrap() error {
	return e.Err
}

// NewPatternError creates a new PatternError with the given code and message.
func NewPatternError(code PatternErrorCode, message string, err error) *PatternError {
	return &PatternError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
