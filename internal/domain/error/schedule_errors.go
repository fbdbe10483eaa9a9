// Package error defines domain-specific errors for the Alquimia application.
package error

import "errors"

// Installment scheduler domain errors. These are caller-contract violations
// and fail fast rather than coercing input.
var (
	// ErrInvalidScheduleRequest is returned when installments > 1 are requested
	// on a non-credit wallet, or the installment count is below 1.
	ErrInvalidScheduleRequest = errors.New("invalid schedule request")

	// ErrInvalidAmount is returned when the purchase amount is not positive.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidCycleConfig is returned when closing or due day is outside 1-31.
	ErrInvalidCycleConfig = errors.New("invalid statement cycle configuration")
)

// ScheduleErrorCode defines error codes for scheduler errors.
// Format: SCH-XXYYYY where XX is category and YYYY is specific error.
type ScheduleErrorCode string

const (
	ErrCodeInvalidScheduleRequest ScheduleErrorCode = "SCH-010001"
	ErrCodeInvalidAmount          ScheduleErrorCode = "SCH-010002"
	ErrCodeInvalidCycleConfig     ScheduleErrorCode = "SCH-010003"
)

// ScheduleError represents a scheduler error with code and message.
type ScheduleError struct {
	Code    ScheduleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ScheduleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ScheduleError) Unwrap() error {
	return e.Err
}

// NewScheduleError creates a new ScheduleError with the given code and message.
func NewScheduleError(code ScheduleErrorCode, message string, err error) *ScheduleError {
	return &ScheduleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
