// Package error defines domain-specific errors for the Alquimia application.
package error

import "errors"

// Settings domain errors.
var (
	// ErrSettingsNotFound is returned when a user has no stored settings document.
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrInvalidMonthlyHours is returned when the monthly hours value is negative.
	ErrInvalidMonthlyHours = errors.New("monthly hours cannot be negative")

	// ErrInvalidAssetAmount is returned when an asset amount is negative.
	ErrInvalidAssetAmount = errors.New("asset amount cannot be negative")
)

// SettingsErrorCode defines error codes for settings errors.
// Format: SET-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	ErrCodeSettingsNotFound    SettingsErrorCode = "SET-010001"
	ErrCodeInvalidMonthlyHours SettingsErrorCode = "SET-010002"
	ErrCodeInvalidAssetAmount  SettingsErrorCode = "SET-010003"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
