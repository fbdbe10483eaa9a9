// Package error defines domain-specific errors for the Alquimia application.
package error

import "errors"

// Email delivery domain errors.
var (
	// ErrEmailSendFailed is returned when sending an email fails with a retryable error.
	ErrEmailSendFailed = errors.New("failed to send email")

	// ErrEmailPermanentFailure is returned when sending fails and retrying cannot help.
	ErrEmailPermanentFailure = errors.New("permanent email delivery failure")

	// ErrEmailServiceNotConfigured is returned when no delivery API key is configured.
	ErrEmailServiceNotConfigured = errors.New("email service not configured")

	// ErrEmailJobNotFound is returned when a queued email job does not exist.
	ErrEmailJobNotFound = errors.New("email job not found")

	// ErrInvalidTemplate is returned when a job references an unknown template.
	ErrInvalidTemplate = errors.New("unknown email template")
)

// EmailErrorCode defines error codes for email errors.
// Format: EMAIL-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	ErrCodeTemporaryEmailFailure   EmailErrorCode = "EMAIL-010001"
	ErrCodePermanentEmailFailure   EmailErrorCode = "EMAIL-010002"
	ErrCodeEmailServiceUnavailable EmailErrorCode = "EMAIL-010003"
	ErrCodeEmailQueueFailed        EmailErrorCode = "EMAIL-010004"
	ErrCodeInvalidTemplate         EmailErrorCode = "EMAIL-010005"
)

// EmailError represents an email error with a code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Code) + ": " + e.Message
}

// Unwrap returns the wrapped error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
