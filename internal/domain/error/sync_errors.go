// Package error defines domain-specific errors for the Alquimia application.
package error

import "errors"

// Document sync domain errors.
var (
	// ErrPersistenceWriteFailed is returned when a write to the document store fails.
	ErrPersistenceWriteFailed = errors.New("persistence write failed")

	// ErrEmptyPatch is returned when a merge patch names no sections to apply.
	ErrEmptyPatch = errors.New("merge patch contains no sections")

	// ErrUnknownSection is returned when a merge patch names an unknown section.
	ErrUnknownSection = errors.New("unknown document section")
)

// SyncErrorCode defines error codes for document sync errors.
// Format: SYNC-XXYYYY where XX is category and YYYY is specific error.
type SyncErrorCode string

const (
	ErrCodePersistenceWriteFailed SyncErrorCode = "SYNC-010001"
	ErrCodeEmptyPatch             SyncErrorCode = "SYNC-010002"
	ErrCodeUnknownSection         SyncErrorCode = "SYNC-010003"
)

// SyncError represents a document sync error with code and message.
type SyncError struct {
	Code    SyncErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SyncError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError creates a new SyncError with the given code and message.
func NewSyncError(code SyncErrorCode, message string, err error) *SyncError {
	return &SyncError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
