// Package error defines domain-specific errors for the Alquimia application.
package error

import "errors"

// Wallet domain errors.
var (
	// ErrWalletNotFound is returned when a wallet is not found in the system.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrInvalidWalletKind is returned when the wallet kind is invalid.
	ErrInvalidWalletKind = errors.New("invalid wallet kind")

	// ErrInvalidWalletName is returned when the wallet name is empty.
	ErrInvalidWalletName = errors.New("wallet name cannot be empty")

	// ErrInvalidWalletCycle is returned when closing or due day is outside 1-31.
	ErrInvalidWalletCycle = errors.New("closing and due day must be between 1 and 31")
)

// WalletErrorCode defines error codes for wallet errors.
// Format: WAL-XXYYYY where XX is category and YYYY is specific error.
type WalletErrorCode string

const (
	ErrCodeWalletNotFound     WalletErrorCode = "WAL-010001"
	ErrCodeInvalidWalletKind  WalletErrorCode = "WAL-010002"
	ErrCodeInvalidWalletName  WalletErrorCode = "WAL-010003"
	ErrCodeInvalidWalletCycle WalletErrorCode = "WAL-010004"
)

// WalletError represents a wallet error with code and message.
type WalletError struct {
	Code    WalletErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WalletError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WalletError) Unwrap() error {
	return e.Err
}

// NewWalletError creates a new WalletError with the given code and message.
func NewWalletError(code WalletErrorCode, message string, err error) *WalletError {
	return &WalletError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
