// Package error defines domain-specific errors for the Alquimia application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotAuthorizedToModifyTransaction is returned when user is not authorized to modify a transaction.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the transaction amount is invalid.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrInvalidElement is returned when the elemental tag is not one of the four fixed values.
	ErrInvalidElement = errors.New("invalid element")

	// ErrInvalidFeeling is returned when the feeling tag is not one of the known values.
	ErrInvalidFeeling = errors.New("invalid feeling")

	// ErrMissingListReference is returned when a transaction has no list reference.
	ErrMissingListReference = errors.New("transaction requires a list reference")

	// ErrMissingWalletReference is returned when a transaction has no wallet reference.
	ErrMissingWalletReference = errors.New("transaction requires a wallet reference")

	// ErrInstallmentGroupNotFound is returned when no legs share the given original id.
	ErrInstallmentGroupNotFound = errors.New("installment group not found")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010002"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010003"
	ErrCodeNotAuthorizedTransaction TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidElement           TransactionErrorCode = "TXN-010005"
	ErrCodeInvalidFeeling           TransactionErrorCode = "TXN-010006"
	ErrCodeMissingListReference     TransactionErrorCode = "TXN-010007"
	ErrCodeMissingWalletReference   TransactionErrorCode = "TXN-010008"
	ErrCodeInstallmentGroupNotFound TransactionErrorCode = "TXN-010009"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010010"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
