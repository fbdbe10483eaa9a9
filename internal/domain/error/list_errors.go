// Package error defines domain-specific errors for the Alquimia application.
package error

import "errors"

// Transmutation list domain errors.
var (
	// ErrListNotFound is returned when a transmutation list is not found.
	ErrListNotFound = errors.New("transmutation list not found")

	// ErrListItemNotFound is returned when a planned item is not found in its list.
	ErrListItemNotFound = errors.New("list item not found")

	// ErrReservedList is returned when attempting to delete or rename a reserved list.
	ErrReservedList = errors.New("reserved lists cannot be modified or deleted")

	// ErrInvalidListName is returned when the list name is empty.
	ErrInvalidListName = errors.New("list name cannot be empty")

	// ErrInvalidItemName is returned when the planned item name is empty.
	ErrInvalidItemName = errors.New("item name cannot be empty")

	// ErrInvalidItemDueDate is returned when the item due day is outside 1-31.
	ErrInvalidItemDueDate = errors.New("item due day must be between 1 and 31")

	// ErrItemAlreadyCompleted is returned when completing an item that was already converted.
	ErrItemAlreadyCompleted = errors.New("item is already completed")
)

// ListErrorCode defines error codes for transmutation list errors.
// Format: LST-XXYYYY where XX is category and YYYY is specific error.
type ListErrorCode string

const (
	ErrCodeListNotFound         ListErrorCode = "LST-010001"
	ErrCodeListItemNotFound     ListErrorCode = "LST-010002"
	ErrCodeReservedList         ListErrorCode = "LST-010003"
	ErrCodeInvalidListName      ListErrorCode = "LST-010004"
	ErrCodeInvalidItemName      ListErrorCode = "LST-010005"
	ErrCodeInvalidItemDueDate   ListErrorCode = "LST-010006"
	ErrCodeItemAlreadyCompleted ListErrorCode = "LST-010007"
)

// ListError represents a transmutation list error with code and message.
type ListError struct {
	Code    ListErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ListError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ListError) Unwrap() error {
	return e.Err
}

// NewListError creates a new ListError with the given code and message.
func NewListError(code ListErrorCode, message string, err error) *ListError {
	return &ListError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
