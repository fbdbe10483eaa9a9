// Package error defines domain-specific errors for the Alquimia application.
package error

import "errors"

// Advisory service domain errors. These never surface to the HTTP caller as
// failures; the use cases degrade to fixed fallbacks instead.
var (
	// ErrAdvisoryServiceUnavailable is returned when the advisory service has no
	// credential or the upstream call fails.
	ErrAdvisoryServiceUnavailable = errors.New("advisory service unavailable")

	// ErrUnreadableReceipt is returned when a receipt image yields no parseable items.
	ErrUnreadableReceipt = errors.New("receipt could not be interpreted")
)

// AdvisorErrorCode defines error codes for advisory service errors.
// Format: ADV-XXYYYY where XX is category and YYYY is specific error.
type AdvisorErrorCode string

const (
	ErrCodeAdvisoryServiceUnavailable AdvisorErrorCode = "ADV-010001"
	ErrCodeUnreadableReceipt          AdvisorErrorCode = "ADV-010002"
)
