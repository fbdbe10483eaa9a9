// Package valueobject defines immutable value types shared across the domain.
package valueobject

import (
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

const (
	// DefaultClosingDay is used when a credit wallet has no closing day
	// configured: the statement effectively closes at month end.
	DefaultClosingDay = 31

	// DefaultDueDay is used when a credit wallet has no due day configured.
	DefaultDueDay = 10
)

// Cycle is the statement-cycle configuration of a credit wallet. Both days are
// optional; Resolve applies the documented defaults.
type Cycle struct {
	ClosingDay *int
	DueDay     *int
}

// Validate checks that any configured day falls within 1-31.
func (c Cycle) Validate() error {
	if c.ClosingDay != nil && (*c.ClosingDay < 1 || *c.ClosingDay > 31) {
		return domainerror.NewScheduleError(
			domainerror.ErrCodeInvalidCycleConfig,
			"closing day must be between 1 and 31",
			domainerror.ErrInvalidCycleConfig,
		)
	}
	if c.DueDay != nil && (*c.DueDay < 1 || *c.DueDay > 31) {
		return domainerror.NewScheduleError(
			domainerror.ErrCodeInvalidCycleConfig,
			"due day must be between 1 and 31",
			domainerror.ErrInvalidCycleConfig,
		)
	}
	return nil
}

// Resolve returns the effective closing and due days with defaults applied.
func (c Cycle) Resolve() (closingDay, dueDay int) {
	closingDay = DefaultClosingDay
	if c.ClosingDay != nil {
		closingDay = *c.ClosingDay
	}
	dueDay = DefaultDueDay
	if c.DueDay != nil {
		dueDay = *c.DueDay
	}
	return closingDay, dueDay
}
