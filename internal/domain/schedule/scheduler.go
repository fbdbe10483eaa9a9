// Package schedule implements the installment scheduler: the expansion of a
// credit-card purchase into dated ledger entries, one per billing statement
// the purchase will appear on.
package schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
	"github.com/alquimia/backend/internal/domain/valueobject"
)

// Request describes one purchase to be expanded. Description, ListID,
// Element, WalletID, EntityID, Type and Feeling are copied onto every
// generated leg.
type Request struct {
	UserID       uuid.UUID
	Amount       decimal.Decimal
	PurchaseDate time.Time
	Installments int
	WalletKind   entity.WalletKind
	Cycle        valueobject.Cycle

	Type        entity.TransactionType
	Description string
	ListID      uuid.UUID
	Element     entity.Element
	WalletID    uuid.UUID
	EntityID    *uuid.UUID
	Feeling     *entity.Feeling
}

// Expand deterministically expands the request into 1 or Installments ledger
// entries. It has no side effects; the only non-deterministic output is the
// identity of the generated legs (ids and the shared group id), which never
// affects scheduling.
//
// With a single installment the purchase date passes through unmodified and
// no installment group is attached. With N > 1 installments (credit wallets
// only) each leg lands on the due date of its billing statement: a purchase
// after the closing day misses the current statement and shifts one month,
// and a due day earlier than the closing day falls in the month after the
// statement closes.
func Expand(req Request) ([]*entity.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, domainerror.NewScheduleError(
			domainerror.ErrCodeInvalidAmount,
			"purchase amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}
	if req.Installments < 1 {
		return nil, domainerror.NewScheduleError(
			domainerror.ErrCodeInvalidScheduleRequest,
			"installment count must be at least 1",
			domainerror.ErrInvalidScheduleRequest,
		)
	}
	if err := req.Cycle.Validate(); err != nil {
		return nil, err
	}

	if req.Installments == 1 {
		leg := entity.NewTransaction(
			req.UserID, req.Type, req.Amount, req.Description,
			req.ListID, req.Element, req.WalletID, req.EntityID,
			req.PurchaseDate, req.Feeling,
		)
		return []*entity.Transaction{leg}, nil
	}

	if req.WalletKind != entity.WalletKindCredit {
		return nil, domainerror.NewScheduleError(
			domainerror.ErrCodeInvalidScheduleRequest,
			"multiple installments require a credit wallet",
			domainerror.ErrInvalidScheduleRequest,
		)
	}

	closingDay, dueDay := req.Cycle.Resolve()

	// A purchase strictly after the closing day misses the current statement.
	offset := 0
	if req.PurchaseDate.Day() > closingDay {
		offset = 1
	}

	// Each leg is rounded independently; the sum may drift from the original
	// amount by up to half a cent per leg. See the sum-preservation tests.
	perLeg := req.Amount.Div(decimal.NewFromInt(int64(req.Installments))).Round(2)

	originalID := uuid.New()
	legs := make([]*entity.Transaction, 0, req.Installments)
	for i := 0; i < req.Installments; i++ {
		billingMonth := addMonths(req.PurchaseDate, offset+i)
		due := withDayOfMonth(billingMonth, dueDay)
		if dueDay < closingDay {
			// Due day precedes the close, so payment falls in the month after
			// the statement closes.
			due = addMonths(due, 1)
		}

		leg := entity.NewTransaction(
			req.UserID, req.Type, perLeg,
			fmt.Sprintf("%s (%d/%d)", req.Description, i+1, req.Installments),
			req.ListID, req.Element, req.WalletID, req.EntityID,
			due, req.Feeling,
		)
		leg.Installments = &entity.InstallmentInfo{
			Current:    i + 1,
			Total:      req.Installments,
			OriginalID: originalID,
		}
		legs = append(legs, leg)
	}

	return legs, nil
}

// addMonths adds calendar months, clamping the day to the target month's end
// (Jan 31 + 1 month = Feb 28/29, never Mar 2).
func addMonths(t time.Time, months int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()).AddDate(0, months, 0)
	day := t.Day()
	if last := daysInMonth(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// withDayOfMonth sets the day of month, clamping to the month's end.
func withDayOfMonth(t time.Time, day int) time.Time {
	if last := daysInMonth(t.Year(), t.Month()); day > last {
		day = last
	}
	return time.Date(t.Year(), t.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
