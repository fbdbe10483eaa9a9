// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransmutationItem is a planned-spending item inside a list.
type TransmutationItem struct {
	ID          uuid.UUID
	Name        string
	Amount      decimal.Decimal
	IsCompleted bool
	DueDate     *int // day of month the item is expected, when set (1-31)
	IsRecurring bool
}

// NewTransmutationItem creates a new planned item.
func NewTransmutationItem(name string, amount decimal.Decimal, dueDate *int, isRecurring bool) *TransmutationItem {
	return &TransmutationItem{
		ID:          uuid.New(),
		Name:        name,
		Amount:      amount,
		DueDate:     dueDate,
		IsRecurring: isRecurring,
	}
}

// TransmutationList is a named bucket of planned spending items, also used as
// a grouping tag for transactions. The two reserved variants (credit-card
// view, loans view) are identified by their flags, never by id; exactly one of
// each must exist per user and is synthesized on load when absent.
type TransmutationList struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Name             string
	Items            []*TransmutationItem
	IsCreditCardView bool
	IsLoansView      bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewTransmutationList creates a new user-editable list.
func NewTransmutationList(userID uuid.UUID, name string) *TransmutationList {
	now := time.Now().UTC()
	return &TransmutationList{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Items:     []*TransmutationItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewCreditCardList creates the reserved list that aggregates credit-card
// spend.
func NewCreditCardList(userID uuid.UUID) *TransmutationList {
	l := NewTransmutationList(userID, "Tarjetas de Crédito")
	l.IsCreditCardView = true
	return l
}

// NewLoansList creates the reserved list that aggregates loan tracking.
func NewLoansList(userID uuid.UUID) *TransmutationList {
	l := NewTransmutationList(userID, "Préstamos")
	l.IsLoansView = true
	return l
}

// IsReserved reports whether the list is one of the synthesized variants that
// the user cannot edit or delete as a normal list.
func (l *TransmutationList) IsReserved() bool {
	return l.IsCreditCardView || l.IsLoansView
}

// FindItem returns the item with the given id, or nil.
func (l *TransmutationList) FindItem(itemID uuid.UUID) *TransmutationItem {
	for _, item := range l.Items {
		if item.ID == itemID {
			return item
		}
	}
	return nil
}

// DefaultTransmutationLists returns the seed lists for a user with no stored
// lists: the two starter buckets plus both reserved views.
func DefaultTransmutationLists(userID uuid.UUID) []*TransmutationList {
	return []*TransmutationList{
		NewTransmutationList(userID, "Supermercado"),
		NewTransmutationList(userID, "Gastos Fijos"),
		NewCreditCardList(userID),
		NewLoansList(userID),
	}
}
