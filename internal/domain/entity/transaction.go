// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the transaction type is one of the known values.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Feeling is the optional sentiment tag an expense can carry.
type Feeling string

const (
	FeelingNecessary Feeling = "necessary"
	FeelingPleasure  Feeling = "pleasure"
	FeelingRegret    Feeling = "regret"
)

// IsValid reports whether the feeling is one of the known values.
func (f Feeling) IsValid() bool {
	switch f {
	case FeelingNecessary, FeelingPleasure, FeelingRegret:
		return true
	}
	return false
}

// InstallmentInfo links one leg of a multi-payment credit purchase to its
// group. All legs of one purchase share OriginalID; Current runs 1..Total.
type InstallmentInfo struct {
	Current    int
	Total      int
	OriginalID uuid.UUID
}

// Transaction represents a single ledger entry in the Alquimia system.
// Amounts are always positive; Type carries the sign. For installment legs,
// Date is the computed due date of that leg's statement, not the purchase
// date.
type Transaction struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Type         TransactionType
	Amount       decimal.Decimal
	Description  string
	ListID       uuid.UUID
	Element      Element
	WalletID     uuid.UUID
	EntityID     *uuid.UUID
	Date         time.Time
	Feeling      *Feeling
	Installments *InstallmentInfo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	description string,
	listID uuid.UUID,
	element Element,
	walletID uuid.UUID,
	entityID *uuid.UUID,
	date time.Time,
	feeling *Feeling,
) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        transactionType,
		Amount:      amount,
		Description: description,
		ListID:      listID,
		Element:     element,
		WalletID:    walletID,
		EntityID:    entityID,
		Date:        date,
		Feeling:     feeling,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsInstallmentLeg reports whether the transaction belongs to an installment
// group.
func (t *Transaction) IsInstallmentLeg() bool {
	return t.Installments != nil
}
