// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WalletKind represents the payment-method kind of a wallet.
type WalletKind string

const (
	WalletKindCash   WalletKind = "cash"
	WalletKindDebit  WalletKind = "debit"
	WalletKindCredit WalletKind = "credit"
)

// IsValid reports whether the wallet kind is one of the known values.
func (k WalletKind) IsValid() bool {
	switch k {
	case WalletKindCash, WalletKindDebit, WalletKindCredit:
		return true
	}
	return false
}

// Wallet represents a payment method in the Alquimia system.
// ClosingDay and DueDay carry the statement-cycle configuration and are only
// meaningful for credit wallets; both are optional even then.
type Wallet struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Kind       WalletKind
	ClosingDay *int // day of month the statement closes (1-31)
	DueDay     *int // day of month payment is due (1-31)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewWallet creates a new Wallet entity.
func NewWallet(userID uuid.UUID, name string, kind WalletKind, closingDay, dueDay *int) *Wallet {
	now := time.Now().UTC()
	return &Wallet{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Kind:       kind,
		ClosingDay: closingDay,
		DueDay:     dueDay,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// DefaultWallets returns the seed wallets for a user with no stored wallets.
func DefaultWallets(userID uuid.UUID) []*Wallet {
	return []*Wallet{
		NewWallet(userID, "Efectivo", WalletKindCash, nil, nil),
		NewWallet(userID, "Débito Principal", WalletKindDebit, nil, nil),
	}
}
