// Package wallet contains wallet-registry use cases.
package wallet

import (
	"time"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

// WalletOutput represents a wallet in use case outputs.
type WalletOutput struct {
	ID         uuid.UUID
	Name       string
	Kind       entity.WalletKind
	ClosingDay *int
	DueDay     *int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// toOutput maps a wallet entity into its output representation.
func toOutput(w *entity.Wallet) *WalletOutput {
	return &WalletOutput{
		ID:         w.ID,
		Name:       w.Name,
		Kind:       w.Kind,
		ClosingDay: w.ClosingDay,
		DueDay:     w.DueDay,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}

// validateCycleDays checks the optional statement-cycle days.
func validateCycleDays(closingDay, dueDay *int) error {
	for _, day := range []*int{closingDay, dueDay} {
		if day != nil && (*day < 1 || *day > 31) {
			return domainerror.NewWalletError(
				domainerror.ErrCodeInvalidWalletCycle,
				"closing and due day must be between 1 and 31",
				domainerror.ErrInvalidWalletCycle,
			)
		}
	}
	return nil
}
