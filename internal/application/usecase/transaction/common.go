// Package transaction contains ledger-entry use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/domain/entity"
)

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255
)

// InstallmentOutput represents the installment group of a leg.
type InstallmentOutput struct {
	Current    int
	Total      int
	OriginalID uuid.UUID
}

// TransactionOutput represents a transaction in use case outputs.
type TransactionOutput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Description string
	ListID      uuid.UUID
	Element     entity.Element
	WalletID    uuid.UUID
	EntityID    *uuid.UUID
	Date        time.Time
	Feeling     *entity.Feeling
	Installment *InstallmentOutput
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// toOutput maps a transaction entity into its output representation.
func toOutput(t *entity.Transaction) *TransactionOutput {
	out := &TransactionOutput{
		ID:          t.ID,
		UserID:      t.UserID,
		Type:        t.Type,
		Amount:      t.Amount,
		Description: t.Description,
		ListID:      t.ListID,
		Element:     t.Element,
		WalletID:    t.WalletID,
		EntityID:    t.EntityID,
		Date:        t.Date,
		Feeling:     t.Feeling,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.Installments != nil {
		out.Installment = &InstallmentOutput{
			Current:    t.Installments.Current,
			Total:      t.Installments.Total,
			OriginalID: t.Installments.OriginalID,
		}
	}
	return out
}

// toOutputs maps a slice of transaction entities.
func toOutputs(transactions []*entity.Transaction) []*TransactionOutput {
	outputs := make([]*TransactionOutput, 0, len(transactions))
	for _, t := range transactions {
		outputs = append(outputs, toOutput(t))
	}
	return outputs
}
