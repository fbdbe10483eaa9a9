// Package transaction contains ledger-entry use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction replacement.
// The stored entry is replaced field-for-field; single legs of an installment
// group may be edited independently without touching their siblings.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Type          entity.TransactionType
	Amount        decimal.Decimal
	Description   string
	ListID        uuid.UUID
	Element       entity.Element
	WalletID      uuid.UUID
	EntityID      *uuid.UUID
	Date          time.Time
	Feeling       *entity.Feeling
}

// UpdateTransactionOutput represents the output of transaction replacement.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction replacement logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	notifier        adapter.ChangeNotifier
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	notifier adapter.ChangeNotifier,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		notifier:        notifier,
	}
}

// Execute performs the transaction replacement.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be positive",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if !input.Element.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidElement,
			"element must be one of Tierra, Agua, Aire, Fuego",
			domainerror.ErrInvalidElement,
		)
	}
	if input.Feeling != nil && !input.Feeling.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidFeeling,
			"feeling must be one of necessary, pleasure, regret",
			domainerror.ErrInvalidFeeling,
		)
	}

	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify this transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	// The installment group tag is preserved through edits; only the caller
	// facing fields are replaced.
	transaction.Type = input.Type
	transaction.Amount = input.Amount
	transaction.Description = input.Description
	transaction.ListID = input.ListID
	transaction.Element = input.Element
	transaction.WalletID = input.WalletID
	transaction.EntityID = input.EntityID
	transaction.Date = input.Date
	transaction.Feeling = input.Feeling
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyChanged(ctx, input.UserID, "transactions"); err != nil {
			slog.Warn("failed to publish transaction change notification",
				"userID", input.UserID,
				"error", err,
			)
		}
	}

	return &UpdateTransactionOutput{Transaction: toOutput(transaction)}, nil
}
