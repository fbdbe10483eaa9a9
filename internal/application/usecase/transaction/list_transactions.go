// Package transaction contains ledger-entry use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
)

// ListTransactionsInput represents the filter for listing transactions.
type ListTransactionsInput struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	ListID     *uuid.UUID
	WalletID   *uuid.UUID
	Element    *entity.Element
	Type       *entity.TransactionType
	OriginalID *uuid.UUID // restrict to one installment group
	Search     string
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Total        int
}

// ListTransactionsUseCase handles transaction queries.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction query.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	var transactions []*entity.Transaction
	var err error

	if input.OriginalID != nil {
		transactions, err = uc.transactionRepo.FindByInstallmentGroup(ctx, input.UserID, *input.OriginalID)
		if err != nil {
			return nil, fmt.Errorf("failed to query installment group: %w", err)
		}
	} else {
		transactions, err = uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
			UserID:    input.UserID,
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
			ListID:    input.ListID,
			WalletID:  input.WalletID,
			Element:   input.Element,
			Type:      input.Type,
			Search:    input.Search,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query transactions: %w", err)
		}
	}

	return &ListTransactionsOutput{
		Transactions: toOutputs(transactions),
		Total:        len(transactions),
	}, nil
}
