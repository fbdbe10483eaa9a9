// Package list contains transmutation-list use cases.
package list

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

// CompleteItemInput represents the input for converting a planned item into
// an expense. The caller supplies the wallet and element; amount and
// description are prefilled from the item.
type CompleteItemInput struct {
	ListID   uuid.UUID
	ItemID   uuid.UUID
	UserID   uuid.UUID
	WalletID uuid.UUID
	Element  entity.Element
	Feeling  *entity.Feeling
	Date     time.Time // zero value means now
}

// CompleteItemOutput represents the output of the conversion.
type CompleteItemOutput struct {
	Item        *ItemOutput
	Transaction uuid.UUID // id of the created expense
}

// CompleteItemUseCase converts a planned item into an expense transaction and
// marks the item completed in one server-side operation.
type CompleteItemUseCase struct {
	listRepo        adapter.TransmutationListRepository
	transactionRepo adapter.TransactionRepository
	walletRepo      adapter.WalletRepository
	notifier        adapter.ChangeNotifier
}

// NewCompleteItemUseCase creates a new CompleteItemUseCase instance.
func NewCompleteItemUseCase(
	listRepo adapter.TransmutationListRepository,
	transactionRepo adapter.TransactionRepository,
	walletRepo adapter.WalletRepository,
	notifier adapter.ChangeNotifier,
) *CompleteItemUseCase {
	return &CompleteItemUseCase{
		listRepo:        listRepo,
		transactionRepo: transactionRepo,
		walletRepo:      walletRepo,
		notifier:        notifier,
	}
}

// Execute performs the conversion.
func (uc *CompleteItemUseCase) Execute(ctx context.Context, input CompleteItemInput) (*CompleteItemOutput, error) {
	if !input.Element.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidElement,
			"element must be one of Tierra, Agua, Aire, Fuego",
			domainerror.ErrInvalidElement,
		)
	}

	list, err := uc.listRepo.FindByID(ctx, input.ListID)
	if err != nil {
		if errors.Is(err, domainerror.ErrListNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find list: %w", err)
	}
	if list.UserID != input.UserID {
		return nil, notFoundError()
	}

	item := list.FindItem(input.ItemID)
	if item == nil {
		return nil, domainerror.NewListError(
			domainerror.ErrCodeListItemNotFound,
			"list item not found",
			domainerror.ErrListItemNotFound,
		)
	}
	if item.IsCompleted {
		return nil, domainerror.NewListError(
			domainerror.ErrCodeItemAlreadyCompleted,
			"item is already completed",
			domainerror.ErrItemAlreadyCompleted,
		)
	}

	wallet, err := uc.walletRepo.FindByID(ctx, input.WalletID)
	if err != nil {
		if errors.Is(err, domainerror.ErrWalletNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeMissingWalletReference,
				"wallet not found",
				domainerror.ErrMissingWalletReference,
			)
		}
		return nil, fmt.Errorf("failed to find wallet: %w", err)
	}
	if wallet.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingWalletReference,
			"wallet does not belong to user",
			domainerror.ErrMissingWalletReference,
		)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	transaction := entity.NewTransaction(
		input.UserID,
		entity.TransactionTypeExpense,
		item.Amount,
		item.Name,
		list.ID,
		input.Element,
		input.WalletID,
		nil,
		date,
		input.Feeling,
	)
	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create expense for item: %w", err)
	}

	item.IsCompleted = true
	list.UpdatedAt = time.Now().UTC()
	if err := uc.listRepo.Update(ctx, list); err != nil {
		// The expense exists but the item flag did not stick. Roll the expense
		// back so the operation stays atomic from the caller's view.
		if delErr := uc.transactionRepo.Delete(ctx, transaction.ID); delErr != nil {
			slog.Error("failed to roll back expense after list save failure",
				"transactionID", transaction.ID,
				"error", delErr,
			)
		}
		return nil, fmt.Errorf("failed to save list: %w", err)
	}

	if uc.notifier != nil {
		for _, section := range []string{"transactions", "transmutationLists"} {
			if err := uc.notifier.NotifyChanged(ctx, input.UserID, section); err != nil {
				slog.Warn("failed to publish change notification",
					"userID", input.UserID,
					"section", section,
					"error", err,
				)
			}
		}
	}

	return &CompleteItemOutput{
		Item: &ItemOutput{
			ID:          item.ID,
			Name:        item.Name,
			Amount:      item.Amount,
			IsCompleted: item.IsCompleted,
			DueDate:     item.DueDate,
			IsRecurring: item.IsRecurring,
		},
		Transaction: transaction.ID,
	}, nil
}
