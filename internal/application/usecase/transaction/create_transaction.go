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
	"github.com/alquimia/backend/internal/domain/schedule"
	"github.com/alquimia/backend/internal/domain/valueobject"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID       uuid.UUID
	Type         entity.TransactionType
	Amount       decimal.Decimal
	Description  string
	ListID       uuid.UUID
	Element      entity.Element
	WalletID     uuid.UUID
	EntityID     *uuid.UUID
	Date         time.Time
	Feeling      *entity.Feeling
	Installments int // 0 or 1 means a single payment
}

// CreateTransactionOutput represents the output of transaction creation.
// A multi-installment purchase yields one entry per leg.
type CreateTransactionOutput struct {
	Transactions []*TransactionOutput
}

// CreateTransactionUseCase handles transaction creation, including the
// expansion of credit purchases into installment legs.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	walletRepo      adapter.WalletRepository
	listRepo        adapter.TransmutationListRepository
	notifier        adapter.ChangeNotifier
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	walletRepo adapter.WalletRepository,
	listRepo adapter.TransmutationListRepository,
	notifier adapter.ChangeNotifier,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		walletRepo:      walletRepo,
		listRepo:        listRepo,
		notifier:        notifier,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
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

	// Resolve the wallet; the statement cycle for installment scheduling comes
	// from its configuration.
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

	list, err := uc.listRepo.FindByID(ctx, input.ListID)
	if err != nil {
		if errors.Is(err, domainerror.ErrListNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeMissingListReference,
				"transmutation list not found",
				domainerror.ErrMissingListReference,
			)
		}
		return nil, fmt.Errorf("failed to find list: %w", err)
	}
	if list.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingListReference,
			"transmutation list does not belong to user",
			domainerror.ErrMissingListReference,
		)
	}

	installments := input.Installments
	if installments == 0 {
		installments = 1
	}

	legs, err := schedule.Expand(schedule.Request{
		UserID:       input.UserID,
		Amount:       input.Amount,
		PurchaseDate: input.Date,
		Installments: installments,
		WalletKind:   wallet.Kind,
		Cycle: valueobject.Cycle{
			ClosingDay: wallet.ClosingDay,
			DueDay:     wallet.DueDay,
		},
		Type:        input.Type,
		Description: input.Description,
		ListID:      input.ListID,
		Element:     input.Element,
		WalletID:    input.WalletID,
		EntityID:    input.EntityID,
		Feeling:     input.Feeling,
	})
	if err != nil {
		return nil, err
	}

	if len(legs) == 1 {
		if err := uc.transactionRepo.Create(ctx, legs[0]); err != nil {
			return nil, fmt.Errorf("failed to create transaction: %w", err)
		}
	} else {
		if err := uc.transactionRepo.CreateBatch(ctx, legs); err != nil {
			return nil, fmt.Errorf("failed to create installment legs: %w", err)
		}
	}

	uc.notifyChange(ctx, input.UserID)

	return &CreateTransactionOutput{Transactions: toOutputs(legs)}, nil
}

// notifyChange publishes the change event; failures are logged and dropped so
// a broken broker never fails the write.
func (uc *CreateTransactionUseCase) notifyChange(ctx context.Context, userID uuid.UUID) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.NotifyChanged(ctx, userID, "transactions"); err != nil {
		slog.Warn("failed to publish transaction change notification",
			"userID", userID,
			"error", err,
		)
	}
}
