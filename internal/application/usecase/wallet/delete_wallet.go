// Package wallet contains wallet-registry use cases.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/application/adapter"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

// DeleteWalletInput represents the input for wallet deletion.
type DeleteWalletInput struct {
	WalletID uuid.UUID
	UserID   uuid.UUID
}

// DeleteWalletOutput represents the output of wallet deletion.
type DeleteWalletOutput struct {
	Success bool

	// DanglingTransactions is the number of transactions that still reference
	// the deleted wallet. Deletion never cascades.
	DanglingTransactions int64
}

// DeleteWalletUseCase handles wallet deletion logic.
type DeleteWalletUseCase struct {
	walletRepo adapter.WalletRepository
	notifier   adapter.ChangeNotifier
}

// NewDeleteWalletUseCase creates a new DeleteWalletUseCase instance.
func NewDeleteWalletUseCase(walletRepo adapter.WalletRepository, notifier adapter.ChangeNotifier) *DeleteWalletUseCase {
	return &DeleteWalletUseCase{
		walletRepo: walletRepo,
		notifier:   notifier,
	}
}

// Execute performs the wallet deletion.
func (uc *DeleteWalletUseCase) Execute(ctx context.Context, input DeleteWalletInput) (*DeleteWalletOutput, error) {
	wallet, err := uc.walletRepo.FindByID(ctx, input.WalletID)
	if err != nil {
		if errors.Is(err, domainerror.ErrWalletNotFound) {
			return nil, domainerror.NewWalletError(
				domainerror.ErrCodeWalletNotFound,
				"wallet not found",
				domainerror.ErrWalletNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find wallet: %w", err)
	}
	if wallet.UserID != input.UserID {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeWalletNotFound,
			"wallet not found",
			domainerror.ErrWalletNotFound,
		)
	}

	dangling, err := uc.walletRepo.CountTransactions(ctx, input.WalletID)
	if err != nil {
		return nil, fmt.Errorf("failed to count wallet transactions: %w", err)
	}

	if err := uc.walletRepo.Delete(ctx, input.WalletID); err != nil {
		return nil, fmt.Errorf("failed to delete wallet: %w", err)
	}

	if dangling > 0 {
		slog.Info("wallet deleted with dangling transaction references",
			"walletID", input.WalletID,
			"count", dangling,
		)
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyChanged(ctx, input.UserID, "wallets"); err != nil {
			slog.Warn("failed to publish wallet change notification",
				"userID", input.UserID,
				"error", err,
			)
		}
	}

	return &DeleteWalletOutput{Success: true, DanglingTransactions: dangling}, nil
}
