// Package wallet contains wallet-registry use cases.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

// UpdateWalletInput represents the input for wallet replacement.
type UpdateWalletInput struct {
	WalletID   uuid.UUID
	UserID     uuid.UUID
	Name       string
	Kind       entity.WalletKind
	ClosingDay *int
	DueDay     *int
}

// UpdateWalletOutput represents the output of wallet replacement.
type UpdateWalletOutput struct {
	Wallet *WalletOutput
}

// UpdateWalletUseCase handles wallet replacement logic. Changing the cycle
// days never reschedules existing installment legs; they keep the dates they
// were created with.
type UpdateWalletUseCase struct {
	walletRepo adapter.WalletRepository
	notifier   adapter.ChangeNotifier
}

// NewUpdateWalletUseCase creates a new UpdateWalletUseCase instance.
func NewUpdateWalletUseCase(walletRepo adapter.WalletRepository, notifier adapter.ChangeNotifier) *UpdateWalletUseCase {
	return &UpdateWalletUseCase{
		walletRepo: walletRepo,
		notifier:   notifier,
	}
}

// Execute performs the wallet replacement.
func (uc *UpdateWalletUseCase) Execute(ctx context.Context, input UpdateWalletInput) (*UpdateWalletOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeInvalidWalletName,
			"wallet name cannot be empty",
			domainerror.ErrInvalidWalletName,
		)
	}
	if !input.Kind.IsValid() {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeInvalidWalletKind,
			"wallet kind must be 'cash', 'debit' or 'credit'",
			domainerror.ErrInvalidWalletKind,
		)
	}
	if err := validateCycleDays(input.ClosingDay, input.DueDay); err != nil {
		return nil, err
	}

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

	wallet.Name = input.Name
	wallet.Kind = input.Kind
	wallet.ClosingDay = input.ClosingDay
	wallet.DueDay = input.DueDay
	wallet.UpdatedAt = time.Now().UTC()

	if err := uc.walletRepo.Update(ctx, wallet); err != nil {
		return nil, fmt.Errorf("failed to update wallet: %w", err)
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyChanged(ctx, input.UserID, "wallets"); err != nil {
			slog.Warn("failed to publish wallet change notification",
				"userID", input.UserID,
				"error", err,
			)
		}
	}

	return &UpdateWalletOutput{Wallet: toOutput(wallet)}, nil
}
