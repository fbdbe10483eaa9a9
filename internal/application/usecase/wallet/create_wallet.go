// Package wallet contains wallet-registry use cases.
package wallet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

// CreateWalletInput represents the input for wallet creation.
type CreateWalletInput struct {
	UserID     uuid.UUID
	Name       string
	Kind       entity.WalletKind
	ClosingDay *int
	DueDay     *int
}

// CreateWalletOutput represents the output of wallet creation.
type CreateWalletOutput struct {
	Wallet *WalletOutput
}

// CreateWalletUseCase handles wallet creation logic.
type CreateWalletUseCase struct {
	walletRepo adapter.WalletRepository
	notifier   adapter.ChangeNotifier
}

// NewCreateWalletUseCase creates a new CreateWalletUseCase instance.
func NewCreateWalletUseCase(walletRepo adapter.WalletRepository, notifier adapter.ChangeNotifier) *CreateWalletUseCase {
	return &CreateWalletUseCase{
		walletRepo: walletRepo,
		notifier:   notifier,
	}
}

// Execute performs the wallet creation.
func (uc *CreateWalletUseCase) Execute(ctx context.Context, input CreateWalletInput) (*CreateWalletOutput, error) {
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

	wallet := entity.NewWallet(input.UserID, input.Name, input.Kind, input.ClosingDay, input.DueDay)
	if err := uc.walletRepo.Create(ctx, wallet); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyChanged(ctx, input.UserID, "wallets"); err != nil {
			slog.Warn("failed to publish wallet change notification",
				"userID", input.UserID,
				"error", err,
			)
		}
	}

	return &CreateWalletOutput{Wallet: toOutput(wallet)}, nil
}
