// Package wallet contains wallet-registry use cases.
package wallet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
)

// ListWalletsInput represents the input for listing wallets.
type ListWalletsInput struct {
	UserID uuid.UUID
}

// ListWalletsOutput represents the output of listing wallets.
type ListWalletsOutput struct {
	Wallets []*WalletOutput
}

// ListWalletsUseCase retrieves a user's wallets, seeding the defaults when
// none exist yet.
type ListWalletsUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewListWalletsUseCase creates a new ListWalletsUseCase instance.
func NewListWalletsUseCase(walletRepo adapter.WalletRepository) *ListWalletsUseCase {
	return &ListWalletsUseCase{
		walletRepo: walletRepo,
	}
}

// Execute performs the wallet listing.
func (uc *ListWalletsUseCase) Execute(ctx context.Context, input ListWalletsInput) (*ListWalletsOutput, error) {
	wallets, err := uc.walletRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}

	if len(wallets) == 0 {
		wallets = entity.DefaultWallets(input.UserID)
		if err := uc.walletRepo.CreateBatch(ctx, wallets); err != nil {
			return nil, fmt.Errorf("failed to seed default wallets: %w", err)
		}
	}

	outputs := make([]*WalletOutput, 0, len(wallets))
	for _, w := range wallets {
		outputs = append(outputs, toOutput(w))
	}
	return &ListWalletsOutput{Wallets: outputs}, nil
}
