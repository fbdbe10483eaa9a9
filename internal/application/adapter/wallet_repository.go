// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/domain/entity"
)

// WalletRepository defines the interface for wallet persistence operations.
type WalletRepository interface {
	// Create creates a new wallet in the database.
	Create(ctx context.Context, wallet *entity.Wallet) error

	// CreateBatch creates all wallets atomically. Used for default seeding.
	CreateBatch(ctx context.Context, wallets []*entity.Wallet) error

	// FindByID retrieves a wallet by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Wallet, error)

	// FindByUser retrieves all wallets for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error)

	// Update updates an existing wallet in the database.
	Update(ctx context.Context, wallet *entity.Wallet) error

	// Delete removes a wallet from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountTransactions counts the transactions referencing a wallet.
	CountTransactions(ctx context.Context, walletID uuid.UUID) (int64, error)
}
