// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/domain/entity"
)

// SyncRepository replaces whole sections of a user's document. Each call is
// atomic: the user's stored rows for that section are swapped for the given
// set, last write wins.
type SyncRepository interface {
	// ReplaceTransactions swaps the user's transactions for the given set.
	ReplaceTransactions(ctx context.Context, userID uuid.UUID, transactions []*entity.Transaction) error

	// ReplaceWallets swaps the user's wallets for the given set.
	ReplaceWallets(ctx context.Context, userID uuid.UUID, wallets []*entity.Wallet) error

	// ReplaceLists swaps the user's transmutation lists for the given set.
	ReplaceLists(ctx context.Context, userID uuid.UUID, lists []*entity.TransmutationList) error
}
