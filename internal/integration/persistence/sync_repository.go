// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
	"github.com/alquimia/backend/internal/integration/persistence/model"
)

// syncRepository implements the adapter.SyncRepository interface. Each Replace
// call swaps a whole section of the user's document inside one transaction,
// last write wins.
type syncRepository struct {
	db *gorm.DB
}

// NewSyncRepository creates a new sync repository instance.
func NewSyncRepository(db *gorm.DB) adapter.SyncRepository {
	return &syncRepository{
		db: db,
	}
}

// ReplaceTransactions swaps the user's transactions for the given set.
func (r *syncRepository) ReplaceTransactions(ctx context.Context, userID uuid.UUID, transactions []*entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Delete(&model.TransactionModel{}).Error; err != nil {
			return err
		}
		for _, txn := range transactions {
			transactionModel := model.TransactionFromEntity(txn)
			if err := tx.Create(transactionModel).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceWallets swaps the user's wallets for the given set.
func (r *syncRepository) ReplaceWallets(ctx context.Context, userID uuid.UUID, wallets []*entity.Wallet) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Delete(&model.WalletModel{}).Error; err != nil {
			return err
		}
		for _, wallet := range wallets {
			walletModel := model.WalletFromEntity(wallet)
			if err := tx.Create(walletModel).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceLists swaps the user's transmutation lists for the given set.
func (r *syncRepository) ReplaceLists(ctx context.Context, userID uuid.UUID, lists []*entity.TransmutationList) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id IN (SELECT id FROM transmutation_lists WHERE user_id = ?)", userID).
			Delete(&model.TransmutationItemModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).
			Delete(&model.TransmutationListModel{}).Error; err != nil {
			return err
		}
		for _, list := range lists {
			listModel := model.TransmutationListFromEntity(list)
			if err := tx.Create(listModel).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
