// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
	"github.com/alquimia/backend/internal/integration/persistence/model"
)

// walletRepository implements the adapter.WalletRepository interface.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository instance.
func NewWalletRepository(db *gorm.DB) adapter.WalletRepository {
	return &walletRepository{
		db: db,
	}
}

// Create creates a new wallet in the database.
func (r *walletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	walletModel := model.WalletFromEntity(wallet)
	result := r.db.WithContext(ctx).Create(walletModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateBatch creates all wallets atomically. Used for default seeding.
func (r *walletRepository) CreateBatch(ctx context.Context, wallets []*entity.Wallet) error {
	if len(wallets) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, wallet := range wallets {
			walletModel := model.WalletFromEntity(wallet)
			if err := tx.Create(walletModel).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID retrieves a wallet by its ID.
func (r *walletRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Wallet, error) {
	var walletModel model.WalletModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&walletModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrWalletNotFound
		}
		return nil, result.Error
	}
	return walletModel.ToEntity(), nil
}

// FindByUser retrieves all wallets for a given user.
func (r *walletRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error) {
	var walletModels []model.WalletModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&walletModels)
	if result.Error != nil {
		return nil, result.Error
	}

	wallets := make([]*entity.Wallet, len(walletModels))
	for i, wm := range walletModels {
		wallets[i] = wm.ToEntity()
	}
	return wallets, nil
}

// Update updates an existing wallet in the database.
func (r *walletRepository) Update(ctx context.Context, wallet *entity.Wallet) error {
	walletModel := model.WalletFromEntity(wallet)
	result := r.db.WithContext(ctx).Save(walletModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a wallet from the database.
func (r *walletRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.WalletModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CountTransactions counts the transactions referencing a wallet.
func (r *walletRepository) CountTransactions(ctx context.Context, walletID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("wallet_id = ?", walletID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
