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

// listRepository implements the adapter.TransmutationListRepository interface.
type listRepository struct {
	db *gorm.DB
}

// NewTransmutationListRepository creates a new list repository instance.
func NewTransmutationListRepository(db *gorm.DB) adapter.TransmutationListRepository {
	return &listRepository{
		db: db,
	}
}

// Create creates a new list with its items in the database.
func (r *listRepository) Create(ctx context.Context, list *entity.TransmutationList) error {
	listModel := model.TransmutationListFromEntity(list)
	result := r.db.WithContext(ctx).Create(listModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateBatch creates all lists atomically. Used for default seeding.
func (r *listRepository) CreateBatch(ctx context.Context, lists []*entity.TransmutationList) error {
	if len(lists) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, list := range lists {
			listModel := model.TransmutationListFromEntity(list)
			if err := tx.Create(listModel).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID retrieves a list with its items by ID.
func (r *listRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TransmutationList, error) {
	var listModel model.TransmutationListModel
	result := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&listModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrListNotFound
		}
		return nil, result.Error
	}
	return listModel.ToEntity(), nil
}

// FindByUser retrieves all lists with their items for a given user.
func (r *listRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.TransmutationList, error) {
	var listModels []model.TransmutationListModel
	result := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&listModels)
	if result.Error != nil {
		return nil, result.Error
	}

	lists := make([]*entity.TransmutationList, len(listModels))
	for i, lm := range listModels {
		lists[i] = lm.ToEntity()
	}
	return lists, nil
}

// Update updates a list and replaces its items wholesale.
func (r *listRepository) Update(ctx context.Context, list *entity.TransmutationList) error {
	listModel := model.TransmutationListFromEntity(list)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", list.ID).
			Delete(&model.TransmutationItemModel{}).Error; err != nil {
			return err
		}
		if err := tx.Omit("Items").Save(listModel).Error; err != nil {
			return err
		}
		for i := range listModel.Items {
			if err := tx.Create(&listModel.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a list and its items from the database.
func (r *listRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", id).
			Delete(&model.TransmutationItemModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.TransmutationListModel{}, "id = ?", id).Error
	})
}
