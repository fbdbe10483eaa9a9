// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/domain/entity"
)

// TransmutationListModel represents the transmutation_lists table in the database.
type TransmutationListModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Name             string    `gorm:"type:varchar(100);not null"`
	IsCreditCardView bool      `gorm:"default:false"`
	IsLoansView      bool      `gorm:"default:false"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`

	Items []TransmutationItemModel `gorm:"foreignKey:ListID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the TransmutationListModel.
func (TransmutationListModel) TableName() string {
	return "transmutation_lists"
}

// TransmutationItemModel represents the transmutation_items table in the database.
type TransmutationItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ListID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	IsCompleted bool            `gorm:"default:false"`
	DueDate     *int            `gorm:"type:integer"`
	IsRecurring bool            `gorm:"default:false"`
	Position    int             `gorm:"not null;default:0"`
}

// TableName returns the table name for the TransmutationItemModel.
func (TransmutationItemModel) TableName() string {
	return "transmutation_items"
}

// ToEntity converts a TransmutationListModel with its items to a domain entity.
func (m *TransmutationListModel) ToEntity() *entity.TransmutationList {
	items := make([]*entity.TransmutationItem, len(m.Items))
	for i, im := range m.Items {
		items[i] = &entity.TransmutationItem{
			ID:          im.ID,
			Name:        im.Name,
			Amount:      im.Amount,
			IsCompleted: im.IsCompleted,
			DueDate:     im.DueDate,
			IsRecurring: im.IsRecurring,
		}
	}

	return &entity.TransmutationList{
		ID:               m.ID,
		UserID:           m.UserID,
		Name:             m.Name,
		Items:            items,
		IsCreditCardView: m.IsCreditCardView,
		IsLoansView:      m.IsLoansView,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// TransmutationListFromEntity creates a TransmutationListModel from a domain entity.
// Item order is preserved through the position column.
func TransmutationListFromEntity(list *entity.TransmutationList) *TransmutationListModel {
	items := make([]TransmutationItemModel, len(list.Items))
	for i, item := range list.Items {
		items[i] = TransmutationItemModel{
			ID:          item.ID,
			ListID:      list.ID,
			Name:        item.Name,
			Amount:      item.Amount,
			IsCompleted: item.IsCompleted,
			DueDate:     item.DueDate,
			IsRecurring: item.IsRecurring,
			Position:    i,
		}
	}

	return &TransmutationListModel{
		ID:               list.ID,
		UserID:           list.UserID,
		Name:             list.Name,
		IsCreditCardView: list.IsCreditCardView,
		IsLoansView:      list.IsLoansView,
		CreatedAt:        list.CreatedAt,
		UpdatedAt:        list.UpdatedAt,
		Items:            items,
	}
}
