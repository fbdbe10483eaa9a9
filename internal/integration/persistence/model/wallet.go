// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/domain/entity"
)

// WalletModel represents the wallets table in the database.
type WalletModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Kind       string    `gorm:"type:varchar(10);not null"`
	ClosingDay *int      `gorm:"type:integer"`
	DueDay     *int      `gorm:"type:integer"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the WalletModel.
func (WalletModel) TableName() string {
	return "wallets"
}

// ToEntity converts a WalletModel to a domain Wallet entity.
func (m *WalletModel) ToEntity() *entity.Wallet {
	return &entity.Wallet{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		Kind:       entity.WalletKind(m.Kind),
		ClosingDay: m.ClosingDay,
		DueDay:     m.DueDay,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// WalletFromEntity creates a WalletModel from a domain Wallet entity.
func WalletFromEntity(wallet *entity.Wallet) *WalletModel {
	return &WalletModel{
		ID:         wallet.ID,
		UserID:     wallet.UserID,
		Name:       wallet.Name,
		Kind:       string(wallet.Kind),
		ClosingDay: wallet.ClosingDay,
		DueDay:     wallet.DueDay,
		CreatedAt:  wallet.CreatedAt,
		UpdatedAt:  wallet.UpdatedAt,
	}
}
