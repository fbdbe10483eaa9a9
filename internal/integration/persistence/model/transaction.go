// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description string          `gorm:"type:varchar(255);not null"`
	ListID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Element     string          `gorm:"type:varchar(10);not null"`
	WalletID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	EntityID    *uuid.UUID      `gorm:"type:uuid"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Feeling     *string         `gorm:"type:varchar(10)"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	// Installment leg fields; all three are set together or not at all.
	InstallmentCurrent *int       `gorm:"type:integer"`
	InstallmentTotal   *int       `gorm:"type:integer"`
	OriginalID         *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var feeling *entity.Feeling
	if m.Feeling != nil {
		f := entity.Feeling(*m.Feeling)
		feeling = &f
	}

	var installments *entity.InstallmentInfo
	if m.OriginalID != nil && m.InstallmentCurrent != nil && m.InstallmentTotal != nil {
		installments = &entity.InstallmentInfo{
			Current:    *m.InstallmentCurrent,
			Total:      *m.InstallmentTotal,
			OriginalID: *m.OriginalID,
		}
	}

	return &entity.Transaction{
		ID:           m.ID,
		UserID:       m.UserID,
		Type:         entity.TransactionType(m.Type),
		Amount:       m.Amount,
		Description:  m.Description,
		ListID:       m.ListID,
		Element:      entity.Element(m.Element),
		WalletID:     m.WalletID,
		EntityID:     m.EntityID,
		Date:         m.Date,
		Feeling:      feeling,
		Installments: installments,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var feeling *string
	if transaction.Feeling != nil {
		f := string(*transaction.Feeling)
		feeling = &f
	}

	m := &TransactionModel{
		ID:          transaction.ID,
		UserID:      transaction.UserID,
		Type:        string(transaction.Type),
		Amount:      transaction.Amount,
		Description: transaction.Description,
		ListID:      transaction.ListID,
		Element:     string(transaction.Element),
		WalletID:    transaction.WalletID,
		EntityID:    transaction.EntityID,
		Date:        transaction.Date,
		Feeling:     feeling,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}

	if transaction.Installments != nil {
		current := transaction.Installments.Current
		total := transaction.Installments.Total
		originalID := transaction.Installments.OriginalID
		m.InstallmentCurrent = &current
		m.InstallmentTotal = &total
		m.OriginalID = &originalID
	}

	return m
}
