// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/domain/entity"
)

// SettingsModel represents the settings table in the database. One row per
// user; assets, entities, and budgets are stored as JSONB documents since they
// are always read and written wholesale.
type SettingsModel struct {
	UserID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	HourlyRate   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	MonthlyHours decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Assets       string          `gorm:"type:jsonb;not null;default:'[]'"`
	Entities     string          `gorm:"type:jsonb;not null;default:'[]'"`
	Budgets      string          `gorm:"type:jsonb;not null;default:'{}'"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SettingsModel.
func (SettingsModel) TableName() string {
	return "settings"
}

type assetDoc struct {
	ID     uuid.UUID       `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type entityDoc struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ToEntity converts a SettingsModel to a domain Settings entity.
func (m *SettingsModel) ToEntity() *entity.Settings {
	var assetDocs []assetDoc
	if err := json.Unmarshal([]byte(m.Assets), &assetDocs); err != nil {
		slog.Warn("failed to unmarshal settings assets", "error", err, "user_id", m.UserID)
	}
	assets := make([]*entity.Asset, len(assetDocs))
	for i, a := range assetDocs {
		assets[i] = &entity.Asset{ID: a.ID, Name: a.Name, Amount: a.Amount}
	}

	var entityDocs []entityDoc
	if err := json.Unmarshal([]byte(m.Entities), &entityDocs); err != nil {
		slog.Warn("failed to unmarshal settings entities", "error", err, "user_id", m.UserID)
	}
	entities := make([]*entity.SpendingEntity, len(entityDocs))
	for i, e := range entityDocs {
		entities[i] = &entity.SpendingEntity{ID: e.ID, Name: e.Name}
	}

	var budgetDocs map[uuid.UUID]decimal.Decimal
	if err := json.Unmarshal([]byte(m.Budgets), &budgetDocs); err != nil {
		slog.Warn("failed to unmarshal settings budgets", "error", err, "user_id", m.UserID)
	}
	if budgetDocs == nil {
		budgetDocs = map[uuid.UUID]decimal.Decimal{}
	}

	return &entity.Settings{
		UserID:       m.UserID,
		HourlyRate:   m.HourlyRate,
		MonthlyHours: m.MonthlyHours,
		Assets:       assets,
		Entities:     entities,
		Budgets:      budgetDocs,
		UpdatedAt:    m.UpdatedAt,
	}
}

// SettingsFromEntity creates a SettingsModel from a domain Settings entity.
func SettingsFromEntity(settings *entity.Settings) *SettingsModel {
	assetDocs := make([]assetDoc, len(settings.Assets))
	for i, a := range settings.Assets {
		assetDocs[i] = assetDoc{ID: a.ID, Name: a.Name, Amount: a.Amount}
	}
	entityDocs := make([]entityDoc, len(settings.Entities))
	for i, e := range settings.Entities {
		entityDocs[i] = entityDoc{ID: e.ID, Name: e.Name}
	}

	assetsJSON, err := json.Marshal(assetDocs)
	if err != nil {
		slog.Error("failed to marshal settings assets", "error", err, "user_id", settings.UserID)
		assetsJSON = []byte("[]")
	}
	entitiesJSON, err := json.Marshal(entityDocs)
	if err != nil {
		slog.Error("failed to marshal settings entities", "error", err, "user_id", settings.UserID)
		entitiesJSON = []byte("[]")
	}
	budgetsJSON, err := json.Marshal(settings.Budgets)
	if err != nil {
		slog.Error("failed to marshal settings budgets", "error", err, "user_id", settings.UserID)
		budgetsJSON = []byte("{}")
	}

	return &SettingsModel{
		UserID:       settings.UserID,
		HourlyRate:   settings.HourlyRate,
		MonthlyHours: settings.MonthlyHours,
		Assets:       string(assetsJSON),
		Entities:     string(entitiesJSON),
		Budgets:      string(budgetsJSON),
		UpdatedAt:    settings.UpdatedAt,
	}
}
