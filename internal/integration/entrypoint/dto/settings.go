// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/alquimia/backend/internal/application/usecase/settings"
)

// AssetRequest represents a configured income source in a settings update.
type AssetRequest struct {
	ID     *string `json:"id,omitempty" binding:"omitempty,uuid"`
	Name   string  `json:"name" binding:"required,min=1,max=100"`
	Amount string  `json:"amount" binding:"required"`
}

// EntityRequest represents a configured spending entity in a settings update.
type EntityRequest struct {
	ID   *string `json:"id,omitempty" binding:"omitempty,uuid"`
	Name string  `json:"name" binding:"required,min=1,max=100"`
}

// UpdateSettingsRequest replaces the settings document wholesale. Budgets
// maps list ids to their monthly caps.
type UpdateSettingsRequest struct {
	HourlyRate   string            `json:"hourly_rate"`
	MonthlyHours string            `json:"monthly_hours"`
	Assets       []AssetRequest    `json:"assets"`
	Entities     []EntityRequest   `json:"entities"`
	Budgets      map[string]string `json:"budgets"`
}

// AssetResponse represents a configured income source in API responses.
type AssetResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// EntityResponse represents a configured spending entity in API responses.
type EntityResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SettingsResponse represents the settings document in API responses.
type SettingsResponse struct {
	HourlyRate   string            `json:"hourly_rate"`
	MonthlyHours string            `json:"monthly_hours"`
	Assets       []AssetResponse   `json:"assets"`
	Entities     []EntityResponse  `json:"entities"`
	Budgets      map[string]string `json:"budgets"`
}

// ToSettingsResponse converts a SettingsOutput to a SettingsResponse DTO.
func ToSettingsResponse(s *settings.SettingsOutput) SettingsResponse {
	assets := make([]AssetResponse, len(s.Assets))
	for i, asset := range s.Assets {
		assets[i] = AssetResponse{
			ID:     asset.ID.String(),
			Name:   asset.Name,
			Amount: asset.Amount.String(),
		}
	}

	entities := make([]EntityResponse, len(s.Entities))
	for i, entity := range s.Entities {
		entities[i] = EntityResponse{
			ID:   entity.ID.String(),
			Name: entity.Name,
		}
	}

	budgets := make(map[string]string, len(s.Budgets))
	for listID, amount := range s.Budgets {
		budgets[listID.String()] = amount.String()
	}

	return SettingsResponse{
		HourlyRate:   s.HourlyRate.String(),
		MonthlyHours: s.MonthlyHours.String(),
		Assets:       assets,
		Entities:     entities,
		Budgets:      budgets,
	}
}
