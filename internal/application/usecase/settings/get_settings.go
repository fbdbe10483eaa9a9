// Package settings contains user-settings use cases.
package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

// AssetOutput represents a configured income source.
type AssetOutput struct {
	ID     uuid.UUID
	Name   string
	Amount decimal.Decimal
}

// EntityOutput represents a configured spending entity.
type EntityOutput struct {
	ID   uuid.UUID
	Name string
}

// SettingsOutput represents the settings document in use case outputs.
type SettingsOutput struct {
	HourlyRate   decimal.Decimal
	MonthlyHours decimal.Decimal
	Assets       []*AssetOutput
	Entities     []*EntityOutput
	Budgets      map[uuid.UUID]decimal.Decimal
	UpdatedAt    time.Time
}

// GetSettingsInput represents the input for reading settings.
type GetSettingsInput struct {
	UserID uuid.UUID
}

// GetSettingsOutput represents the output of reading settings.
type GetSettingsOutput struct {
	Settings *SettingsOutput
}

// GetSettingsUseCase reads the settings document, materializing the seed
// defaults when the user has none stored yet.
type GetSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute performs the read.
func (uc *GetSettingsUseCase) Execute(ctx context.Context, input GetSettingsInput) (*GetSettingsOutput, error) {
	settings, err := uc.settingsRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrSettingsNotFound) {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		settings = entity.NewSettings(input.UserID)
		if saveErr := uc.settingsRepo.Save(ctx, settings); saveErr != nil {
			return nil, fmt.Errorf("failed to seed default settings: %w", saveErr)
		}
	}

	return &GetSettingsOutput{Settings: toOutput(settings)}, nil
}

// toOutput maps a settings entity into its output representation.
func toOutput(s *entity.Settings) *SettingsOutput {
	assets := make([]*AssetOutput, 0, len(s.Assets))
	for _, a := range s.Assets {
		assets = append(assets, &AssetOutput{ID: a.ID, Name: a.Name, Amount: a.Amount})
	}
	entities := make([]*EntityOutput, 0, len(s.Entities))
	for _, e := range s.Entities {
		entities = append(entities, &EntityOutput{ID: e.ID, Name: e.Name})
	}
	budgets := make(map[uuid.UUID]decimal.Decimal, len(s.Budgets))
	for listID, amount := range s.Budgets {
		budgets[listID] = amount
	}
	return &SettingsOutput{
		HourlyRate:   s.HourlyRate,
		MonthlyHours: s.MonthlyHours,
		Assets:       assets,
		Entities:     entities,
		Budgets:      budgets,
		UpdatedAt:    s.UpdatedAt,
	}
}
