// Package settings contains user-settings use cases.
package settings

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

// AssetInput represents a configured income source in an update.
type AssetInput struct {
	ID     *uuid.UUID // nil for new assets
	Name   string
	Amount decimal.Decimal
}

// EntityInput represents a configured spending entity in an update.
type EntityInput struct {
	ID   *uuid.UUID // nil for new entities
	Name string
}

// UpdateSettingsInput replaces the settings document wholesale.
type UpdateSettingsInput struct {
	UserID       uuid.UUID
	HourlyRate   decimal.Decimal
	MonthlyHours decimal.Decimal
	Assets       []AssetInput
	Entities     []EntityInput
	Budgets      map[uuid.UUID]decimal.Decimal
}

// UpdateSettingsOutput represents the output of a settings update.
type UpdateSettingsOutput struct {
	Settings *SettingsOutput
}

// UpdateSettingsUseCase replaces the settings document. The whole document is
// last-write-wins; there is no per-field merging.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
	notifier     adapter.ChangeNotifier
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository, notifier adapter.ChangeNotifier) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingsRepo: settingsRepo,
		notifier:     notifier,
	}
}

// Execute performs the replacement.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if input.MonthlyHours.IsNegative() {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidMonthlyHours,
			"monthly hours cannot be negative",
			domainerror.ErrInvalidMonthlyHours,
		)
	}
	for _, asset := range input.Assets {
		if asset.Amount.IsNegative() {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidAssetAmount,
				"asset amount cannot be negative",
				domainerror.ErrInvalidAssetAmount,
			)
		}
	}

	settings := &entity.Settings{
		UserID:       input.UserID,
		HourlyRate:   input.HourlyRate,
		MonthlyHours: input.MonthlyHours,
		Assets:       make([]*entity.Asset, 0, len(input.Assets)),
		Entities:     make([]*entity.SpendingEntity, 0, len(input.Entities)),
		Budgets:      map[uuid.UUID]decimal.Decimal{},
		UpdatedAt:    time.Now().UTC(),
	}
	for _, a := range input.Assets {
		id := uuid.New()
		if a.ID != nil {
			id = *a.ID
		}
		settings.Assets = append(settings.Assets, &entity.Asset{ID: id, Name: a.Name, Amount: a.Amount})
	}
	for _, e := range input.Entities {
		id := uuid.New()
		if e.ID != nil {
			id = *e.ID
		}
		settings.Entities = append(settings.Entities, &entity.SpendingEntity{ID: id, Name: e.Name})
	}
	for listID, amount := range input.Budgets {
		settings.Budgets[listID] = amount
	}

	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyChanged(ctx, input.UserID, "settings"); err != nil {
			slog.Warn("failed to publish settings change notification",
				"userID", input.UserID,
				"error", err,
			)
		}
	}

	return &UpdateSettingsOutput{Settings: toOutput(settings)}, nil
}
