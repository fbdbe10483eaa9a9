// Package summary contains aggregation use cases over the ledger.
package summary

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/application/adapter"
)

// HoursEquivalentInput represents the input for the hours-of-life conversion.
type HoursEquivalentInput struct {
	UserID uuid.UUID
	Amount decimal.Decimal
}

// HoursEquivalentOutput represents the conversion result.
type HoursEquivalentOutput struct {
	Hours decimal.Decimal
}

// HoursEquivalentUseCase converts an amount into the work hours it costs,
// based on the configured assets and monthly hours.
type HoursEquivalentUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewHoursEquivalentUseCase creates a new HoursEquivalentUseCase instance.
func NewHoursEquivalentUseCase(settingsRepo adapter.SettingsRepository) *HoursEquivalentUseCase {
	return &HoursEquivalentUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute performs the conversion.
func (uc *HoursEquivalentUseCase) Execute(ctx context.Context, input HoursEquivalentInput) (*HoursEquivalentOutput, error) {
	settings, err := uc.settingsRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &HoursEquivalentOutput{Hours: hoursEquivalent(input.Amount, settings)}, nil
}
