// Package summary contains aggregation use cases over the ledger.
package summary

import (
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/domain/entity"
)

// hoursEquivalent converts an amount into work hours using the configured
// assets and monthly-hours baseline. Any zero or absent denominator yields
// zero rather than an error.
func hoursEquivalent(amount decimal.Decimal, settings *entity.Settings) decimal.Decimal {
	if settings == nil {
		return decimal.Zero
	}
	totalAssets := settings.TotalAssetAmount()
	if totalAssets.IsZero() || settings.MonthlyHours.IsZero() {
		return decimal.Zero
	}
	hourlyRate := totalAssets.Div(settings.MonthlyHours)
	if hourlyRate.IsZero() {
		return decimal.Zero
	}
	return amount.Div(hourlyRate).Round(2)
}
