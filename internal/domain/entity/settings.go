// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset is a recurring guaranteed income source configured in settings,
// independent of logged transactions.
type Asset struct {
	ID     uuid.UUID
	Name   string
	Amount decimal.Decimal // expected monthly income
}

// SpendingEntity is an optional tag transactions can reference (a person or
// organization money moves through).
type SpendingEntity struct {
	ID   uuid.UUID
	Name string
}

// Settings holds the per-user configuration consumed by the summary
// calculations.
type Settings struct {
	UserID       uuid.UUID
	HourlyRate   decimal.Decimal // legacy explicit rate, superseded by assets/monthly hours
	MonthlyHours decimal.Decimal // work-hours baseline for hours-of-life metrics
	Assets       []*Asset
	Entities     []*SpendingEntity
	Budgets      map[uuid.UUID]decimal.Decimal // optional per-list budget caps
	UpdatedAt    time.Time
}

// NewSettings creates settings with the seed defaults for a new user.
func NewSettings(userID uuid.UUID) *Settings {
	return &Settings{
		UserID:       userID,
		HourlyRate:   decimal.Zero,
		MonthlyHours: decimal.Zero,
		Assets: []*Asset{
			{ID: uuid.New(), Name: "Sueldo Principal", Amount: decimal.Zero},
		},
		Entities:  []*SpendingEntity{},
		Budgets:   map[uuid.UUID]decimal.Decimal{},
		UpdatedAt: time.Now().UTC(),
	}
}

// TotalAssetAmount sums the configured monthly asset amounts.
func (s *Settings) TotalAssetAmount() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.Assets {
		total = total.Add(a.Amount)
	}
	return total
}
