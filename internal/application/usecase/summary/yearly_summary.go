// Package summary contains aggregation use cases over the ledger.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
)

// YearlySummaryInput represents the input for the yearly summary.
type YearlySummaryInput struct {
	UserID uuid.UUID
	Year   int
}

// MonthSeriesEntry is one month's aggregate in the yearly series.
type MonthSeriesEntry struct {
	Month    time.Month
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// YearlySummaryOutput represents the computed yearly summary.
type YearlySummaryOutput struct {
	Year   int
	Months [12]MonthSeriesEntry

	// Elements holds the year's expense total per elemental tag.
	Elements map[entity.Element]decimal.Decimal
}

// YearlySummaryUseCase computes the per-month income/expense series and the
// elemental expense breakdown for a calendar year. Unlike the monthly
// summary, the series reflects logged transactions only; configured assets
// are not mixed in.
type YearlySummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewYearlySummaryUseCase creates a new YearlySummaryUseCase instance.
func NewYearlySummaryUseCase(transactionRepo adapter.TransactionRepository) *YearlySummaryUseCase {
	return &YearlySummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the yearly series.
func (uc *YearlySummaryUseCase) Execute(ctx context.Context, input YearlySummaryInput) (*YearlySummaryOutput, error) {
	start := time.Date(input.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0).Add(-time.Nanosecond)

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load year transactions: %w", err)
	}

	out := &YearlySummaryOutput{
		Year:     input.Year,
		Elements: map[entity.Element]decimal.Decimal{},
	}
	for _, element := range entity.Elements {
		out.Elements[element] = decimal.Zero
	}
	for i := range out.Months {
		out.Months[i].Month = time.Month(i + 1)
		out.Months[i].Income = decimal.Zero
		out.Months[i].Expenses = decimal.Zero
		out.Months[i].Balance = decimal.Zero
	}

	for _, t := range transactions {
		idx := int(t.Date.Month()) - 1
		switch t.Type {
		case entity.TransactionTypeIncome:
			out.Months[idx].Income = out.Months[idx].Income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			out.Months[idx].Expenses = out.Months[idx].Expenses.Add(t.Amount)
			if t.Element.IsValid() {
				out.Elements[t.Element] = out.Elements[t.Element].Add(t.Amount)
			}
		}
	}

	for i := range out.Months {
		out.Months[i].Balance = out.Months[i].Income.Sub(out.Months[i].Expenses)
	}

	return out, nil
}
