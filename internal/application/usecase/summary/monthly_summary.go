// Package summary contains aggregation use cases over the ledger.
package summary

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
)

// MonthlySummaryInput represents the input for the monthly summary.
type MonthlySummaryInput struct {
	UserID        uuid.UUID
	ReferenceDate time.Time
}

// ListBreakdownEntry is one list's total within the month, descending order.
type ListBreakdownEntry struct {
	ListID uuid.UUID
	Total  decimal.Decimal
	Budget *decimal.Decimal // configured cap, when one exists
}

// MonthlySummaryOutput represents the computed monthly summary.
type MonthlySummaryOutput struct {
	Income      decimal.Decimal // month's income transactions + configured assets
	Expenses    decimal.Decimal
	Balance     decimal.Decimal
	SavingsRate decimal.Decimal // balance/income, 0 when income is 0

	// ExpensesInHours is the month's spending converted to work hours.
	ExpensesInHours decimal.Decimal

	Breakdown []ListBreakdownEntry
}

// MonthlySummaryUseCase computes the income/expense/balance summary for the
// calendar month containing the reference date.
//
// Income deliberately counts both the month's logged income transactions and
// every configured recurring asset; users who also log their salary see it
// twice, matching the long-standing behavior the numbers were built around.
type MonthlySummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	settingsRepo    adapter.SettingsRepository
}

// NewMonthlySummaryUseCase creates a new MonthlySummaryUseCase instance.
func NewMonthlySummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	settingsRepo adapter.SettingsRepository,
) *MonthlySummaryUseCase {
	return &MonthlySummaryUseCase{
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
	}
}

// Execute computes the summary.
func (uc *MonthlySummaryUseCase) Execute(ctx context.Context, input MonthlySummaryInput) (*MonthlySummaryOutput, error) {
	start := time.Date(input.ReferenceDate.Year(), input.ReferenceDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load month transactions: %w", err)
	}

	settings, err := uc.settingsRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	income := settings.TotalAssetAmount()
	expenses := decimal.Zero
	listTotals := map[uuid.UUID]decimal.Decimal{}

	for _, t := range transactions {
		switch t.Type {
		case entity.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			expenses = expenses.Add(t.Amount)
			listTotals[t.ListID] = listTotals[t.ListID].Add(t.Amount)
		}
	}

	balance := income.Sub(expenses)
	savingsRate := decimal.Zero
	if income.IsPositive() {
		savingsRate = balance.Div(income)
	}

	breakdown := make([]ListBreakdownEntry, 0, len(listTotals))
	for listID, total := range listTotals {
		entry := ListBreakdownEntry{ListID: listID, Total: total}
		if budget, ok := settings.Budgets[listID]; ok {
			b := budget
			entry.Budget = &b
		}
		breakdown = append(breakdown, entry)
	}
	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Total.GreaterThan(breakdown[j].Total)
	})

	return &MonthlySummaryOutput{
		Income:          income,
		Expenses:        expenses,
		Balance:         balance,
		SavingsRate:     savingsRate,
		ExpensesInHours: hoursEquivalent(expenses, settings),
		Breakdown:       breakdown,
	}, nil
}
