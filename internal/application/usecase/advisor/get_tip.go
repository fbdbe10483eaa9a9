// Package advisor contains the generative advisory use cases. Every
// operation degrades to fixed fallback content when the upstream service is
// unavailable; a failed model call never fails the HTTP request.
package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
)

// FallbackTip is served whenever the advisory service cannot answer.
const FallbackTip = "Registra tus gastos a diario: la constancia vale más que la precisión perfecta."

// GetTipInput represents the input for the daily-tip operation.
type GetTipInput struct {
	UserID uuid.UUID
}

// GetTipOutput represents the generated (or fallback) tip.
type GetTipOutput struct {
	Tip      string
	Fallback bool
}

// GetTipUseCase builds a spending snapshot from the current month and asks
// the advisory service for a short tip.
type GetTipUseCase struct {
	advisor         adapter.AdvisorService
	transactionRepo adapter.TransactionRepository
}

// NewGetTipUseCase creates a new GetTipUseCase instance.
func NewGetTipUseCase(advisor adapter.AdvisorService, transactionRepo adapter.TransactionRepository) *GetTipUseCase {
	return &GetTipUseCase{
		advisor:         advisor,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the tip generation.
func (uc *GetTipUseCase) Execute(ctx context.Context, input GetTipInput) (*GetTipOutput, error) {
	if uc.advisor == nil || !uc.advisor.IsAvailable() {
		return &GetTipOutput{Tip: FallbackTip, Fallback: true}, nil
	}

	snapshot, err := uc.buildSnapshot(ctx, input.UserID)
	if err != nil {
		slog.Warn("failed to build spending snapshot for tip",
			"userID", input.UserID,
			"error", err,
		)
		return &GetTipOutput{Tip: FallbackTip, Fallback: true}, nil
	}

	tip, err := uc.advisor.GetDailyTip(ctx, snapshot)
	if err != nil || tip == "" {
		slog.Warn("advisory service failed to generate tip",
			"userID", input.UserID,
			"error", err,
		)
		return &GetTipOutput{Tip: FallbackTip, Fallback: true}, nil
	}

	return &GetTipOutput{Tip: tip}, nil
}

// buildSnapshot aggregates the current month for the prompt.
func (uc *GetTipUseCase) buildSnapshot(ctx context.Context, userID uuid.UUID) (adapter.SpendingSnapshot, error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    userID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return adapter.SpendingSnapshot{}, fmt.Errorf("failed to load month transactions: %w", err)
	}

	snapshot := adapter.SpendingSnapshot{
		MonthIncome:   decimal.Zero,
		MonthExpenses: decimal.Zero,
	}
	elementTotals := map[entity.Element]decimal.Decimal{}
	for _, t := range transactions {
		switch t.Type {
		case entity.TransactionTypeIncome:
			snapshot.MonthIncome = snapshot.MonthIncome.Add(t.Amount)
		case entity.TransactionTypeExpense:
			snapshot.MonthExpenses = snapshot.MonthExpenses.Add(t.Amount)
			elementTotals[t.Element] = elementTotals[t.Element].Add(t.Amount)
		}
	}
	dominant := decimal.Zero
	for element, total := range elementTotals {
		if total.GreaterThan(dominant) {
			dominant = total
			snapshot.DominantElement = string(element)
		}
	}
	return snapshot, nil
}
