// Package summary contains aggregation use cases over the ledger.
package summary

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	r.transactions = append(r.transactions, t)
	return nil
}

func (r *fakeTransactionRepo) CreateBatch(_ context.Context, ts []*entity.Transaction) error {
	r.transactions = append(r.transactions, ts...)
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, t := range r.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindByFilter(_ context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.UserID != filter.UserID {
			continue
		}
		if filter.StartDate != nil && t.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && t.Date.After(*filter.EndDate) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTransactionRepo) FindByInstallmentGroup(_ context.Context, _, _ uuid.UUID) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) FindDueBetween(_ context.Context, _, _ time.Time) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, _ *entity.Transaction) error { return nil }

func (r *fakeTransactionRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *fakeTransactionRepo) DeleteByInstallmentGroup(_ context.Context, _, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeTransactionRepo) ExistsByIDAndUser(_ context.Context, _ uuid.UUID, _ uuid.UUID) (bool, error) {
	return false, nil
}

type fakeSettingsRepo struct {
	settings *entity.Settings
}

func (r *fakeSettingsRepo) FindByUser(_ context.Context, userID uuid.UUID) (*entity.Settings, error) {
	if r.settings != nil {
		return r.settings, nil
	}
	return entity.NewSettings(userID), nil
}

func (r *fakeSettingsRepo) Save(_ context.Context, s *entity.Settings) error {
	r.settings = s
	return nil
}

func expense(userID, listID uuid.UUID, amount int64, date time.Time, element entity.Element) *entity.Transaction {
	return entity.NewTransaction(
		userID, entity.TransactionTypeExpense, decimal.NewFromInt(amount),
		"gasto", listID, element, uuid.New(), nil, date, nil,
	)
}

func income(userID, listID uuid.UUID, amount int64, date time.Time) *entity.Transaction {
	return entity.NewTransaction(
		userID, entity.TransactionTypeIncome, decimal.NewFromInt(amount),
		"ingreso", listID, entity.ElementTierra, uuid.New(), nil, date, nil,
	)
}

func TestMonthlySummary(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	listA, listB := uuid.New(), uuid.New()
	march := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("combines logged income with configured assets", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			income(userID, listA, 500, march),
			expense(userID, listA, 200, march, entity.ElementAgua),
		}}
		settings := entity.NewSettings(userID)
		settings.Assets[0].Amount = decimal.NewFromInt(1000)
		uc := NewMonthlySummaryUseCase(txRepo, &fakeSettingsRepo{settings: settings})

		out, err := uc.Execute(ctx, MonthlySummaryInput{UserID: userID, ReferenceDate: march})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Assets and logged income both count, even when they describe the
		// same salary.
		if !out.Income.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected income 1500, got %s", out.Income)
		}
		if !out.Expenses.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected expenses 200, got %s", out.Expenses)
		}
		if !out.Balance.Equal(decimal.NewFromInt(1300)) {
			t.Errorf("expected balance 1300, got %s", out.Balance)
		}
	})

	t.Run("zero income yields zero savings rate", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			expense(userID, listA, 200, march, entity.ElementAgua),
		}}
		uc := NewMonthlySummaryUseCase(txRepo, &fakeSettingsRepo{})

		out, err := uc.Execute(ctx, MonthlySummaryInput{UserID: userID, ReferenceDate: march})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.SavingsRate.IsZero() {
			t.Errorf("expected zero savings rate, got %s", out.SavingsRate)
		}
	})

	t.Run("excludes transactions outside the month", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			expense(userID, listA, 200, march, entity.ElementAgua),
			expense(userID, listA, 999, march.AddDate(0, 1, 0), entity.ElementAgua),
			expense(userID, listA, 999, march.AddDate(0, -1, 0), entity.ElementAgua),
		}}
		uc := NewMonthlySummaryUseCase(txRepo, &fakeSettingsRepo{})

		out, err := uc.Execute(ctx, MonthlySummaryInput{UserID: userID, ReferenceDate: march})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Expenses.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected expenses 200, got %s", out.Expenses)
		}
	})

	t.Run("breakdown is ordered by descending total", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			expense(userID, listA, 50, march, entity.ElementAgua),
			expense(userID, listB, 300, march, entity.ElementFuego),
			expense(userID, listA, 30, march, entity.ElementAgua),
		}}
		uc := NewMonthlySummaryUseCase(txRepo, &fakeSettingsRepo{})

		out, err := uc.Execute(ctx, MonthlySummaryInput{UserID: userID, ReferenceDate: march})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Breakdown) != 2 {
			t.Fatalf("expected 2 breakdown entries, got %d", len(out.Breakdown))
		}
		if out.Breakdown[0].ListID != listB || !out.Breakdown[0].Total.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected listB first with 300, got %v %s", out.Breakdown[0].ListID, out.Breakdown[0].Total)
		}
		if out.Breakdown[1].ListID != listA || !out.Breakdown[1].Total.Equal(decimal.NewFromInt(80)) {
			t.Errorf("expected listA second with 80, got %v %s", out.Breakdown[1].ListID, out.Breakdown[1].Total)
		}
	})

	t.Run("attaches configured budgets to breakdown entries", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			expense(userID, listA, 50, march, entity.ElementAgua),
		}}
		settings := entity.NewSettings(userID)
		settings.Budgets[listA] = decimal.NewFromInt(100)
		uc := NewMonthlySummaryUseCase(txRepo, &fakeSettingsRepo{settings: settings})

		out, err := uc.Execute(ctx, MonthlySummaryInput{UserID: userID, ReferenceDate: march})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Breakdown[0].Budget == nil || !out.Breakdown[0].Budget.Equal(decimal.NewFromInt(100)) {
			t.Error("expected budget 100 attached to listA")
		}
	})
}

func TestHoursEquivalent(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("converts using assets over monthly hours", func(t *testing.T) {
		settings := entity.NewSettings(userID)
		settings.Assets[0].Amount = decimal.NewFromInt(1600)
		settings.MonthlyHours = decimal.NewFromInt(160)
		uc := NewHoursEquivalentUseCase(&fakeSettingsRepo{settings: settings})

		out, err := uc.Execute(ctx, HoursEquivalentInput{UserID: userID, Amount: decimal.NewFromInt(50)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 1600/160 = 10 per hour; 50 costs 5 hours.
		if !out.Hours.Equal(decimal.NewFromInt(5)) {
			t.Errorf("expected 5 hours, got %s", out.Hours)
		}
	})

	t.Run("zero monthly hours yields zero", func(t *testing.T) {
		settings := entity.NewSettings(userID)
		settings.Assets[0].Amount = decimal.NewFromInt(1600)
		uc := NewHoursEquivalentUseCase(&fakeSettingsRepo{settings: settings})

		out, err := uc.Execute(ctx, HoursEquivalentInput{UserID: userID, Amount: decimal.NewFromInt(50)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Hours.IsZero() {
			t.Errorf("expected zero hours, got %s", out.Hours)
		}
	})

	t.Run("zero assets yields zero", func(t *testing.T) {
		settings := entity.NewSettings(userID)
		settings.MonthlyHours = decimal.NewFromInt(160)
		uc := NewHoursEquivalentUseCase(&fakeSettingsRepo{settings: settings})

		out, err := uc.Execute(ctx, HoursEquivalentInput{UserID: userID, Amount: decimal.NewFromInt(50)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Hours.IsZero() {
			t.Errorf("expected zero hours, got %s", out.Hours)
		}
	})
}

func TestYearlySummary(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	listID := uuid.New()

	t.Run("builds a twelve month series", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			income(userID, listID, 1000, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)),
			expense(userID, listID, 400, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), entity.ElementAgua),
			expense(userID, listID, 250, time.Date(2024, time.July, 20, 0, 0, 0, 0, time.UTC), entity.ElementFuego),
			// Outside the year.
			expense(userID, listID, 999, time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), entity.ElementAgua),
		}}
		uc := NewYearlySummaryUseCase(txRepo)

		out, err := uc.Execute(ctx, YearlySummaryInput{UserID: userID, Year: 2024})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		jan := out.Months[0]
		if !jan.Income.Equal(decimal.NewFromInt(1000)) || !jan.Expenses.Equal(decimal.NewFromInt(400)) {
			t.Errorf("unexpected january aggregates: income %s expenses %s", jan.Income, jan.Expenses)
		}
		if !jan.Balance.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected january balance 600, got %s", jan.Balance)
		}
		july := out.Months[6]
		if !july.Expenses.Equal(decimal.NewFromInt(250)) {
			t.Errorf("expected july expenses 250, got %s", july.Expenses)
		}
	})

	t.Run("aggregates expenses by element", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			expense(userID, listID, 100, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), entity.ElementAgua),
			expense(userID, listID, 60, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), entity.ElementAgua),
			expense(userID, listID, 40, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), entity.ElementTierra),
		}}
		uc := NewYearlySummaryUseCase(txRepo)

		out, err := uc.Execute(ctx, YearlySummaryInput{UserID: userID, Year: 2024})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Elements[entity.ElementAgua].Equal(decimal.NewFromInt(160)) {
			t.Errorf("expected Agua 160, got %s", out.Elements[entity.ElementAgua])
		}
		if !out.Elements[entity.ElementTierra].Equal(decimal.NewFromInt(40)) {
			t.Errorf("expected Tierra 40, got %s", out.Elements[entity.ElementTierra])
		}
		if !out.Elements[entity.ElementFuego].IsZero() {
			t.Errorf("expected Fuego 0, got %s", out.Elements[entity.ElementFuego])
		}
	})
}
