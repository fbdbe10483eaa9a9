// Package advisor contains the generative advisory use cases.
package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

type fakeAdvisor struct {
	available  bool
	tip        string
	tipErr     error
	promotions []adapter.Promotion
	promoErr   error
	receipt    *adapter.ParsedReceipt
	receiptErr error

	lastSnapshot adapter.SpendingSnapshot
}

func (a *fakeAdvisor) GetDailyTip(_ context.Context, snapshot adapter.SpendingSnapshot) (string, error) {
	a.lastSnapshot = snapshot
	return a.tip, a.tipErr
}

func (a *fakeAdvisor) GetPromotions(_ context.Context) ([]adapter.Promotion, error) {
	return a.promotions, a.promoErr
}

func (a *fakeAdvisor) ParseReceipt(_ context.Context, _ []byte, _ string) (*adapter.ParsedReceipt, error) {
	return a.receipt, a.receiptErr
}

func (a *fakeAdvisor) IsAvailable() bool { return a.available }

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
	err          error
}

func (r *fakeTransactionRepo) Create(_ context.Context, _ *entity.Transaction) error { return nil }

func (r *fakeTransactionRepo) CreateBatch(_ context.Context, _ []*entity.Transaction) error {
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindByFilter(_ context.Context, _ adapter.TransactionFilter) ([]*entity.Transaction, error) {
	return r.transactions, r.err
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

func TestGetTip(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns the generated tip", func(t *testing.T) {
		advisor := &fakeAdvisor{available: true, tip: "Cociná en casa esta semana."}
		uc := NewGetTipUseCase(advisor, &fakeTransactionRepo{})

		out, err := uc.Execute(ctx, GetTipInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Fallback {
			t.Error("expected generated tip, not fallback")
		}
		if out.Tip != "Cociná en casa esta semana." {
			t.Errorf("unexpected tip: %q", out.Tip)
		}
	})

	t.Run("falls back when the service is unavailable", func(t *testing.T) {
		uc := NewGetTipUseCase(&fakeAdvisor{available: false}, &fakeTransactionRepo{})

		out, err := uc.Execute(ctx, GetTipInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Fallback || out.Tip != FallbackTip {
			t.Errorf("expected fallback tip, got %+v", out)
		}
	})

	t.Run("falls back on service error instead of failing", func(t *testing.T) {
		advisor := &fakeAdvisor{available: true, tipErr: errors.New("quota exceeded")}
		uc := NewGetTipUseCase(advisor, &fakeTransactionRepo{})

		out, err := uc.Execute(ctx, GetTipInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected degraded success, got error: %v", err)
		}
		if !out.Fallback {
			t.Error("expected fallback on service error")
		}
	})

	t.Run("snapshot carries the dominant element", func(t *testing.T) {
		listID, walletID := uuid.New(), uuid.New()
		now := time.Now().UTC()
		advisor := &fakeAdvisor{available: true, tip: "ok"}
		repo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			entity.NewTransaction(userID, entity.TransactionTypeExpense, decimal.NewFromInt(300),
				"salidas", listID, entity.ElementFuego, walletID, nil, now, nil),
			entity.NewTransaction(userID, entity.TransactionTypeExpense, decimal.NewFromInt(100),
				"super", listID, entity.ElementAgua, walletID, nil, now, nil),
		}}
		uc := NewGetTipUseCase(advisor, repo)

		if _, err := uc.Execute(ctx, GetTipInput{UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if advisor.lastSnapshot.DominantElement != string(entity.ElementFuego) {
			t.Errorf("expected Fuego dominant, got %q", advisor.lastSnapshot.DominantElement)
		}
		if !advisor.lastSnapshot.MonthExpenses.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected month expenses 400, got %s", advisor.lastSnapshot.MonthExpenses)
		}
	})
}

func TestGetPromotions(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns generated promotions", func(t *testing.T) {
		advisor := &fakeAdvisor{available: true, promotions: []adapter.Promotion{
			{Title: "2x1 en supermercados", Bank: "Banco Norte"},
		}}
		uc := NewGetPromotionsUseCase(advisor)

		out, err := uc.Execute(ctx, GetPromotionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Promotions) != 1 || out.Fallback {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("empty result on failure, never an error", func(t *testing.T) {
		advisor := &fakeAdvisor{available: true, promoErr: errors.New("timeout")}
		uc := NewGetPromotionsUseCase(advisor)

		out, err := uc.Execute(ctx, GetPromotionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected degraded success, got error: %v", err)
		}
		if !out.Fallback || len(out.Promotions) != 0 {
			t.Errorf("expected empty fallback, got %+v", out)
		}
	})
}

func TestAnalyzeReceipt(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns parsed items", func(t *testing.T) {
		advisor := &fakeAdvisor{available: true, receipt: &adapter.ParsedReceipt{
			Merchant: "Supermercado Sol",
			Total:    decimal.RequireFromString("45.50"),
			Items: []adapter.ReceiptItem{
				{Description: "Leche", Amount: decimal.RequireFromString("2.50")},
			},
		}}
		uc := NewAnalyzeReceiptUseCase(advisor)

		out, err := uc.Execute(ctx, AnalyzeReceiptInput{UserID: userID, ImageData: []byte{1}, MimeType: "image/jpeg"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Fallback || out.Receipt == nil || len(out.Receipt.Items) != 1 {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("unreadable receipt degrades to fallback", func(t *testing.T) {
		advisor := &fakeAdvisor{available: true, receiptErr: domainerror.ErrUnreadableReceipt}
		uc := NewAnalyzeReceiptUseCase(advisor)

		out, err := uc.Execute(ctx, AnalyzeReceiptInput{UserID: userID, ImageData: []byte{1}, MimeType: "image/jpeg"})
		if err != nil {
			t.Fatalf("expected degraded success, got error: %v", err)
		}
		if !out.Fallback {
			t.Error("expected fallback")
		}
	})

	t.Run("missing image degrades to fallback", func(t *testing.T) {
		uc := NewAnalyzeReceiptUseCase(&fakeAdvisor{available: true})

		out, err := uc.Execute(ctx, AnalyzeReceiptInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Fallback {
			t.Error("expected fallback")
		}
	})
}
