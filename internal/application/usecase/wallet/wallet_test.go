// Package wallet contains wallet-registry use cases.
package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

type fakeWalletRepo struct {
	wallets          map[uuid.UUID]*entity.Wallet
	transactionCount int64
}

func newFakeWalletRepo() *fakeWalletRepo {
	return &fakeWalletRepo{wallets: map[uuid.UUID]*entity.Wallet{}}
}

func (r *fakeWalletRepo) Create(_ context.Context, w *entity.Wallet) error {
	r.wallets[w.ID] = w
	return nil
}

func (r *fakeWalletRepo) CreateBatch(_ context.Context, ws []*entity.Wallet) error {
	for _, w := range ws {
		r.wallets[w.ID] = w
	}
	return nil
}

func (r *fakeWalletRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Wallet, error) {
	w, ok := r.wallets[id]
	if !ok {
		return nil, domainerror.ErrWalletNotFound
	}
	return w, nil
}

func (r *fakeWalletRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Wallet, error) {
	var out []*entity.Wallet
	for _, w := range r.wallets {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeWalletRepo) Update(_ context.Context, w *entity.Wallet) error {
	r.wallets[w.ID] = w
	return nil
}

func (r *fakeWalletRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.wallets, id)
	return nil
}

func (r *fakeWalletRepo) CountTransactions(_ context.Context, _ uuid.UUID) (int64, error) {
	return r.transactionCount, nil
}

type fakeNotifier struct {
	sections []string
}

func (n *fakeNotifier) NotifyChanged(_ context.Context, _ uuid.UUID, section string) error {
	n.sections = append(n.sections, section)
	return nil
}

func TestCreateWallet(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates a credit wallet with cycle days", func(t *testing.T) {
		repo := newFakeWalletRepo()
		uc := NewCreateWalletUseCase(repo, &fakeNotifier{})
		closing, due := 25, 5

		out, err := uc.Execute(ctx, CreateWalletInput{
			UserID:     userID,
			Name:       "Visa Gold",
			Kind:       entity.WalletKindCredit,
			ClosingDay: &closing,
			DueDay:     &due,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Wallet.ClosingDay == nil || *out.Wallet.ClosingDay != 25 {
			t.Error("expected closing day 25")
		}
		if len(repo.wallets) != 1 {
			t.Errorf("expected 1 stored wallet, got %d", len(repo.wallets))
		}
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		uc := NewCreateWalletUseCase(newFakeWalletRepo(), &fakeNotifier{})

		_, err := uc.Execute(ctx, CreateWalletInput{UserID: userID, Name: "  ", Kind: entity.WalletKindCash})
		if !errors.Is(err, domainerror.ErrInvalidWalletName) {
			t.Errorf("expected ErrInvalidWalletName, got %v", err)
		}
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		uc := NewCreateWalletUseCase(newFakeWalletRepo(), &fakeNotifier{})

		_, err := uc.Execute(ctx, CreateWalletInput{UserID: userID, Name: "Caja", Kind: "crypto"})
		if !errors.Is(err, domainerror.ErrInvalidWalletKind) {
			t.Errorf("expected ErrInvalidWalletKind, got %v", err)
		}
	})

	t.Run("rejects out-of-range cycle days", func(t *testing.T) {
		uc := NewCreateWalletUseCase(newFakeWalletRepo(), &fakeNotifier{})
		closing := 32

		_, err := uc.Execute(ctx, CreateWalletInput{
			UserID:     userID,
			Name:       "Visa",
			Kind:       entity.WalletKindCredit,
			ClosingDay: &closing,
		})
		if !errors.Is(err, domainerror.ErrInvalidWalletCycle) {
			t.Errorf("expected ErrInvalidWalletCycle, got %v", err)
		}
	})
}

func TestListWallets(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("seeds defaults on first load", func(t *testing.T) {
		repo := newFakeWalletRepo()
		uc := NewListWalletsUseCase(repo)

		out, err := uc.Execute(ctx, ListWalletsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Wallets) != 2 {
			t.Fatalf("expected 2 seeded wallets, got %d", len(out.Wallets))
		}

		names := map[string]entity.WalletKind{}
		for _, w := range out.Wallets {
			names[w.Name] = w.Kind
		}
		if names["Efectivo"] != entity.WalletKindCash {
			t.Error("expected seeded cash wallet 'Efectivo'")
		}
		if names["Débito Principal"] != entity.WalletKindDebit {
			t.Error("expected seeded debit wallet 'Débito Principal'")
		}
		if len(repo.wallets) != 2 {
			t.Error("expected seeded wallets to be persisted")
		}
	})

	t.Run("does not seed when wallets exist", func(t *testing.T) {
		repo := newFakeWalletRepo()
		existing := entity.NewWallet(userID, "Visa", entity.WalletKindCredit, nil, nil)
		repo.wallets[existing.ID] = existing
		uc := NewListWalletsUseCase(repo)

		out, err := uc.Execute(ctx, ListWalletsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Wallets) != 1 {
			t.Errorf("expected 1 wallet, got %d", len(out.Wallets))
		}
	})
}

func TestUpdateWallet(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("replaces stored fields", func(t *testing.T) {
		repo := newFakeWalletRepo()
		wallet := entity.NewWallet(userID, "Visa", entity.WalletKindCredit, nil, nil)
		repo.wallets[wallet.ID] = wallet
		uc := NewUpdateWalletUseCase(repo, &fakeNotifier{})
		closing, due := 10, 20

		out, err := uc.Execute(ctx, UpdateWalletInput{
			WalletID:   wallet.ID,
			UserID:     userID,
			Name:       "Visa Platinum",
			Kind:       entity.WalletKindCredit,
			ClosingDay: &closing,
			DueDay:     &due,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Wallet.Name != "Visa Platinum" {
			t.Errorf("expected renamed wallet, got %q", out.Wallet.Name)
		}
		if out.Wallet.DueDay == nil || *out.Wallet.DueDay != 20 {
			t.Error("expected due day 20")
		}
	})

	t.Run("another user's wallet reads as not found", func(t *testing.T) {
		repo := newFakeWalletRepo()
		wallet := entity.NewWallet(userID, "Visa", entity.WalletKindCredit, nil, nil)
		repo.wallets[wallet.ID] = wallet
		uc := NewUpdateWalletUseCase(repo, &fakeNotifier{})

		_, err := uc.Execute(ctx, UpdateWalletInput{
			WalletID: wallet.ID,
			UserID:   uuid.New(),
			Name:     "Visa",
			Kind:     entity.WalletKindCredit,
		})
		if !errors.Is(err, domainerror.ErrWalletNotFound) {
			t.Errorf("expected ErrWalletNotFound, got %v", err)
		}
	})
}

func TestDeleteWallet(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("deletes without cascading", func(t *testing.T) {
		repo := newFakeWalletRepo()
		repo.transactionCount = 7
		wallet := entity.NewWallet(userID, "Visa", entity.WalletKindCredit, nil, nil)
		repo.wallets[wallet.ID] = wallet
		uc := NewDeleteWalletUseCase(repo, &fakeNotifier{})

		out, err := uc.Execute(ctx, DeleteWalletInput{WalletID: wallet.ID, UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success {
			t.Error("expected success")
		}
		if out.DanglingTransactions != 7 {
			t.Errorf("expected 7 dangling references reported, got %d", out.DanglingTransactions)
		}
		if len(repo.wallets) != 0 {
			t.Error("expected wallet removed")
		}
	})

	t.Run("unknown wallet returns not found", func(t *testing.T) {
		uc := NewDeleteWalletUseCase(newFakeWalletRepo(), &fakeNotifier{})

		_, err := uc.Execute(ctx, DeleteWalletInput{WalletID: uuid.New(), UserID: userID})
		if !errors.Is(err, domainerror.ErrWalletNotFound) {
			t.Errorf("expected ErrWalletNotFound, got %v", err)
		}
	})
}
