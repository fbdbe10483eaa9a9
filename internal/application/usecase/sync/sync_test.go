// Package sync contains the document snapshot and merge-patch use cases that
// back client live sync.
package sync

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

func (r *fakeTransactionRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindByFilter(_ context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.UserID == filter.UserID {
			out = append(out, t)
		}
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

type fakeWalletRepo struct {
	wallets []*entity.Wallet
}

func (r *fakeWalletRepo) Create(_ context.Context, w *entity.Wallet) error {
	r.wallets = append(r.wallets, w)
	return nil
}

func (r *fakeWalletRepo) CreateBatch(_ context.Context, ws []*entity.Wallet) error {
	r.wallets = append(r.wallets, ws...)
	return nil
}

func (r *fakeWalletRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Wallet, error) {
	return nil, domainerror.ErrWalletNotFound
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

func (r *fakeWalletRepo) Update(_ context.Context, _ *entity.Wallet) error { return nil }

func (r *fakeWalletRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *fakeWalletRepo) CountTransactions(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeListRepo struct {
	lists []*entity.TransmutationList
}

func (r *fakeListRepo) Create(_ context.Context, l *entity.TransmutationList) error {
	r.lists = append(r.lists, l)
	return nil
}

func (r *fakeListRepo) CreateBatch(_ context.Context, ls []*entity.TransmutationList) error {
	r.lists = append(r.lists, ls...)
	return nil
}

func (r *fakeListRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.TransmutationList, error) {
	return nil, domainerror.ErrListNotFound
}

func (r *fakeListRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.TransmutationList, error) {
	var out []*entity.TransmutationList
	for _, l := range r.lists {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeListRepo) Update(_ context.Context, _ *entity.TransmutationList) error { return nil }

func (r *fakeListRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeSettingsRepo struct {
	stored map[uuid.UUID]*entity.Settings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{stored: map[uuid.UUID]*entity.Settings{}}
}

func (r *fakeSettingsRepo) FindByUser(_ context.Context, userID uuid.UUID) (*entity.Settings, error) {
	s, ok := r.stored[userID]
	if !ok {
		return nil, domainerror.ErrSettingsNotFound
	}
	return s, nil
}

func (r *fakeSettingsRepo) Save(_ context.Context, s *entity.Settings) error {
	r.stored[s.UserID] = s
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeSyncRepo struct {
	transactions map[uuid.UUID][]*entity.Transaction
	wallets      map[uuid.UUID][]*entity.Wallet
	lists        map[uuid.UUID][]*entity.TransmutationList
	failSection  string
}

func newFakeSyncRepo() *fakeSyncRepo {
	return &fakeSyncRepo{
		transactions: map[uuid.UUID][]*entity.Transaction{},
		wallets:      map[uuid.UUID][]*entity.Wallet{},
		lists:        map[uuid.UUID][]*entity.TransmutationList{},
	}
}

func (r *fakeSyncRepo) ReplaceTransactions(_ context.Context, userID uuid.UUID, ts []*entity.Transaction) error {
	if r.failSection == "transactions" {
		return errors.New("write failed")
	}
	r.transactions[userID] = ts
	return nil
}

func (r *fakeSyncRepo) ReplaceWallets(_ context.Context, userID uuid.UUID, ws []*entity.Wallet) error {
	if r.failSection == "wallets" {
		return errors.New("write failed")
	}
	r.wallets[userID] = ws
	return nil
}

func (r *fakeSyncRepo) ReplaceLists(_ context.Context, userID uuid.UUID, ls []*entity.TransmutationList) error {
	if r.failSection == "transmutationLists" {
		return errors.New("write failed")
	}
	r.lists[userID] = ls
	return nil
}

type fakeNotifier struct {
	sections []string
}

func (n *fakeNotifier) NotifyChanged(_ context.Context, _ uuid.UUID, section string) error {
	n.sections = append(n.sections, section)
	return nil
}

func TestGetSnapshot(t *testing.T) {
	ctx := context.Background()
	user := entity.NewUser("ana@example.com", "Ana", "hash")

	t.Run("empty store comes back with documented defaults", func(t *testing.T) {
		uc := NewGetSnapshotUseCase(
			&fakeTransactionRepo{},
			&fakeWalletRepo{},
			&fakeListRepo{},
			newFakeSettingsRepo(),
			newFakeUserRepo(user),
		)

		out, err := uc.Execute(ctx, GetSnapshotInput{UserID: user.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Transactions) != 0 {
			t.Error("expected empty transactions")
		}
		if len(out.Wallets) != 2 {
			t.Errorf("expected 2 seeded wallets, got %d", len(out.Wallets))
		}
		if len(out.TransmutationLists) != 4 {
			t.Errorf("expected 4 seeded lists, got %d", len(out.TransmutationLists))
		}
		if out.Settings == nil {
			t.Fatal("expected seeded settings")
		}
		if out.Theme != entity.ThemeDark {
			t.Errorf("expected dark theme default, got %s", out.Theme)
		}
	})

	t.Run("synthesizes missing reserved lists only", func(t *testing.T) {
		listRepo := &fakeListRepo{lists: []*entity.TransmutationList{
			entity.NewTransmutationList(user.ID, "Supermercado"),
			entity.NewCreditCardList(user.ID),
		}}
		uc := NewGetSnapshotUseCase(
			&fakeTransactionRepo{},
			&fakeWalletRepo{},
			listRepo,
			newFakeSettingsRepo(),
			newFakeUserRepo(user),
		)

		out, err := uc.Execute(ctx, GetSnapshotInput{UserID: user.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.TransmutationLists) != 3 {
			t.Fatalf("expected 3 lists, got %d", len(out.TransmutationLists))
		}
		var loans int
		for _, l := range out.TransmutationLists {
			if l.IsLoansView {
				loans++
			}
		}
		if loans != 1 {
			t.Errorf("expected exactly one loans view, got %d", loans)
		}
	})
}

func TestApplyPatch(t *testing.T) {
	ctx := context.Background()
	user := entity.NewUser("ana@example.com", "Ana", "hash")

	newUseCase := func() (*fakeSyncRepo, *fakeSettingsRepo, *fakeUserRepo, *fakeNotifier, *ApplyPatchUseCase) {
		syncRepo := newFakeSyncRepo()
		settingsRepo := newFakeSettingsRepo()
		userRepo := newFakeUserRepo(user)
		notifier := &fakeNotifier{}
		return syncRepo, settingsRepo, userRepo, notifier,
			NewApplyPatchUseCase(syncRepo, settingsRepo, userRepo, notifier)
	}

	t.Run("applies only the supplied sections", func(t *testing.T) {
		syncRepo, settingsRepo, _, notifier, uc := newUseCase()
		wallet := entity.NewWallet(user.ID, "Visa", entity.WalletKindCredit, nil, nil)

		out, err := uc.Execute(ctx, ApplyPatchInput{
			UserID:     user.ID,
			Wallets:    []*entity.Wallet{wallet},
			HasWallets: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.AppliedSections) != 1 || out.AppliedSections[0] != "wallets" {
			t.Errorf("expected only wallets applied, got %v", out.AppliedSections)
		}
		if len(syncRepo.wallets[user.ID]) != 1 {
			t.Error("expected wallet section replaced")
		}
		if len(settingsRepo.stored) != 0 {
			t.Error("expected settings untouched")
		}
		if len(notifier.sections) != 1 || notifier.sections[0] != "wallets" {
			t.Errorf("expected one 'wallets' notification, got %v", notifier.sections)
		}
	})

	t.Run("supplied empty section clears stored state", func(t *testing.T) {
		syncRepo, _, _, _, uc := newUseCase()
		syncRepo.transactions[user.ID] = []*entity.Transaction{
			entity.NewTransaction(user.ID, entity.TransactionTypeExpense, decimal.NewFromInt(5),
				"gasto", uuid.New(), entity.ElementAgua, uuid.New(), nil, time.Now(), nil),
		}

		_, err := uc.Execute(ctx, ApplyPatchInput{
			UserID:          user.ID,
			Transactions:    []*entity.Transaction{},
			HasTransactions: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(syncRepo.transactions[user.ID]) != 0 {
			t.Error("expected transactions cleared")
		}
	})

	t.Run("updates the theme", func(t *testing.T) {
		_, _, userRepo, _, uc := newUseCase()
		light := entity.ThemeLight

		out, err := uc.Execute(ctx, ApplyPatchInput{UserID: user.ID, Theme: &light})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.AppliedSections) != 1 || out.AppliedSections[0] != "theme" {
			t.Errorf("expected theme applied, got %v", out.AppliedSections)
		}
		if userRepo.users[user.ID].Theme != entity.ThemeLight {
			t.Error("expected stored theme updated")
		}
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		_, _, _, _, uc := newUseCase()

		_, err := uc.Execute(ctx, ApplyPatchInput{UserID: user.ID})
		if !errors.Is(err, domainerror.ErrEmptyPatch) {
			t.Errorf("expected ErrEmptyPatch, got %v", err)
		}
	})

	t.Run("write failure surfaces as persistence error", func(t *testing.T) {
		syncRepo, _, _, notifier, uc := newUseCase()
		syncRepo.failSection = "wallets"

		_, err := uc.Execute(ctx, ApplyPatchInput{
			UserID:     user.ID,
			Wallets:    []*entity.Wallet{},
			HasWallets: true,
		})
		if !errors.Is(err, domainerror.ErrPersistenceWriteFailed) {
			t.Errorf("expected ErrPersistenceWriteFailed, got %v", err)
		}
		if len(notifier.sections) != 0 {
			t.Error("expected no notifications on failure")
		}
	})
}
