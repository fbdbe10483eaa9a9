// Package list contains transmutation-list use cases.
package list

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

type fakeListRepo struct {
	lists     map[uuid.UUID]*entity.TransmutationList
	updateErr error
}

func newFakeListRepo(lists ...*entity.TransmutationList) *fakeListRepo {
	r := &fakeListRepo{lists: map[uuid.UUID]*entity.TransmutationList{}}
	for _, l := range lists {
		r.lists[l.ID] = l
	}
	return r
}

func (r *fakeListRepo) Create(_ context.Context, l *entity.TransmutationList) error {
	r.lists[l.ID] = l
	return nil
}

func (r *fakeListRepo) CreateBatch(_ context.Context, ls []*entity.TransmutationList) error {
	for _, l := range ls {
		r.lists[l.ID] = l
	}
	return nil
}

func (r *fakeListRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.TransmutationList, error) {
	l, ok := r.lists[id]
	if !ok {
		return nil, domainerror.ErrListNotFound
	}
	return l, nil
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

func (r *fakeListRepo) Update(_ context.Context, l *entity.TransmutationList) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.lists[l.ID] = l
	return nil
}

func (r *fakeListRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.lists, id)
	return nil
}

type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*entity.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: map[uuid.UUID]*entity.Transaction{}}
}

func (r *fakeTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	r.transactions[t.ID] = t
	return nil
}

func (r *fakeTransactionRepo) CreateBatch(_ context.Context, ts []*entity.Transaction) error {
	for _, t := range ts {
		r.transactions[t.ID] = t
	}
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	t, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return t, nil
}

func (r *fakeTransactionRepo) FindByFilter(_ context.Context, _ adapter.TransactionFilter) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) FindByInstallmentGroup(_ context.Context, _, _ uuid.UUID) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) FindDueBetween(_ context.Context, _, _ time.Time) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, t *entity.Transaction) error {
	r.transactions[t.ID] = t
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.transactions, id)
	return nil
}

func (r *fakeTransactionRepo) DeleteByInstallmentGroup(_ context.Context, _, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeTransactionRepo) ExistsByIDAndUser(_ context.Context, id uuid.UUID, userID uuid.UUID) (bool, error) {
	t, ok := r.transactions[id]
	return ok && t.UserID == userID, nil
}

type fakeWalletRepo struct {
	wallets map[uuid.UUID]*entity.Wallet
}

func newFakeWalletRepo(wallets ...*entity.Wallet) *fakeWalletRepo {
	r := &fakeWalletRepo{wallets: map[uuid.UUID]*entity.Wallet{}}
	for _, w := range wallets {
		r.wallets[w.ID] = w
	}
	return r
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
	return 0, nil
}

type fakeNotifier struct {
	sections []string
}

func (n *fakeNotifier) NotifyChanged(_ context.Context, _ uuid.UUID, section string) error {
	n.sections = append(n.sections, section)
	return nil
}

func TestListLists(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("seeds defaults on first load", func(t *testing.T) {
		repo := newFakeListRepo()
		uc := NewListListsUseCase(repo)

		out, err := uc.Execute(ctx, ListListsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Lists) != 4 {
			t.Fatalf("expected 4 seeded lists, got %d", len(out.Lists))
		}

		var creditCard, loans int
		for _, l := range out.Lists {
			if l.IsCreditCardView {
				creditCard++
			}
			if l.IsLoansView {
				loans++
			}
		}
		if creditCard != 1 || loans != 1 {
			t.Errorf("expected exactly one reserved list of each kind, got cc=%d loans=%d", creditCard, loans)
		}
	})

	t.Run("synthesizes missing reserved views", func(t *testing.T) {
		repo := newFakeListRepo(entity.NewTransmutationList(userID, "Supermercado"))
		uc := NewListListsUseCase(repo)

		out, err := uc.Execute(ctx, ListListsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Lists) != 3 {
			t.Fatalf("expected 3 lists after synthesis, got %d", len(out.Lists))
		}
		if len(repo.lists) != 3 {
			t.Error("expected synthesized views to be persisted")
		}
	})

	t.Run("does not duplicate existing reserved views", func(t *testing.T) {
		repo := newFakeListRepo(
			entity.NewCreditCardList(userID),
			entity.NewLoansList(userID),
		)
		uc := NewListListsUseCase(repo)

		out, err := uc.Execute(ctx, ListListsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Lists) != 2 {
			t.Errorf("expected 2 lists, got %d", len(out.Lists))
		}
	})
}

func TestUpdateList(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("renames a user list", func(t *testing.T) {
		l := entity.NewTransmutationList(userID, "Supermercado")
		repo := newFakeListRepo(l)
		uc := NewUpdateListUseCase(repo, &fakeNotifier{})

		out, err := uc.Execute(ctx, UpdateListInput{ListID: l.ID, UserID: userID, Name: "Mercado"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.List.Name != "Mercado" {
			t.Errorf("expected renamed list, got %q", out.List.Name)
		}
	})

	t.Run("rejects renaming a reserved list", func(t *testing.T) {
		l := entity.NewCreditCardList(userID)
		repo := newFakeListRepo(l)
		uc := NewUpdateListUseCase(repo, &fakeNotifier{})

		_, err := uc.Execute(ctx, UpdateListInput{ListID: l.ID, UserID: userID, Name: "Mis Tarjetas"})
		if !errors.Is(err, domainerror.ErrReservedList) {
			t.Errorf("expected ErrReservedList, got %v", err)
		}
	})
}

func TestDeleteList(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("deletes a user list", func(t *testing.T) {
		l := entity.NewTransmutationList(userID, "Supermercado")
		repo := newFakeListRepo(l)
		uc := NewDeleteListUseCase(repo, &fakeNotifier{})

		out, err := uc.Execute(ctx, DeleteListInput{ListID: l.ID, UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success {
			t.Error("expected success")
		}
		if len(repo.lists) != 0 {
			t.Error("expected list removed")
		}
	})

	t.Run("rejects deleting a reserved list", func(t *testing.T) {
		l := entity.NewLoansList(userID)
		repo := newFakeListRepo(l)
		uc := NewDeleteListUseCase(repo, &fakeNotifier{})

		_, err := uc.Execute(ctx, DeleteListInput{ListID: l.ID, UserID: userID})
		if !errors.Is(err, domainerror.ErrReservedList) {
			t.Errorf("expected ErrReservedList, got %v", err)
		}
	})
}

func TestItemOperations(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("adds an item", func(t *testing.T) {
		l := entity.NewTransmutationList(userID, "Gastos Fijos")
		repo := newFakeListRepo(l)
		uc := NewAddItemUseCase(repo, &fakeNotifier{})
		due := 15

		out, err := uc.Execute(ctx, AddItemInput{
			ListID:      l.ID,
			UserID:      userID,
			Name:        "Alquiler",
			Amount:      decimal.NewFromInt(800),
			DueDate:     &due,
			IsRecurring: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Item.Name != "Alquiler" || !out.Item.IsRecurring {
			t.Errorf("unexpected item: %+v", out.Item)
		}
		if len(repo.lists[l.ID].Items) != 1 {
			t.Error("expected item persisted on the list")
		}
	})

	t.Run("rejects an out-of-range due day", func(t *testing.T) {
		l := entity.NewTransmutationList(userID, "Gastos Fijos")
		uc := NewAddItemUseCase(newFakeListRepo(l), &fakeNotifier{})
		due := 0

		_, err := uc.Execute(ctx, AddItemInput{
			ListID:  l.ID,
			UserID:  userID,
			Name:    "Alquiler",
			Amount:  decimal.NewFromInt(800),
			DueDate: &due,
		})
		if !errors.Is(err, domainerror.ErrInvalidItemDueDate) {
			t.Errorf("expected ErrInvalidItemDueDate, got %v", err)
		}
	})

	t.Run("toggles completion both ways", func(t *testing.T) {
		l := entity.NewTransmutationList(userID, "Gastos Fijos")
		item := entity.NewTransmutationItem("Luz", decimal.NewFromInt(40), nil, false)
		l.Items = append(l.Items, item)
		repo := newFakeListRepo(l)
		uc := NewToggleItemUseCase(repo, &fakeNotifier{})

		out, err := uc.Execute(ctx, ToggleItemInput{ListID: l.ID, ItemID: item.ID, UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Item.IsCompleted {
			t.Error("expected item completed after first toggle")
		}

		out, err = uc.Execute(ctx, ToggleItemInput{ListID: l.ID, ItemID: item.ID, UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Item.IsCompleted {
			t.Error("expected item reopened after second toggle")
		}
	})

	t.Run("deletes an item", func(t *testing.T) {
		l := entity.NewTransmutationList(userID, "Gastos Fijos")
		item := entity.NewTransmutationItem("Luz", decimal.NewFromInt(40), nil, false)
		l.Items = append(l.Items, item)
		repo := newFakeListRepo(l)
		uc := NewDeleteItemUseCase(repo, &fakeNotifier{})

		out, err := uc.Execute(ctx, DeleteItemInput{ListID: l.ID, ItemID: item.ID, UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success {
			t.Error("expected success")
		}
		if len(repo.lists[l.ID].Items) != 0 {
			t.Error("expected item removed")
		}
	})

	t.Run("unknown item returns not found", func(t *testing.T) {
		l := entity.NewTransmutationList(userID, "Gastos Fijos")
		uc := NewToggleItemUseCase(newFakeListRepo(l), &fakeNotifier{})

		_, err := uc.Execute(ctx, ToggleItemInput{ListID: l.ID, ItemID: uuid.New(), UserID: userID})
		if !errors.Is(err, domainerror.ErrListItemNotFound) {
			t.Errorf("expected ErrListItemNotFound, got %v", err)
		}
	})
}

func TestCompleteItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	newFixture := func() (*fakeListRepo, *fakeTransactionRepo, *entity.TransmutationList, *entity.TransmutationItem, *entity.Wallet, *CompleteItemUseCase) {
		l := entity.NewTransmutationList(userID, "Gastos Fijos")
		item := entity.NewTransmutationItem("Internet", decimal.NewFromInt(60), nil, true)
		l.Items = append(l.Items, item)
		wallet := entity.NewWallet(userID, "Débito Principal", entity.WalletKindDebit, nil, nil)

		listRepo := newFakeListRepo(l)
		txRepo := newFakeTransactionRepo()
		uc := NewCompleteItemUseCase(listRepo, txRepo, newFakeWalletRepo(wallet), &fakeNotifier{})
		return listRepo, txRepo, l, item, wallet, uc
	}

	t.Run("converts the item into an expense", func(t *testing.T) {
		_, txRepo, l, item, wallet, uc := newFixture()

		out, err := uc.Execute(ctx, CompleteItemInput{
			ListID:   l.ID,
			ItemID:   item.ID,
			UserID:   userID,
			WalletID: wallet.ID,
			Element:  entity.ElementTierra,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Item.IsCompleted {
			t.Error("expected item marked completed")
		}

		created, err := txRepo.FindByID(ctx, out.Transaction)
		if err != nil {
			t.Fatalf("expected expense to exist: %v", err)
		}
		if created.Type != entity.TransactionTypeExpense {
			t.Errorf("expected expense, got %s", created.Type)
		}
		if !created.Amount.Equal(decimal.NewFromInt(60)) {
			t.Errorf("expected prefilled amount 60, got %s", created.Amount)
		}
		if created.Description != "Internet" {
			t.Errorf("expected prefilled description, got %q", created.Description)
		}
		if created.ListID != l.ID {
			t.Error("expected expense tagged with the source list")
		}
	})

	t.Run("rejects completing twice", func(t *testing.T) {
		_, _, l, item, wallet, uc := newFixture()

		input := CompleteItemInput{
			ListID:   l.ID,
			ItemID:   item.ID,
			UserID:   userID,
			WalletID: wallet.ID,
			Element:  entity.ElementTierra,
		}
		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Execute(ctx, input); !errors.Is(err, domainerror.ErrItemAlreadyCompleted) {
			t.Errorf("expected ErrItemAlreadyCompleted, got %v", err)
		}
	})

	t.Run("rolls back the expense when the list save fails", func(t *testing.T) {
		listRepo, txRepo, l, item, wallet, uc := newFixture()
		listRepo.updateErr = errors.New("write failed")

		_, err := uc.Execute(ctx, CompleteItemInput{
			ListID:   l.ID,
			ItemID:   item.ID,
			UserID:   userID,
			WalletID: wallet.ID,
			Element:  entity.ElementTierra,
		})
		if err == nil {
			t.Fatal("expected error")
		}
		if len(txRepo.transactions) != 0 {
			t.Error("expected expense rolled back")
		}
	})
}
