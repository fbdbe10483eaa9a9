// Package transaction contains ledger-entry use cases.
package transaction

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
	transactions map[uuid.UUID]*entity.Transaction
	createErr    error
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: map[uuid.UUID]*entity.Transaction{}}
}

func (r *fakeTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.transactions[t.ID] = t
	return nil
}

func (r *fakeTransactionRepo) CreateBatch(ctx context.Context, ts []*entity.Transaction) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, t := range ts {
		if err := r.Create(ctx, t); err != nil {
			return err
		}
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

func (r *fakeTransactionRepo) FindByFilter(_ context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.UserID != filter.UserID {
			continue
		}
		if filter.Type != nil && t.Type != *filter.Type {
			continue
		}
		if filter.WalletID != nil && t.WalletID != *filter.WalletID {
			continue
		}
		if filter.ListID != nil && t.ListID != *filter.ListID {
			continue
		}
		if filter.Element != nil && t.Element != *filter.Element {
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

func (r *fakeTransactionRepo) FindByInstallmentGroup(_ context.Context, userID, originalID uuid.UUID) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.UserID == userID && t.Installments != nil && t.Installments.OriginalID == originalID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) FindDueBetween(_ context.Context, start, end time.Time) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.Installments != nil && !t.Date.Before(start) && !t.Date.After(end) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, t *entity.Transaction) error {
	r.transactions[t.ID] = t
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.transactions, id)
	return nil
}

func (r *fakeTransactionRepo) DeleteByInstallmentGroup(_ context.Context, userID, originalID uuid.UUID) (int64, error) {
	var count int64
	for id, t := range r.transactions {
		if t.UserID == userID && t.Installments != nil && t.Installments.OriginalID == originalID {
			delete(r.transactions, id)
			count++
		}
	}
	return count, nil
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

type fakeListRepo struct {
	lists map[uuid.UUID]*entity.TransmutationList
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
	r.lists[l.ID] = l
	return nil
}

func (r *fakeListRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.lists, id)
	return nil
}

type fakeNotifier struct {
	sections []string
	err      error
}

func (n *fakeNotifier) NotifyChanged(_ context.Context, _ uuid.UUID, section string) error {
	n.sections = append(n.sections, section)
	return n.err
}

type createFixture struct {
	userID       uuid.UUID
	creditWallet *entity.Wallet
	cashWallet   *entity.Wallet
	list         *entity.TransmutationList
	txRepo       *fakeTransactionRepo
	notifier     *fakeNotifier
	uc           *CreateTransactionUseCase
}

func newCreateFixture() *createFixture {
	userID := uuid.New()
	closing, due := 25, 5
	creditWallet := entity.NewWallet(userID, "Visa", entity.WalletKindCredit, &closing, &due)
	cashWallet := entity.NewWallet(userID, "Efectivo", entity.WalletKindCash, nil, nil)
	list := entity.NewTransmutationList(userID, "Supermercado")

	txRepo := newFakeTransactionRepo()
	notifier := &fakeNotifier{}
	uc := NewCreateTransactionUseCase(
		txRepo,
		newFakeWalletRepo(creditWallet, cashWallet),
		newFakeListRepo(list),
		notifier,
	)

	return &createFixture{
		userID:       userID,
		creditWallet: creditWallet,
		cashWallet:   cashWallet,
		list:         list,
		txRepo:       txRepo,
		notifier:     notifier,
		uc:           uc,
	}
}

func (f *createFixture) input() CreateTransactionInput {
	return CreateTransactionInput{
		UserID:      f.userID,
		Type:        entity.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(300),
		Description: "Compra grande",
		ListID:      f.list.ID,
		Element:     entity.ElementAgua,
		WalletID:    f.cashWallet.ID,
		Date:        time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("single payment is stored as one entry", func(t *testing.T) {
		f := newCreateFixture()

		out, err := f.uc.Execute(ctx, f.input())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Transactions) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(out.Transactions))
		}
		if len(f.txRepo.transactions) != 1 {
			t.Errorf("expected 1 stored transaction, got %d", len(f.txRepo.transactions))
		}
		if out.Transactions[0].Installment != nil {
			t.Error("expected no installment group on a single payment")
		}
		if len(f.notifier.sections) != 1 || f.notifier.sections[0] != "transactions" {
			t.Errorf("expected one 'transactions' change notification, got %v", f.notifier.sections)
		}
	})

	t.Run("credit purchase expands into installment legs", func(t *testing.T) {
		f := newCreateFixture()
		input := f.input()
		input.WalletID = f.creditWallet.ID
		input.Installments = 3

		out, err := f.uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Transactions) != 3 {
			t.Fatalf("expected 3 legs, got %d", len(out.Transactions))
		}
		if len(f.txRepo.transactions) != 3 {
			t.Errorf("expected 3 stored legs, got %d", len(f.txRepo.transactions))
		}
		for i, leg := range out.Transactions {
			if leg.Installment == nil {
				t.Fatalf("leg %d has no installment group", i)
			}
			if !leg.Amount.Equal(decimal.NewFromInt(100)) {
				t.Errorf("leg %d: expected amount 100, got %s", i, leg.Amount)
			}
		}
	})

	t.Run("multiple installments on a cash wallet are rejected", func(t *testing.T) {
		f := newCreateFixture()
		input := f.input()
		input.Installments = 3

		if _, err := f.uc.Execute(ctx, input); !errors.Is(err, domainerror.ErrInvalidScheduleRequest) {
			t.Errorf("expected ErrInvalidScheduleRequest, got %v", err)
		}
		if len(f.txRepo.transactions) != 0 {
			t.Error("expected nothing stored on rejection")
		}
	})

	t.Run("unknown wallet is rejected", func(t *testing.T) {
		f := newCreateFixture()
		input := f.input()
		input.WalletID = uuid.New()

		if _, err := f.uc.Execute(ctx, input); !errors.Is(err, domainerror.ErrMissingWalletReference) {
			t.Errorf("expected ErrMissingWalletReference, got %v", err)
		}
	})

	t.Run("wallet of another user is rejected", func(t *testing.T) {
		f := newCreateFixture()
		input := f.input()
		input.UserID = uuid.New()

		if _, err := f.uc.Execute(ctx, input); !errors.Is(err, domainerror.ErrMissingWalletReference) {
			t.Errorf("expected ErrMissingWalletReference, got %v", err)
		}
	})

	t.Run("invalid element is rejected", func(t *testing.T) {
		f := newCreateFixture()
		input := f.input()
		input.Element = "Éter"

		if _, err := f.uc.Execute(ctx, input); !errors.Is(err, domainerror.ErrInvalidElement) {
			t.Errorf("expected ErrInvalidElement, got %v", err)
		}
	})

	t.Run("notifier failure does not fail the write", func(t *testing.T) {
		f := newCreateFixture()
		f.notifier.err = errors.New("broker down")

		out, err := f.uc.Execute(ctx, f.input())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Transactions) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(out.Transactions))
		}
	})
}

func TestUpdateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces stored fields and preserves the installment group", func(t *testing.T) {
		f := newCreateFixture()
		input := f.input()
		input.WalletID = f.creditWallet.ID
		input.Installments = 2
		created, err := f.uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewUpdateTransactionUseCase(f.txRepo, f.notifier)
		leg := created.Transactions[0]
		out, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: leg.ID,
			UserID:        f.userID,
			Type:          entity.TransactionTypeExpense,
			Amount:        decimal.NewFromInt(175),
			Description:   "Compra grande (renegociada)",
			ListID:        f.list.ID,
			Element:       entity.ElementFuego,
			WalletID:      f.creditWallet.ID,
			Date:          leg.Date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Transaction.Amount.Equal(decimal.NewFromInt(175)) {
			t.Errorf("expected amount 175, got %s", out.Transaction.Amount)
		}
		if out.Transaction.Installment == nil {
			t.Error("expected installment group to survive the edit")
		}

		// The sibling leg is untouched.
		sibling, err := f.txRepo.FindByID(ctx, created.Transactions[1].ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sibling.Amount.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected sibling amount 150, got %s", sibling.Amount)
		}
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		f := newCreateFixture()
		uc := NewUpdateTransactionUseCase(f.txRepo, f.notifier)

		_, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: uuid.New(),
			UserID:        f.userID,
			Type:          entity.TransactionTypeExpense,
			Amount:        decimal.NewFromInt(10),
			ListID:        f.list.ID,
			Element:       entity.ElementAgua,
			WalletID:      f.cashWallet.ID,
			Date:          time.Now(),
		})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("another user's transaction is rejected", func(t *testing.T) {
		f := newCreateFixture()
		created, err := f.uc.Execute(ctx, f.input())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewUpdateTransactionUseCase(f.txRepo, f.notifier)
		_, err = uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: created.Transactions[0].ID,
			UserID:        uuid.New(),
			Type:          entity.TransactionTypeExpense,
			Amount:        decimal.NewFromInt(10),
			ListID:        f.list.ID,
			Element:       entity.ElementAgua,
			WalletID:      f.cashWallet.ID,
			Date:          time.Now(),
		})
		if !errors.Is(err, domainerror.ErrNotAuthorizedToModifyTransaction) {
			t.Errorf("expected ErrNotAuthorizedToModifyTransaction, got %v", err)
		}
	})
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing transaction", func(t *testing.T) {
		f := newCreateFixture()
		created, err := f.uc.Execute(ctx, f.input())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewDeleteTransactionUseCase(f.txRepo, f.notifier)
		out, err := uc.Execute(ctx, DeleteTransactionInput{
			TransactionID: created.Transactions[0].ID,
			UserID:        f.userID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success {
			t.Error("expected success")
		}
		if len(f.txRepo.transactions) != 0 {
			t.Error("expected transaction to be removed")
		}
	})

	t.Run("unknown id is an idempotent no-op", func(t *testing.T) {
		f := newCreateFixture()
		uc := NewDeleteTransactionUseCase(f.txRepo, f.notifier)

		out, err := uc.Execute(ctx, DeleteTransactionInput{
			TransactionID: uuid.New(),
			UserID:        f.userID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success {
			t.Error("expected success on missing id")
		}
	})
}

func TestDeleteInstallmentGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("removes every leg of the group", func(t *testing.T) {
		f := newCreateFixture()
		input := f.input()
		input.WalletID = f.creditWallet.ID
		input.Installments = 4
		created, err := f.uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewDeleteInstallmentGroupUseCase(f.txRepo, f.notifier)
		out, err := uc.Execute(ctx, DeleteInstallmentGroupInput{
			UserID:     f.userID,
			OriginalID: created.Transactions[0].Installment.OriginalID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.DeletedCount != 4 {
			t.Errorf("expected 4 deleted legs, got %d", out.DeletedCount)
		}
		if len(f.txRepo.transactions) != 0 {
			t.Error("expected all legs removed")
		}
	})

	t.Run("unknown group returns not found", func(t *testing.T) {
		f := newCreateFixture()
		uc := NewDeleteInstallmentGroupUseCase(f.txRepo, f.notifier)

		_, err := uc.Execute(ctx, DeleteInstallmentGroupInput{
			UserID:     f.userID,
			OriginalID: uuid.New(),
		})
		if !errors.Is(err, domainerror.ErrInstallmentGroupNotFound) {
			t.Errorf("expected ErrInstallmentGroupNotFound, got %v", err)
		}
	})
}

func TestListTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by installment group", func(t *testing.T) {
		f := newCreateFixture()
		input := f.input()
		input.WalletID = f.creditWallet.ID
		input.Installments = 3
		created, err := f.uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.uc.Execute(ctx, f.input()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewListTransactionsUseCase(f.txRepo)
		originalID := created.Transactions[0].Installment.OriginalID
		out, err := uc.Execute(ctx, ListTransactionsInput{
			UserID:     f.userID,
			OriginalID: &originalID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 3 {
			t.Errorf("expected 3 legs in the group, got %d", out.Total)
		}
	})

	t.Run("filters by type", func(t *testing.T) {
		f := newCreateFixture()
		if _, err := f.uc.Execute(ctx, f.input()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		income := f.input()
		income.Type = entity.TransactionTypeIncome
		income.Element = entity.ElementTierra
		if _, err := f.uc.Execute(ctx, income); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewListTransactionsUseCase(f.txRepo)
		incomeType := entity.TransactionTypeIncome
		out, err := uc.Execute(ctx, ListTransactionsInput{
			UserID: f.userID,
			Type:   &incomeType,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 1 {
			t.Errorf("expected 1 income transaction, got %d", out.Total)
		}
	})
}
