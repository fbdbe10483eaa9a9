// Package sync contains the document snapshot and merge-patch use cases that
// back client live sync.
package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

// GetSnapshotInput represents the input for a snapshot read.
type GetSnapshotInput struct {
	UserID uuid.UUID
}

// GetSnapshotOutput is the whole per-user document. Missing sections come
// back with their documented defaults, persisted on first load.
type GetSnapshotOutput struct {
	Transactions       []*entity.Transaction
	Wallets            []*entity.Wallet
	TransmutationLists []*entity.TransmutationList
	Settings           *entity.Settings
	Theme              entity.Theme
	CreatedAt          time.Time
}

// GetSnapshotUseCase assembles the full document for one user.
type GetSnapshotUseCase struct {
	transactionRepo adapter.TransactionRepository
	walletRepo      adapter.WalletRepository
	listRepo        adapter.TransmutationListRepository
	settingsRepo    adapter.SettingsRepository
	userRepo        adapter.UserRepository
}

// NewGetSnapshotUseCase creates a new GetSnapshotUseCase instance.
func NewGetSnapshotUseCase(
	transactionRepo adapter.TransactionRepository,
	walletRepo adapter.WalletRepository,
	listRepo adapter.TransmutationListRepository,
	settingsRepo adapter.SettingsRepository,
	userRepo adapter.UserRepository,
) *GetSnapshotUseCase {
	return &GetSnapshotUseCase{
		transactionRepo: transactionRepo,
		walletRepo:      walletRepo,
		listRepo:        listRepo,
		settingsRepo:    settingsRepo,
		userRepo:        userRepo,
	}
}

// Execute assembles the snapshot.
func (uc *GetSnapshotUseCase) Execute(ctx context.Context, input GetSnapshotInput) (*GetSnapshotOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{UserID: input.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if transactions == nil {
		transactions = []*entity.Transaction{}
	}

	wallets, err := uc.walletRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallets: %w", err)
	}
	if len(wallets) == 0 {
		wallets = entity.DefaultWallets(input.UserID)
		if err := uc.walletRepo.CreateBatch(ctx, wallets); err != nil {
			return nil, fmt.Errorf("failed to seed default wallets: %w", err)
		}
	}

	lists, err := uc.listRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lists: %w", err)
	}
	if len(lists) == 0 {
		lists = entity.DefaultTransmutationLists(input.UserID)
		if err := uc.listRepo.CreateBatch(ctx, lists); err != nil {
			return nil, fmt.Errorf("failed to seed default lists: %w", err)
		}
	} else {
		lists, err = uc.ensureReservedLists(ctx, input.UserID, lists)
		if err != nil {
			return nil, err
		}
	}

	settings, err := uc.settingsRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrSettingsNotFound) {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		settings = entity.NewSettings(input.UserID)
		if saveErr := uc.settingsRepo.Save(ctx, settings); saveErr != nil {
			return nil, fmt.Errorf("failed to seed default settings: %w", saveErr)
		}
	}

	return &GetSnapshotOutput{
		Transactions:       transactions,
		Wallets:            wallets,
		TransmutationLists: lists,
		Settings:           settings,
		Theme:              user.Theme,
		CreatedAt:          user.CreatedAt,
	}, nil
}

// ensureReservedLists synthesizes any missing reserved view so exactly one of
// each kind exists.
func (uc *GetSnapshotUseCase) ensureReservedLists(
	ctx context.Context,
	userID uuid.UUID,
	lists []*entity.TransmutationList,
) ([]*entity.TransmutationList, error) {
	hasCreditCard, hasLoans := false, false
	for _, l := range lists {
		if l.IsCreditCardView {
			hasCreditCard = true
		}
		if l.IsLoansView {
			hasLoans = true
		}
	}
	if !hasCreditCard {
		cc := entity.NewCreditCardList(userID)
		if err := uc.listRepo.Create(ctx, cc); err != nil {
			return nil, fmt.Errorf("failed to synthesize credit card list: %w", err)
		}
		lists = append(lists, cc)
	}
	if !hasLoans {
		loans := entity.NewLoansList(userID)
		if err := uc.listRepo.Create(ctx, loans); err != nil {
			return nil, fmt.Errorf("failed to synthesize loans list: %w", err)
		}
		lists = append(lists, loans)
	}
	return lists, nil
}
