// Package sync contains the document snapshot and merge-patch use cases that
// back client live sync.
package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

// ApplyPatchInput is a merge patch over the user's document. Only non-nil
// sections are applied; each supplied section replaces the stored one
// wholesale (last write wins, no merging of concurrent edits).
type ApplyPatchInput struct {
	UserID             uuid.UUID
	Transactions       []*entity.Transaction
	HasTransactions    bool
	Wallets            []*entity.Wallet
	HasWallets         bool
	TransmutationLists []*entity.TransmutationList
	HasLists           bool
	Settings           *entity.Settings
	Theme              *entity.Theme
}

// ApplyPatchOutput reports which sections were applied.
type ApplyPatchOutput struct {
	AppliedSections []string
}

// ApplyPatchUseCase applies a merge patch section by section. A failed write
// surfaces as an error (the HTTP layer maps it to a 500); the change
// notification is fire-and-forget.
type ApplyPatchUseCase struct {
	syncRepo     adapter.SyncRepository
	settingsRepo adapter.SettingsRepository
	userRepo     adapter.UserRepository
	notifier     adapter.ChangeNotifier
}

// NewApplyPatchUseCase creates a new ApplyPatchUseCase instance.
func NewApplyPatchUseCase(
	syncRepo adapter.SyncRepository,
	settingsRepo adapter.SettingsRepository,
	userRepo adapter.UserRepository,
	notifier adapter.ChangeNotifier,
) *ApplyPatchUseCase {
	return &ApplyPatchUseCase{
		syncRepo:     syncRepo,
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
		notifier:     notifier,
	}
}

// Execute applies the patch.
func (uc *ApplyPatchUseCase) Execute(ctx context.Context, input ApplyPatchInput) (*ApplyPatchOutput, error) {
	if !input.HasTransactions && !input.HasWallets && !input.HasLists &&
		input.Settings == nil && input.Theme == nil {
		return nil, domainerror.NewSyncError(
			domainerror.ErrCodeEmptyPatch,
			"merge patch contains no sections",
			domainerror.ErrEmptyPatch,
		)
	}

	var applied []string

	if input.HasTransactions {
		if err := uc.syncRepo.ReplaceTransactions(ctx, input.UserID, input.Transactions); err != nil {
			return nil, uc.writeFailed("transactions", err)
		}
		applied = append(applied, "transactions")
	}
	if input.HasWallets {
		if err := uc.syncRepo.ReplaceWallets(ctx, input.UserID, input.Wallets); err != nil {
			return nil, uc.writeFailed("wallets", err)
		}
		applied = append(applied, "wallets")
	}
	if input.HasLists {
		if err := uc.syncRepo.ReplaceLists(ctx, input.UserID, input.TransmutationLists); err != nil {
			return nil, uc.writeFailed("transmutationLists", err)
		}
		applied = append(applied, "transmutationLists")
	}
	if input.Settings != nil {
		settings := input.Settings
		settings.UserID = input.UserID
		settings.UpdatedAt = time.Now().UTC()
		if err := uc.settingsRepo.Save(ctx, settings); err != nil {
			return nil, uc.writeFailed("settings", err)
		}
		applied = append(applied, "settings")
	}
	if input.Theme != nil {
		user, err := uc.userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			return nil, uc.writeFailed("theme", err)
		}
		user.Theme = *input.Theme
		user.UpdatedAt = time.Now().UTC()
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return nil, uc.writeFailed("theme", err)
		}
		applied = append(applied, "theme")
	}

	if uc.notifier != nil {
		for _, section := range applied {
			if err := uc.notifier.NotifyChanged(ctx, input.UserID, section); err != nil {
				slog.Warn("failed to publish change notification",
					"userID", input.UserID,
					"section", section,
					"error", err,
				)
			}
		}
	}

	return &ApplyPatchOutput{AppliedSections: applied}, nil
}

// writeFailed wraps a section write failure in the standard sync error.
func (uc *ApplyPatchUseCase) writeFailed(section string, err error) error {
	return domainerror.NewSyncError(
		domainerror.ErrCodePersistenceWriteFailed,
		fmt.Sprintf("failed to write section %q", section),
		fmt.Errorf("%w: %v", domainerror.ErrPersistenceWriteFailed, err),
	)
}
