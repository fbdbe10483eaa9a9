// Package list contains transmutation-list use cases.
package list

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/application/adapter"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

// ToggleItemInput represents the input for toggling an item's completion flag.
type ToggleItemInput struct {
	ListID uuid.UUID
	ItemID uuid.UUID
	UserID uuid.UUID
}

// ToggleItemOutput represents the output of toggling an item.
type ToggleItemOutput struct {
	Item *ItemOutput
}

// ToggleItemUseCase flips the completion flag of a planned item without
// converting it into a transaction.
type ToggleItemUseCase struct {
	listRepo adapter.TransmutationListRepository
	notifier adapter.ChangeNotifier
}

// NewToggleItemUseCase creates a new ToggleItemUseCase instance.
func NewToggleItemUseCase(listRepo adapter.TransmutationListRepository, notifier adapter.ChangeNotifier) *ToggleItemUseCase {
	return &ToggleItemUseCase{
		listRepo: listRepo,
		notifier: notifier,
	}
}

// Execute performs the toggle.
func (uc *ToggleItemUseCase) Execute(ctx context.Context, input ToggleItemInput) (*ToggleItemOutput, error) {
	list, err := uc.listRepo.FindByID(ctx, input.ListID)
	if err != nil {
		if errors.Is(err, domainerror.ErrListNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find list: %w", err)
	}
	if list.UserID != input.UserID {
		return nil, notFoundError()
	}

	item := list.FindItem(input.ItemID)
	if item == nil {
		return nil, domainerror.NewListError(
			domainerror.ErrCodeListItemNotFound,
			"list item not found",
			domainerror.ErrListItemNotFound,
		)
	}

	item.IsCompleted = !item.IsCompleted
	list.UpdatedAt = time.Now().UTC()

	if err := uc.listRepo.Update(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to save list: %w", err)
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyChanged(ctx, input.UserID, "transmutationLists"); err != nil {
			slog.Warn("failed to publish list change notification",
				"userID", input.UserID,
				"error", err,
			)
		}
	}

	return &ToggleItemOutput{Item: &ItemOutput{
		ID:          item.ID,
		Name:        item.Name,
		Amount:      item.Amount,
		IsCompleted: item.IsCompleted,
		DueDate:     item.DueDate,
		IsRecurring: item.IsRecurring,
	}}, nil
}
