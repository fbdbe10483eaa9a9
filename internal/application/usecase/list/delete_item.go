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

// DeleteItemInput represents the input for removing a planned item.
type DeleteItemInput struct {
	ListID uuid.UUID
	ItemID uuid.UUID
	UserID uuid.UUID
}

// DeleteItemOutput represents the output of removing a planned item.
type DeleteItemOutput struct {
	Success bool
}

// DeleteItemUseCase removes a planned item from its list.
type DeleteItemUseCase struct {
	listRepo adapter.TransmutationListRepository
	notifier adapter.ChangeNotifier
}

// NewDeleteItemUseCase creates a new DeleteItemUseCase instance.
func NewDeleteItemUseCase(listRepo adapter.TransmutationListRepository, notifier adapter.ChangeNotifier) *DeleteItemUseCase {
	return &DeleteItemUseCase{
		listRepo: listRepo,
		notifier: notifier,
	}
}

// Execute performs the item removal.
func (uc *DeleteItemUseCase) Execute(ctx context.Context, input DeleteItemInput) (*DeleteItemOutput, error) {
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

	found := false
	for i, item := range list.Items {
		if item.ID == input.ItemID {
			list.Items = append(list.Items[:i], list.Items[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return nil, domainerror.NewListError(
			domainerror.ErrCodeListItemNotFound,
			"list item not found",
			domainerror.ErrListItemNotFound,
		)
	}

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

	return &DeleteItemOutput{Success: true}, nil
}
