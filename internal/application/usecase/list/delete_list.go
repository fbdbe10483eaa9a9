// Package list contains transmutation-list use cases.
package list

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/application/adapter"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

// DeleteListInput represents the input for list deletion.
type DeleteListInput struct {
	ListID uuid.UUID
	UserID uuid.UUID
}

// DeleteListOutput represents the output of list deletion.
type DeleteListOutput struct {
	Success bool
}

// DeleteListUseCase handles list deletion. Reserved views cannot be deleted.
// Transactions referencing a deleted list keep their dangling listId.
type DeleteListUseCase struct {
	listRepo adapter.TransmutationListRepository
	notifier adapter.ChangeNotifier
}

// NewDeleteListUseCase creates a new DeleteListUseCase instance.
func NewDeleteListUseCase(listRepo adapter.TransmutationListRepository, notifier adapter.ChangeNotifier) *DeleteListUseCase {
	return &DeleteListUseCase{
		listRepo: listRepo,
		notifier: notifier,
	}
}

// Execute performs the list deletion.
func (uc *DeleteListUseCase) Execute(ctx context.Context, input DeleteListInput) (*DeleteListOutput, error) {
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
	if list.IsReserved() {
		return nil, domainerror.NewListError(
			domainerror.ErrCodeReservedList,
			"reserved lists cannot be deleted",
			domainerror.ErrReservedList,
		)
	}

	if err := uc.listRepo.Delete(ctx, input.ListID); err != nil {
		return nil, fmt.Errorf("failed to delete list: %w", err)
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyChanged(ctx, input.UserID, "transmutationLists"); err != nil {
			slog.Warn("failed to publish list change notification",
				"userID", input.UserID,
				"error", err,
			)
		}
	}

	return &DeleteListOutput{Success: true}, nil
}
