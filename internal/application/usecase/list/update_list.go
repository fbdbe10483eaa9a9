// Package list contains transmutation-list use cases.
package list

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/application/adapter"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

// UpdateListInput represents the input for renaming a list.
type UpdateListInput struct {
	ListID uuid.UUID
	UserID uuid.UUID
	Name   string
}

// UpdateListOutput represents the output of renaming a list.
type UpdateListOutput struct {
	List *ListOutput
}

// UpdateListUseCase handles list renaming. Reserved views cannot be renamed.
type UpdateListUseCase struct {
	listRepo adapter.TransmutationListRepository
	notifier adapter.ChangeNotifier
}

// NewUpdateListUseCase creates a new UpdateListUseCase instance.
func NewUpdateListUseCase(listRepo adapter.TransmutationListRepository, notifier adapter.ChangeNotifier) *UpdateListUseCase {
	return &UpdateListUseCase{
		listRepo: listRepo,
		notifier: notifier,
	}
}

// Execute performs the rename.
func (uc *UpdateListUseCase) Execute(ctx context.Context, input UpdateListInput) (*UpdateListOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewListError(
			domainerror.ErrCodeInvalidListName,
			"list name cannot be empty",
			domainerror.ErrInvalidListName,
		)
	}

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
			"reserved lists cannot be renamed",
			domainerror.ErrReservedList,
		)
	}

	list.Name = input.Name
	list.UpdatedAt = time.Now().UTC()
	if err := uc.listRepo.Update(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to update list: %w", err)
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyChanged(ctx, input.UserID, "transmutationLists"); err != nil {
			slog.Warn("failed to publish list change notification",
				"userID", input.UserID,
				"error", err,
			)
		}
	}

	return &UpdateListOutput{List: toOutput(list)}, nil
}
