// Package list contains transmutation-list use cases.
package list

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

// CreateListInput represents the input for list creation.
type CreateListInput struct {
	UserID uuid.UUID
	Name   string
}

// CreateListOutput represents the output of list creation.
type CreateListOutput struct {
	List *ListOutput
}

// CreateListUseCase handles list creation logic. Reserved views are never
// created through this path; they are synthesized on load.
type CreateListUseCase struct {
	listRepo adapter.TransmutationListRepository
	notifier adapter.ChangeNotifier
}

// NewCreateListUseCase creates a new CreateListUseCase instance.
func NewCreateListUseCase(listRepo adapter.TransmutationListRepository, notifier adapter.ChangeNotifier) *CreateListUseCase {
	return &CreateListUseCase{
		listRepo: listRepo,
		notifier: notifier,
	}
}

// Execute performs the list creation.
func (uc *CreateListUseCase) Execute(ctx context.Context, input CreateListInput) (*CreateListOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewListError(
			domainerror.ErrCodeInvalidListName,
			"list name cannot be empty",
			domainerror.ErrInvalidListName,
		)
	}

	list := entity.NewTransmutationList(input.UserID, input.Name)
	if err := uc.listRepo.Create(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyChanged(ctx, input.UserID, "transmutationLists"); err != nil {
			slog.Warn("failed to publish list change notification",
				"userID", input.UserID,
				"error", err,
			)
		}
	}

	return &CreateListOutput{List: toOutput(list)}, nil
}
