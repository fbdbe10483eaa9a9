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
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

// AddItemInput represents the input for adding a planned item.
type AddItemInput struct {
	ListID      uuid.UUID
	UserID      uuid.UUID
	Name        string
	Amount      decimal.Decimal
	DueDate     *int
	IsRecurring bool
}

// AddItemOutput represents the output of adding a planned item.
type AddItemOutput struct {
	List *ListOutput
	Item *ItemOutput
}

// AddItemUseCase appends a planned item to a list.
type AddItemUseCase struct {
	listRepo adapter.TransmutationListRepository
	notifier adapter.ChangeNotifier
}

// NewAddItemUseCase creates a new AddItemUseCase instance.
func NewAddItemUseCase(listRepo adapter.TransmutationListRepository, notifier adapter.ChangeNotifier) *AddItemUseCase {
	return &AddItemUseCase{
		listRepo: listRepo,
		notifier: notifier,
	}
}

// Execute performs the item addition.
func (uc *AddItemUseCase) Execute(ctx context.Context, input AddItemInput) (*AddItemOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewListError(
			domainerror.ErrCodeInvalidItemName,
			"item name cannot be empty",
			domainerror.ErrInvalidItemName,
		)
	}
	if input.DueDate != nil && (*input.DueDate < 1 || *input.DueDate > 31) {
		return nil, domainerror.NewListError(
			domainerror.ErrCodeInvalidItemDueDate,
			"item due day must be between 1 and 31",
			domainerror.ErrInvalidItemDueDate,
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

	item := entity.NewTransmutationItem(input.Name, input.Amount, input.DueDate, input.IsRecurring)
	list.Items = append(list.Items, item)
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

	out := toOutput(list)
	return &AddItemOutput{List: out, Item: out.Items[len(out.Items)-1]}, nil
}
