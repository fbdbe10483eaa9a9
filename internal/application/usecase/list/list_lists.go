// Package list contains transmutation-list use cases.
package list

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
)

// ListListsInput represents the input for listing transmutation lists.
type ListListsInput struct {
	UserID uuid.UUID
}

// ListListsOutput represents the output of listing transmutation lists.
type ListListsOutput struct {
	Lists []*ListOutput
}

// ListListsUseCase retrieves a user's lists. An empty store is seeded with
// the defaults; a store missing either reserved view gets it synthesized so
// exactly one of each kind always exists.
type ListListsUseCase struct {
	listRepo adapter.TransmutationListRepository
}

// NewListListsUseCase creates a new ListListsUseCase instance.
func NewListListsUseCase(listRepo adapter.TransmutationListRepository) *ListListsUseCase {
	return &ListListsUseCase{
		listRepo: listRepo,
	}
}

// Execute performs the list retrieval.
func (uc *ListListsUseCase) Execute(ctx context.Context, input ListListsInput) (*ListListsOutput, error) {
	lists, err := uc.listRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transmutation lists: %w", err)
	}

	if len(lists) == 0 {
		lists = entity.DefaultTransmutationLists(input.UserID)
		if err := uc.listRepo.CreateBatch(ctx, lists); err != nil {
			return nil, fmt.Errorf("failed to seed default lists: %w", err)
		}
	} else {
		synthesized, err := uc.ensureReservedLists(ctx, input.UserID, lists)
		if err != nil {
			return nil, err
		}
		lists = synthesized
	}

	outputs := make([]*ListOutput, 0, len(lists))
	for _, l := range lists {
		outputs = append(outputs, toOutput(l))
	}
	return &ListListsOutput{Lists: outputs}, nil
}

// ensureReservedLists synthesizes any missing reserved view.
func (uc *ListListsUseCase) ensureReservedLists(
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
