// Package list contains transmutation-list use cases.
package list

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

// ItemOutput represents a planned item in use case outputs.
type ItemOutput struct {
	ID          uuid.UUID
	Name        string
	Amount      decimal.Decimal
	IsCompleted bool
	DueDate     *int
	IsRecurring bool
}

// ListOutput represents a transmutation list in use case outputs.
type ListOutput struct {
	ID               uuid.UUID
	Name             string
	Items            []*ItemOutput
	IsCreditCardView bool
	IsLoansView      bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// toOutput maps a list entity into its output representation.
func toOutput(l *entity.TransmutationList) *ListOutput {
	items := make([]*ItemOutput, 0, len(l.Items))
	for _, item := range l.Items {
		items = append(items, &ItemOutput{
			ID:          item.ID,
			Name:        item.Name,
			Amount:      item.Amount,
			IsCompleted: item.IsCompleted,
			DueDate:     item.DueDate,
			IsRecurring: item.IsRecurring,
		})
	}
	return &ListOutput{
		ID:               l.ID,
		Name:             l.Name,
		Items:            items,
		IsCreditCardView: l.IsCreditCardView,
		IsLoansView:      l.IsLoansView,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

// notFoundError builds the standard list-not-found error.
func notFoundError() error {
	return domainerror.NewListError(
		domainerror.ErrCodeListNotFound,
		"transmutation list not found",
		domainerror.ErrListNotFound,
	)
}
