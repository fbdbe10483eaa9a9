// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/alquimia/backend/internal/application/usecase/list"
)

// CreateListRequest represents the request body for list creation.
type CreateListRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateListRequest represents the request body for list renaming.
type UpdateListRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// AddItemRequest represents the request body for adding a planned item.
type AddItemRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Amount      string `json:"amount" binding:"required"`
	DueDate     *int   `json:"due_date,omitempty" binding:"omitempty,min=1,max=31"`
	IsRecurring bool   `json:"is_recurring,omitempty"`
}

// CompleteItemRequest represents the request body for converting a planned
// item into an expense.
type CompleteItemRequest struct {
	WalletID string  `json:"wallet_id" binding:"required,uuid"`
	Element  string  `json:"element" binding:"required"`
	Feeling  *string `json:"feeling,omitempty" binding:"omitempty,oneof=necessary pleasure regret"`
	Date     string  `json:"date,omitempty"`
}

// ItemResponse represents a planned item in API responses.
type ItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Amount      string `json:"amount"`
	IsCompleted bool   `json:"is_completed"`
	DueDate     *int   `json:"due_date,omitempty"`
	IsRecurring bool   `json:"is_recurring"`
}

// ListResponse represents a transmutation list in API responses.
type ListResponse struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Items            []ItemResponse `json:"items"`
	IsCreditCardView bool           `json:"is_credit_card_view"`
	IsLoansView      bool           `json:"is_loans_view"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// ListListResponse represents the response for listing transmutation lists.
type ListListResponse struct {
	Lists []ListResponse `json:"lists"`
}

// CompleteItemResponse represents the response for item conversion.
type CompleteItemResponse struct {
	Item          ItemResponse `json:"item"`
	TransactionID string       `json:"transaction_id"`
}

// ToItemResponse converts an ItemOutput to an ItemResponse DTO.
func ToItemResponse(item *list.ItemOutput) ItemResponse {
	return ItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Amount:      item.Amount.String(),
		IsCompleted: item.IsCompleted,
		DueDate:     item.DueDate,
		IsRecurring: item.IsRecurring,
	}
}

// ToListResponse converts a ListOutput to a ListResponse DTO.
func ToListResponse(l *list.ListOutput) ListResponse {
	items := make([]ItemResponse, len(l.Items))
	for i, item := range l.Items {
		items[i] = ToItemResponse(item)
	}

	return ListResponse{
		ID:               l.ID.String(),
		Name:             l.Name,
		Items:            items,
		IsCreditCardView: l.IsCreditCardView,
		IsLoansView:      l.IsLoansView,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}
