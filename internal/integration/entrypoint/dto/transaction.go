// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/alquimia/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amounts travel as strings to keep decimal precision across the wire.
type CreateTransactionRequest struct {
	Type         string  `json:"type" binding:"required,oneof=expense income"`
	Amount       string  `json:"amount" binding:"required"`
	Description  string  `json:"description" binding:"required,min=1,max=255"`
	ListID       string  `json:"list_id" binding:"required,uuid"`
	Element      string  `json:"element" binding:"required"`
	WalletID     string  `json:"wallet_id" binding:"required,uuid"`
	EntityID     *string `json:"entity_id,omitempty" binding:"omitempty,uuid"`
	Date         string  `json:"date" binding:"required"`
	Feeling      *string `json:"feeling,omitempty" binding:"omitempty,oneof=necessary pleasure regret"`
	Installments int     `json:"installments,omitempty" binding:"omitempty,min=1,max=60"`
}

// UpdateTransactionRequest represents the request body for transaction replacement.
type UpdateTransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	Amount      string  `json:"amount" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	ListID      string  `json:"list_id" binding:"required,uuid"`
	Element     string  `json:"element" binding:"required"`
	WalletID    string  `json:"wallet_id" binding:"required,uuid"`
	EntityID    *string `json:"entity_id,omitempty" binding:"omitempty,uuid"`
	Date        string  `json:"date" binding:"required"`
	Feeling     *string `json:"feeling,omitempty" binding:"omitempty,oneof=necessary pleasure regret"`
}

// InstallmentResponse represents installment metadata in API responses.
type InstallmentResponse struct {
	Current    int    `json:"current"`
	Total      int    `json:"total"`
	OriginalID string `json:"original_id"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id"`
	Type        string               `json:"type"`
	Amount      string               `json:"amount"`
	Description string               `json:"description"`
	ListID      string               `json:"list_id"`
	Element     string               `json:"element"`
	WalletID    string               `json:"wallet_id"`
	EntityID    *string              `json:"entity_id,omitempty"`
	Date        string               `json:"date"`
	Feeling     *string              `json:"feeling,omitempty"`
	Installment *InstallmentResponse `json:"installment,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
}

// DeleteInstallmentGroupResponse represents the response for group deletion.
type DeleteInstallmentGroupResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.ID.String(),
		UserID:      txn.UserID.String(),
		Type:        string(txn.Type),
		Amount:      txn.Amount.String(),
		Description: txn.Description,
		ListID:      txn.ListID.String(),
		Element:     string(txn.Element),
		WalletID:    txn.WalletID.String(),
		Date:        txn.Date.Format("2006-01-02"),
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}

	if txn.EntityID != nil {
		entityIDStr := txn.EntityID.String()
		response.EntityID = &entityIDStr
	}

	if txn.Feeling != nil {
		feelingStr := string(*txn.Feeling)
		response.Feeling = &feelingStr
	}

	if txn.Installment != nil {
		response.Installment = &InstallmentResponse{
			Current:    txn.Installment.Current,
			Total:      txn.Installment.Total,
			OriginalID: txn.Installment.OriginalID.String(),
		}
	}

	return response
}

// ToTransactionListResponse converts a ListTransactionsOutput to TransactionListResponse.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Total:        int64(output.Total),
	}
}
