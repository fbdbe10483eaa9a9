// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/alquimia/backend/internal/application/usecase/wallet"
)

// CreateWalletRequest represents the request body for wallet creation.
type CreateWalletRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=100"`
	Kind       string `json:"kind" binding:"required,oneof=cash debit credit"`
	ClosingDay *int   `json:"closing_day,omitempty" binding:"omitempty,min=1,max=31"`
	DueDay     *int   `json:"due_day,omitempty" binding:"omitempty,min=1,max=31"`
}

// UpdateWalletRequest represents the request body for wallet replacement.
type UpdateWalletRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=100"`
	Kind       string `json:"kind" binding:"required,oneof=cash debit credit"`
	ClosingDay *int   `json:"closing_day,omitempty" binding:"omitempty,min=1,max=31"`
	DueDay     *int   `json:"due_day,omitempty" binding:"omitempty,min=1,max=31"`
}

// WalletResponse represents a single wallet in API responses.
type WalletResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Kind       string    `json:"kind"`
	ClosingDay *int      `json:"closing_day,omitempty"`
	DueDay     *int      `json:"due_day,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// WalletListResponse represents the response for listing wallets.
type WalletListResponse struct {
	Wallets []WalletResponse `json:"wallets"`
}

// DeleteWalletResponse represents the response for wallet deletion.
type DeleteWalletResponse struct {
	Success bool `json:"success"`

	// DanglingTransactions counts ledger entries still pointing at the
	// deleted wallet; deletion never cascades.
	DanglingTransactions int64 `json:"dangling_transactions"`
}

// ToWalletResponse converts a WalletOutput to a WalletResponse DTO.
func ToWalletResponse(w *wallet.WalletOutput) WalletResponse {
	return WalletResponse{
		ID:         w.ID.String(),
		Name:       w.Name,
		Kind:       string(w.Kind),
		ClosingDay: w.ClosingDay,
		DueDay:     w.DueDay,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}
