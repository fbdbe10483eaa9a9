// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// SpendingSnapshot summarizes the caller's recent activity for advisory prompts.
type SpendingSnapshot struct {
	MonthIncome    decimal.Decimal
	MonthExpenses  decimal.Decimal
	TopListName    string
	TopListAmount  decimal.Decimal
	DominantElement string
}

// Promotion represents a single bank or card promotion.
type Promotion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Bank        string `json:"bank"`
}

// ReceiptItem represents one line item parsed from a receipt image.
type ReceiptItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// ParsedReceipt represents the structured result of receipt interpretation.
type ParsedReceipt struct {
	Merchant string          `json:"merchant"`
	Total    decimal.Decimal `json:"total"`
	Items    []ReceiptItem   `json:"items"`
}

// AdvisorService defines the interface for generative advisory operations.
// Implementations return ErrAdvisoryServiceUnavailable when the upstream
// model cannot answer; callers degrade to fixed fallback content.
type AdvisorService interface {
	// GetDailyTip generates a short financial tip grounded in the snapshot.
	GetDailyTip(ctx context.Context, snapshot SpendingSnapshot) (string, error)

	// GetPromotions generates current bank promotion summaries.
	GetPromotions(ctx context.Context) ([]Promotion, error)

	// ParseReceipt interprets a receipt image into structured line items.
	ParseReceipt(ctx context.Context, imageData []byte, mimeType string) (*ParsedReceipt, error)

	// IsAvailable checks if the advisory service is properly configured.
	IsAvailable() bool
}
