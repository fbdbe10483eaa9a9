// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/alquimia/backend/internal/application/adapter"
)

// TipResponse represents the daily-tip response.
type TipResponse struct {
	Tip      string `json:"tip"`
	Fallback bool   `json:"fallback"`
}

// PromotionResponse represents a single bank promotion.
type PromotionResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Bank        string `json:"bank"`
}

// PromotionsResponse represents the promotion list response.
type PromotionsResponse struct {
	Promotions []PromotionResponse `json:"promotions"`
	Fallback   bool                `json:"fallback"`
}

// ReceiptItemResponse represents one parsed line item.
type ReceiptItemResponse struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// ReceiptResponse represents the parsed-receipt response. Receipt is null
// when the image could not be interpreted.
type ReceiptResponse struct {
	Receipt  *ParsedReceiptResponse `json:"receipt"`
	Fallback bool                   `json:"fallback"`
}

// ParsedReceiptResponse represents a structured receipt.
type ParsedReceiptResponse struct {
	Merchant string                `json:"merchant"`
	Total    string                `json:"total"`
	Items    []ReceiptItemResponse `json:"items"`
}

// ToPromotionsResponse converts promotions to their DTO.
func ToPromotionsResponse(promotions []adapter.Promotion, fallback bool) PromotionsResponse {
	out := make([]PromotionResponse, len(promotions))
	for i, p := range promotions {
		out[i] = PromotionResponse{
			Title:       p.Title,
			Description: p.Description,
			Bank:        p.Bank,
		}
	}
	return PromotionsResponse{Promotions: out, Fallback: fallback}
}

// ToReceiptResponse converts a parsed receipt to its DTO.
func ToReceiptResponse(receipt *adapter.ParsedReceipt, fallback bool) ReceiptResponse {
	if receipt == nil {
		return ReceiptResponse{Fallback: fallback}
	}

	items := make([]ReceiptItemResponse, len(receipt.Items))
	for i, item := range receipt.Items {
		items[i] = ReceiptItemResponse{
			Description: item.Description,
			Amount:      item.Amount.String(),
		}
	}

	return ReceiptResponse{
		Receipt: &ParsedReceiptResponse{
			Merchant: receipt.Merchant,
			Total:    receipt.Total.String(),
			Items:    items,
		},
		Fallback: fallback,
	}
}
