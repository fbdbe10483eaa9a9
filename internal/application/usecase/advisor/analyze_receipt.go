// Package advisor contains the generative advisory use cases.
package advisor

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/application/adapter"
)

// AnalyzeReceiptInput represents the input for receipt interpretation.
type AnalyzeReceiptInput struct {
	UserID    uuid.UUID
	ImageData []byte
	MimeType  string
}

// AnalyzeReceiptOutput represents the parsed receipt. Receipt is nil and
// Fallback true when the image could not be interpreted.
type AnalyzeReceiptOutput struct {
	Receipt  *adapter.ParsedReceipt
	Fallback bool
}

// AnalyzeReceiptUseCase interprets a receipt image into line items.
type AnalyzeReceiptUseCase struct {
	advisor adapter.AdvisorService
}

// NewAnalyzeReceiptUseCase creates a new AnalyzeReceiptUseCase instance.
func NewAnalyzeReceiptUseCase(advisor adapter.AdvisorService) *AnalyzeReceiptUseCase {
	return &AnalyzeReceiptUseCase{
		advisor: advisor,
	}
}

// Execute performs the interpretation.
func (uc *AnalyzeReceiptUseCase) Execute(ctx context.Context, input AnalyzeReceiptInput) (*AnalyzeReceiptOutput, error) {
	if uc.advisor == nil || !uc.advisor.IsAvailable() || len(input.ImageData) == 0 {
		return &AnalyzeReceiptOutput{Fallback: true}, nil
	}

	receipt, err := uc.advisor.ParseReceipt(ctx, input.ImageData, input.MimeType)
	if err != nil || receipt == nil || len(receipt.Items) == 0 {
		slog.Warn("advisory service failed to parse receipt",
			"userID", input.UserID,
			"error", err,
		)
		return &AnalyzeReceiptOutput{Fallback: true}, nil
	}

	return &AnalyzeReceiptOutput{Receipt: receipt}, nil
}
