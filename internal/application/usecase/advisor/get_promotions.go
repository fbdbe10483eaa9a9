// Package advisor contains the generative advisory use cases.
package advisor

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/application/adapter"
)

// GetPromotionsInput represents the input for the promotions operation.
type GetPromotionsInput struct {
	UserID uuid.UUID
}

// GetPromotionsOutput represents the generated promotion list. Empty when
// the service cannot answer.
type GetPromotionsOutput struct {
	Promotions []adapter.Promotion
	Fallback   bool
}

// GetPromotionsUseCase asks the advisory service for current bank promotions.
type GetPromotionsUseCase struct {
	advisor adapter.AdvisorService
}

// NewGetPromotionsUseCase creates a new GetPromotionsUseCase instance.
func NewGetPromotionsUseCase(advisor adapter.AdvisorService) *GetPromotionsUseCase {
	return &GetPromotionsUseCase{
		advisor: advisor,
	}
}

// Execute performs the promotion lookup.
func (uc *GetPromotionsUseCase) Execute(ctx context.Context, input GetPromotionsInput) (*GetPromotionsOutput, error) {
	if uc.advisor == nil || !uc.advisor.IsAvailable() {
		return &GetPromotionsOutput{Promotions: []adapter.Promotion{}, Fallback: true}, nil
	}

	promotions, err := uc.advisor.GetPromotions(ctx)
	if err != nil {
		slog.Warn("advisory service failed to list promotions",
			"userID", input.UserID,
			"error", err,
		)
		return &GetPromotionsOutput{Promotions: []adapter.Promotion{}, Fallback: true}, nil
	}
	if promotions == nil {
		promotions = []adapter.Promotion{}
	}

	return &GetPromotionsOutput{Promotions: promotions}, nil
}
