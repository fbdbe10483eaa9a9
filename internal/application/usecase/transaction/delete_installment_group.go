// Package transaction contains ledger-entry use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/application/adapter"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

// DeleteInstallmentGroupInput represents the input for group deletion.
type DeleteInstallmentGroupInput struct {
	UserID     uuid.UUID
	OriginalID uuid.UUID
}

// DeleteInstallmentGroupOutput represents the output of group deletion.
type DeleteInstallmentGroupOutput struct {
	DeletedCount int64
}

// DeleteInstallmentGroupUseCase removes every leg of an installment group in
// one operation. Legs remain independently editable otherwise; this is the
// one group-level convenience.
type DeleteInstallmentGroupUseCase struct {
	transactionRepo adapter.TransactionRepository
	notifier        adapter.ChangeNotifier
}

// NewDeleteInstallmentGroupUseCase creates a new DeleteInstallmentGroupUseCase instance.
func NewDeleteInstallmentGroupUseCase(
	transactionRepo adapter.TransactionRepository,
	notifier adapter.ChangeNotifier,
) *DeleteInstallmentGroupUseCase {
	return &DeleteInstallmentGroupUseCase{
		transactionRepo: transactionRepo,
		notifier:        notifier,
	}
}

// Execute performs the group deletion.
func (uc *DeleteInstallmentGroupUseCase) Execute(ctx context.Context, input DeleteInstallmentGroupInput) (*DeleteInstallmentGroupOutput, error) {
	count, err := uc.transactionRepo.DeleteByInstallmentGroup(ctx, input.UserID, input.OriginalID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete installment group: %w", err)
	}
	if count == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInstallmentGroupNotFound,
			"installment group not found",
			domainerror.ErrInstallmentGroupNotFound,
		)
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyChanged(ctx, input.UserID, "transactions"); err != nil {
			slog.Warn("failed to publish transaction change notification",
				"userID", input.UserID,
				"error", err,
			)
		}
	}

	return &DeleteInstallmentGroupOutput{DeletedCount: count}, nil
}
