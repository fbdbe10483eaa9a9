// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	ListID    *uuid.UUID
	WalletID  *uuid.UUID
	Element   *entity.Element
	Type      *entity.TransactionType
	Search    string // Case-insensitive description match
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// CreateBatch creates all transactions atomically. Used when a purchase
	// expands into multiple installment legs.
	CreateBatch(ctx context.Context, transactions []*entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, newest first.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// FindByInstallmentGroup retrieves all legs sharing an installment group id.
	FindByInstallmentGroup(ctx context.Context, userID, originalID uuid.UUID) ([]*entity.Transaction, error)

	// FindDueBetween retrieves installment legs whose date falls within the
	// given range, across all users. Used by the reminder worker.
	FindDueBetween(ctx context.Context, start, end time.Time) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByInstallmentGroup removes every leg of an installment group.
	// Returns the count of deleted legs.
	DeleteByInstallmentGroup(ctx context.Context, userID, originalID uuid.UUID) (int64, error)

	// ExistsByIDAndUser checks if a transaction exists for a given ID and user.
	ExistsByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error)
}
