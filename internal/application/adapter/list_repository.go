// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/domain/entity"
)

// TransmutationListRepository defines the interface for list persistence operations.
type TransmutationListRepository interface {
	// Create creates a new list in the database.
	Create(ctx context.Context, list *entity.TransmutationList) error

	// CreateBatch creates all lists atomically. Used for default seeding.
	CreateBatch(ctx context.Context, lists []*entity.TransmutationList) error

	// FindByID retrieves a list with its items by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TransmutationList, error)

	// FindByUser retrieves all lists with their items for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.TransmutationList, error)

	// Update updates a list and replaces its items.
	Update(ctx context.Context, list *entity.TransmutationList) error

	// Delete removes a list and its items from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
