// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for settings persistence operations.
type SettingsRepository interface {
	// FindByUser retrieves the settings document for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Settings, error)

	// Save creates or replaces the settings document for a user.
	Save(ctx context.Context, settings *entity.Settings) error
}
