// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// ChangeNotifier broadcasts per-user change events so connected clients can
// refetch their snapshot. Publish failures are logged and dropped; they never
// fail the write that triggered them.
type ChangeNotifier interface {
	// NotifyChanged signals that a section of the user's document changed.
	NotifyChanged(ctx context.Context, userID uuid.UUID, section string) error
}
