// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/alquimia/backend/internal/application/adapter"
)

// changeEvent is the payload published on the per-user channel.
type changeEvent struct {
	Section   string    `json:"section"`
	Timestamp time.Time `json:"timestamp"`
}

// redisChangeNotifier implements the adapter.ChangeNotifier interface by
// publishing change events on a per-user Redis channel. Subscribers refetch
// their snapshot on any message.
type redisChangeNotifier struct {
	client *redis.Client
}

// NewRedisChangeNotifier creates a new Redis-backed change notifier.
func NewRedisChangeNotifier(client *redis.Client) adapter.ChangeNotifier {
	return &redisChangeNotifier{
		client: client,
	}
}

// NotifyChanged signals that a section of the user's document changed.
func (n *redisChangeNotifier) NotifyChanged(ctx context.Context, userID uuid.UUID, section string) error {
	payload, err := json.Marshal(changeEvent{
		Section:   section,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	channel := ChangeChannel(userID)
	if err := n.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}
	return nil
}

// ChangeChannel returns the Redis channel name carrying a user's change events.
func ChangeChannel(userID uuid.UUID) string {
	return "alquimia:changes:" + userID.String()
}
