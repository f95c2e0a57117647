package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// VisitCounter counts members-page visits per user.
// Key format: visits:<username>
type VisitCounter struct {
	client *redis.Client
}

// NewVisitCounter creates a VisitCounter wrapping the given Redis client.
func NewVisitCounter(client *redis.Client) *VisitCounter {
	return &VisitCounter{client: client}
}

// Increment bumps the user's visit count and returns the new value.
func (v *VisitCounter) Increment(ctx context.Context, username string) (int64, error) {
	n, err := v.client.Incr(ctx, v.key(username)).Result()
	if err != nil {
		return 0, fmt.Errorf("visit count: %w", err)
	}
	return n, nil
}

func (v *VisitCounter) key(username string) string {
	return fmt.Sprintf("visits:%s", username)
}
