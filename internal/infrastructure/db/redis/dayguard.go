package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Keys outlive the day they describe by a margin, then expire on their own.
// The unique storage index stays authoritative; this is only a fast path.
const guardTTL = 48 * time.Hour

// DayGuard answers "has this user already logged this day?" from Redis.
// Key format: dietlog:<user_id>:<date>
type DayGuard struct {
	client *redis.Client
}

// NewDayGuard creates a DayGuard wrapping the given Redis client.
func NewDayGuard(client *redis.Client) *DayGuard {
	return &DayGuard{client: client}
}

// IsLogged reports whether a diet log for (userID, date) has been recorded.
func (g *DayGuard) IsLogged(ctx context.Context, userID, date string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(userID, date)).Result()
	if err != nil {
		return false, fmt.Errorf("day guard check: %w", err)
	}
	return n > 0, nil
}

// Mark records that the day has been logged (expires after guardTTL).
func (g *DayGuard) Mark(ctx context.Context, userID, date string) error {
	return g.client.Set(ctx, g.key(userID, date), "1", guardTTL).Err()
}

// Clear frees the day again, used when the day's log is deleted.
func (g *DayGuard) Clear(ctx context.Context, userID, date string) error {
	return g.client.Del(ctx, g.key(userID, date)).Err()
}

func (g *DayGuard) key(userID, date string) string {
	return fmt.Sprintf("dietlog:%s:%s", userID, date)
}
