package presence

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultKey is the sorted set holding user ids scored by last-seen unix millis
const DefaultKey = "dokanbaki:presence"

// RedisTracker shares presence across instances through a sorted set
type RedisTracker struct {
	client *redis.Client
	key    string
	now    func() time.Time
}

func NewRedisTracker(client *redis.Client, key string) *RedisTracker {
	if key == "" {
		key = DefaultKey
	}
	return &RedisTracker{client: client, key: key, now: time.Now}
}

func (t *RedisTracker) Track(ctx context.Context, userID string) error {
	err := t.client.ZAdd(ctx, t.key, &redis.Z{
		Score:  float64(t.now().UnixMilli()),
		Member: userID,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to track presence: %w", err)
	}
	return nil
}

func (t *RedisTracker) LiveCount(ctx context.Context, window time.Duration) (int, error) {
	// scores strictly below the cutoff are idle
	cutoff := t.now().Add(-window).UnixMilli()

	pipe := t.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, t.key, "-inf", "("+strconv.FormatInt(cutoff, 10))
	card := pipe.ZCard(ctx, t.key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to count live users: %w", err)
	}
	return int(card.Val()), nil
}
