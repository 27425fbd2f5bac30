// Package cache keeps per-user unread notification counts in Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
)

// ErrMiss is returned when no count is cached for a user.
var ErrMiss = errors.New("cache miss")

// client is the subset of the wbf Redis client the cache needs.
type client interface {
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// UnreadCounts caches unread notification counts under "unread:<user id>".
// Entries expire after ttl so a lost invalidation heals by itself.
type UnreadCounts struct {
	rdb      client
	strategy retry.Strategy
	ttl      time.Duration
}

// NewUnreadCounts wraps a Redis client. A zero ttl keeps entries until invalidated.
func NewUnreadCounts(rdb client, strategy retry.Strategy, ttl time.Duration) *UnreadCounts {
	return &UnreadCounts{rdb: rdb, strategy: strategy, ttl: ttl}
}

func key(userID uuid.UUID) string {
	return "unread:" + userID.String()
}

// Get returns the cached count or ErrMiss.
func (c *UnreadCounts) Get(ctx context.Context, userID uuid.UUID) (int, error) {
	v, err := c.rdb.GetWithRetry(ctx, c.strategy, key(userID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrMiss
		}

		return 0, fmt.Errorf("get unread count: %w", err)
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, ErrMiss
	}

	return n, nil
}

// Set stores a count.
func (c *UnreadCounts) Set(ctx context.Context, userID uuid.UUID, n int) error {
	if err := c.rdb.SetWithRetry(ctx, c.strategy, key(userID), strconv.Itoa(n)); err != nil {
		return fmt.Errorf("set unread count: %w", err)
	}

	if c.ttl > 0 {
		if err := c.rdb.Expire(ctx, key(userID), c.ttl).Err(); err != nil {
			return fmt.Errorf("expire unread count: %w", err)
		}
	}

	return nil
}

// Invalidate drops the cached count so the next read goes to the database.
func (c *UnreadCounts) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.rdb.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("invalidate unread count: %w", err)
	}

	return nil
}
