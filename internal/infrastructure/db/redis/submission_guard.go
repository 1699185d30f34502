package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultGuardTTL = 10 * time.Minute

// SubmissionGuard provides idempotency checks for panel writes backed by Redis.
// Key format: storeadmin:idem:<resource>:<idempotency_key>
type SubmissionGuard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSubmissionGuard creates a guard whose claims expire after ttl.
func NewSubmissionGuard(client *redis.Client, ttl time.Duration) *SubmissionGuard {
	if ttl <= 0 {
		ttl = defaultGuardTTL
	}
	return &SubmissionGuard{client: client, ttl: ttl}
}

// Acquire claims key. It reports false when the key is already held.
func (g *SubmissionGuard) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(key), "1", g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("submission guard: %w", err)
	}
	return ok, nil
}

// Release frees key so a failed write can be retried with it.
func (g *SubmissionGuard) Release(ctx context.Context, key string) error {
	return g.client.Del(ctx, g.key(key)).Err()
}

func (g *SubmissionGuard) key(key string) string {
	return "storeadmin:idem:" + key
}
