package redisx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}

func Exists(ctx context.Context, rdb redis.Cmdable, key string) (bool, error) {
	n, err := rdb.Exists(ctx, key).Result()
	return n > 0, err
}

// Revocations is the Redis-backed closed-session list.
type Revocations struct {
	rdb redis.Cmdable
}

func NewRevocations(rdb redis.Cmdable) *Revocations { return &Revocations{rdb: rdb} }

func (r *Revocations) Revoke(ctx context.Context, id string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	if err := r.rdb.Set(ctx, fmt.Sprintf(KeySessionRevoked, id), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (r *Revocations) Revoked(ctx context.Context, id string) (bool, error) {
	return Exists(ctx, r.rdb, fmt.Sprintf(KeySessionRevoked, id))
}

// StatsCache keeps the last admin stats payload for a short time.
type StatsCache interface {
	Get(ctx context.Context) ([]byte, bool, error)
	Put(ctx context.Context, raw []byte) error
}

type statsCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewStatsCache(rdb redis.Cmdable, ttl time.Duration) StatsCache {
	if ttl <= 0 {
		ttl = TTLStatsCache
	}
	return &statsCache{rdb: rdb, ttl: ttl}
}

func (c *statsCache) Get(ctx context.Context) ([]byte, bool, error) {
	b, err := c.rdb.Get(ctx, KeyAdminStats).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (c *statsCache) Put(ctx context.Context, raw []byte) error {
	return c.rdb.Set(ctx, KeyAdminStats, raw, c.ttl).Err()
}
