// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/minhle/folio/internal/platform/constants"
)

// RedisStore implements [Store] on Redis: an INCR counter guarded by
// per-visitor SETNX keys.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore constructs the Redis backed visit counter.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// MarkSeen sets the visitor's guard key if absent. SETNX reports whether
// the key was created, which doubles as "first sighting".
func (store *RedisStore) MarkSeen(context context.Context, visitorID string, window time.Duration) (bool, error) {
	first, err := store.client.SetNX(context, constants.RedisPrefixVisitSeen+visitorID, 1, window).Result()
	if err != nil {
		return false, fmt.Errorf("stats: mark visitor seen: %w", err)
	}
	return first, nil
}

// Increment bumps the global counter and returns the new total.
func (store *RedisStore) Increment(context context.Context) (int64, error) {
	total, err := store.client.Incr(context, constants.RedisPrefixVisitTotal).Result()
	if err != nil {
		return 0, fmt.Errorf("stats: increment visits: %w", err)
	}
	return total, nil
}

// Total reads the counter; a missing key reads as zero.
func (store *RedisStore) Total(context context.Context) (int64, error) {
	total, err := store.client.Get(context, constants.RedisPrefixVisitTotal).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("stats: read visits: %w", err)
	}
	return total, nil
}
