// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/minhle/folio/internal/platform/apperr"
	"github.com/minhle/folio/internal/platform/constants"
)

// # Volatile Token Repository

// RedisTokenRepository implements [TokenRepository] using a keyed Redis
// prefix, so one type serves both reset and verification tokens.
type RedisTokenRepository struct {
	client *redis.Client
	prefix string
}

// NewResetTokenRepository creates the Redis-backed store for password reset tokens.
func NewResetTokenRepository(client *redis.Client) *RedisTokenRepository {
	return &RedisTokenRepository{client: client, prefix: constants.RedisPrefixResetToken}
}

// NewVerificationTokenRepository creates the Redis-backed store for email verification tokens.
func NewVerificationTokenRepository(client *redis.Client) *RedisTokenRepository {
	return &RedisTokenRepository{client: client, prefix: constants.RedisPrefixVerifyToken}
}

/*
Set stores a token with its associated userID and TTL.

Parameters:
  - context: context.Context
  - token: string
  - userID: string
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (repository *RedisTokenRepository) Set(context context.Context, token string, userID string, ttl time.Duration) error {
	if err := repository.client.Set(context, repository.prefix+token, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_token_set_failed: %w", err)
	}
	return nil
}

/*
Get retrieves the userID for a given token.

Description: Returns apperr.NotFound if the token is absent or expired.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - string: UserID
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisTokenRepository) Get(context context.Context, token string) (string, error) {
	userID, err := repository.client.Get(context, repository.prefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Token is invalid or expired")
		}
		return "", fmt.Errorf("redis_token_get_failed: %w", err)
	}
	return userID, nil
}

/*
Delete removes the token from Redis.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisTokenRepository) Delete(context context.Context, token string) error {
	if err := repository.client.Del(context, repository.prefix+token).Err(); err != nil {
		return fmt.Errorf("redis_token_delete_failed: %w", err)
	}
	return nil
}
