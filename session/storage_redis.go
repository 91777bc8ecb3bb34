package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStorage persists the session pair in Redis under two keys sharing a
// prefix. Intended for kiosk and daemon deployments where the process
// restarts but the session should survive. Both keys carry the same TTL and
// are written in one transaction.
type RedisStorage struct {
	redis       redis.UniversalClient
	prefix      string
	tokenKey    string
	identityKey string
	ttl         time.Duration
}

// NewRedisStorage creates a [RedisStorage]. prefix namespaces the two keys;
// tokenKey and identityKey name them, falling back to [DefaultTokenKey] and
// [DefaultIdentityKey] when empty; ttl of zero stores the pair without
// expiry.
func NewRedisStorage(client redis.UniversalClient, prefix, tokenKey, identityKey string, ttl time.Duration) *RedisStorage {
	if prefix == "" {
		prefix = "clubadmin"
	}
	if tokenKey == "" {
		tokenKey = DefaultTokenKey
	}
	if identityKey == "" {
		identityKey = DefaultIdentityKey
	}
	return &RedisStorage{
		redis:       client,
		prefix:      prefix,
		tokenKey:    tokenKey,
		identityKey: identityKey,
		ttl:         ttl,
	}
}

func (r *RedisStorage) tokenRedisKey() string {
	return r.prefix + ":" + r.tokenKey
}

func (r *RedisStorage) identityRedisKey() string {
	return r.prefix + ":" + r.identityKey
}

func (r *RedisStorage) Write(ctx context.Context, token string, identity []byte) error {
	_, err := r.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.tokenRedisKey(), token, r.ttl)
		pipe.Set(ctx, r.identityRedisKey(), identity, r.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (r *RedisStorage) Read(ctx context.Context) (string, []byte, error) {
	pipe := r.redis.Pipeline()
	tokenCmd := pipe.Get(ctx, r.tokenRedisKey())
	identityCmd := pipe.Get(ctx, r.identityRedisKey())

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return "", nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	token, err := tokenCmd.Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil, ErrNoSession
		}
		return "", nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	identity, err := identityCmd.Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil, ErrNoSession
		}
		return "", nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if token == "" || len(identity) == 0 {
		return "", nil, ErrNoSession
	}

	return token, identity, nil
}

func (r *RedisStorage) Clear(ctx context.Context) error {
	if err := r.redis.Del(ctx, r.tokenRedisKey(), r.identityRedisKey()).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// Ping returns a point-in-time Redis availability check and latency.
func (r *RedisStorage) Ping(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	if err := r.redis.Ping(ctx).Err(); err != nil {
		return time.Since(start), fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return time.Since(start), nil
}
